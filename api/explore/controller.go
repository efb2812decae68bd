package exploreapi

import (
	"errors"
	"net/http"

	dmn "github.com/beka-birhanu/vinom-droid/domain"
	"github.com/beka-birhanu/vinom-droid/game/maze"
	"github.com/beka-birhanu/vinom-droid/service"
	"github.com/beka-birhanu/vinom-droid/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExploreController exposes exploration runs and their reports.
type ExploreController struct {
	explorer i.Explorer
}

// NewExploreController initializes an ExploreController.
func NewExploreController(e i.Explorer) (*ExploreController, error) {
	if e == nil {
		return nil, errors.New("explorer is required")
	}
	return &ExploreController{explorer: e}, nil
}

// RegisterPublic registers public routes.
func (ec *ExploreController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (ec *ExploreController) RegisterProtected(route *gin.RouterGroup) {
	explorations := route.Group("/explorations")
	{
		explorations.POST("", ec.explore)
		explorations.GET("/:ID", ec.report)
	}
}

// explore runs a droid through the submitted layout.
func (ec *ExploreController) explore(ctx *gin.Context) {
	var request ExploreRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := ec.explorer.Explore(dmn.ExploreRequest{
		Name:   request.Name,
		Layout: request.Layout,
		Frames: request.Frames,
	})
	if err != nil {
		if errors.Is(err, maze.ErrInvalidLayout) || errors.Is(err, service.ErrMazeTooLarge) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while exploring maze"})
		return
	}

	ctx.JSON(http.StatusCreated, report)
}

// report retrieves a stored exploration report.
func (ec *ExploreController) report(ctx *gin.Context) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	report, err := ec.explorer.Report(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no report"})
		return
	}

	ctx.JSON(http.StatusOK, report)
}

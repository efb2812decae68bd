package api

import (
	"net/http"

	"github.com/beka-birhanu/vinom-droid/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies,
// including controllers and JWT authentication.
type Router struct {
	addr                    string
	baseURL                 string
	controllers             []i.Controller
	authorizationMiddleware gin.HandlerFunc
	engine                  *gin.Engine
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr                    string // Address to listen on
	BaseURL                 string // Base URL for API routes
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
	Middlewares             []gin.HandlerFunc // Applied to every route, e.g. request logging
}

// NewRouter creates a new Router instance with the given configuration and
// registers every controller's routes.
//
// Routes are grouped under the base URL with the following access levels:
// - Public routes: No authentication required.
// - Protected routes: Authentication required.
func NewRouter(config Config) *Router {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(config.Middlewares...)

	r := &Router{
		addr:                    config.Addr,
		baseURL:                 config.BaseURL,
		controllers:             config.Controllers,
		authorizationMiddleware: config.AuthorizationMiddleware,
		engine:                  engine,
	}
	r.registerRoutes()
	return r
}

func (r *Router) registerRoutes() {
	api := r.engine.Group(r.baseURL)

	{
		// Public routes (accessible without authentication)
		publicRoutes := api.Group("/v1")
		{
			publicRoutes.GET("/health", func(ctx *gin.Context) {
				ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
			})
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}

		// Protected routes (authentication required)
		protectedRoutes := api.Group("/v1")
		if r.authorizationMiddleware != nil {
			protectedRoutes.Use(r.authorizationMiddleware)
		}
		{
			for _, c := range r.controllers {
				c.RegisterProtected(protectedRoutes)
			}
		}
	}
}

// Handler exposes the routes as an http.Handler.
func (r *Router) Handler() http.Handler {
	return r.engine
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	return r.engine.Run(r.addr)
}

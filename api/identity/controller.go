// Package identity exchanges the operator API key for bearer tokens and
// guards protected routes.
package identity

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-droid/service/i"
	"github.com/gin-gonic/gin"
)

const operatorSubject = "operator"

// TokenRequest carries the operator API key.
type TokenRequest struct {
	Key string `json:"key" binding:"required"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// IdentityServer handles HTTP requests related to authentication.
type IdentityServer struct {
	tokenizer i.Tokenizer
	apiKey    string
	ttl       time.Duration
}

// NewIdentityServer creates an IdentityServer issuing tokens valid for ttl to
// callers presenting apiKey.
func NewIdentityServer(t i.Tokenizer, apiKey string, ttl time.Duration) *IdentityServer {
	return &IdentityServer{
		tokenizer: t,
		apiKey:    apiKey,
		ttl:       ttl,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/token", c.token)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
}

// token trades the API key for a bearer token.
func (c *IdentityServer) token(ctx *gin.Context) {
	var request TokenRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if c.apiKey == "" || subtle.ConstantTimeCompare([]byte(request.Key), []byte(c.apiKey)) != 1 {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid api key"})
		return
	}

	token, err := c.tokenizer.Generate(operatorSubject, nil, c.ttl)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while issuing token"})
		return
	}

	ctx.JSON(http.StatusOK, &TokenResponse{
		Token:     token,
		ExpiresIn: int64(c.ttl.Seconds()),
	})
}

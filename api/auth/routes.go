package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the auth endpoints
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/auth")
	{
		group.POST("/login", Login(deps))
		group.POST("/logout", Logout())
		group.GET("/me", Middleware(deps), Me(deps))
	}
}

package recognition

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the recognition session endpoints
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/recognition")
	{
		group.POST("", Create(deps))
		group.GET("/:id", Get(deps))
		group.DELETE("/:id", Cancel(deps))
		group.PUT("/:id/faces/:index", AssignName(deps))
		group.POST("/:id/approve", Approve(deps))
	}
}

package workflows

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the workflow session endpoints
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/workflows")
	{
		group.POST("", Create(deps))
		group.GET("/:id", Get(deps))
		group.DELETE("/:id", Cancel(deps))
		group.POST("/:id/process-all", ProcessAll(deps))
		group.POST("/:id/save-all", SaveAll(deps))
		group.PATCH("/:id/items/:mediaId", UpdateField(deps))
		group.POST("/:id/items/:mediaId/save", SaveItem(deps))
		group.POST("/:id/items/:mediaId/stages/:stage", RunStage(deps))
	}
}

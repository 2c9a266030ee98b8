package media

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the media endpoints
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/media")
	{
		group.GET("", List(deps))
		group.POST("", Upload(deps))
		group.POST("/bulk-delete", BulkDelete(deps))
		group.GET("/:id", Get(deps))
		group.PATCH("/:id", Update(deps))
		group.DELETE("/:id", Delete(deps))
	}
}

package albums

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the album endpoints
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/albums")
	{
		group.GET("", List(deps))
		group.POST("", Create(deps))
		group.GET("/:id", Get(deps))
		group.PUT("/:id", Rename(deps))
		group.DELETE("/:id", Delete(deps))
	}
}

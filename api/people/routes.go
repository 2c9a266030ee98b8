package people

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the people endpoints
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/people")
	{
		group.GET("", List(deps))
		group.POST("", Create(deps))
		group.GET("/:id", Get(deps))
		group.DELETE("/:id", Delete(deps))
	}
}

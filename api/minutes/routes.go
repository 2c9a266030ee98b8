package minutes

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the meeting minute endpoints
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/minutes")
	{
		group.GET("", List(deps))
		group.GET("/media/:mediaId", GetByMedia(deps))
	}
}

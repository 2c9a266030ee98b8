package selection

import (
	"github.com/gin-gonic/gin"

	"github.com/artefakt/archive-api/api/types"
)

// RegisterRoutes sets up the selection and staging endpoints.
// Staging routes are registered first so "staging" and "flags" are
// never parsed as scope names.
func RegisterRoutes(router gin.IRouter, deps *types.Dependencies) {
	group := router.Group("/selection")
	{
		group.POST("/staging/classify", StageClassify(deps))
		group.POST("/staging/text/:scope", StageText(deps))
		group.GET("/flags/:name", TakeFlag(deps))
		group.GET("/:scope", Get(deps))
		group.PUT("/:scope", Replace(deps))
		group.DELETE("/:scope", Clear(deps))
	}
}

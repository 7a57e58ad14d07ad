package settings

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	settings := r.Group("/settings")
	{
		settings.GET("", handler.GetAll)
		settings.GET("/:key", handler.GetByKey)
		settings.PUT("/:key", handler.Upsert)
	}
}

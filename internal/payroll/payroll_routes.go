package payroll

import (
	"go-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:id", handler.GetByID)
		if redisClient != nil {
			payrolls.POST("/process", middleware.Idempotency(redisClient), handler.Process)
		} else {
			payrolls.POST("/process", handler.Process)
		}
		payrolls.POST("/mark-paid", handler.BulkMarkPaid)
		payrolls.POST("/:id/mark-paid", handler.MarkPaid)
		payrolls.DELETE("/:id", handler.Delete)
	}
}

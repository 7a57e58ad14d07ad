package report

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	{
		reports.GET("/employee-types", handler.ByEmployeeType)
		reports.GET("/departments", handler.ByDepartment)
		reports.GET("/faculties", handler.ByFaculty)
		reports.GET("/designations", handler.ByDesignation)
		reports.GET("/monthly", handler.Monthly)
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	"teamlab/internal/middleware"
)

func InitCourseRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	strictAuthRouter := r.Group("/courses").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.GET("", deps.CourseHandler.ListCourses)
		strictAuthRouter.POST("", deps.CourseHandler.CreateCourse)
		strictAuthRouter.GET("/:id", deps.CourseHandler.GetCourse)
		strictAuthRouter.PUT("/:id", deps.CourseHandler.UpdateCourse)
		strictAuthRouter.POST("/:id/enrollments", deps.CourseHandler.Enroll)
		strictAuthRouter.POST("/:id/enrollments/csv", deps.CourseHandler.EnrollCSV)
		strictAuthRouter.GET("/:id/teams", deps.TeamHandler.ListCourseTeams)
	}
}

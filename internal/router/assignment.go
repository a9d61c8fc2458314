package router

import (
	"github.com/gin-gonic/gin"

	"teamlab/internal/middleware"
)

func InitAssignmentRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	strictAuthRouter := r.Group("/assignments").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.POST("", deps.AssignmentHandler.CreateAssignment)
		strictAuthRouter.POST("/:id/read", deps.AssignmentHandler.ReadDelivery)
		strictAuthRouter.POST("/:id/submit", deps.AssignmentHandler.SubmitDelivery)
	}
}

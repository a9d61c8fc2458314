package router

import (
	"github.com/gin-gonic/gin"

	"teamlab/internal/middleware"
)

func InitTeamRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	// Confirm/reject are reached from mailed links; the token itself is the
	// credential, so a session is optional and only picked up for the logs.
	tokenRouter := r.Group("/teams").Use(middleware.NoStrictAuth(deps.JWT, deps.Logger))
	{
		tokenRouter.GET("/confirm/:token", deps.TeamHandler.ConfirmToken)
		tokenRouter.GET("/reject/:token", deps.TeamHandler.RejectToken)
	}

	strictAuthRouter := r.Group("/teams").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.POST("", deps.TeamHandler.ProposeTeam)
		strictAuthRouter.GET("/:id", deps.TeamHandler.GetTeam)
		strictAuthRouter.DELETE("/:id", deps.TeamHandler.EvictTeam)
	}
}

package router

import (
	"github.com/gin-gonic/gin"

	"teamlab/internal/middleware"
)

func InitUserRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	// No route group required for login and registration
	noAuthRouter := r.Group("/")
	{
		noAuthRouter.POST("/register", deps.UserHandler.Register)
		noAuthRouter.POST("/login", deps.UserHandler.Login)
	}

	// Strict permission routing group
	strictAuthRouter := r.Group("/user").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.GET("", deps.UserHandler.GetProfile)
		strictAuthRouter.PUT("", deps.UserHandler.UpdateProfile)
	}
}

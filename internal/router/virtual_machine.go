package router

import (
	"github.com/gin-gonic/gin"

	"teamlab/internal/middleware"
)

func InitVirtualMachineRouter(
	deps RouterDeps,
	r *gin.RouterGroup,
) {
	strictAuthRouter := r.Group("/vms").Use(middleware.StrictAuth(deps.JWT, deps.Logger))
	{
		strictAuthRouter.GET("", deps.VirtualMachineHandler.ListVMs)
		strictAuthRouter.POST("", deps.VirtualMachineHandler.CreateVM)
		strictAuthRouter.POST("/:id/start", deps.VirtualMachineHandler.StartVM)
		strictAuthRouter.POST("/:id/stop", deps.VirtualMachineHandler.StopVM)
		strictAuthRouter.POST("/:id/resize", deps.VirtualMachineHandler.ResizeVM)
		strictAuthRouter.POST("/:id/owners", deps.VirtualMachineHandler.AddOwners)
		strictAuthRouter.GET("/:id", deps.VirtualMachineHandler.GetVM)
		strictAuthRouter.DELETE("/:id", deps.VirtualMachineHandler.DeleteVM)
	}
}

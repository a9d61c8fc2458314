package router

import (
	"github.com/spf13/viper"

	"teamlab/internal/handler"
	"teamlab/pkg/jwt"
	"teamlab/pkg/log"
)

type RouterDeps struct {
	Logger                *log.Logger
	Config                *viper.Viper
	JWT                   *jwt.JWT
	UserHandler           *handler.UserHandler
	CourseHandler         *handler.CourseHandler
	TeamHandler           *handler.TeamHandler
	VirtualMachineHandler *handler.VirtualMachineHandler
	AssignmentHandler     *handler.AssignmentHandler
}

//go:build wireinject
// +build wireinject

package wire

import (
	"teamlab/internal/handler"
	"teamlab/internal/job"
	"teamlab/internal/repository"
	"teamlab/internal/router"
	"teamlab/internal/server"
	"teamlab/internal/service"
	"teamlab/pkg/app"
	"teamlab/pkg/jwt"
	"teamlab/pkg/lock"
	"teamlab/pkg/log"
	"teamlab/pkg/mail"
	"teamlab/pkg/server/http"
	"teamlab/pkg/sid"

	"github.com/google/wire"
	"github.com/spf13/viper"
)

var repositorySet = wire.NewSet(
	repository.NewDB,
	repository.NewRepository,
	repository.NewTransaction,
	repository.NewUserRepository,
	repository.NewCourseRepository,
	repository.NewTeamRepository,
	repository.NewConfirmationTokenRepository,
	repository.NewVirtualMachineRepository,
	repository.NewAssignmentRepository,
)

var serviceSet = wire.NewSet(
	service.NewService,
	service.NewUserService,
	service.NewCourseService,
	service.NewTeamService,
	service.NewVirtualMachineService,
	service.NewNotificationService,
	service.NewAssignmentService,
)

var handlerSet = wire.NewSet(
	handler.NewHandler,
	handler.NewUserHandler,
	handler.NewCourseHandler,
	handler.NewTeamHandler,
	handler.NewVirtualMachineHandler,
	handler.NewAssignmentHandler,
)

var jobSet = wire.NewSet(
	job.NewJob,
	job.NewExpiryJob,
)
var serverSet = wire.NewSet(
	server.NewHTTPServer,
	server.NewJobServer,
)

// build App
func newApp(
	httpServer *http.Server,
	jobServer *server.JobServer,
) *app.App {
	return app.NewApp(
		app.WithServer(httpServer, jobServer),
		app.WithName("teamlab-server"),
	)
}

func NewWire(*viper.Viper, *log.Logger) (*app.App, func(), error) {
	panic(wire.Build(
		repositorySet,
		serviceSet,
		handlerSet,
		jobSet,
		serverSet,
		wire.Struct(new(router.RouterDeps), "*"),
		sid.NewSid,
		jwt.NewJwt,
		lock.NewKeyed,
		mail.NewSender,
		newApp,
	))
}

package server

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"teamlab/internal/job"
	"teamlab/pkg/log"
)

// JobServer runs the expiry sweep on a schedule. SingletonMode guarantees no
// overlapping passes: a tick is skipped while the previous one is still busy.
type JobServer struct {
	scheduler *gocron.Scheduler
	conf      *viper.Viper
	log       *log.Logger
	expiryJob *job.ExpiryJob
}

func NewJobServer(
	logger *log.Logger,
	conf *viper.Viper,
	expiryJob *job.ExpiryJob,
) *JobServer {
	return &JobServer{
		scheduler: gocron.NewScheduler(time.UTC),
		conf:      conf,
		log:       logger,
		expiryJob: expiryJob,
	}
}

func (s *JobServer) Start(ctx context.Context) error {
	at := s.conf.GetString("job.expiry_at")
	if at == "" {
		at = "03:00"
	}

	_, err := s.scheduler.Every(1).Day().At(at).SingletonMode().Do(func() {
		s.expiryJob.Run(ctx)
	})
	if err != nil {
		return err
	}
	s.log.Info("job server start", zap.String("expiry_at", at))
	s.scheduler.StartAsync()
	return nil
}

func (s *JobServer) Stop(ctx context.Context) error {
	s.scheduler.Stop()
	s.log.Info("job server stop")
	return nil
}

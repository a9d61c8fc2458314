package job

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"

	"teamlab/pkg/log"
	mock_service "teamlab/test/mocks/service"
)

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()
	conf := viper.New()
	conf.Set("env", "test")
	conf.Set("log.log_level", "error")
	conf.Set("log.encoding", "console")
	conf.Set("log.log_file_name", filepath.Join(t.TempDir(), "test.log"))
	return log.NewLog(conf)
}

func TestExpiryJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamService := mock_service.NewMockTeamService(ctrl)
	assignmentService := mock_service.NewMockAssignmentService(ctrl)
	teamService.EXPECT().SweepExpiredTokens(gomock.Any()).Return(2, nil)
	assignmentService.EXPECT().FinalizeOverdue(gomock.Any()).Return(3, nil)

	logger := newTestLogger(t)
	j := NewExpiryJob(NewJob(nil, logger), teamService, assignmentService, logger)
	j.Run(context.Background())
}

func TestExpiryJob_Run_SweepFailureStillFinalizes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	teamService := mock_service.NewMockTeamService(ctrl)
	assignmentService := mock_service.NewMockAssignmentService(ctrl)
	teamService.EXPECT().SweepExpiredTokens(gomock.Any()).Return(0, errors.New("db down"))
	assignmentService.EXPECT().FinalizeOverdue(gomock.Any()).Return(0, nil)

	logger := newTestLogger(t)
	j := NewExpiryJob(NewJob(nil, logger), teamService, assignmentService, logger)
	j.Run(context.Background())
}

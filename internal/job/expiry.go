package job

import (
	"context"

	"go.uber.org/zap"

	"teamlab/internal/service"
	"teamlab/pkg/log"
)

// ExpiryJob is the periodic sweep: stale confirmation tokens tear their team
// down exactly like a rejection would, and past-due assignments get their open
// deliveries finalized. Each duty isolates failures so one bad team or
// assignment never stops the rest of the pass.
type ExpiryJob struct {
	*Job
	teamService       service.TeamService
	assignmentService service.AssignmentService
	logger            *log.Logger
}

func NewExpiryJob(
	job *Job,
	teamService service.TeamService,
	assignmentService service.AssignmentService,
	logger *log.Logger,
) *ExpiryJob {
	return &ExpiryJob{
		Job:               job,
		teamService:       teamService,
		assignmentService: assignmentService,
		logger:            logger,
	}
}

func (j *ExpiryJob) Run(ctx context.Context) {
	evicted, err := j.teamService.SweepExpiredTokens(ctx)
	if err != nil {
		j.logger.Error("token expiry sweep error", zap.Error(err))
	} else if evicted > 0 {
		j.logger.Info("token expiry sweep", zap.Int("teams_evicted", evicted))
	}

	finalized, err := j.assignmentService.FinalizeOverdue(ctx)
	if err != nil {
		j.logger.Error("deliverable expiry sweep error", zap.Error(err))
	} else if finalized > 0 {
		j.logger.Info("deliverable expiry sweep", zap.Int("deliveries_finalized", finalized))
	}
}

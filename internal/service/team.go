package service

import (
	"context"
	crand "crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
	"teamlab/internal/repository"
	"teamlab/pkg/lock"
	"teamlab/pkg/log"
)

const defaultTokenTTL = time.Hour

type TeamService interface {
	ProposeTeam(ctx context.Context, req *v1.ProposeTeamRequest) (*v1.TeamData, error)
	ResolveConfirmToken(ctx context.Context, tokenId string) (bool, error)
	ResolveRejectToken(ctx context.Context, tokenId string) (bool, error)
	EvictTeam(ctx context.Context, teamId int64) error
	GetTeam(ctx context.Context, teamId int64) (*v1.TeamDetailData, error)
	ListCourseTeams(ctx context.Context, courseId int64) ([]*v1.TeamData, error)
	// SweepExpiredTokens evicts every team holding at least one expired token
	// and returns the number of teams torn down. Failures are isolated per
	// team; the sweep always visits every candidate.
	SweepExpiredTokens(ctx context.Context) (int, error)
}

func NewTeamService(
	service *Service,
	conf *viper.Viper,
	locks *lock.Keyed,
	courseRepo repository.CourseRepository,
	userRepo repository.UserRepository,
	teamRepo repository.TeamRepository,
	tokenRepo repository.ConfirmationTokenRepository,
	vmRepo repository.VirtualMachineRepository,
	notifier NotificationService,
	logger *log.Logger,
) TeamService {
	ttl := conf.GetDuration("team.token_ttl")
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &teamService{
		conf:       conf,
		locks:      locks,
		courseRepo: courseRepo,
		userRepo:   userRepo,
		teamRepo:   teamRepo,
		tokenRepo:  tokenRepo,
		vmRepo:     vmRepo,
		notifier:   notifier,
		tokenTTL:   ttl,
		now:        time.Now,
		Service:    service,
		logger:     logger,
	}
}

type teamService struct {
	conf       *viper.Viper
	locks      *lock.Keyed
	courseRepo repository.CourseRepository
	userRepo   repository.UserRepository
	teamRepo   repository.TeamRepository
	tokenRepo  repository.ConfirmationTokenRepository
	vmRepo     repository.VirtualMachineRepository
	notifier   NotificationService
	tokenTTL   time.Duration
	now        func() time.Time // injected clock, overridden in tests
	*Service
	logger *log.Logger
}

func teamLockKey(teamId int64) string {
	return fmt.Sprintf("team:%d", teamId)
}

func proposalLockKey(courseId int64, name string) string {
	return fmt.Sprintf("proposal:%d:%s", courseId, name)
}

func newTokenId() (string, error) {
	b := make([]byte, 24)
	if _, err := crand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (s *teamService) ProposeTeam(ctx context.Context, req *v1.ProposeTeamRequest) (*v1.TeamData, error) {
	unlock := s.locks.Lock(proposalLockKey(req.CourseId, req.Name))
	defer unlock()

	course, err := s.courseRepo.GetByID(ctx, req.CourseId)
	if err != nil {
		s.logger.WithContext(ctx).Error("courseRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if course == nil {
		return nil, v1.ErrCourseNotFound
	}
	if !course.Enabled {
		return nil, v1.ErrCourseDisabled
	}

	members := make([]*model.User, 0, len(req.MemberIds))
	for _, id := range req.MemberIds {
		student, err := s.userRepo.GetByID(ctx, id)
		if err != nil {
			s.logger.WithContext(ctx).Error("userRepo.GetByID error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if student == nil || student.Role != model.RoleStudent {
			return nil, v1.ErrStudentNotFound
		}
		members = append(members, student)
	}
	for _, id := range req.MemberIds {
		enrolled, err := s.courseRepo.IsEnrolled(ctx, req.CourseId, id)
		if err != nil {
			s.logger.WithContext(ctx).Error("courseRepo.IsEnrolled error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if !enrolled {
			return nil, v1.ErrNotEnrolled
		}
	}
	for _, id := range req.MemberIds {
		other, err := s.teamRepo.GetMemberTeam(ctx, req.CourseId, id)
		if err != nil {
			s.logger.WithContext(ctx).Error("teamRepo.GetMemberTeam error", zap.Error(err))
			return nil, v1.ErrInternalServerError
		}
		if other != nil {
			return nil, v1.ErrAlreadyTeamed
		}
	}
	seen := make(map[string]struct{}, len(req.MemberIds))
	for _, id := range req.MemberIds {
		if _, dup := seen[id]; dup {
			return nil, v1.ErrTeamCardinality
		}
		seen[id] = struct{}{}
	}
	if len(req.MemberIds) < course.MinTeamSize || len(req.MemberIds) > course.MaxTeamSize {
		return nil, v1.ErrTeamCardinality
	}
	if existing, err := s.teamRepo.GetByCourseAndName(ctx, req.CourseId, req.Name); err != nil {
		s.logger.WithContext(ctx).Error("teamRepo.GetByCourseAndName error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	} else if existing != nil {
		return nil, v1.ErrDuplicateTeamName
	}

	// team caps are a snapshot of the course template
	team := &model.Team{
		Name:         req.Name,
		CourseId:     req.CourseId,
		Status:       model.TeamStatusPending,
		PendingCount: len(req.MemberIds),
		CpuMax:       course.CpuMax,
		RamMax:       course.RamMax,
		DiskSpaceMax: course.DiskSpaceMax,
		TotVM:        course.TotalInstances,
		ActiveVM:     course.ActiveInstances,
	}
	expiresAt := s.now().Add(s.tokenTTL)
	tokens := make([]*model.ConfirmationToken, 0, len(req.MemberIds))

	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		// membership can change between the reads above and this point; the
		// proposal lock only serializes same-named proposals, so re-validate
		for _, id := range req.MemberIds {
			other, err := s.teamRepo.GetMemberTeam(ctx, req.CourseId, id)
			if err != nil {
				return err
			}
			if other != nil {
				return v1.ErrAlreadyTeamed
			}
		}
		if err := s.teamRepo.Create(ctx, team); err != nil {
			return err
		}
		memberRows := make([]*model.TeamMember, 0, len(req.MemberIds))
		for _, id := range req.MemberIds {
			memberRows = append(memberRows, &model.TeamMember{
				TeamId:    team.Id,
				CourseId:  req.CourseId,
				StudentId: id,
			})
		}
		if err := s.teamRepo.CreateMembers(ctx, memberRows); err != nil {
			return err
		}
		for _, id := range req.MemberIds {
			tokenId, err := newTokenId()
			if err != nil {
				return err
			}
			tokens = append(tokens, &model.ConfirmationToken{
				Id:        tokenId,
				TeamId:    team.Id,
				StudentId: id,
				ExpiresAt: expiresAt,
			})
		}
		return s.tokenRepo.Create(ctx, tokens)
	})
	if err != nil {
		if err == v1.ErrAlreadyTeamed {
			return nil, err
		}
		s.logger.WithContext(ctx).Error("propose team tx error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}

	// notify only after the commit; delivery is best-effort
	s.notifier.NotifyTeamProposal(course, team, members, tokens)

	return s.teamData(team, req.MemberIds), nil
}

// ResolveConfirmToken consumes one confirmation. An unknown or already
// consumed token reports false rather than failing, a racing resolution may
// legitimately have consumed it first. An expired token rejects the team.
func (s *teamService) ResolveConfirmToken(ctx context.Context, tokenId string) (bool, error) {
	token, err := s.tokenRepo.GetByID(ctx, tokenId)
	if err != nil {
		s.logger.WithContext(ctx).Error("tokenRepo.GetByID error", zap.Error(err))
		return false, v1.ErrInternalServerError
	}
	if token == nil {
		return false, nil
	}

	unlock := s.locks.Lock(teamLockKey(token.TeamId))
	defer unlock()

	// reload under the lock, the token may have been consumed meanwhile
	token, err = s.tokenRepo.GetByID(ctx, tokenId)
	if err != nil {
		return false, v1.ErrInternalServerError
	}
	if token == nil {
		return false, nil
	}

	if s.now().After(token.ExpiresAt) {
		// an expired token is an implicit reject of the whole team
		if err := s.evictLocked(ctx, token.TeamId); err != nil {
			s.logger.WithContext(ctx).Error("evict on expired token error", zap.Error(err), zap.Int64("team_id", token.TeamId))
			return false, v1.ErrInternalServerError
		}
		return false, nil
	}

	err = s.tm.Transaction(ctx, func(ctx context.Context) error {
		team, err := s.teamRepo.GetByID(ctx, token.TeamId)
		if err != nil {
			return err
		}
		if team == nil {
			// orphan token, just drop it
			return s.tokenRepo.DeleteByID(ctx, tokenId)
		}
		team.PendingCount--
		if team.PendingCount <= 0 {
			team.PendingCount = 0
			team.Status = model.TeamStatusActive
		}
		if err := s.teamRepo.Update(ctx, team); err != nil {
			return err
		}
		return s.tokenRepo.DeleteByID(ctx, tokenId)
	})
	if err != nil {
		s.logger.WithContext(ctx).Error("confirm token tx error", zap.Error(err), zap.Int64("team_id", token.TeamId))
		return false, v1.ErrInternalServerError
	}
	return true, nil
}

// ResolveRejectToken tears down the whole team: one rejection invalidates
// every sibling token, no partially confirmed team survives.
func (s *teamService) ResolveRejectToken(ctx context.Context, tokenId string) (bool, error) {
	token, err := s.tokenRepo.GetByID(ctx, tokenId)
	if err != nil {
		s.logger.WithContext(ctx).Error("tokenRepo.GetByID error", zap.Error(err))
		return false, v1.ErrInternalServerError
	}
	if token == nil {
		return false, nil
	}

	unlock := s.locks.Lock(teamLockKey(token.TeamId))
	defer unlock()

	token, err = s.tokenRepo.GetByID(ctx, tokenId)
	if err != nil {
		return false, v1.ErrInternalServerError
	}
	if token == nil {
		return false, nil
	}

	if err := s.evictLocked(ctx, token.TeamId); err != nil {
		s.logger.WithContext(ctx).Error("evict on reject error", zap.Error(err), zap.Int64("team_id", token.TeamId))
		return false, v1.ErrInternalServerError
	}
	return true, nil
}

func (s *teamService) EvictTeam(ctx context.Context, teamId int64) error {
	unlock := s.locks.Lock(teamLockKey(teamId))
	defer unlock()

	team, err := s.teamRepo.GetByID(ctx, teamId)
	if err != nil {
		s.logger.WithContext(ctx).Error("teamRepo.GetByID error", zap.Error(err))
		return v1.ErrInternalServerError
	}
	if team == nil {
		return v1.ErrTeamNotFound
	}
	if err := s.evictLocked(ctx, teamId); err != nil {
		s.logger.WithContext(ctx).Error("evict team error", zap.Error(err), zap.Int64("team_id", teamId))
		return v1.ErrInternalServerError
	}
	return nil
}

// evictLocked removes tokens, VMs, owner links, member links and the team row
// in one transaction. Callers must hold the team lock.
func (s *teamService) evictLocked(ctx context.Context, teamId int64) error {
	return s.tm.Transaction(ctx, func(ctx context.Context) error {
		if err := s.tokenRepo.DeleteByTeamID(ctx, teamId); err != nil {
			return err
		}
		if err := s.vmRepo.DeleteOwnersByTeamID(ctx, teamId); err != nil {
			return err
		}
		if err := s.vmRepo.DeleteByTeamID(ctx, teamId); err != nil {
			return err
		}
		if err := s.teamRepo.DeleteMembers(ctx, teamId); err != nil {
			return err
		}
		return s.teamRepo.Delete(ctx, teamId)
	})
}

func (s *teamService) SweepExpiredTokens(ctx context.Context) (int, error) {
	expired, err := s.tokenRepo.ListExpired(ctx, s.now())
	if err != nil {
		s.logger.WithContext(ctx).Error("tokenRepo.ListExpired error", zap.Error(err))
		return 0, v1.ErrInternalServerError
	}

	teamIds := make([]int64, 0, len(expired))
	seen := make(map[int64]struct{}, len(expired))
	for _, token := range expired {
		if _, ok := seen[token.TeamId]; ok {
			continue
		}
		seen[token.TeamId] = struct{}{}
		teamIds = append(teamIds, token.TeamId)
	}

	evicted := 0
	for _, teamId := range teamIds {
		if err := s.expireTeam(ctx, teamId); err != nil {
			// isolated per team, the sweep keeps going
			s.logger.WithContext(ctx).Error("expiry sweep failed for team", zap.Error(err), zap.Int64("team_id", teamId))
			continue
		}
		evicted++
	}
	return evicted, nil
}

func (s *teamService) expireTeam(ctx context.Context, teamId int64) error {
	unlock := s.locks.Lock(teamLockKey(teamId))
	defer unlock()

	// the team may have been confirmed or rejected since the listing
	tokens, err := s.tokenRepo.ListByTeamID(ctx, teamId)
	if err != nil {
		return err
	}
	stillExpired := false
	now := s.now()
	for _, token := range tokens {
		if now.After(token.ExpiresAt) {
			stillExpired = true
			break
		}
	}
	if !stillExpired {
		return nil
	}
	return s.evictLocked(ctx, teamId)
}

func (s *teamService) GetTeam(ctx context.Context, teamId int64) (*v1.TeamDetailData, error) {
	team, err := s.teamRepo.GetByID(ctx, teamId)
	if err != nil {
		s.logger.WithContext(ctx).Error("teamRepo.GetByID error", zap.Error(err))
		return nil, v1.ErrInternalServerError
	}
	if team == nil {
		return nil, v1.ErrTeamNotFound
	}
	members, err := s.teamRepo.ListMembers(ctx, teamId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	memberIds := make([]string, 0, len(members))
	for _, m := range members {
		memberIds = append(memberIds, m.StudentId)
	}
	vms, err := s.vmRepo.ListByTeamID(ctx, teamId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}

	detail := &v1.TeamDetailData{
		TeamData:   *s.teamData(team, memberIds),
		CreateTime: team.CreateTime,
		Quota: v1.TeamQuotaData{
			CpuMax:       team.CpuMax,
			RamMax:       team.RamMax,
			DiskSpaceMax: team.DiskSpaceMax,
			TotVM:        team.TotVM,
			ActiveVM:     team.ActiveVM,
		},
	}
	for _, vm := range vms {
		detail.Quota.UsedCpu += vm.Cpu
		detail.Quota.UsedRam += vm.Ram
		detail.Quota.UsedDiskSpace += vm.DiskSpace
		detail.Quota.UsedInstances++
		if vm.Active {
			detail.Quota.ActiveCount++
		}
		detail.VMs = append(detail.VMs, v1.VirtualMachineData{
			Id:        vm.Id,
			Name:      vm.Name,
			TeamId:    vm.TeamId,
			Cpu:       vm.Cpu,
			Ram:       vm.Ram,
			DiskSpace: vm.DiskSpace,
			Active:    vm.Active,
			Creator:   vm.Creator,
		})
	}
	return detail, nil
}

func (s *teamService) ListCourseTeams(ctx context.Context, courseId int64) ([]*v1.TeamData, error) {
	course, err := s.courseRepo.GetByID(ctx, courseId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	if course == nil {
		return nil, v1.ErrCourseNotFound
	}
	teams, err := s.teamRepo.ListByCourse(ctx, courseId)
	if err != nil {
		return nil, v1.ErrInternalServerError
	}
	out := make([]*v1.TeamData, 0, len(teams))
	for _, team := range teams {
		members, err := s.teamRepo.ListMembers(ctx, team.Id)
		if err != nil {
			return nil, v1.ErrInternalServerError
		}
		memberIds := make([]string, 0, len(members))
		for _, m := range members {
			memberIds = append(memberIds, m.StudentId)
		}
		out = append(out, s.teamData(team, memberIds))
	}
	return out, nil
}

func (s *teamService) teamData(team *model.Team, memberIds []string) *v1.TeamData {
	return &v1.TeamData{
		Id:           team.Id,
		Name:         team.Name,
		CourseId:     team.CourseId,
		Status:       team.Status,
		PendingCount: team.PendingCount,
		MemberIds:    memberIds,
		CpuMax:       team.CpuMax,
		RamMax:       team.RamMax,
		DiskSpaceMax: team.DiskSpaceMax,
		TotVM:        team.TotVM,
		ActiveVM:     team.ActiveVM,
	}
}

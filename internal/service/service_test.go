package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang/mock/gomock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	v1 "teamlab/api/v1"
	"teamlab/internal/model"
	"teamlab/internal/repository"
	"teamlab/pkg/lock"
	"teamlab/pkg/log"
	mock_service "teamlab/test/mocks/service"
)

// testEnv wires the services against an in-memory sqlite database with a
// controllable clock. Mutate clock to move time forward.
type testEnv struct {
	clock time.Time

	team       *teamService
	vm         *virtualMachineService
	assignment *assignmentService

	courseRepo     repository.CourseRepository
	userRepo       repository.UserRepository
	teamRepo       repository.TeamRepository
	tokenRepo      repository.ConfirmationTokenRepository
	vmRepo         repository.VirtualMachineRepository
	assignmentRepo repository.AssignmentRepository
}

func newTestLogger(t *testing.T) *log.Logger {
	t.Helper()
	conf := viper.New()
	conf.Set("env", "test")
	conf.Set("log.log_level", "error")
	conf.Set("log.encoding", "console")
	conf.Set("log.log_file_name", filepath.Join(t.TempDir(), "test.log"))
	return log.NewLog(conf)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := newTestLogger(t)

	// a named in-memory database per test, one connection so every session
	// sees the same data
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.Team{},
		&model.TeamMember{},
		&model.ConfirmationToken{},
		&model.VirtualMachine{},
		&model.VMOwner{},
		&model.Assignment{},
		&model.Delivery{},
	))

	repo := repository.NewRepository(logger, db)
	tm := repository.NewTransaction(repo)
	base := NewService(tm, logger, nil, nil)

	ctrl := gomock.NewController(t)
	notifier := mock_service.NewMockNotificationService(ctrl)
	notifier.EXPECT().NotifyTeamProposal(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	env := &testEnv{
		clock:          time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC),
		courseRepo:     repository.NewCourseRepository(repo),
		userRepo:       repository.NewUserRepository(repo),
		teamRepo:       repository.NewTeamRepository(repo),
		tokenRepo:      repository.NewConfirmationTokenRepository(repo),
		vmRepo:         repository.NewVirtualMachineRepository(repo),
		assignmentRepo: repository.NewAssignmentRepository(repo),
	}
	now := func() time.Time { return env.clock }
	locks := lock.NewKeyed()
	env.team = &teamService{
		locks:      locks,
		courseRepo: env.courseRepo,
		userRepo:   env.userRepo,
		teamRepo:   env.teamRepo,
		tokenRepo:  env.tokenRepo,
		vmRepo:     env.vmRepo,
		notifier:   notifier,
		tokenTTL:   time.Hour,
		now:        now,
		Service:    base,
		logger:     logger,
	}
	env.vm = &virtualMachineService{
		locks:      locks,
		courseRepo: env.courseRepo,
		userRepo:   env.userRepo,
		teamRepo:   env.teamRepo,
		vmRepo:     env.vmRepo,
		Service:    base,
		logger:     logger,
	}
	env.assignment = &assignmentService{
		assignmentRepo: env.assignmentRepo,
		courseRepo:     env.courseRepo,
		now:            now,
		Service:        base,
		logger:         logger,
	}
	return env
}

func (e *testEnv) seedCourse(t *testing.T, mutate ...func(*model.Course)) *model.Course {
	t.Helper()
	course := &model.Course{
		Name:            fmt.Sprintf("course-%d", time.Now().UnixNano()),
		TeacherId:       "t1",
		Enabled:         true,
		MinTeamSize:     2,
		MaxTeamSize:     4,
		CpuMax:          8,
		RamMax:          8192,
		DiskSpaceMax:    100,
		TotalInstances:  4,
		ActiveInstances: 2,
	}
	for _, m := range mutate {
		m(course)
	}
	require.NoError(t, e.courseRepo.Create(context.Background(), course))
	return course
}

func (e *testEnv) seedStudents(t *testing.T, course *model.Course, ids ...string) {
	t.Helper()
	ctx := context.Background()
	for _, id := range ids {
		user, err := e.userRepo.GetByID(ctx, id)
		require.NoError(t, err)
		if user == nil {
			require.NoError(t, e.userRepo.Create(ctx, &model.User{
				UserId:   id,
				Username: id,
				Password: "x",
				Email:    id + "@example.com",
				Role:     model.RoleStudent,
			}))
		}
		require.NoError(t, e.courseRepo.Enroll(ctx, &model.Enrollment{CourseId: course.Id, StudentId: id}))
	}
}

func (e *testEnv) propose(t *testing.T, course *model.Course, name string, memberIds ...string) *v1.TeamData {
	t.Helper()
	data, err := e.team.ProposeTeam(context.Background(), &v1.ProposeTeamRequest{
		CourseId:  course.Id,
		Name:      name,
		MemberIds: memberIds,
	})
	require.NoError(t, err)
	return data
}

func (e *testEnv) confirmAll(t *testing.T, teamId int64) {
	t.Helper()
	ctx := context.Background()
	tokens, err := e.tokenRepo.ListByTeamID(ctx, teamId)
	require.NoError(t, err)
	for _, token := range tokens {
		resolved, err := e.team.ResolveConfirmToken(ctx, token.Id)
		require.NoError(t, err)
		require.True(t, resolved)
	}
}

func (e *testEnv) activeTeam(t *testing.T, course *model.Course, name string, memberIds ...string) int64 {
	t.Helper()
	data := e.propose(t, course, name, memberIds...)
	e.confirmAll(t, data.Id)
	return data.Id
}

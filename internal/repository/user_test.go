package repository

import (
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"teamlab/internal/model"
	"teamlab/pkg/log"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	conf := viper.New()
	conf.Set("log.log_level", "error")
	conf.Set("log.log_file_name", filepath.Join(t.TempDir(), "test.log"))
	return NewRepository(log.NewLog(conf), db), mock
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)
	userRepo := NewUserRepository(repo)

	rows := sqlmock.NewRows([]string{"id", "user_id", "username", "email", "role"}).
		AddRow(1, "s1", "alice", "alice@example.com", "student")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE user_id = ?")).
		WillReturnRows(rows)

	user, err := userRepo.GetByID(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, model.RoleStudent, user.Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)
	userRepo := NewUserRepository(repo)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `user` WHERE user_id = ?")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id"}))

	// a missing row is (nil, nil), not an error
	user, err := userRepo.GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	userRepo := NewUserRepository(repo)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `user`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := userRepo.Create(context.Background(), &model.User{
		UserId:   "s1",
		Username: "alice",
		Password: "hash",
		Email:    "alice@example.com",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

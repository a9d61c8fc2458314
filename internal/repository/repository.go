package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/spf13/viper"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"teamlab/internal/model"
	"teamlab/pkg/log"
)

const ctxTxKey = "TxKey"

type Repository struct {
	db     *gorm.DB
	logger *log.Logger
}

func NewRepository(
	logger *log.Logger,
	db *gorm.DB,
) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type Transaction interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

func NewTransaction(r *Repository) Transaction {
	return r
}

// DB returns the tx bound to ctx if one is open, otherwise the root handle.
func (r *Repository) DB(ctx context.Context) *gorm.DB {
	v := ctx.Value(ctxTxKey)
	if v != nil {
		if tx, ok := v.(*gorm.DB); ok {
			return tx
		}
	}
	return r.db.WithContext(ctx)
}

func (r *Repository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ctx = context.WithValue(ctx, ctxTxKey, tx)
		return fn(ctx)
	})
}

func NewDB(conf *viper.Viper, l *log.Logger) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	logger := zapGormLogger{l}
	driver := conf.GetString("data.db.user.driver")
	dsn := conf.GetString("data.db.user.dsn")

	switch driver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: logger})
	case "postgres":
		db, err = gorm.Open(postgres.New(postgres.Config{DSN: dsn, PreferSimpleProtocol: true}), &gorm.Config{Logger: logger})
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger})
	default:
		panic("unknown db driver: " + driver)
	}
	if err != nil {
		panic(err)
	}
	db = db.Debug()

	if err = db.AutoMigrate(
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
	); err != nil {
		panic(err)
	}

	return db
}

type zapGormLogger struct {
	l *log.Logger
}

func (z zapGormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface { return z }
func (z zapGormLogger) Info(ctx context.Context, s string, args ...interface{}) {
	z.l.WithContext(ctx).Sugar().Infof(s, args...)
}
func (z zapGormLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	z.l.WithContext(ctx).Sugar().Warnf(s, args...)
}
func (z zapGormLogger) Error(ctx context.Context, s string, args ...interface{}) {
	z.l.WithContext(ctx).Sugar().Errorf(s, args...)
}
func (z zapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && err != gorm.ErrRecordNotFound {
		sql, rows := fc()
		z.l.WithContext(ctx).Sugar().Errorf("sql error: %v, sql: %s, rows: %d, cost: %s", err, sql, rows, fmt.Sprint(time.Since(begin)))
	}
}

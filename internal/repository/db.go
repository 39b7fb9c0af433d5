package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"
	_ "github.com/lib/pq"
	"github.com/user/movie-api/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接池
func InitDB(cfg *config.Config, log hclog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		sqlDB, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("无法连接数据库: %w", err)
		}
		dialector = postgres.New(postgres.Config{Conn: sqlDB})
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: NewGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("数据库初始化失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取连接池失败: %w", err)
	}

	// 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库 ping 失败: %w", err)
	}

	// 设置连接池，超出上限的请求排队等待空闲连接
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxConnections)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	log.Info("数据库已连接", "driver", cfg.DBDriver, "max_connections", cfg.MaxConnections)
	return db, nil
}

// gormLogger 把 gorm 日志按级别转发给 hclog
type gormLogger struct {
	log            hclog.Logger
	level          gormlogger.LogLevel
	slowThreshold  time.Duration
	ignoreNotFound bool
}

// NewGormLogger 让 gorm 的日志走进程统一的 logger
func NewGormLogger(log hclog.Logger) gormlogger.Interface {
	return &gormLogger{
		log:            log.Named("gorm"),
		level:          gormlogger.Warn,
		slowThreshold:  200 * time.Millisecond,
		ignoreNotFound: true,
	}
}

func (l *gormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace 失败的语句记 Error，慢查询记 Warn，其余只在 Info 模式下记 Debug
func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !(l.ignoreNotFound && errors.Is(err, gorm.ErrRecordNotFound)):
		stmt, rows := fc()
		l.log.Error("query failed", "error", err, "elapsed", elapsed, "rows", rows, "sql", stmt)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		stmt, rows := fc()
		l.log.Warn("slow query", "threshold", l.slowThreshold, "elapsed", elapsed, "rows", rows, "sql", stmt)
	case l.level >= gormlogger.Info:
		stmt, rows := fc()
		l.log.Debug("query", "elapsed", elapsed, "rows", rows, "sql", stmt)
	}
}

// Repositories 仓库集合
type Repositories struct {
	DB    *gorm.DB
	Movie MovieStore
}

// NewRepositories 按驱动创建仓库集合
func NewRepositories(db *gorm.DB, driver string) *Repositories {
	var store MovieStore
	if driver == config.DriverSQLite {
		store = NewSQLiteMovieStore(db)
	} else {
		store = NewMovieRepository(db)
	}
	return &Repositories{
		DB:    db,
		Movie: store,
	}
}

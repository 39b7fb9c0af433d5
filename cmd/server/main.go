package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/user/movie-api/internal/config"
	"github.com/user/movie-api/internal/handler"
	"github.com/user/movie-api/internal/middleware"
	"github.com/user/movie-api/internal/repository"
	"github.com/user/movie-api/internal/router"
	"github.com/user/movie-api/internal/utils"
	"golang.org/x/sync/errgroup"
)

func main() {
	// 加载环境变量
	envErr := godotenv.Load()

	// 加载配置
	cfg := config.Load()
	log := utils.NewLogger(cfg)
	if envErr != nil {
		log.Info("未找到 .env 文件，使用系统环境变量")
	}

	if err := run(cfg, log); err != nil {
		log.Error("服务器异常退出", "error", err)
		os.Exit(1)
	}
	log.Info("服务器已退出")
}

func run(cfg *config.Config, log hclog.Logger) error {
	// 初始化数据库
	db, err := repository.InitDB(cfg, log)
	if err != nil {
		return fmt.Errorf("数据库连接失败: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	// 初始化仓库
	repos := repository.NewRepositories(db, cfg.DBDriver)

	// 初始化 Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 注册路由
	router.RegisterRoutes(r, handler.NewHandler(repos, log))

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 等待中断信号以优雅地关闭服务器
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("服务器启动", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("正在关闭服务器...")

		// 5 秒超时上下文用于关闭过程
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

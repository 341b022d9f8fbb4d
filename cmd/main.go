package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"brandpulse/internal/config"
	"brandpulse/internal/router"
	"brandpulse/pkg/logger"
)

var (
	// cfgFile 可选的配置文件，环境变量优先
	cfgFile string
	// port 覆盖 PORT 和默认端口
	port string

	rootCmd = &cobra.Command{
		Use:   "brandpulse",
		Short: "营销活动助手的上游代理服务",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml/json/toml), environment variables take precedence")

	serveCmd := &cobra.Command{
		Use:       "serve <" + strings.Join(config.Services(), "|") + ">",
		Short:     "启动一个代理进程",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: config.Services(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), args[0])
		},
	}
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default depends on the service)")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func serve(ctx context.Context, service string) error {
	// 1. 读取配置
	cfg, err := config.Load(service, cfgFile)
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	// 2. 日志
	log, err := logger.New(logger.Config{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)
	log = log.With(zap.String("service", service))

	// 3. 初始化依赖
	deps, err := initDependencies(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer deps.Close()

	// 4. 启动后台任务
	if err := deps.Tasks.Start(); err != nil {
		return fmt.Errorf("failed to start tasks: %w", err)
	}
	defer deps.Tasks.Stop()

	// 5. 初始化路由
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := router.New(log, router.Options{CORSOrigins: cfg.CORSOrigins, Metrics: true})
	router.InitRoutes(r, deps.Controllers)

	// 6. 启动服务
	return startServer(r, cfg.Port, log)
}

func startServer(r *gin.Engine, port string, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	// 异步启动服务
	go func() {
		log.Info("服务启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	log.Info("正在关闭服务...")

	// 优雅关闭，最多等待 30 秒，进行中的上游调用在这段时间内完成
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("服务已退出")
	return nil
}

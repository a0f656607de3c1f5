package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gamevault/gamevault-backend/api"
	"github.com/gamevault/gamevault-backend/internal/ai"
	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/gamevault/gamevault-backend/internal/importer"
	"github.com/gamevault/gamevault-backend/internal/importer/steam"
	"github.com/gamevault/gamevault-backend/internal/platform/backup"
	"github.com/gamevault/gamevault-backend/internal/platform/config"
	"github.com/gamevault/gamevault-backend/internal/platform/database"
	"github.com/gamevault/gamevault-backend/internal/platform/health"
	"github.com/gamevault/gamevault-backend/internal/platform/shutdown"
	"github.com/gamevault/gamevault-backend/internal/platform/startup"
	"github.com/gamevault/gamevault-backend/internal/settings"
	"github.com/gamevault/gamevault-backend/pkg/lifecycle"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env 缺失时静默跳过，环境变量只是配置文件之外的补充来源
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("配置加载失败: %v", err))
	}

	database.InitDB(cfg.Database.Sqlite.Path)
	if cfg.Cache.Enabled {
		database.InitRedis(cfg.Cache)
	}

	// 执行应用首次启动初始化流程
	boot, err := startup.InitializeApplication(database.DB)
	if err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 创建两阶段生命周期管理器
	gracefulMgr := lifecycle.NewManager()
	forcefulMgr := lifecycle.NewManager()

	// 异步启动后台的持续健康检查器
	if cfg.Cache.Enabled {
		healthHandle, err := forcefulMgr.NewServiceHandle("redis-health-checker")
		if err != nil {
			panic(fmt.Sprintf("无法注册健康检查服务: %v", err))
		}
		go health.StartRedisHealthCheck(healthHandle)
	}

	// 异步启动定时备份
	backupHandle, err := gracefulMgr.NewServiceHandle("library-backup")
	if err != nil {
		panic(fmt.Sprintf("无法注册备份服务: %v", err))
	}
	interval := time.Duration(cfg.Backup.IntervalMinutes) * time.Minute
	go backup.StartBackupScheduler(backupHandle, boot.Store, database.DB, interval)

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handlers := assembleHandlers(boot)
	api.SetupRoutes(r, handlers)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	coordinator := shutdown.NewCoordinator(gracefulMgr, forcefulMgr)
	coordinator.ListenForSignalsAndShutdown(server, boot.Store, database.DB)
}

// assembleHandlers 按引用装配各模块的依赖
func assembleHandlers(boot *startup.Bootstrap) *api.Handlers {
	steamClient := steam.NewClient(boot.Settings)
	aiService := ai.NewService(boot.Settings)

	return &api.Handlers{
		Game:     game.NewHandler(boot.Store),
		Importer: importer.NewHandler(boot.Store, steamClient),
		AI:       ai.NewHandler(aiService),
		Settings: settings.NewHandler(boot.Settings),
	}
}

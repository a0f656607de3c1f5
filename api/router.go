package api

import (
	"github.com/gamevault/gamevault-backend/internal/ai"
	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/gamevault/gamevault-backend/internal/importer"
	"github.com/gamevault/gamevault-backend/internal/settings"
	"github.com/gin-gonic/gin"
)

// Handlers 汇集各模块的HTTP处理器，由main在启动时装配。
type Handlers struct {
	Game     *game.Handler
	Importer *importer.Handler
	AI       *ai.Handler
	Settings *settings.Handler
}

// SetupRoutes 注册项目的所有API路由
func SetupRoutes(router *gin.Engine, h *Handlers) {
	api := router.Group("/api")
	{
		// 游戏库相关的路由组
		games := api.Group("/games")
		{
			games.GET("", h.Game.ListGames)
			games.POST("", h.Game.CreateGame)
			games.GET("/export", h.Game.ExportLibrary)
			games.GET("/:id", h.Game.GetGameByID)
			games.PUT("/:id", h.Game.UpdateGame)
			games.DELETE("/:id", h.Game.DeleteGame)
		}

		// 时间线与统计
		api.GET("/timeline", h.Game.GetTimeline)
		api.GET("/stats", h.Game.GetStats)
		api.GET("/stats/review", h.Game.GetYearReview)

		// 导入相关的路由
		importRoutes := api.Group("/import")
		{
			importRoutes.POST("/steam", h.Importer.ImportSteam)
			importRoutes.POST("/manual", h.Importer.ImportManual)
		}

		// AI相关的路由
		aiRoutes := api.Group("/ai")
		{
			aiRoutes.POST("/metadata", h.AI.FetchMetadata)
			aiRoutes.POST("/cover", h.AI.GenerateCover)
		}

		// 设置
		api.GET("/settings", h.Settings.GetSettings)
		api.PUT("/settings", h.Settings.UpdateSettings)
	}
}

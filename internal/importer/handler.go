package importer

import (
	"errors"
	"net/http"

	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/gamevault/gamevault-backend/internal/importer/steam"
	"github.com/gin-gonic/gin"
)

// Handler 持有导入流程所需的依赖
type Handler struct {
	store  *game.Store
	client *steam.Client
}

// NewHandler 创建importer模块的API处理器
func NewHandler(store *game.Store, client *steam.Client) *Handler {
	return &Handler{store: store, client: client}
}

// SteamImportRequestBody 定义了Steam导入请求体的JSON结构
type SteamImportRequestBody struct {
	// Input 是SteamID64（17位数字）或个性化后缀
	Input string `json:"input" binding:"required"`
	// EnrichGenres 开启后会抓取商店页补充类型标签（较慢）
	EnrichGenres bool `json:"enrichGenres"`
}

// ImportSteam 处理 POST /api/import/steam
// 解析ID → 拉取游戏库 → 归一化 → 追加入库。
// 三类失败给出可区分的用户提示，全部回到可重试状态，不做自动重试。
func (h *Handler) ImportSteam(c *gin.Context) {
	var body SteamImportRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	steamID := h.client.ResolveVanityURL(ctx, body.Input)

	owned, err := h.client.GetOwnedGames(ctx, steamID)
	if err != nil {
		switch {
		case errors.Is(err, steam.ErrProfilePrivate):
			c.JSON(http.StatusForbidden, gin.H{"error": "无法获取游戏列表，请确认您的 Steam 个人资料和游戏详情已设置为“公开”。"})
		case errors.Is(err, steam.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Steam 返回了异常数据。请稍后重试，或在设置中更换代理。"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "连接失败：无法访问 Steam API。请检查网络或代理设置。"})
		}
		return
	}

	// 可选的类型标签补充：只抓取时长靠前的少量条目，失败直接跳过
	genresByApp := make(map[int][]string)
	if body.EnrichGenres {
		played := PlayedGamesDesc(owned)
		for i, g := range played {
			if i >= steam.MaxGenreLookups {
				break
			}
			if genres := h.client.FetchStoreGenres(ctx, g.AppID); len(genres) > 0 {
				genresByApp[g.AppID] = genres
			}
		}
	}

	normalized := Normalize(PartialsFromSteam(owned, genresByApp), "PC (Steam)", "从 Steam 导入")
	h.store.AddBatch(normalized)

	c.JSON(http.StatusOK, gin.H{
		"imported": len(normalized),
		"games":    normalized,
	})
}

// ManualImportRequestBody 定义了手动批量导入请求体的JSON结构
type ManualImportRequestBody struct {
	// Text 每行一条记录："标题, 时长"，时长可省略
	Text string `json:"text" binding:"required"`
	// Platform 是这批记录的默认平台
	Platform string `json:"platform"`
}

// ImportManual 处理 POST /api/import/manual
func (h *Handler) ImportManual(c *gin.Context) {
	var body ManualImportRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	partials := ParseManualList(body.Text)
	if len(partials) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "没有解析到任何游戏，请检查输入格式。"})
		return
	}

	normalized := Normalize(partials, body.Platform, "手动批量导入")
	h.store.AddBatch(normalized)

	c.JSON(http.StatusOK, gin.H{
		"imported": len(normalized),
		"games":    normalized,
	})
}

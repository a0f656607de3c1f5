package game

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler 持有game模块全部API所需的依赖
type Handler struct {
	store *Store
}

// NewHandler 创建game模块的API处理器
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// GameRequestBody 定义了创建/编辑游戏记录时请求体的JSON结构。
// 评分和时长不做范围截断，只校验标题必填。
type GameRequestBody struct {
	Title        string   `json:"title" binding:"required"`
	Platform     string   `json:"platform"`
	Status       string   `json:"status"`
	Rating       float64  `json:"rating"`
	HoursPlayed  float64  `json:"hoursPlayed"`
	Genres       []string `json:"genres"`
	ReleaseYear  string   `json:"releaseYear"`
	CoverURL     string   `json:"coverUrl"`
	LastPlayedAt string   `json:"lastPlayedAt"`
	Notes        string   `json:"notes"`
}

// toGame 把请求体转换为内部记录（不含ID/AddedAt，由Store分配或保留）
func (b *GameRequestBody) toGame() (Game, error) {
	status := b.Status
	if status == "" {
		status = string(StatusBacklog)
	}
	if !IsValidStatus(status) {
		return Game{}, fmt.Errorf("无效的游玩状态: %s", b.Status)
	}
	genres := b.Genres
	if genres == nil {
		genres = []string{}
	}
	return Game{
		Title:        b.Title,
		Platform:     b.Platform,
		Status:       PlayStatus(status),
		Rating:       b.Rating,
		HoursPlayed:  b.HoursPlayed,
		Genres:       genres,
		ReleaseYear:  b.ReleaseYear,
		CoverURL:     b.CoverURL,
		LastPlayedAt: b.LastPlayedAt,
		Notes:        b.Notes,
	}, nil
}

// ListGames 处理 GET /api/games
// 过滤和排序都在当前快照上完成，查询参数与前端控件一一对应
func (h *Handler) ListGames(c *gin.Context) {
	opts := FilterOptions{
		Status:   c.Query("status"),
		Platform: c.Query("platform"),
		Genre:    c.Query("genre"),
		Query:    c.Query("q"),
	}

	sortBy := c.DefaultQuery("sortBy", string(SortByAdded))
	if !IsValidSortKey(sortBy) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的排序字段: " + sortBy})
		return
	}
	order := c.DefaultQuery("order", string(SortDesc))
	if order != string(SortAsc) && order != string(SortDesc) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的排序方向: " + order})
		return
	}

	games := Sort(Filter(h.store.Snapshot(), opts), SortKey(sortBy), SortDirection(order))
	c.JSON(http.StatusOK, gin.H{
		"total": len(games),
		"games": games,
	})
}

// GetGameByID 处理 GET /api/games/:id
func (h *Handler) GetGameByID(c *gin.Context) {
	g, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "找不到该游戏记录"})
		return
	}
	c.JSON(http.StatusOK, g)
}

// CreateGame 处理 POST /api/games
func (h *Handler) CreateGame(c *gin.Context) {
	var body GameRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		// 空标题等校验失败：拒绝提交即可，不需要更多动作
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	input, err := body.toGame()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created := h.store.Create(input)
	c.JSON(http.StatusCreated, created)
}

// UpdateGame 处理 PUT /api/games/:id
func (h *Handler) UpdateGame(c *gin.Context) {
	var body GameRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	input, err := body.toGame()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.store.Update(c.Param("id"), input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteGame 处理 DELETE /api/games/:id
// 删除确认在前端完成，后端收到请求即视为已确认
func (h *Handler) DeleteGame(c *gin.Context) {
	if err := h.store.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// YearGroupResponse 是时间线API中一个年份分组的结构
type YearGroupResponse struct {
	Year  int    `json:"year"`
	Games []Game `json:"games"`
}

// GetTimeline 处理 GET /api/timeline
func (h *Handler) GetTimeline(c *gin.Context) {
	groups := GroupByYear(h.store.Snapshot())

	result := make([]YearGroupResponse, 0, len(groups))
	for _, year := range SortedYears(groups) {
		result = append(result, YearGroupResponse{Year: year, Games: groups[year]})
	}
	c.JSON(http.StatusOK, gin.H{"timeline": result})
}

// GetStats 处理 GET /api/stats
func (h *Handler) GetStats(c *gin.Context) {
	snapshot := h.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"stats":          ComputeStats(snapshot),
		"availableYears": AvailableYears(snapshot),
	})
}

// GetYearReview 处理 GET /api/stats/review?year=2024
// 未指定年份时取最近有收录的年份，收藏为空时取当前年份
func (h *Handler) GetYearReview(c *gin.Context) {
	snapshot := h.store.Snapshot()

	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的年份: " + raw})
			return
		}
		year = parsed
	} else if years := AvailableYears(snapshot); len(years) > 0 {
		year = years[0]
	} else {
		year = time.Now().Year()
	}

	c.JSON(http.StatusOK, ComputeYearReview(snapshot, year))
}

// ExportLibrary 处理 GET /api/games/export，以xlsx附件返回整个收藏
func (h *Handler) ExportLibrary(c *gin.Context) {
	f, err := BuildLibraryExcel(h.store.Snapshot())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}

	filename := fmt.Sprintf("gamevault_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		fmt.Printf("写出Excel文件失败: %v\n", err)
	}
}

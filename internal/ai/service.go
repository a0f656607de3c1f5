package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gamevault/gamevault-backend/internal/platform/database"
	"github.com/gamevault/gamevault-backend/internal/settings"
	"google.golang.org/genai"
)

const (
	metadataModel = "gemini-2.5-flash"
	coverModel    = "gemini-2.5-flash-image"

	metadataCacheTTL = 7 * 24 * time.Hour
)

// ErrNoAPIKey 表示尚未配置AI服务的API密钥
var ErrNoAPIKey = errors.New("ai: 未配置API密钥")

// GameMetadata 是元数据检索返回的结构化结果
type GameMetadata struct {
	Title       string   `json:"title"`
	ReleaseYear string   `json:"releaseYear"`
	Genres      []string `json:"genres"`
	Platforms   []string `json:"platforms"`
	Description string   `json:"description"`
}

// Service 封装对Gemini元数据/封面生成服务的访问。
// 两类调用都是一次性的：不重试，不使用流式接口。
type Service struct {
	settings *settings.Service
}

// NewService 创建AI服务客户端
func NewService(settingsService *settings.Service) *Service {
	return &Service{settings: settingsService}
}

// newClient 按当前设置构造genai客户端。
// 每次调用重新构造，保证设置页里更新的密钥和地址立刻生效。
func (s *Service) newClient(ctx context.Context) (*genai.Client, error) {
	cfg := s.settings.Get()
	if cfg.AIAPIKey == "" {
		return nil, ErrNoAPIKey
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.AIAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.AIBaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.AIBaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("创建AI客户端失败: %w", err)
	}
	return client, nil
}

// metadataSchema 约束元数据响应的JSON结构
func metadataSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString, Description: "官方简体中文译名"},
			"releaseYear": {Type: genai.TypeString, Description: "首发年份 (YYYY)"},
			"genres": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "简体中文标准类型术语",
			},
			"platforms": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "登陆的主要平台 (如 PC, Switch, PS5)",
			},
			"description": {Type: genai.TypeString, Description: "精炼的中文简介"},
		},
		Required: []string{"title", "releaseYear", "genres", "platforms", "description"},
	}
}

// FetchGameMetadata 检索一款游戏的结构化元数据。
// 空响应和无法解析的响应都视为失败，而不是空成功。
func (s *Service) FetchGameMetadata(ctx context.Context, query string) (*GameMetadata, error) {
	cacheKey := "ai:metadata:" + strings.ToLower(strings.TrimSpace(query))
	if database.IsRedisHealthy() {
		if cached, err := database.RDB.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var meta GameMetadata
			if json.Unmarshal([]byte(cached), &meta) == nil {
				return &meta, nil
			}
		}
	}

	client, err := s.newClient(ctx)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(`你是一个专业的中文游戏资料库助手。请检索游戏 "%s" 的详细元数据。

请模拟从权威中文游戏网站（如豆瓣游戏、游民星空、Bangumi、Steam国区）获取数据。

要求：
1. title: 返回最通用的官方简体中文译名（如果不存在中文名，则用英文原名）。
2. releaseYear: 游戏的*首发*年份 (YYYY)。
3. genres: 2-3 个核心游戏类型，必须使用简体中文标准术语（如：动作、角色扮演、肉鸽、模拟经营）。
4. platforms: 游戏登录的所有主要平台。
5. description: 50-80字的精炼中文简介，像百科词条一样客观。`, query)

	resp, err := client.Models.GenerateContent(ctx, metadataModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   metadataSchema(),
	})
	if err != nil {
		return nil, fmt.Errorf("AI元数据请求失败: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, errors.New("AI没有返回任何数据")
	}

	// 少数情况下模型会无视mimeType包一层markdown代码块
	text = strings.TrimSpace(strings.NewReplacer("```json", "", "```", "").Replace(text))

	var meta GameMetadata
	if err := json.Unmarshal([]byte(text), &meta); err != nil {
		return nil, fmt.Errorf("AI返回的数据无法解析: %w", err)
	}
	if len(meta.Genres) > 3 {
		meta.Genres = meta.Genres[:3]
	}

	if database.IsRedisHealthy() {
		if data, err := json.Marshal(meta); err == nil {
			database.RDB.Set(ctx, cacheKey, string(data), metadataCacheTTL)
		}
	}
	return &meta, nil
}

// GenerateCover 为指定标题生成一张竖版封面图。
// 返回可直接作为coverUrl使用的data: URL。
func (s *Service) GenerateCover(ctx context.Context, title string) (string, error) {
	client, err := s.newClient(ctx)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Create a vertical, high-quality, cinematic video game cover art for the game "%s". The style should be digital art, suitable for a game box. No text overlay.`, title)

	resp, err := client.Models.GenerateContent(ctx, coverModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("AI封面生成请求失败: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(part.InlineData.Data)), nil
			}
		}
	}
	return "", errors.New("AI没有生成任何图片")
}

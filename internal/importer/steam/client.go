package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gamevault/gamevault-backend/internal/platform/database"
	"github.com/gamevault/gamevault-backend/internal/settings"
)

// DefaultBaseURL 是Steam Web API的地址
const DefaultBaseURL = "https://api.steampowered.com"

// 三类可区分的失败，handler据此给出不同的用户提示
var (
	// ErrNetwork 表示请求根本没有到达上游：代理不可达或网络失败
	ErrNetwork = errors.New("steam: 网络或代理连接失败")
	// ErrUpstream 表示上游拒绝了请求或返回了无法解析的内容
	ErrUpstream = errors.New("steam: 上游返回异常")
	// ErrProfilePrivate 表示个人资料或游戏详情未公开
	ErrProfilePrivate = errors.New("steam: 个人资料受隐私限制")
)

// steamIDPattern 匹配SteamID64：17位纯数字
var steamIDPattern = regexp.MustCompile(`^\d{17}$`)

const vanityCacheTTL = 24 * time.Hour

// Client 封装对Steam Web API的访问。
// API密钥和代理地址来自显式传入的设置服务，每次请求取当前快照。
type Client struct {
	// BaseURL 可在测试中替换为httptest服务器地址
	BaseURL  string
	settings *settings.Service
}

// NewClient 创建Steam API客户端
func NewClient(settingsService *settings.Service) *Client {
	return &Client{
		BaseURL:  DefaultBaseURL,
		settings: settingsService,
	}
}

// httpClient 按当前设置构造HTTP客户端。
// 开启代理时通过标准的HTTP代理转发请求。
func (c *Client) httpClient(cfg settings.Settings) *http.Client {
	client := &http.Client{Timeout: 30 * time.Second}
	if cfg.UseProxy && cfg.ProxyURL != "" {
		if proxyURL, err := url.Parse(cfg.ProxyURL); err == nil {
			client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}
	return client
}

// vanityResponse 对应 ResolveVanityURL 接口的响应结构
type vanityResponse struct {
	Response struct {
		Success int    `json:"success"`
		SteamID string `json:"steamid"`
	} `json:"response"`
}

// ResolveVanityURL 把个性化后缀解析为SteamID64。
// 输入本身已是17位数字时直接返回；解析失败时原样返回输入，
// 让后续的拉取请求自己暴露问题。
func (c *Client) ResolveVanityURL(ctx context.Context, input string) string {
	input = strings.TrimSpace(input)
	if steamIDPattern.MatchString(input) {
		return input
	}

	cacheKey := "steam:vanity:" + input
	if database.IsRedisHealthy() {
		if cached, err := database.RDB.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return cached
		}
	}

	cfg := c.settings.Get()
	reqURL := fmt.Sprintf("%s/ISteamUser/ResolveVanityURL/v0001/?key=%s&vanityurl=%s",
		c.BaseURL, url.QueryEscape(cfg.SteamAPIKey), url.QueryEscape(input))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return input
	}
	resp, err := c.httpClient(cfg).Do(req)
	if err != nil {
		fmt.Printf("解析Steam ID失败: %v\n", err)
		return input
	}
	defer resp.Body.Close()

	var body vanityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return input
	}
	if body.Response.Success != 1 || body.Response.SteamID == "" {
		return input
	}

	if database.IsRedisHealthy() {
		database.RDB.Set(ctx, cacheKey, body.Response.SteamID, vanityCacheTTL)
	}
	return body.Response.SteamID
}

// OwnedGame 是GetOwnedGames接口返回的单条游戏数据
type OwnedGame struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"` // 累计游玩分钟数
	RtimeLastPlayed int64  `json:"rtime_last_played"`
}

// ownedGamesResponse 对应 GetOwnedGames 接口的响应结构。
// games字段用指针区分"空列表"和"字段缺失"：后者意味着隐私限制。
type ownedGamesResponse struct {
	Response struct {
		GameCount int          `json:"game_count"`
		Games     *[]OwnedGame `json:"games"`
	} `json:"response"`
}

// GetOwnedGames 拉取指定SteamID名下的全部游戏及游玩时长。
// 三类失败通过errors.Is区分：网络/代理失败、上游异常、隐私限制。
func (c *Client) GetOwnedGames(ctx context.Context, steamID string) ([]OwnedGame, error) {
	cfg := c.settings.Get()
	reqURL := fmt.Sprintf("%s/IPlayerService/GetOwnedGames/v0001/?key=%s&steamid=%s&format=json&include_appinfo=1&include_played_free_games=1",
		c.BaseURL, url.QueryEscape(cfg.SteamAPIKey), url.QueryEscape(steamID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	resp, err := c.httpClient(cfg).Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	// 代理出错时常常返回HTML页面而不是JSON
	contentType := resp.Header.Get("Content-Type")
	if resp.StatusCode != http.StatusOK || (contentType != "" && !strings.Contains(contentType, "application/json")) {
		return nil, fmt.Errorf("%w: 状态码 %d, Content-Type %q", ErrUpstream, resp.StatusCode, contentType)
	}

	var body ownedGamesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: 响应不是合法的JSON: %v", ErrUpstream, err)
	}

	if body.Response.Games == nil {
		return nil, ErrProfilePrivate
	}
	return *body.Response.Games, nil
}

// CoverURLForApp 根据应用ID确定性地合成库封面图地址
func CoverURLForApp(appID int) string {
	return fmt.Sprintf("https://steamcdn-a.akamaihd.net/steam/apps/%d/library_600x900.jpg", appID)
}

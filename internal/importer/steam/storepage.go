package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gamevault/gamevault-backend/internal/platform/database"
)

const (
	storeBaseURL  = "https://store.steampowered.com"
	genreCacheTTL = 7 * 24 * time.Hour
	// MaxGenreLookups 限制单次导入中抓取商店页的次数
	MaxGenreLookups = 10
)

// FetchStoreGenres 抓取商店页面，提取一款游戏的类型标签。
// GetOwnedGames接口不返回类型信息，这里作为导入时的可选补充；
// 任何失败都返回空列表，不影响导入流程。
func (c *Client) FetchStoreGenres(ctx context.Context, appID int) []string {
	cacheKey := fmt.Sprintf("steam:genres:%d", appID)
	if database.IsRedisHealthy() {
		if cached, err := database.RDB.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var genres []string
			if json.Unmarshal([]byte(cached), &genres) == nil {
				return genres
			}
		}
	}

	reqURL := fmt.Sprintf("%s/app/%d/", storeBaseURL, appID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil
	}
	// 跳过年龄验证页，直接取到商品详情
	req.AddCookie(&http.Cookie{Name: "birthtime", Value: "568022401"})
	req.Header.Set("Accept-Language", "zh-CN,zh;q=0.9")

	resp, err := c.httpClient(c.settings.Get()).Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil
	}

	var genres []string
	seen := make(map[string]bool)
	doc.Find("div.details_block a[href*='/genre/']").Each(func(_ int, sel *goquery.Selection) {
		genre := strings.TrimSpace(sel.Text())
		if genre != "" && !seen[genre] {
			seen[genre] = true
			genres = append(genres, genre)
		}
	})

	if len(genres) > 0 && database.IsRedisHealthy() {
		if data, err := json.Marshal(genres); err == nil {
			database.RDB.Set(ctx, cacheKey, string(data), genreCacheTTL)
		}
	}
	return genres
}

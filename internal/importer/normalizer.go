package importer

import (
	"time"

	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/google/uuid"
)

// PartialGame 是外部来源（平台API、手动批量粘贴）给出的不完整记录。
// 零值字段视为缺失，由Normalize填充默认值。
type PartialGame struct {
	Title        string
	Platform     string
	Status       game.PlayStatus
	Rating       float64
	HoursPlayed  float64
	Genres       []string
	ReleaseYear  string
	CoverURL     string
	AddedAt      string
	LastPlayedAt string
	Notes        string
}

// Normalize 把一批不完整记录归一化为可入库的完整记录。
// 对任何输入都是全函数：输出与输入等长，每条记录分配唯一ID，
// 所有必填字段都有文档化的默认值；lastPlayedAt原样透传。
// 不做标题去重：重复导入同一款游戏是允许的。
func Normalize(partials []PartialGame, defaultPlatform, provenance string) []game.Game {
	if defaultPlatform == "" {
		defaultPlatform = "Other"
	}
	now := time.Now().Format(time.RFC3339)

	result := make([]game.Game, len(partials))
	for i, p := range partials {
		g := game.Game{
			ID:           uuid.NewString(),
			Title:        p.Title,
			Platform:     p.Platform,
			Status:       p.Status,
			Rating:       p.Rating,
			HoursPlayed:  p.HoursPlayed,
			Genres:       p.Genres,
			ReleaseYear:  p.ReleaseYear,
			CoverURL:     p.CoverURL,
			AddedAt:      p.AddedAt,
			LastPlayedAt: p.LastPlayedAt,
			Notes:        p.Notes,
		}

		if g.Title == "" {
			g.Title = "Unknown"
		}
		if g.Platform == "" {
			g.Platform = defaultPlatform
		}
		if g.Status == "" {
			g.Status = game.StatusBacklog
		}
		if g.Genres == nil {
			g.Genres = []string{}
		}
		if g.AddedAt == "" {
			g.AddedAt = now
		}
		if g.Notes == "" {
			g.Notes = provenance
		}

		result[i] = g
	}
	return result
}

package importer

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/gamevault/gamevault-backend/internal/importer/steam"
)

// PlayedGamesDesc 去掉零游玩时长的条目，按累计时长从高到低排列。
// 纯函数，返回新切片。
func PlayedGamesDesc(owned []steam.OwnedGame) []steam.OwnedGame {
	played := make([]steam.OwnedGame, 0, len(owned))
	for _, g := range owned {
		if g.PlaytimeForever > 0 {
			played = append(played, g)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].PlaytimeForever > played[j].PlaytimeForever
	})
	return played
}

// PartialsFromSteam 把Steam游戏列表转换为待归一化的记录：
// 分钟转小时并保留一位小数，超过10小时视为"进行中"否则"待玩"，
// 封面地址由应用ID确定性合成，最后游玩时间原样透传。
func PartialsFromSteam(owned []steam.OwnedGame, genresByApp map[int][]string) []PartialGame {
	played := PlayedGamesDesc(owned)

	partials := make([]PartialGame, len(played))
	for i, g := range played {
		status := game.StatusBacklog
		if g.PlaytimeForever > 600 {
			status = game.StatusPlaying
		}

		lastPlayed := ""
		if g.RtimeLastPlayed > 0 {
			lastPlayed = time.Unix(g.RtimeLastPlayed, 0).Format(time.RFC3339)
		}

		partials[i] = PartialGame{
			Title:        g.Name,
			HoursPlayed:  math.Round(float64(g.PlaytimeForever)/60*10) / 10,
			Platform:     "PC (Steam)",
			Status:       status,
			Genres:       genresByApp[g.AppID],
			CoverURL:     steam.CoverURLForApp(g.AppID),
			LastPlayedAt: lastPlayed,
			Notes:        fmt.Sprintf("Steam AppID: %d", g.AppID),
		}
	}
	return partials
}

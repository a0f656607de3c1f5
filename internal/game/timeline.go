package game

import (
	"sort"
	"time"
)

// TimelineDate 返回一条记录在时间线上使用的日期：
// 优先取实际最后游玩时间，缺失时退回到收录时间。
// 两者都无法解析时返回false，该记录不进入任何年份分组。
func TimelineDate(g Game) (time.Time, bool) {
	if t, ok := ParseTime(g.LastPlayedAt); ok {
		return t, true
	}
	return ParseTime(g.AddedAt)
}

// GroupByYear 把记录按时间线日期的本地日历年份分组。
// 每个年份内的记录按日期从新到旧排列；日期无法解析的记录被排除。
func GroupByYear(games []Game) map[int][]Game {
	type dated struct {
		game Game
		at   time.Time
	}

	var items []dated
	for _, g := range games {
		if t, ok := TimelineDate(g); ok {
			items = append(items, dated{game: g, at: t})
		}
	}

	// 先整体按日期降序，再切分进各年份，分组内顺序随之成立
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].at.After(items[j].at)
	})

	groups := make(map[int][]Game)
	for _, item := range items {
		year := item.at.Year()
		groups[year] = append(groups[year], item.game)
	}
	return groups
}

// SortedYears 返回分组中出现的年份，按降序排列。
func SortedYears(groups map[int][]Game) []int {
	years := make([]int, 0, len(groups))
	for y := range groups {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

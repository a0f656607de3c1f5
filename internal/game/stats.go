package game

import (
	"math"
	"sort"
	"strings"
)

// NameValue 是分布统计中的一个条目
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Stats 是整体统计概览
type Stats struct {
	TotalGames           int         `json:"totalGames"`
	CompletedGames       int         `json:"completedGames"`
	BacklogGames         int         `json:"backlogGames"`
	TotalHours           float64     `json:"totalHours"`
	PlatformDistribution []NameValue `json:"platformDistribution"`
	StatusDistribution   []NameValue `json:"statusDistribution"`
}

// YearReview 是按年份的回顾统计
type YearReview struct {
	Year           int     `json:"year"`
	AddedCount     int     `json:"addedCount"`
	CompletedCount int     `json:"completedCount"`
	CompletionRate int     `json:"completionRate"` // 整数百分比
	TopGameTitle   string  `json:"topGameTitle"`
	TopGameRating  float64 `json:"topGameRating"`
	FavoriteGenre  string  `json:"favoriteGenre"`
}

// CoarsenPlatform 把原始平台字符串归并为统计用的粗粒度键：
// 取第一个空白分隔的词，再做少量显式重映射。
func CoarsenPlatform(platform string) string {
	key := platform
	if fields := strings.Fields(platform); len(fields) > 0 {
		key = fields[0]
	}
	switch key {
	case "Nintendo":
		return "Switch/3DS"
	case "PlayStation":
		return "PS"
	case "手游":
		return "Mobile"
	}
	return key
}

// ComputeStats 在一个记录集上计算整体统计。
// 纯函数：不修改输入。分布中只包含实际出现的条目。
func ComputeStats(games []Game) Stats {
	s := Stats{
		TotalGames:           len(games),
		PlatformDistribution: []NameValue{},
		StatusDistribution:   []NameValue{},
	}

	platformCounts := make(map[string]int)
	statusCounts := make(map[string]int)
	var platformOrder, statusOrder []string

	for _, g := range games {
		switch g.Status {
		case StatusCompleted:
			s.CompletedGames++
		case StatusBacklog:
			s.BacklogGames++
		}
		s.TotalHours += g.HoursPlayed

		pKey := CoarsenPlatform(g.Platform)
		if _, seen := platformCounts[pKey]; !seen {
			platformOrder = append(platformOrder, pKey)
		}
		platformCounts[pKey]++

		label := StatusLabels[g.Status]
		if _, seen := statusCounts[label]; !seen {
			statusOrder = append(statusOrder, label)
		}
		statusCounts[label]++
	}

	for _, name := range platformOrder {
		s.PlatformDistribution = append(s.PlatformDistribution, NameValue{Name: name, Value: platformCounts[name]})
	}
	for _, name := range statusOrder {
		s.StatusDistribution = append(s.StatusDistribution, NameValue{Name: name, Value: statusCounts[name]})
	}
	return s
}

// AvailableYears 返回收录时间覆盖到的所有年份，降序排列。
func AvailableYears(games []Game) []int {
	seen := make(map[int]bool)
	var years []int
	for _, g := range games {
		if t, ok := ParseTime(g.AddedAt); ok {
			if !seen[t.Year()] {
				seen[t.Year()] = true
				years = append(years, t.Year())
			}
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// ComputeYearReview 计算指定年份的回顾统计。
// 年度最佳取该年子集中评分最高的记录，评分相同时先遇到的胜出；
// 年度偏好取出现次数最多的类型标签，并列时同样先遇到的胜出，
// 子集中完全没有类型标签时返回"none"哨兵值。
func ComputeYearReview(games []Game, year int) YearReview {
	review := YearReview{Year: year, FavoriteGenre: "none"}

	var yearGames []Game
	for _, g := range games {
		if t, ok := ParseTime(g.AddedAt); ok && t.Year() == year {
			yearGames = append(yearGames, g)
		}
	}

	review.AddedCount = len(yearGames)
	for _, g := range yearGames {
		if g.Status == StatusCompleted {
			review.CompletedCount++
		}
	}
	if review.AddedCount > 0 {
		review.CompletionRate = int(math.Round(float64(review.CompletedCount) / float64(review.AddedCount) * 100))
	}

	// 年度最佳
	first := true
	for _, g := range yearGames {
		if first || g.Rating > review.TopGameRating {
			review.TopGameTitle = g.Title
			review.TopGameRating = g.Rating
			first = false
		}
	}

	// 年度偏好类型
	genreCounts := make(map[string]int)
	bestCount := 0
	for _, g := range yearGames {
		for _, genre := range g.Genres {
			genreCounts[genre]++
			if genreCounts[genre] > bestCount {
				bestCount = genreCounts[genre]
				review.FavoriteGenre = genre
			}
		}
	}

	return review
}

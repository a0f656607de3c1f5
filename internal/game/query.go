package game

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterOptions 描述了游戏库列表的一组过滤条件。
// 空字符串或"all"表示该维度不过滤。
type FilterOptions struct {
	Status   string // 五个状态之一，或 "all"
	Platform string // 平台精确匹配，或 "all"
	Genre    string // 与任一类型标签做包含匹配，或 "all"
	Query    string // 标题/平台的不区分大小写搜索
}

// SortKey 是排序字段
type SortKey string

const (
	SortByAdded  SortKey = "added"
	SortByTitle  SortKey = "title"
	SortByRating SortKey = "rating"
	SortByHours  SortKey = "hours"
	SortByYear   SortKey = "year"
)

// SortDirection 是排序方向
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// IsValidSortKey 判断给定字符串是否是合法的排序字段
func IsValidSortKey(s string) bool {
	switch SortKey(s) {
	case SortByAdded, SortByTitle, SortByRating, SortByHours, SortByYear:
		return true
	}
	return false
}

func isActive(filter string) bool {
	return filter != "" && !strings.EqualFold(filter, "all")
}

// Filter 返回满足全部激活条件的记录子集，保持输入顺序。
// 纯函数：不修改输入，返回新切片。
func Filter(games []Game, opts FilterOptions) []Game {
	query := strings.ToLower(opts.Query)

	result := make([]Game, 0, len(games))
	for _, g := range games {
		if isActive(opts.Status) && string(g.Status) != opts.Status {
			continue
		}
		if isActive(opts.Platform) && g.Platform != opts.Platform {
			continue
		}
		if isActive(opts.Genre) && !matchesGenre(g.Genres, opts.Genre) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(g.Title), query) &&
			!strings.Contains(strings.ToLower(g.Platform), query) {
			continue
		}
		result = append(result, g)
	}
	return result
}

// matchesGenre 判断类型标签列表中是否有任一标签包含给定的过滤词
func matchesGenre(genres []string, filter string) bool {
	filter = strings.ToLower(filter)
	for _, g := range genres {
		if strings.Contains(strings.ToLower(g), filter) {
			return true
		}
	}
	return false
}

// titleCollator 按简体中文排序规则比较标题，而不是按码点顺序。
// collate.Collator不是并发安全的，每次Sort调用各自创建一个实例。
func titleCollator() *collate.Collator {
	return collate.New(language.SimplifiedChinese)
}

// Sort 对记录子集做稳定排序，返回新切片。
// 方向只翻转比较器的符号，相等元素保持输入中的相对顺序。
func Sort(games []Game, key SortKey, direction SortDirection) []Game {
	result := copyGames(games)

	var collator *collate.Collator
	if key == SortByTitle {
		collator = titleCollator()
	}

	// less 给出升序语义下 a < b 的判断
	less := func(a, b Game) bool {
		switch key {
		case SortByTitle:
			return collator.CompareString(a.Title, b.Title) < 0
		case SortByRating:
			return a.Rating < b.Rating
		case SortByHours:
			return a.HoursPlayed < b.HoursPlayed
		case SortByYear:
			// 缺失年份视为空串，升序时排在最前
			return a.ReleaseYear < b.ReleaseYear
		default: // SortByAdded
			ta, _ := ParseTime(a.AddedAt)
			tb, _ := ParseTime(b.AddedAt)
			return ta.Before(tb)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if direction == SortAsc {
			return less(result[i], result[j])
		}
		return less(result[j], result[i])
	})
	return result
}

// ToggleSort 实现排序控件的切换语义：
// 再次选中当前激活的字段时翻转方向，选中新字段时方向重置为降序。
func ToggleSort(currentKey SortKey, currentDir SortDirection, selected SortKey) (SortKey, SortDirection) {
	if selected == currentKey {
		if currentDir == SortAsc {
			return currentKey, SortDesc
		}
		return currentKey, SortAsc
	}
	return selected, SortDesc
}

package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queryFixture() []Game {
	return []Game{
		{ID: "a", Title: "Hades", Platform: "PC (Steam)", Status: StatusCompleted, Rating: 9, HoursPlayed: 80, Genres: []string{"动作", "肉鸽"}, ReleaseYear: "2020", AddedAt: "2023-01-10T00:00:00+08:00"},
		{ID: "b", Title: "塞尔达传说：旷野之息", Platform: "Nintendo Switch", Status: StatusPlaying, Rating: 10, HoursPlayed: 200, Genres: []string{"冒险", "开放世界"}, ReleaseYear: "2017", AddedAt: "2023-03-05T00:00:00+08:00"},
		{ID: "c", Title: "Stardew Valley", Platform: "PC (Steam)", Status: StatusPlaying, Rating: 9, HoursPlayed: 150, Genres: []string{"模拟", "独立游戏"}, ReleaseYear: "2016", AddedAt: "2022-11-20T00:00:00+08:00"},
		{ID: "d", Title: "最终幻想7 重制版", Platform: "PlayStation 5", Status: StatusBacklog, Rating: 0, HoursPlayed: 0, Genres: []string{"RPG"}, ReleaseYear: "2020", AddedAt: "2024-02-14T00:00:00+08:00"},
	}
}

func ids(games []Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	games := queryFixture()

	t.Run("全部条件为all时返回原序全集", func(t *testing.T) {
		got := Filter(games, FilterOptions{Status: "all", Platform: "all", Genre: "all"})
		assert.Equal(t, []string{"a", "b", "c", "d"}, ids(got))
	})

	t.Run("状态过滤", func(t *testing.T) {
		got := Filter(games, FilterOptions{Status: "Playing"})
		assert.Equal(t, []string{"b", "c"}, ids(got))
	})

	t.Run("多条件取交集", func(t *testing.T) {
		got := Filter(games, FilterOptions{Status: "Playing", Platform: "PC (Steam)"})
		assert.Equal(t, []string{"c"}, ids(got))
	})

	t.Run("类型标签做包含匹配", func(t *testing.T) {
		got := Filter(games, FilterOptions{Genre: "开放"})
		assert.Equal(t, []string{"b"}, ids(got))
	})

	t.Run("搜索词同时匹配标题和平台", func(t *testing.T) {
		assert.Equal(t, []string{"c"}, ids(Filter(games, FilterOptions{Query: "stardew"})))
		// "switch" 只出现在平台字段
		assert.Equal(t, []string{"b"}, ids(Filter(games, FilterOptions{Query: "SWITCH"})))
	})

	t.Run("搜索词支持中文子串", func(t *testing.T) {
		got := Filter(games, FilterOptions{Query: "塞尔达"})
		assert.Equal(t, []string{"b"}, ids(got))
	})

	t.Run("无命中时返回空集而不是nil崩溃", func(t *testing.T) {
		got := Filter(games, FilterOptions{Status: "Wishlist"})
		assert.Empty(t, got)
	})

	t.Run("不修改输入", func(t *testing.T) {
		before := ids(games)
		Filter(games, FilterOptions{Status: "Playing"})
		assert.Equal(t, before, ids(games))
	})

	t.Run("过滤结果是全集子集且保持原序", func(t *testing.T) {
		got := Filter(games, FilterOptions{Platform: "PC (Steam)"})
		pos := map[string]int{}
		for i, id := range ids(games) {
			pos[id] = i
		}
		prev := -1
		for _, id := range ids(got) {
			idx, ok := pos[id]
			assert.True(t, ok)
			assert.Greater(t, idx, prev)
			prev = idx
		}
	})
}

func TestSort(t *testing.T) {
	games := queryFixture()

	t.Run("按时长排序", func(t *testing.T) {
		got := Sort(games, SortByHours, SortDesc)
		assert.Equal(t, []string{"b", "c", "a", "d"}, ids(got))
	})

	t.Run("方向翻转等价于整体倒序", func(t *testing.T) {
		// 该字段没有并列值，升序应该恰好是降序的倒序
		desc := Sort(games, SortByHours, SortDesc)
		asc := Sort(games, SortByHours, SortAsc)
		for i := range desc {
			assert.Equal(t, desc[i].ID, asc[len(asc)-1-i].ID)
		}
	})

	t.Run("稳定排序保留并列元素的输入顺序", func(t *testing.T) {
		// a和c评分相同，a在输入中靠前
		got := Sort(games, SortByRating, SortAsc)
		assert.Equal(t, []string{"d", "a", "c", "b"}, ids(got))
	})

	t.Run("按收录时间排序", func(t *testing.T) {
		got := Sort(games, SortByAdded, SortDesc)
		assert.Equal(t, []string{"d", "b", "a", "c"}, ids(got))
	})

	t.Run("标题排序使用中文排序规则", func(t *testing.T) {
		got := Sort(games, SortByTitle, SortAsc)
		assert.Len(t, got, len(games))
		// 拉丁标题在中文标题之前
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "c", got[1].ID)
	})

	t.Run("缺失年份升序时排在最前", func(t *testing.T) {
		withMissing := append([]Game{{ID: "e", Title: "无年份"}}, games...)
		got := Sort(withMissing, SortByYear, SortAsc)
		assert.Equal(t, "e", got[0].ID)
	})

	t.Run("不修改输入", func(t *testing.T) {
		before := ids(games)
		Sort(games, SortByTitle, SortAsc)
		assert.Equal(t, before, ids(games))
	})
}

func TestToggleSort(t *testing.T) {
	t.Run("再次选中当前字段翻转方向", func(t *testing.T) {
		key, dir := ToggleSort(SortByRating, SortDesc, SortByRating)
		assert.Equal(t, SortByRating, key)
		assert.Equal(t, SortAsc, dir)

		key, dir = ToggleSort(SortByRating, SortAsc, SortByRating)
		assert.Equal(t, SortByRating, key)
		assert.Equal(t, SortDesc, dir)
	})

	t.Run("选中新字段时方向重置为降序", func(t *testing.T) {
		key, dir := ToggleSort(SortByRating, SortAsc, SortByHours)
		assert.Equal(t, SortByHours, key)
		assert.Equal(t, SortDesc, dir)
	})
}

func TestIsValidSortKey(t *testing.T) {
	for _, valid := range []string{"added", "title", "rating", "hours", "year"} {
		assert.True(t, IsValidSortKey(valid), valid)
	}
	assert.False(t, IsValidSortKey("price"))
	assert.False(t, IsValidSortKey(""))
}

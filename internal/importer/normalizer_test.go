package importer

import (
	"testing"

	"github.com/gamevault/gamevault-backend/internal/game"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("输出与输入等长且ID全局唯一", func(t *testing.T) {
		partials := []PartialGame{
			{Title: "A"},
			{},
			{Title: "A"}, // 重复标题不去重
			{Title: "B", Status: game.StatusCompleted},
		}
		result := Normalize(partials, "PC (Steam)", "测试导入")

		assert.Len(t, result, len(partials))
		seen := map[string]bool{}
		for _, g := range result {
			assert.NotEmpty(t, g.ID)
			assert.False(t, seen[g.ID])
			seen[g.ID] = true
		}
	})

	t.Run("缺失字段填充文档化的默认值", func(t *testing.T) {
		result := Normalize([]PartialGame{{}}, "PC (Steam)", "测试导入")
		g := result[0]

		assert.Equal(t, "Unknown", g.Title)
		assert.Equal(t, "PC (Steam)", g.Platform)
		assert.Equal(t, game.StatusBacklog, g.Status)
		assert.Equal(t, []string{}, g.Genres)
		assert.NotEmpty(t, g.AddedAt)
		assert.Equal(t, "测试导入", g.Notes)

		// 填充的收录时间必须可解析
		_, ok := game.ParseTime(g.AddedAt)
		assert.True(t, ok)
	})

	t.Run("默认平台为空时退回Other", func(t *testing.T) {
		result := Normalize([]PartialGame{{Title: "X"}}, "", "")
		assert.Equal(t, "Other", result[0].Platform)
	})

	t.Run("已有字段原样保留", func(t *testing.T) {
		partials := []PartialGame{{
			Title:        "Hades",
			Platform:     "Nintendo Switch",
			Status:       game.StatusPlaying,
			Rating:       9,
			HoursPlayed:  80,
			Genres:       []string{"肉鸽"},
			ReleaseYear:  "2020",
			AddedAt:      "2023-05-01T00:00:00Z",
			LastPlayedAt: "2024-01-01T00:00:00Z",
			Notes:        "自带备注",
		}}
		g := Normalize(partials, "PC (Steam)", "测试导入")[0]

		assert.Equal(t, "Hades", g.Title)
		assert.Equal(t, "Nintendo Switch", g.Platform)
		assert.Equal(t, game.StatusPlaying, g.Status)
		assert.Equal(t, 9.0, g.Rating)
		assert.Equal(t, 80.0, g.HoursPlayed)
		assert.Equal(t, []string{"肉鸽"}, g.Genres)
		assert.Equal(t, "2023-05-01T00:00:00Z", g.AddedAt)
		assert.Equal(t, "2024-01-01T00:00:00Z", g.LastPlayedAt)
		assert.Equal(t, "自带备注", g.Notes)
	})

	t.Run("最后游玩时间即使无法解析也原样透传", func(t *testing.T) {
		g := Normalize([]PartialGame{{Title: "X", LastPlayedAt: "not-a-date"}}, "", "")[0]
		assert.Equal(t, "not-a-date", g.LastPlayedAt)
	})

	t.Run("空输入返回空切片", func(t *testing.T) {
		assert.Empty(t, Normalize(nil, "PC (Steam)", ""))
	})
}

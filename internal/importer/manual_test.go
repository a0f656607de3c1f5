package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseManualList(t *testing.T) {
	t.Run("标题加时长与仅标题混合", func(t *testing.T) {
		result := ParseManualList("Game X, 5\nGame Y")
		assert.Len(t, result, 2)
		assert.Equal(t, "Game X", result[0].Title)
		assert.Equal(t, 5.0, result[0].HoursPlayed)
		assert.Equal(t, "Game Y", result[1].Title)
		assert.Equal(t, 0.0, result[1].HoursPlayed)
	})

	t.Run("中文全角逗号等同于英文逗号", func(t *testing.T) {
		result := ParseManualList("塞尔达传说，120.5")
		assert.Len(t, result, 1)
		assert.Equal(t, "塞尔达传说", result[0].Title)
		assert.Equal(t, 120.5, result[0].HoursPlayed)
	})

	t.Run("空行和无标题的行被跳过", func(t *testing.T) {
		result := ParseManualList("\nGame A, 1\n   \n, 10\nGame B\n")
		assert.Len(t, result, 2)
		assert.Equal(t, "Game A", result[0].Title)
		assert.Equal(t, "Game B", result[1].Title)
	})

	t.Run("时长无法解析时记为0", func(t *testing.T) {
		result := ParseManualList("Game Z, 很多")
		assert.Len(t, result, 1)
		assert.Equal(t, 0.0, result[0].HoursPlayed)
	})

	t.Run("第二段之后的内容忽略", func(t *testing.T) {
		result := ParseManualList("Game W, 12, 额外备注")
		assert.Len(t, result, 1)
		assert.Equal(t, "Game W", result[0].Title)
		assert.Equal(t, 12.0, result[0].HoursPlayed)
	})

	t.Run("纯空白输入返回空结果", func(t *testing.T) {
		assert.Empty(t, ParseManualList("   \n\n  "))
	})
}

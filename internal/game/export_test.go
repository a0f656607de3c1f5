package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLibraryExcel(t *testing.T) {
	f, err := BuildLibraryExcel(SampleLibrary())
	require.NoError(t, err)
	defer f.Close()

	sheet := "游戏收藏"

	t.Run("表头在首行", func(t *testing.T) {
		title, err := f.GetCellValue(sheet, "B1")
		require.NoError(t, err)
		assert.Equal(t, "标题", title)
		status, err := f.GetCellValue(sheet, "D1")
		require.NoError(t, err)
		assert.Equal(t, "状态", status)
	})

	t.Run("数据行与记录一一对应", func(t *testing.T) {
		rows, err := f.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, len(SampleLibrary())+1)

		// 第一条示例记录
		assert.Equal(t, "艾尔登法环 (Elden Ring)", rows[1][1])
		// 状态列输出中文标签
		assert.Equal(t, "已通关", rows[1][3])
		// 类型标签拼成一列
		assert.Equal(t, "RPG, 动作, 开放世界", rows[1][6])
	})

	t.Run("空库也能导出", func(t *testing.T) {
		empty, err := BuildLibraryExcel(nil)
		require.NoError(t, err)
		defer empty.Close()

		rows, err := empty.GetRows(sheet)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

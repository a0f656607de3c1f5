package game

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// BuildLibraryExcel 把一个记录集导出为xlsx工作簿。
func BuildLibraryExcel(games []Game) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "游戏收藏"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID",
		"标题",
		"平台",
		"状态",
		"评分",
		"游玩时长(小时)",
		"类型",
		"发行年份",
		"收录时间",
		"最后游玩",
		"备注",
	}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	// 表头加粗
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "K1", headerStyle)
	}

	for i, g := range games {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), g.ID)
		f.SetCellValue(sheetName, cell(2), g.Title)
		f.SetCellValue(sheetName, cell(3), g.Platform)
		f.SetCellValue(sheetName, cell(4), StatusLabels[g.Status])
		f.SetCellValue(sheetName, cell(5), g.Rating)
		f.SetCellValue(sheetName, cell(6), g.HoursPlayed)
		f.SetCellValue(sheetName, cell(7), strings.Join(g.Genres, ", "))
		f.SetCellValue(sheetName, cell(8), g.ReleaseYear)
		f.SetCellValue(sheetName, cell(9), g.AddedAt)
		f.SetCellValue(sheetName, cell(10), g.LastPlayedAt)
		f.SetCellValue(sheetName, cell(11), g.Notes)
	}

	if err := f.SetColWidth(sheetName, "B", "B", 36); err != nil {
		return nil, fmt.Errorf("设置列宽失败: %w", err)
	}
	return f, nil
}

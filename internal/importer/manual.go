package importer

import (
	"strconv"
	"strings"
)

// ParseManualList 解析手动批量粘贴的文本。
// 每行一条记录，格式为"标题, 时长"，时长可省略；
// 逗号接受英文逗号和中文全角逗号。空行和无标题的行被跳过。
func ParseManualList(text string) []PartialGame {
	var result []PartialGame

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		// 统一两种逗号后再切分，第二段之后的内容忽略
		parts := strings.Split(strings.ReplaceAll(line, "，", ","), ",")
		title := strings.TrimSpace(parts[0])
		if title == "" {
			continue
		}

		hours := 0.0
		if len(parts) > 1 {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err == nil {
				hours = parsed
			}
		}

		result = append(result, PartialGame{
			Title:       title,
			HoursPlayed: hours,
		})
	}
	return result
}

package game

import "time"

// PlayStatus 表示玩家与一款游戏之间的关系阶段
type PlayStatus string

const (
	StatusPlaying   PlayStatus = "Playing"
	StatusCompleted PlayStatus = "Completed"
	StatusBacklog   PlayStatus = "Backlog"
	StatusDropped   PlayStatus = "Dropped"
	StatusWishlist  PlayStatus = "Wishlist"
)

// StatusLabels 是状态到中文展示名的映射，统计接口按它输出分布标签
var StatusLabels = map[PlayStatus]string{
	StatusPlaying:   "进行中",
	StatusCompleted: "已通关",
	StatusBacklog:   "待玩",
	StatusDropped:   "弃坑",
	StatusWishlist:  "愿望单",
}

// IsValidStatus 判断给定字符串是否是五个合法状态之一
func IsValidStatus(s string) bool {
	_, ok := StatusLabels[PlayStatus(s)]
	return ok
}

// Platforms 是推荐的平台列表（只作提示，不强制校验）
var Platforms = []string{
	"PC (Steam)",
	"PC (Epic)",
	"PlayStation 5",
	"PlayStation 4",
	"Xbox Series X/S",
	"Xbox One",
	"Nintendo Switch",
	"Nintendo 3DS",
	"手游 (iOS)",
	"手游 (Android)",
	"怀旧/模拟器",
	"其他",
}

// Genres 是推荐的游戏类型词表
var Genres = []string{
	"动作", "冒险", "RPG", "策略", "射击", "模拟", "解谜", "竞速", "体育", "恐怖", "独立游戏", "格斗", "肉鸽",
}

// Game 是收藏库中的一条游戏记录。
// 时间字段以RFC3339字符串存储，与持久化槽位中的JSON格式保持一致；
// 这也意味着外部导入的时间即使无法解析也能原样保留。
type Game struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Platform     string     `json:"platform"`
	Status       PlayStatus `json:"status"`
	Rating       float64    `json:"rating"` // 0-10，0表示未评分
	HoursPlayed  float64    `json:"hoursPlayed"`
	Genres       []string   `json:"genres"`
	ReleaseYear  string     `json:"releaseYear,omitempty"`
	CoverURL     string     `json:"coverUrl,omitempty"`
	AddedAt      string     `json:"addedAt"`                // 记录创建时间，创建后不再变更
	LastPlayedAt string     `json:"lastPlayedAt,omitempty"` // 实际最后游玩时间（来自Steam等平台）
	Notes        string     `json:"notes,omitempty"`
}

// ParseTime 解析记录中的时间字符串。
// 返回的bool表示是否解析成功；调用方决定失败时的处理方式。
func ParseTime(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SampleLibrary 返回内置的示例数据集。
// 当持久化槽位为空或内容损坏时，以它替换而不是报错。
func SampleLibrary() []Game {
	return []Game{
		{
			ID:           "1",
			Title:        "艾尔登法环 (Elden Ring)",
			Platform:     "PC (Steam)",
			Status:       StatusCompleted,
			Rating:       10,
			HoursPlayed:  125,
			Genres:       []string{"RPG", "动作", "开放世界"},
			ReleaseYear:  "2022",
			AddedAt:      time.Date(2022, 3, 15, 0, 0, 0, 0, time.Local).Format(time.RFC3339),
			LastPlayedAt: time.Date(2022, 5, 10, 0, 0, 0, 0, time.Local).Format(time.RFC3339),
			CoverURL:     "https://upload.wikimedia.org/wikipedia/en/b/b9/Elden_Ring_Box_Art.jpg",
		},
		{
			ID:           "2",
			Title:        "塞尔达传说：王国之泪",
			Platform:     "Nintendo Switch",
			Status:       StatusPlaying,
			Rating:       9.5,
			HoursPlayed:  45,
			Genres:       []string{"冒险", "开放世界"},
			ReleaseYear:  "2023",
			AddedAt:      time.Date(2023, 6, 12, 0, 0, 0, 0, time.Local).Format(time.RFC3339),
			LastPlayedAt: time.Date(2023, 7, 20, 0, 0, 0, 0, time.Local).Format(time.RFC3339),
			CoverURL:     "https://upload.wikimedia.org/wikipedia/en/f/fb/The_Legend_of_Zelda_Tears_of_the_Kingdom_cover.jpg",
		},
		{
			ID:          "3",
			Title:       "黑神话：悟空",
			Platform:    "PC (Steam)",
			Status:      StatusBacklog,
			Rating:      0,
			HoursPlayed: 0,
			Genres:      []string{"动作", "RPG"},
			ReleaseYear: "2024",
			AddedAt:     time.Date(2024, 8, 20, 0, 0, 0, 0, time.Local).Format(time.RFC3339),
			CoverURL:    "https://upload.wikimedia.org/wikipedia/zh/a/a3/Black_Myth_Wukong_cover_art.jpg",
		},
	}
}

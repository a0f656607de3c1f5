package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/gamevault/gamevault-backend/internal/platform/kvstore"
	"gorm.io/gorm"
)

// Settings 是用户可修改的运行时设置。
// Service在启动时显式构造一次，按引用传给需要外部服务的组件。
type Settings struct {
	SteamAPIKey string `json:"steamApiKey"`
	ProxyURL    string `json:"proxyUrl"`
	UseProxy    bool   `json:"useProxy"`
	AIAPIKey    string `json:"aiApiKey"`
	AIBaseURL   string `json:"aiBaseUrl"`
}

// Service 持有当前设置并负责其持久化。
// Get返回值快照，外部服务每次调用时各自取一份，修改立刻生效。
type Service struct {
	db *gorm.DB

	mu      sync.RWMutex
	current Settings
}

// NewService 从持久化槽位加载设置。
// 槽位为空时使用环境变量作为初始值（STEAM_API_KEY、GEMINI_API_KEY等）。
func NewService(db *gorm.DB) (*Service, error) {
	s := &Service{db: db}

	raw, err := kvstore.GetValue(db, kvstore.SettingsKey)
	if err != nil {
		return nil, fmt.Errorf("无法读取应用设置: %w", err)
	}

	if raw == "" {
		s.current = Settings{
			SteamAPIKey: os.Getenv("STEAM_API_KEY"),
			ProxyURL:    os.Getenv("PROXY_URL"),
			UseProxy:    os.Getenv("PROXY_URL") != "",
			AIAPIKey:    os.Getenv("GEMINI_API_KEY"),
			AIBaseURL:   os.Getenv("GEMINI_BASE_URL"),
		}
		return s, nil
	}

	if err := json.Unmarshal([]byte(raw), &s.current); err != nil {
		// 设置损坏的处理方式与游戏库一致：换回默认值而不是报错
		fmt.Printf("应用设置数据损坏 (%v)，已恢复默认设置。\n", err)
		s.current = Settings{}
	}
	return s, nil
}

// Get 返回当前设置的一份快照
func (s *Service) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update 整体替换设置并写入持久化槽位
func (s *Service) Update(next Settings) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("序列化设置失败: %w", err)
	}
	if err := kvstore.SetValue(s.db, kvstore.SettingsKey, string(data)); err != nil {
		return fmt.Errorf("写入设置失败: %w", err)
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	return nil
}

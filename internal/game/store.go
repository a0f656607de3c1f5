package game

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gamevault/gamevault-backend/internal/platform/kvstore"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store 是游戏库的唯一数据持有者。
// 所有读取都返回快照副本，过滤/排序/统计只在快照上进行；
// 所有修改都在写锁内完成，并在完成后把完整数组重写进持久化槽位。
type Store struct {
	db *gorm.DB

	mu    sync.RWMutex
	games []Game
}

// NewStore 创建一个空的游戏库存储，持久化槽位由db承载。
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Load 从持久化槽位加载游戏库。
// 槽位为空或内容损坏时，以内置示例数据集替换并立即写回。
func (s *Store) Load() error {
	raw, err := kvstore.GetValue(s.db, kvstore.LibraryKey)
	if err != nil {
		return fmt.Errorf("无法读取游戏库数据: %w", err)
	}

	var games []Game
	if raw == "" {
		games = SampleLibrary()
		fmt.Println("游戏库为空，已载入示例数据。")
	} else if err := json.Unmarshal([]byte(raw), &games); err != nil {
		games = SampleLibrary()
		fmt.Printf("游戏库数据损坏 (%v)，已替换为示例数据。\n", err)
	}

	s.mu.Lock()
	s.games = games
	s.mu.Unlock()

	s.persist()
	fmt.Printf("游戏库加载完成，共 %d 条记录。\n", len(games))
	return nil
}

// Snapshot 返回当前游戏库的一份副本，调用方可以放心地就地排序。
func (s *Store) Snapshot() []Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyGames(s.games)
}

// Count 返回当前收藏的记录数。
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}

// Get 按ID查找一条记录。
func (s *Store) Get(id string) (Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.ID == id {
			return copyGame(g), true
		}
	}
	return Game{}, false
}

// Create 新建一条记录：分配ID和创建时间，插入到列表最前面。
func (s *Store) Create(input Game) Game {
	input.ID = uuid.NewString()
	input.AddedAt = time.Now().Format(time.RFC3339)
	if input.Genres == nil {
		input.Genres = []string{}
	}

	s.mu.Lock()
	s.games = append([]Game{input}, s.games...)
	s.mu.Unlock()

	s.persist()
	return input
}

// AddBatch 把一批已归一化的记录追加到列表最前面，保持批次内顺序。
// 不做任何去重：重复标题是允许的。
func (s *Store) AddBatch(batch []Game) {
	if len(batch) == 0 {
		return
	}
	s.mu.Lock()
	s.games = append(copyGames(batch), s.games...)
	s.mu.Unlock()

	s.persist()
}

// Update 就地修改一条记录。ID和AddedAt不可变更，始终保留原值。
func (s *Store) Update(id string, input Game) (Game, error) {
	s.mu.Lock()
	var updated Game
	found := false
	for i, g := range s.games {
		if g.ID == id {
			input.ID = g.ID
			input.AddedAt = g.AddedAt
			if input.Genres == nil {
				input.Genres = []string{}
			}
			s.games[i] = input
			updated = input
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return Game{}, fmt.Errorf("找不到ID为 %s 的游戏记录", id)
	}
	s.persist()
	return updated, nil
}

// Delete 删除一条记录。
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	found := false
	for i, g := range s.games {
		if g.ID == id {
			s.games = append(s.games[:i], s.games[i+1:]...)
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return fmt.Errorf("找不到ID为 %s 的游戏记录", id)
	}
	s.persist()
	return nil
}

// ReplaceAll 用一组新记录整体替换游戏库。
func (s *Store) ReplaceAll(games []Game) {
	s.mu.Lock()
	s.games = copyGames(games)
	s.mu.Unlock()

	s.persist()
}

// SerializedLibrary 返回整个游戏库的JSON字符串，供备份调度器使用。
func (s *Store) SerializedLibrary() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := json.Marshal(s.games)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// persist 把完整的游戏库数组重写进持久化槽位。
// 写入失败只记录警告，不回滚内存中的修改，也不向调用方传播错误。
func (s *Store) persist() {
	s.mu.RLock()
	data, err := json.Marshal(s.games)
	s.mu.RUnlock()
	if err != nil {
		fmt.Printf("警告: 序列化游戏库失败: %v\n", err)
		return
	}
	if err := kvstore.SetValue(s.db, kvstore.LibraryKey, string(data)); err != nil {
		fmt.Printf("警告: 写入游戏库数据失败: %v\n", err)
	}
}

func copyGame(g Game) Game {
	out := g
	out.Genres = append([]string(nil), g.Genres...)
	return out
}

func copyGames(games []Game) []Game {
	out := make([]Game, len(games))
	for i, g := range games {
		out[i] = copyGame(g)
	}
	return out
}

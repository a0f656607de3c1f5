package ai

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gamevault/gamevault-backend/internal/platform/kvstore"
	"github.com/gamevault/gamevault-backend/internal/settings"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAIRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, kvstore.PrimeDB(db))

	svc, err := settings.NewService(db)
	require.NoError(t, err)
	// 保证密钥为空，与测试机环境变量无关
	require.NoError(t, svc.Update(settings.Settings{}))

	h := NewHandler(NewService(svc))
	r := gin.New()
	r.POST("/api/ai/metadata", h.FetchMetadata)
	r.POST("/api/ai/cover", h.GenerateCover)
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAIEndpointsWithoutKey(t *testing.T) {
	r := newAIRouter(t)

	t.Run("未配置密钥时元数据检索返回400", func(t *testing.T) {
		w := postJSON(r, "/api/ai/metadata", gin.H{"query": "Hades"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "密钥")
	})

	t.Run("未配置密钥时封面生成返回400", func(t *testing.T) {
		w := postJSON(r, "/api/ai/cover", gin.H{"title": "Hades"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "密钥")
	})

	t.Run("缺少必填字段返回400", func(t *testing.T) {
		w := postJSON(r, "/api/ai/metadata", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

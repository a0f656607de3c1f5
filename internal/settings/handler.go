package settings

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 提供设置的读取和修改API
type Handler struct {
	service *Service
}

// NewHandler 创建settings模块的API处理器
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetSettings 处理 GET /api/settings
// 这是单用户的本地应用，密钥原样返回，供设置页回显
func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Get())
}

// UpdateSettings 处理 PUT /api/settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	var body Settings
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	if err := h.service.Update(body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.service.Get())
}

package ai

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler 提供AI元数据检索和封面生成的API
type Handler struct {
	service *Service
}

// NewHandler 创建ai模块的API处理器
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MetadataRequestBody 定义了元数据检索请求体的JSON结构
type MetadataRequestBody struct {
	Query string `json:"query" binding:"required"`
}

// FetchMetadata 处理 POST /api/ai/metadata
func (h *Handler) FetchMetadata(c *gin.Context) {
	var body MetadataRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	meta, err := h.service.FetchGameMetadata(c.Request.Context(), body.Query)
	if err != nil {
		if errors.Is(err, ErrNoAPIKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "尚未配置 AI API 密钥，请先在设置中填写。"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "元数据检索失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, meta)
}

// CoverRequestBody 定义了封面生成请求体的JSON结构
type CoverRequestBody struct {
	Title string `json:"title" binding:"required"`
}

// GenerateCover 处理 POST /api/ai/cover
func (h *Handler) GenerateCover(c *gin.Context) {
	var body CoverRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误: " + err.Error()})
		return
	}

	coverURL, err := h.service.GenerateCover(c.Request.Context(), body.Title)
	if err != nil {
		if errors.Is(err, ErrNoAPIKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "尚未配置 AI API 密钥，请先在设置中填写。"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "封面生成失败: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"coverUrl": coverURL})
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
)

type TagHandler struct {
	tags *repo.TagRepo
}

func NewTagHandler(tags *repo.TagRepo) *TagHandler {
	return &TagHandler{tags: tags}
}

func (h *TagHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	name := c.Query("name")
	tags, total, err := h.tags.List(c.Request.Context(), name, skip, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Tags retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"filters_applied": gin.H{"name": name},
		"tags":            tags,
	})
}

func (h *TagHandler) Get(c *gin.Context) {
	tag, err := h.tags.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Tag retrieved successfully.", gin.H{"tag": tag})
}

type tagReq struct {
	Name string `json:"name" binding:"required"`
}

func (h *TagHandler) Create(c *gin.Context) {
	var req tagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	t := &model.Tag{Name: req.Name}
	if err := h.tags.Create(c.Request.Context(), t); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Tag created successfully.", gin.H{"tag": t})
}

func (h *TagHandler) Update(c *gin.Context) {
	var req tagReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	t, err := h.tags.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	t.Name = req.Name
	t.UpdatedAt = time.Now().UTC()
	if err := h.tags.Save(c.Request.Context(), t); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Tag updated successfully.", gin.H{"tag": t})
}

func (h *TagHandler) Delete(c *gin.Context) {
	if err := h.tags.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Tag deleted successfully.", nil)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type CategoryHandler struct {
	tree  *usecase.CategoryTree
	query *repo.CategoryRepo
}

func NewCategoryHandler(tree *usecase.CategoryTree, query *repo.CategoryRepo) *CategoryHandler {
	return &CategoryHandler{tree: tree, query: query}
}

func (h *CategoryHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	f := repo.CategoryFilter{
		Name:     c.Query("name"),
		ParentID: c.Query("parent_id"),
		Skip:     skip,
		Limit:    limit,
	}
	categories, total, err := h.query.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Categories retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"filters_applied": gin.H{"name": f.Name, "parent_id": f.ParentID},
		"categories":      categories,
	})
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.query.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Category retrieved successfully.", gin.H{"category": category})
}

type createCategoryReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	ParentID    *string `json:"parent_id"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	category, err := h.tree.Create(c.Request.Context(), usecase.CreateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Category created successfully.", gin.H{"category": category})
}

type updateCategoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	ParentID    *string `json:"parent_id"`
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req updateCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	category, err := h.tree.Update(c.Request.Context(), c.Param("id"), usecase.UpdateCategoryInput{
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Category updated successfully.", gin.H{"category": category})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.tree.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondGuardErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Category deleted successfully.", nil)
}

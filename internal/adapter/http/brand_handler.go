package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
)

type BrandHandler struct {
	brands *repo.BrandRepo
}

func NewBrandHandler(brands *repo.BrandRepo) *BrandHandler {
	return &BrandHandler{brands: brands}
}

func (h *BrandHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	name := c.Query("name")
	brands, total, err := h.brands.List(c.Request.Context(), name, skip, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Brands retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"filters_applied": gin.H{"name": name},
		"brands":          brands,
	})
}

func (h *BrandHandler) Get(c *gin.Context) {
	brand, err := h.brands.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Brand retrieved successfully.", gin.H{"brand": brand})
}

type brandReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *BrandHandler) Create(c *gin.Context) {
	var req brandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	b := &model.Brand{Name: req.Name, Description: req.Description}
	if err := h.brands.Create(c.Request.Context(), b); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Brand created successfully.", gin.H{"brand": b})
}

type updateBrandReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *BrandHandler) Update(c *gin.Context) {
	var req updateBrandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	b, err := h.brands.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	b.UpdatedAt = time.Now().UTC()
	if err := h.brands.Save(c.Request.Context(), b); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Brand updated successfully.", gin.H{"brand": b})
}

func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.brands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondGuardErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Brand deleted successfully.", nil)
}

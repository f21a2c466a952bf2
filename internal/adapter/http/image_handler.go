package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
)

type ImageHandler struct {
	images *repo.ImageRepo
}

func NewImageHandler(images *repo.ImageRepo) *ImageHandler {
	return &ImageHandler{images: images}
}

func (h *ImageHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	productID := c.Query("product_id")
	images, total, err := h.images.List(c.Request.Context(), productID, skip, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Images retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"filters_applied": gin.H{"product_id": productID},
		"images":          images,
	})
}

func (h *ImageHandler) Get(c *gin.Context) {
	image, err := h.images.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Image retrieved successfully.", gin.H{"image": image})
}

type createImageReq struct {
	URL       string  `json:"url" binding:"required,url"`
	AltText   *string `json:"alt_text"`
	ProductID string  `json:"product_id" binding:"required"`
}

func (h *ImageHandler) Create(c *gin.Context) {
	var req createImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	img := &model.Image{URL: req.URL, AltText: req.AltText, ProductID: req.ProductID}
	if err := h.images.Create(c.Request.Context(), img); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Image created successfully.", gin.H{"image": img})
}

type updateImageReq struct {
	URL     *string `json:"url"`
	AltText *string `json:"alt_text"`
}

func (h *ImageHandler) Update(c *gin.Context) {
	var req updateImageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	img, err := h.images.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if req.URL != nil {
		img.URL = *req.URL
	}
	if req.AltText != nil {
		img.AltText = req.AltText
	}
	img.UpdatedAt = time.Now().UTC()
	if err := h.images.Save(c.Request.Context(), img); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Image updated successfully.", gin.H{"image": img})
}

func (h *ImageHandler) Delete(c *gin.Context) {
	if err := h.images.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Image deleted successfully.", nil)
}

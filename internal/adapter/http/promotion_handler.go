package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

type PromotionHandler struct {
	promotions *repo.PromotionRepo
}

func NewPromotionHandler(promotions *repo.PromotionRepo) *PromotionHandler {
	return &PromotionHandler{promotions: promotions}
}

func (h *PromotionHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	f := repo.PromotionFilter{
		Name:  c.Query("name"),
		Now:   time.Now().UTC(),
		Skip:  skip,
		Limit: limit,
	}
	if raw := c.Query("active"); raw != "" {
		v := raw == "true" || raw == "1"
		f.Active = &v
	}
	promotions, total, err := h.promotions.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Promotions retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"filters_applied": gin.H{"name": f.Name, "active": c.Query("active")},
		"promotions":      promotions,
	})
}

func (h *PromotionHandler) Get(c *gin.Context) {
	promotion, err := h.promotions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Promotion retrieved successfully.", gin.H{"promotion": promotion})
}

type createPromotionReq struct {
	Name               string    `json:"name" binding:"required"`
	Description        *string   `json:"description"`
	DiscountPercentage string    `json:"discount_percentage" binding:"required"`
	MinProducts        int       `json:"min_products"`
	StartDate          time.Time `json:"start_date" binding:"required"`
	EndDate            time.Time `json:"end_date" binding:"required"`
}

func (h *PromotionHandler) Create(c *gin.Context) {
	var req createPromotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	discount, err := parseDiscount(req.DiscountPercentage)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !req.EndDate.After(req.StartDate) {
		respondErr(c, domain.Validationf("end_date must be after start_date"))
		return
	}
	if req.MinProducts <= 0 {
		req.MinProducts = 1
	}
	p := &model.Promotion{
		Name:               req.Name,
		Description:        req.Description,
		DiscountPercentage: discount,
		MinProducts:        req.MinProducts,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	}
	if err := h.promotions.Create(c.Request.Context(), p); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Promotion created successfully.", gin.H{"promotion": p})
}

type updatePromotionReq struct {
	Name               *string    `json:"name"`
	Description        *string    `json:"description"`
	DiscountPercentage *string    `json:"discount_percentage"`
	MinProducts        *int       `json:"min_products"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
}

func (h *PromotionHandler) Update(c *gin.Context) {
	var req updatePromotionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	p, err := h.promotions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.DiscountPercentage != nil {
		discount, err := parseDiscount(*req.DiscountPercentage)
		if err != nil {
			respondErr(c, err)
			return
		}
		p.DiscountPercentage = discount
	}
	if req.MinProducts != nil {
		if *req.MinProducts <= 0 {
			respondErr(c, domain.Validationf("min_products must be positive"))
			return
		}
		p.MinProducts = *req.MinProducts
	}
	if req.StartDate != nil {
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		p.EndDate = *req.EndDate
	}
	if !p.EndDate.After(p.StartDate) {
		respondErr(c, domain.Validationf("end_date must be after start_date"))
		return
	}
	p.UpdatedAt = time.Now().UTC()
	if err := h.promotions.Save(c.Request.Context(), p); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Promotion updated successfully.", gin.H{"promotion": p})
}

func (h *PromotionHandler) Delete(c *gin.Context) {
	if err := h.promotions.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Promotion deleted successfully.", nil)
}

func parseDiscount(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.Validationf("invalid discount_percentage %q", raw)
	}
	hundred := decimal.NewFromInt(100)
	if d.IsNegative() || d.GreaterThan(hundred) {
		return decimal.Zero, domain.Validationf("discount_percentage must be between 0 and 100")
	}
	return d, nil
}

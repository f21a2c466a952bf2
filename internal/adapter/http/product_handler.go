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

type ProductHandler struct {
	products *repo.ProductRepo
}

func NewProductHandler(products *repo.ProductRepo) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	f := repo.ProductFilter{
		Name:       c.Query("name"),
		CategoryID: c.Query("category_id"),
		BrandID:    c.Query("brand_id"),
		Skip:       skip,
		Limit:      limit,
	}
	if raw := c.Query("min_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			respond(c, http.StatusBadRequest, "invalid min_price: "+raw, nil)
			return
		}
		f.MinPrice = &p
	}
	if raw := c.Query("max_price"); raw != "" {
		p, err := decimal.NewFromString(raw)
		if err != nil {
			respond(c, http.StatusBadRequest, "invalid max_price: "+raw, nil)
			return
		}
		f.MaxPrice = &p
	}
	if raw := c.Query("in_stock"); raw != "" {
		v := raw == "true" || raw == "1"
		f.InStock = &v
	}
	products, total, err := h.products.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Products retrieved successfully.", gin.H{
		"total": total,
		"skip":  skip,
		"limit": limit,
		"filters_applied": gin.H{
			"name":        f.Name,
			"category_id": f.CategoryID,
			"brand_id":    f.BrandID,
			"min_price":   c.Query("min_price"),
			"max_price":   c.Query("max_price"),
			"in_stock":    c.Query("in_stock"),
		},
		"products": products,
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.products.GetDetailed(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Product retrieved successfully.", gin.H{"product": product})
}

type createProductReq struct {
	Name        string  `json:"name" binding:"required"`
	Summary     string  `json:"summary" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       string  `json:"price" binding:"required"`
	OldPrice    *string `json:"old_price"`
	Stock       int     `json:"stock"`
	CategoryID  string  `json:"category_id" binding:"required"`
	BrandID     string  `json:"brand_id" binding:"required"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		respondErr(c, err)
		return
	}
	if req.Stock < 0 {
		respondErr(c, domain.Validationf("stock cannot be negative"))
		return
	}
	p := &model.Product{
		Name:        req.Name,
		Summary:     req.Summary,
		Description: req.Description,
		Price:       price,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	}
	if req.OldPrice != nil {
		old, err := parsePrice(*req.OldPrice)
		if err != nil {
			respondErr(c, err)
			return
		}
		p.OldPrice = &old
	}
	if err := h.products.Create(c.Request.Context(), p); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Product created successfully.", gin.H{"product": p})
}

type updateProductReq struct {
	Name        *string `json:"name"`
	Summary     *string `json:"summary"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	OldPrice    *string `json:"old_price"`
	Stock       *int    `json:"stock"`
	CategoryID  *string `json:"category_id"`
	BrandID     *string `json:"brand_id"`
}

func (h *ProductHandler) Update(c *gin.Context) {
	var req updateProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	p, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Summary != nil {
		p.Summary = *req.Summary
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			respondErr(c, err)
			return
		}
		// The previous price is kept so clients can render a discount.
		old := p.Price
		p.OldPrice = &old
		p.Price = price
	}
	if req.OldPrice != nil {
		old, err := parsePrice(*req.OldPrice)
		if err != nil {
			respondErr(c, err)
			return
		}
		p.OldPrice = &old
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			respondErr(c, domain.Validationf("stock cannot be negative"))
			return
		}
		p.Stock = *req.Stock
	}
	if req.CategoryID != nil {
		p.CategoryID = *req.CategoryID
	}
	if req.BrandID != nil {
		p.BrandID = *req.BrandID
	}
	p.UpdatedAt = time.Now().UTC()
	if err := h.products.Save(c.Request.Context(), p); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Product updated successfully.", gin.H{"product": p})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if _, err := h.products.Get(ctx, id); err != nil {
		respondErr(c, err)
		return
	}
	refs, err := h.products.CountReferences(ctx, id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if refs > 0 {
		respondGuardErr(c, domain.Conflictf("product is referenced by %d cart or order items", refs))
		return
	}
	if err := h.products.Delete(ctx, id); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Product deleted successfully.", nil)
}

func parsePrice(raw string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.Validationf("invalid price %q", raw)
	}
	if p.IsNegative() {
		return decimal.Zero, domain.Validationf("price cannot be negative")
	}
	return p, nil
}

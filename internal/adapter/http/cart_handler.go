package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/http/middleware"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type CartHandler struct {
	carts *usecase.Cart
}

func NewCartHandler(carts *usecase.Cart) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) Get(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	view, err := h.carts.Get(c.Request.Context(), principal.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Cart retrieved successfully.", gin.H{
		"cart":        view.Cart,
		"total_items": view.TotalItems,
		"total_price": view.TotalPrice,
	})
}

type addCartItemReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	item, err := h.carts.AddItem(c.Request.Context(), principal.UserID, req.ProductID, req.Quantity)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Item added to cart successfully.", gin.H{"item": item})
}

type updateCartItemReq struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	item, err := h.carts.UpdateItem(c.Request.Context(), principal.UserID, c.Param("itemID"), req.Quantity)
	if err != nil {
		respondErr(c, err)
		return
	}
	if item == nil {
		respond(c, http.StatusOK, "Item removed from cart.", nil)
		return
	}
	respond(c, http.StatusOK, "Cart item updated successfully.", gin.H{"item": item})
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	if err := h.carts.RemoveItem(c.Request.Context(), principal.UserID, c.Param("itemID")); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Item removed from cart.", nil)
}

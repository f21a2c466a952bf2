package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/http/middleware"
	"github.com/augustolallana/api-omega/internal/adapter/repo"
	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/usecase"
)

type OrderHandler struct {
	checkout *usecase.Checkout
	orders   *repo.OrderRepo
}

func NewOrderHandler(checkout *usecase.Checkout, orders *repo.OrderRepo) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders}
}

// List returns the caller's orders. Admins may list any user's orders
// via the user_id filter, or all orders when it is omitted.
func (h *OrderHandler) List(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	skip, limit := pagination(c)
	f := repo.OrderFilter{
		UserID: principal.UserID,
		Status: c.Query("status"),
		Skip:   skip,
		Limit:  limit,
	}
	if principal.IsAdmin {
		f.UserID = c.Query("user_id")
	}
	orders, total, err := h.orders.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Orders retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"filters_applied": gin.H{"user_id": f.UserID, "status": f.Status},
		"orders":          orders,
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if order.UserID != principal.UserID && !principal.IsAdmin {
		respondErr(c, domain.NotFoundf("order with id %s", order.ID))
		return
	}
	respond(c, http.StatusOK, "Order retrieved successfully.", gin.H{"order": order})
}

type orderLineReq struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type createOrderReq struct {
	AddressID       string         `json:"address_id" binding:"required"`
	PaymentMethodID string         `json:"payment_method_id" binding:"required"`
	Items           []orderLineReq `json:"items" binding:"required,dive"`
}

func (h *OrderHandler) Create(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	in := usecase.CreateOrderInput{
		UserID:          principal.UserID,
		AddressID:       req.AddressID,
		PaymentMethodID: req.PaymentMethodID,
		IdempotencyKey:  c.GetHeader("X-Idempotency-Key"),
	}
	for _, line := range req.Items {
		in.Items = append(in.Items, usecase.OrderLine{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	order, err := h.checkout.CreateOrder(c.Request.Context(), in)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Order created successfully.", gin.H{"order": order})
}

type checkoutCartReq struct {
	AddressID       string `json:"address_id" binding:"required"`
	PaymentMethodID string `json:"payment_method_id" binding:"required"`
}

// Checkout builds an order from the caller's cart and empties the cart
// atomically.
func (h *OrderHandler) Checkout(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req checkoutCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	order, err := h.checkout.CheckoutCart(c.Request.Context(), principal.UserID, req.AddressID, req.PaymentMethodID)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Order created successfully.", gin.H{"order": order})
}

type updateOrderReq struct {
	AddressID       *string `json:"address_id"`
	PaymentMethodID *string `json:"payment_method_id"`
	Status          *string `json:"status"`
}

func (h *OrderHandler) Update(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req updateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if order.UserID != principal.UserID && !principal.IsAdmin {
		respondErr(c, domain.NotFoundf("order with id %s", order.ID))
		return
	}
	updated, err := h.checkout.UpdateOrder(c.Request.Context(), order.ID, usecase.OrderPatch{
		AddressID:       req.AddressID,
		PaymentMethodID: req.PaymentMethodID,
		Status:          req.Status,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Order updated successfully.", gin.H{"order": updated})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	order, err := h.orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	if order.UserID != principal.UserID && !principal.IsAdmin {
		respondErr(c, domain.NotFoundf("order with id %s", order.ID))
		return
	}
	if err := h.checkout.DeleteOrder(c.Request.Context(), order.ID); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Order deleted successfully.", nil)
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

type PaymentMethodHandler struct {
	methods *repo.PaymentMethodRepo
}

func NewPaymentMethodHandler(methods *repo.PaymentMethodRepo) *PaymentMethodHandler {
	return &PaymentMethodHandler{methods: methods}
}

func (h *PaymentMethodHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	methods, total, err := h.methods.List(c.Request.Context(), skip, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment methods retrieved successfully.", gin.H{
		"total":           total,
		"skip":            skip,
		"limit":           limit,
		"payment_methods": methods,
	})
}

func (h *PaymentMethodHandler) Get(c *gin.Context) {
	pm, err := h.methods.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment method retrieved successfully.", gin.H{"payment_method": pm})
}

type createPaymentMethodReq struct {
	Type    string  `json:"type" binding:"required"`
	Details *string `json:"details"`
}

func (h *PaymentMethodHandler) Create(c *gin.Context) {
	var req createPaymentMethodReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	t := domain.PaymentMethodType(req.Type)
	if !t.Valid() {
		respondErr(c, domain.Validationf("unknown payment method type %q", req.Type))
		return
	}
	pm := &model.PaymentMethod{Type: t, Details: req.Details}
	if err := h.methods.Create(c.Request.Context(), pm); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Payment method created successfully.", gin.H{"payment_method": pm})
}

func (h *PaymentMethodHandler) Delete(c *gin.Context) {
	if err := h.methods.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondGuardErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Payment method deleted successfully.", nil)
}

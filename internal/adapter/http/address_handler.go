package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/augustolallana/api-omega/internal/adapter/http/middleware"
	"github.com/augustolallana/api-omega/internal/adapter/repo"
	"github.com/augustolallana/api-omega/internal/adapter/repo/model"
	domain "github.com/augustolallana/api-omega/internal/entity"
)

// AddressHandler manages the caller's shipping addresses. Addresses
// belonging to other users read as not found.
type AddressHandler struct {
	addresses *repo.AddressRepo
}

func NewAddressHandler(addresses *repo.AddressRepo) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

func (h *AddressHandler) List(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	skip, limit := pagination(c)
	addresses, total, err := h.addresses.List(c.Request.Context(), principal.UserID, skip, limit)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Addresses retrieved successfully.", gin.H{
		"total":     total,
		"skip":      skip,
		"limit":     limit,
		"addresses": addresses,
	})
}

func (h *AddressHandler) Get(c *gin.Context) {
	a, ok := h.owned(c)
	if !ok {
		return
	}
	respond(c, http.StatusOK, "Address retrieved successfully.", gin.H{"address": a})
}

type createAddressReq struct {
	Province   string  `json:"province" binding:"required"`
	City       string  `json:"city" binding:"required"`
	Street     string  `json:"street" binding:"required"`
	Number     int     `json:"number" binding:"required"`
	Extra      *string `json:"extra"`
	PostalCode string  `json:"postal_code" binding:"required"`
}

func (h *AddressHandler) Create(c *gin.Context) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	var req createAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	a := &model.Address{
		UserID:     principal.UserID,
		Province:   req.Province,
		City:       req.City,
		Street:     req.Street,
		Number:     req.Number,
		Extra:      req.Extra,
		PostalCode: req.PostalCode,
	}
	if err := h.addresses.Create(c.Request.Context(), a); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, "Address created successfully.", gin.H{"address": a})
}

type updateAddressReq struct {
	Province   *string `json:"province"`
	City       *string `json:"city"`
	Street     *string `json:"street"`
	Number     *int    `json:"number"`
	Extra      *string `json:"extra"`
	PostalCode *string `json:"postal_code"`
}

func (h *AddressHandler) Update(c *gin.Context) {
	a, ok := h.owned(c)
	if !ok {
		return
	}
	var req updateAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	if req.Province != nil {
		a.Province = *req.Province
	}
	if req.City != nil {
		a.City = *req.City
	}
	if req.Street != nil {
		a.Street = *req.Street
	}
	if req.Number != nil {
		a.Number = *req.Number
	}
	if req.Extra != nil {
		a.Extra = req.Extra
	}
	if req.PostalCode != nil {
		a.PostalCode = *req.PostalCode
	}
	a.UpdatedAt = time.Now().UTC()
	if err := h.addresses.Save(c.Request.Context(), a); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Address updated successfully.", gin.H{"address": a})
}

func (h *AddressHandler) Delete(c *gin.Context) {
	a, ok := h.owned(c)
	if !ok {
		return
	}
	if err := h.addresses.Delete(c.Request.Context(), a.ID); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, "Address deleted successfully.", nil)
}

func (h *AddressHandler) owned(c *gin.Context) (*model.Address, bool) {
	principal, ok := middleware.FromContext(c)
	if !ok {
		respond(c, http.StatusUnauthorized, "authentication required", nil)
		return nil, false
	}
	a, err := h.addresses.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return nil, false
	}
	if a.UserID != principal.UserID && !principal.IsAdmin {
		respondErr(c, domain.NotFoundf("address with id %s", a.ID))
		return nil, false
	}
	return a, true
}

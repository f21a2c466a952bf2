package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/augustolallana/api-omega/internal/entity"
	"github.com/augustolallana/api-omega/internal/logging"
)

// BaseResponse is the envelope every endpoint returns.
type BaseResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
	Detail     gin.H  `json:"detail,omitempty"`
}

func respond(c *gin.Context, status int, message string, detail gin.H) {
	c.JSON(status, BaseResponse{Message: message, StatusCode: status, Detail: detail})
}

// respondErr maps the domain error taxonomy onto HTTP statuses. Raw
// store errors never reach the client: anything unclassified logs and
// returns a generic 500.
func respondErr(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrInsufficientStock):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrCycle):
		status = http.StatusBadRequest
	default:
		logging.From(c).Error("internal error", "error", err.Error())
		respond(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	respond(c, status, err.Error(), nil)
}

// respondGuardErr is respondErr with referential-integrity conflicts
// reported as 400, for deletes blocked by children or references.
func respondGuardErr(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrConflict) {
		respond(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	respondErr(c, err)
}

// pagination reads skip/limit query params with the conventional
// defaults and a hard cap on page size.
func pagination(c *gin.Context) (skip, limit int) {
	skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return skip, limit
}

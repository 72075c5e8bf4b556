package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/aquave/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

var errBadRequest = errors.New("invalid request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrMoodNotFound),
		errors.Is(err, domain.ErrDrinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrPanelHidden),
		errors.Is(err, domain.ErrOrderPlaced),
		errors.Is(err, domain.ErrVisualizationOff):
		return http.StatusConflict
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidSortKey),
		errors.Is(err, domain.ErrInvalidDelivery),
		errors.Is(err, domain.ErrInvalidGenre),
		errors.Is(err, domain.ErrSpiritNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *StorefrontHandler) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request_failed", "Request failed", c.GetString(requestIDKey), map[string]interface{}{
			"path": c.Request.URL.Path,
		}, err)
		c.JSON(status, ErrorResponse{Error: "internal server error"})
		return
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eslsoft/blinkvocab/internal/entity"
)

// timeNow is swapped out in tests.
var timeNow = time.Now

// fail maps domain errors to HTTP statuses. Everything here is an expected
// precondition failure or a degraded-mode condition; only unknown errors
// become 500s.
func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, entity.ErrEmptyWord):
		status = http.StatusBadRequest
	case errors.Is(err, entity.ErrItemNotFound), errors.Is(err, entity.ErrSessionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, entity.ErrItemAlreadyOwned), errors.Is(err, entity.ErrSessionFinished):
		status = http.StatusConflict
	case errors.Is(err, entity.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, entity.ErrNoDueWords):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrImageGeneration), errors.Is(err, entity.ErrProviderUnavailable):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		h.logger.WithError(err).Error("request failed")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

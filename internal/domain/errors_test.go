package domain_test

import (
	"net/http"
	"testing"

	"github.com/coretech/stack-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNewAPIError(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{http.StatusBadRequest, domain.ErrorTypeBadRequest},
		{http.StatusNotFound, domain.ErrorTypeNotFound},
		{http.StatusConflict, domain.ErrorTypeConflict},
		{http.StatusUnprocessableEntity, domain.ErrorTypeSyncAborted},
		{http.StatusTooManyRequests, domain.ErrorTypeRateLimited},
		{http.StatusServiceUnavailable, domain.ErrorTypeUnavailable},
		{http.StatusInternalServerError, domain.ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			apiErr := domain.NewAPIError(tt.status, "detail")
			assert.Equal(t, tt.want, apiErr.Type)
			assert.Equal(t, http.StatusText(tt.status), apiErr.Title)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, "detail", apiErr.Error())
		})
	}
}

func TestGetValidationMessage(t *testing.T) {
	assert.Equal(t, "Must be a valid UUID", domain.GetValidationMessage("uuid"))
	assert.Equal(t, "Validation failed: hexcolor", domain.GetValidationMessage("hexcolor"))
}

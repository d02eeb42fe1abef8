package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rize-zxc/Project-Wesker/internal/domain"
	v1 "github.com/rize-zxc/Project-Wesker/internal/transport/web/v1"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{name: "bad params", err: domain.ErrBadParams, wantStatus: http.StatusBadRequest, wantCode: domain.ErrCodeBadParams},
		{name: "wrapped bad params", err: fmt.Errorf("%w: email cannot be empty", domain.ErrBadParams), wantStatus: http.StatusBadRequest, wantCode: domain.ErrCodeBadParams},
		{name: "not found", err: domain.ErrNotFound, wantStatus: http.StatusNotFound, wantCode: domain.ErrCodeNotFound},
		{name: "method not allowed", err: domain.ErrMethodNotAllowed, wantStatus: http.StatusMethodNotAllowed, wantCode: domain.ErrCodeMethodNotAllowed},
		{name: "unavailable", err: domain.ErrUnavailable, wantStatus: http.StatusServiceUnavailable, wantCode: domain.ErrCodeUnavailable},
		{name: "unexpected", err: domain.ErrUnexpected, wantStatus: http.StatusInternalServerError, wantCode: domain.ErrCodeUnexpected},
		{name: "unknown error", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError, wantCode: domain.ErrCodeUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := v1.MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

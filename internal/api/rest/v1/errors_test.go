//go:build unit
// +build unit

package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"
	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("bind: %w", validators.ErrValidation), http.StatusBadRequest},
		{payments.ErrInsufficientCredits, http.StatusBadRequest},
		{scrimmages.FieldErrors{"level": "required"}, http.StatusBadRequest},
		{accounts.ErrInvalidCredentials, http.StatusUnauthorized},
		{payments.ErrWebhookUnauthorized, http.StatusUnauthorized},
		{chat.ErrNotParticipant, http.StatusForbidden},
		{accounts.ErrEmailNotVerified, http.StatusForbidden},
		{fmt.Errorf("load: %w", scrimmages.ErrScrimmageNotFound), http.StatusNotFound},
		{scrimmages.ErrScrimmageFull, http.StatusConflict},
		{&accounts.LockoutError{Until: time.Now().Add(time.Minute)}, http.StatusLocked},
		{accounts.ErrRateLimited, http.StatusTooManyRequests},
		{payments.ErrGatewayUnavailable, http.StatusBadGateway},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestRespondError_HidesInternalErrors(t *testing.T) {
	c, w := testutil.NewJSONContext(t, http.MethodGet, "/", nil)

	respondError(c, errors.New("pq: relation \"users\" does not exist"))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	testutil.DecodeJSON(t, w, &resp)
	assert.Equal(t, "internal server error", resp.Message)
	assert.Len(t, c.Errors, 1)
}

func TestRespondError_RetryAfterRoundsUp(t *testing.T) {
	c, w := testutil.NewJSONContext(t, http.MethodPost, "/auth/login", nil)

	respondError(c, &accounts.LockoutError{Until: time.Now().Add(89500 * time.Millisecond)})

	assert.Equal(t, http.StatusLocked, w.Code)
	seconds, err := strconv.Atoi(w.Header().Get("Retry-After"))
	require.NoError(t, err)
	assert.InDelta(t, 90, seconds, 1)
}

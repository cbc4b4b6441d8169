package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/accounts"
	"github.com/MGTheTrain/scrimhub/internal/domain/calendar"
	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/events"
	"github.com/MGTheTrain/scrimhub/internal/domain/groups"
	"github.com/MGTheTrain/scrimhub/internal/domain/memberships"
	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/MGTheTrain/scrimhub/internal/domain/profiles"
	"github.com/MGTheTrain/scrimhub/internal/domain/scrimmages"
	"github.com/MGTheTrain/scrimhub/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

type statusRule struct {
	status int
	errs   []error
}

// statusRules is checked in order; the first rule with a matching sentinel wins
var statusRules = []statusRule{
	{http.StatusBadRequest, []error{
		validators.ErrValidation,
		scrimmages.ErrInvalidSchema,
		scrimmages.ErrInvalidCustomFields,
		payments.ErrPrizePoolExceeded,
		payments.ErrInsufficientCredits,
		payments.ErrInvalidAmount,
		payments.ErrNotRefundable,
		payments.ErrUnsupportedProvider,
		payments.ErrMalformedWebhook,
		payments.ErrNothingToDistribute,
		events.ErrInvalidRSVP,
		events.ErrNoRSVP,
		calendar.ErrInvalidWindow,
		memberships.ErrPlanInactive,
		accounts.ErrMFANotEnabled,
		accounts.ErrPhoneRequired,
		accounts.ErrTOTPSetupNotStarted,
		accounts.ErrUnsupportedMFAType,
		accounts.ErrUnsupportedCodeChannel,
		accounts.ErrUnknownAction,
		accounts.ErrSelfAction,
		profiles.ErrSelfFollow,
		scrimmages.ErrNotOnRoster,
		scrimmages.ErrCreatorCannotLeave,
		groups.ErrOwnerCannotLeave,
		groups.ErrNotMember,
	}},
	{http.StatusUnauthorized, []error{
		accounts.ErrInvalidCredentials,
		accounts.ErrInvalidToken,
		accounts.ErrInvalidCode,
		accounts.ErrCodeExhausted,
		payments.ErrWebhookUnauthorized,
	}},
	{http.StatusForbidden, []error{
		accounts.ErrAccountDisabled,
		accounts.ErrMethodNotAllowed,
		accounts.ErrEmailNotVerified,
		accounts.ErrMFAEnrollmentRequired,
		accounts.ErrReauthRequired,
		accounts.ErrForbidden,
		scrimmages.ErrForbidden,
		scrimmages.ErrPrizesStaffOnly,
		groups.ErrForbidden,
		events.ErrForbidden,
		calendar.ErrForbidden,
		notifications.ErrForbidden,
		memberships.ErrForbidden,
		payments.ErrForbidden,
		chat.ErrNotParticipant,
		profiles.ErrProfileHidden,
	}},
	{http.StatusNotFound, []error{
		accounts.ErrUserNotFound,
		accounts.ErrAuthPolicyNotFound,
		profiles.ErrUserNotFound,
		groups.ErrGroupNotFound,
		scrimmages.ErrScrimmageNotFound,
		scrimmages.ErrCategoryNotFound,
		scrimmages.ErrTypeNotFound,
		events.ErrEventNotFound,
		calendar.ErrItemNotFound,
		memberships.ErrPlanNotFound,
		memberships.ErrMembershipNotFound,
		payments.ErrTransactionNotFound,
		notifications.ErrNotificationNotFound,
		chat.ErrThreadNotFound,
		chat.ErrMessageNotFound,
	}},
	{http.StatusConflict, []error{
		accounts.ErrEmailTaken,
		accounts.ErrPasswordReused,
		scrimmages.ErrScrimmageFull,
		scrimmages.ErrScrimmageCancelled,
		events.ErrEventCancelled,
		scrimmages.ErrSlugTaken,
		groups.ErrSlugTaken,
	}},
	{http.StatusLocked, []error{accounts.ErrLockedOut}},
	{http.StatusTooManyRequests, []error{accounts.ErrRateLimited}},
	{http.StatusBadGateway, []error{payments.ErrGatewayUnavailable}},
}

// StatusFor maps a service error onto an HTTP status code
func StatusFor(err error) int {
	for _, rule := range statusRules {
		for _, target := range rule.errs {
			if errors.Is(err, target) {
				return rule.status
			}
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err as an ErrorResponse. Unmapped errors are attached to the
// gin context for the access log and answered with a generic message.
func respondError(ctx *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		ctx.JSON(status, ErrorResponse{Message: "internal server error"})
		return
	}

	var lockout *accounts.LockoutError
	if errors.As(err, &lockout) {
		seconds := int(math.Ceil(lockout.RetryAfter(time.Now()).Seconds()))
		ctx.Header("Retry-After", strconv.Itoa(seconds))
	}

	var fieldErrs scrimmages.FieldErrors
	if errors.As(err, &fieldErrs) {
		ctx.JSON(status, ErrorResponse{Message: err.Error(), Fields: fieldErrs})
		return
	}

	ctx.JSON(status, ErrorResponse{Message: err.Error()})
}

// respondBadRequest answers malformed request bodies and parameters
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}

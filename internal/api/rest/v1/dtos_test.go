//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRequests_Validate(t *testing.T) {
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		request   validatable
		shouldErr bool
	}{
		// Auth
		{"Valid register", &RegisterRequest{Email: "ada@example.com", Password: "longenough"}, false},
		{"Register short password", &RegisterRequest{Email: "ada@example.com", Password: "short"}, true},
		{"Register bad email", &RegisterRequest{Email: "ada", Password: "longenough"}, true},
		{"Valid code", &VerifyCodeRequest{Email: "ada@example.com", Channel: "email", Purpose: "login", Code: "123456"}, false},
		{"Code not numeric", &VerifyCodeRequest{Email: "ada@example.com", Channel: "email", Purpose: "login", Code: "12ab56"}, true},
		{"Unknown code channel", &RequestCodeRequest{Email: "ada@example.com", Channel: "pigeon", Purpose: "login"}, true},
		{"MFA backup type", &VerifyMFARequest{MFAToken: "t", Type: "BACKUP", Code: "aaaa-bbbb"}, false},

		// Admin
		{"Valid lockout ladder", &LockoutPolicyRequest{Threshold1: 3, Threshold2: 6, Threshold3: 9}, false},
		{"Lockout ladder flat", &LockoutPolicyRequest{Threshold1: 3, Threshold2: 3, Threshold3: 9}, true},
		{"Global auth policy", &AuthPolicyRequest{Scope: "global"}, false},
		{"User auth policy", &AuthPolicyRequest{Scope: "user", UserID: strPtr(testUserID)}, false},
		{"User auth policy bad id", &AuthPolicyRequest{Scope: "user", UserID: strPtr("nope")}, true},
		{"Unknown account action", &AccountActionRequest{Action: "banish"}, true},

		// Scrimmages and events
		{"Valid scrimmage", &ScrimmageRequest{Title: "5v5", TypeID: testItemID, StartAt: start, EndAt: start.Add(time.Hour)}, false},
		{"Scrimmage ends before start", &ScrimmageRequest{Title: "5v5", TypeID: testItemID, StartAt: start, EndAt: start.Add(-time.Hour)}, true},
		{"Scrimmage negative fee", &ScrimmageRequest{Title: "5v5", TypeID: testItemID, StartAt: start, EndAt: start.Add(time.Hour), EntryFee: decimal.NewFromInt(-1)}, true},
		{"Scrimmage lowercase currency", &ScrimmageRequest{Title: "5v5", TypeID: testItemID, StartAt: start, EndAt: start.Add(time.Hour), Currency: "usd"}, true},
		{"Join as coach", &JoinRequest{Role: "coach"}, false},
		{"Join as mascot", &JoinRequest{Role: "mascot"}, true},
		{"Prizes need awards", &PrizesRequest{}, true},
		{"Prize must be positive", &PrizesRequest{Awards: []PrizeAwardRequest{{UserID: testUserID, Amount: decimal.Zero}}}, true},
		{"Event fee percent over 100", &EventRequest{Title: "Gym", StartAt: start, EndAt: start.Add(time.Hour), OrganizerFeePercent: decimal.NewFromInt(101)}, true},
		{"RSVP waitlist is not client settable", &RSVPRequest{Status: "waitlist"}, true},

		// Billing
		{"Valid plan", &PlanRequest{Name: "Pro", Price: decimal.NewFromInt(10), Currency: "USD", Interval: "year"}, false},
		{"Free plan", &PlanRequest{Name: "Pro", Price: decimal.Zero, Currency: "USD", Interval: "year"}, true},
		{"Valid bonus tier", &BonusTierRequest{MinAmount: decimal.NewFromInt(50), BonusPercent: decimal.NewFromInt(5)}, false},
		{"Intent unknown provider", &IntentRequest{Amount: decimal.NewFromInt(5), Provider: "cash"}, true},
		{"Wallet zero amount", &WalletAmountRequest{Amount: decimal.Zero}, true},

		// Social
		{"Profile partial patch", &ProfilePatchRequest{Bio: strPtr("hi")}, false},
		{"Profile bad avatar", &ProfilePatchRequest{AvatarURL: strPtr("not a url")}, true},
		{"Thread participant ids", &ThreadRequest{ParticipantIDs: []string{testOtherID}}, false},
		{"Thread bad participant id", &ThreadRequest{ParticipantIDs: []string{"bob"}}, true},
		{"Empty message", &MessageRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

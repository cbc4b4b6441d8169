//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/chat"
	"github.com/MGTheTrain/scrimhub/internal/domain/payments"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestThreadModel_ParticipantsLoadedSeparately(t *testing.T) {
	now := time.Now()
	thread := &chat.Thread{ID: "t-1", Title: "Team", ParticipantIDs: []string{"a", "b"}, CreatedAt: now, UpdatedAt: now}

	model := &ThreadModel{}
	model.FromDomain(thread)

	assert.Equal(t, thread, model.ToDomain([]string{"a", "b"}))
	assert.Empty(t, model.ToDomain(nil).ParticipantIDs)
}

func TestMessageModel_ToDomain(t *testing.T) {
	model := &MessageModel{ID: "m-1", ThreadID: "t-1", SenderID: "a", Body: "hi", CreatedAt: time.Now()}

	msg := model.ToDomain([]string{"a"})

	assert.Equal(t, model.Body, msg.Body)
	assert.Equal(t, []string{"a"}, msg.ReadBy)
}

func TestTransactionModel_FromDomainToDomain(t *testing.T) {
	txn := &payments.Transaction{
		ID:        "11111111-1111-4111-8111-111111111111",
		UserID:    "22222222-2222-4222-8222-222222222222",
		AppSource: payments.SourceScrimmage,
		RelatedID: "scrim-1",
		Amount:    decimal.RequireFromString("99.50"),
		Currency:  "THB",
		Provider:  payments.ProviderCredits,
		Method:    payments.MethodCredits,
		Status:    payments.StatusSucceeded,
	}

	model := &TransactionModel{}
	model.FromDomain(txn)

	assert.Equal(t, txn, model.ToDomain())
}

func TestAll_ListsUniqueTables(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range All() {
		tabler, ok := m.(interface{ TableName() string })
		assert.True(t, ok)
		name := tabler.TableName()
		assert.False(t, seen[name], name)
		seen[name] = true
	}
}

//go:build unit
// +build unit

package chat

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestThread_HasParticipant(t *testing.T) {
	a, b := uuid.NewString(), uuid.NewString()
	thread := &Thread{ID: uuid.NewString(), ParticipantIDs: []string{a}}

	assert.True(t, thread.HasParticipant(a))
	assert.False(t, thread.HasParticipant(b))
}

func TestMessage_Validate(t *testing.T) {
	base := Message{ID: uuid.NewString(), ThreadID: uuid.NewString(), SenderID: uuid.NewString(), Body: "gg"}
	assert.NoError(t, base.Validate())

	empty := base
	empty.Body = ""
	assert.Error(t, empty.Validate())

	long := base
	long.Body = strings.Repeat("x", 5001)
	assert.Error(t, long.Validate())
}

//go:build unit
// +build unit

package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/scrimhub/internal/domain/notifications"
	"github.com/MGTheTrain/scrimhub/internal/pkg/testutil"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PushToConnectedUser(t *testing.T) {
	hub := NewHub(nil, testutil.SetupTestLogger(t))
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, r.URL.Query().Get("user"))
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?user=u1"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.ConnectionCount("u1") == 1 }, time.Second, 10*time.Millisecond)

	assert.Equal(t, 0, hub.Push("u2", notifications.Frame{Type: notifications.FrameNotification}))

	delivered := hub.Push("u1", notifications.Frame{
		Type:    notifications.FrameNotification,
		Payload: map[string]string{"title": "Payment received"},
	})
	assert.Equal(t, 1, delivered)

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame struct {
		Type    string            `json:"type"`
		Payload map[string]string `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(data, &frame))
	assert.Equal(t, notifications.FrameNotification, frame.Type)
	assert.Equal(t, "Payment received", frame.Payload["title"])
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub := NewHub(nil, testutil.SetupTestLogger(t))
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, "u1")
	}))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.ConnectionCount("u1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.ConnectionCount("u1") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_CheckOrigin(t *testing.T) {
	hub := NewHub([]string{"https://app.scrimhub.test"}, testutil.SetupTestLogger(t))
	defer hub.Close()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = hub.Serve(w, r, "u1")
	}))
	defer server.Close()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")

	tests := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{"NoOrigin", "", true},
		{"Configured", "https://app.scrimhub.test", true},
		{"SameHost", server.URL, true},
		{"Foreign", "https://evil.example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}
			conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
			if tt.allowed {
				require.NoError(t, err)
				conn.Close()
				return
			}
			require.ErrorIs(t, err, websocket.ErrBadHandshake)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		})
	}
}

func TestHub_WildcardOrigin(t *testing.T) {
	check := originChecker([]string{"*"})

	r := httptest.NewRequest(http.MethodGet, "http://api.scrimhub.test/ws", nil)
	r.Header.Set("Origin", "https://anywhere.example.com")
	assert.True(t, check(r))

	assert.False(t, originChecker(nil)(r))
}

package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gabapcia/airdrop/internal/pkg/resilience/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBotAPI struct {
	mu       sync.Mutex
	requests []sendMessageRequest
	paths    []string
	respond  func(n int, req sendMessageRequest) (int, sendMessageResponse)
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.paths = append(f.paths, r.URL.Path)
	n := len(f.requests)
	f.mu.Unlock()

	status, res := http.StatusOK, sendMessageResponse{OK: true}
	if f.respond != nil {
		status, res = f.respond(n, req)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(res)
}

func newTestClient(t *testing.T, api *fakeBotAPI, token, chatID string) *client {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	return NewClient(srv.Client(), token, chatID,
		WithAPIURL(srv.URL+"/"),
		WithRateLimit(0),
		WithRetry(retry.New(retry.WithAttempts(3), retry.WithDelay(time.Millisecond), retry.WithMaxDelay(time.Millisecond))),
	)
}

func TestNotify(t *testing.T) {
	t.Run("sends markdown message to chat", func(t *testing.T) {
		api := &fakeBotAPI{}
		c := newTestClient(t, api, "123:abc", "-100")

		err := c.Notify(context.Background(), "*hello*")
		require.NoError(t, err)

		require.Len(t, api.requests, 1)
		assert.Equal(t, "/bot123:abc/sendMessage", api.paths[0])
		assert.Equal(t, "-100", api.requests[0].ChatID)
		assert.Equal(t, "*hello*", api.requests[0].Text)
		assert.Equal(t, "Markdown", api.requests[0].ParseMode)
	})

	t.Run("falls back to plain text when markup is rejected", func(t *testing.T) {
		api := &fakeBotAPI{
			respond: func(_ int, req sendMessageRequest) (int, sendMessageResponse) {
				if req.ParseMode != "" {
					return http.StatusBadRequest, sendMessageResponse{
						ErrorCode:   400,
						Description: "Bad Request: can't parse entities: Can't find end of the entity",
					}
				}
				return http.StatusOK, sendMessageResponse{OK: true}
			},
		}
		c := newTestClient(t, api, "123:abc", "-100")

		err := c.Notify(context.Background(), "✅ Token detected: *My_Token* (MTK)")
		require.NoError(t, err)

		require.Len(t, api.requests, 2)
		assert.Equal(t, "", api.requests[1].ParseMode)
		assert.Equal(t, "✅ Token detected: MyToken  MTK ", api.requests[1].Text)
	})

	t.Run("retries transient failures", func(t *testing.T) {
		api := &fakeBotAPI{
			respond: func(n int, _ sendMessageRequest) (int, sendMessageResponse) {
				if n < 3 {
					return http.StatusTooManyRequests, sendMessageResponse{ErrorCode: 429, Description: "Too Many Requests"}
				}
				return http.StatusOK, sendMessageResponse{OK: true}
			},
		}
		c := newTestClient(t, api, "123:abc", "-100")

		err := c.Notify(context.Background(), "hi")
		require.NoError(t, err)
		assert.Len(t, api.requests, 3)
	})

	t.Run("returns ErrNotification after all attempts fail", func(t *testing.T) {
		api := &fakeBotAPI{
			respond: func(int, sendMessageRequest) (int, sendMessageResponse) {
				return http.StatusBadRequest, sendMessageResponse{ErrorCode: 400, Description: "Bad Request: chat not found"}
			},
		}
		c := newTestClient(t, api, "123:abc", "-100")

		err := c.Notify(context.Background(), "hi")
		require.ErrorIs(t, err, ErrNotification)
		assert.Contains(t, err.Error(), "chat not found")
		assert.Len(t, api.requests, 3)
	})

	t.Run("disabled client sends nothing", func(t *testing.T) {
		api := &fakeBotAPI{}
		c := newTestClient(t, api, "", "-100")

		assert.False(t, c.Enabled())
		require.NoError(t, c.Notify(context.Background(), "hi"))
		assert.Empty(t, api.requests)
	})
}

func TestVerify(t *testing.T) {
	t.Run("sends verification message", func(t *testing.T) {
		api := &fakeBotAPI{}
		c := newTestClient(t, api, "123:abc", "-100")

		require.NoError(t, c.Verify(context.Background()))
		require.Len(t, api.requests, 1)
		assert.Equal(t, verificationMessage, api.requests[0].Text)
	})

	t.Run("disabled client", func(t *testing.T) {
		c := newTestClient(t, &fakeBotAPI{}, "123:abc", "")

		assert.ErrorIs(t, c.Verify(context.Background()), ErrDisabled)
	})

	t.Run("rejected token", func(t *testing.T) {
		api := &fakeBotAPI{
			respond: func(int, sendMessageRequest) (int, sendMessageResponse) {
				return http.StatusUnauthorized, sendMessageResponse{ErrorCode: 401, Description: "Unauthorized"}
			},
		}
		c := newTestClient(t, api, "123:abc", "-100")

		err := c.Verify(context.Background())
		require.ErrorIs(t, err, ErrNotification)
		assert.Len(t, api.requests, 1)
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("waiting for the limiter honors context cancellation", func(t *testing.T) {
		// Arrange
		api := &fakeBotAPI{}
		srv := httptest.NewServer(api)
		t.Cleanup(srv.Close)

		c := NewClient(srv.Client(), "123:abc", "-100", WithAPIURL(srv.URL), WithRateLimit(1))
		require.NoError(t, c.Verify(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		// Act
		start := time.Now()
		err := c.Verify(ctx)

		// Assert
		require.ErrorIs(t, err, ErrNotification)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), 500*time.Millisecond)
		assert.Len(t, api.requests, 1)
	})

	t.Run("canceled context sends nothing", func(t *testing.T) {
		// Arrange
		api := &fakeBotAPI{}
		c := newTestClient(t, api, "123:abc", "-100")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// Act
		err := c.Verify(ctx)

		// Assert
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, api.requests)
	})
}

func TestStripMarkup(t *testing.T) {
	got := StripMarkup("✅ *Sent* `0xabc` [tx](https://etherscan.io/tx/0x1) my_token")
	assert.Equal(t, "✅ Sent 0xabc tx https://etherscan.io/tx/0x1  mytoken", got)
}

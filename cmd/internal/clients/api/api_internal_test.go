package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worshipbuddy/schedulebuddy-cli/cmd/internal/models"
)

// roundTripFunc lets a test stand in for the HTTP transport.
type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

func createResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func newTestClient(do roundTripFunc) *Client {
	return &Client{
		BaseURL:    "https://api.test.invalid",
		HTTPClient: do,
	}
}

func TestDoRequestAccepts2xx(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		client := newTestClient(func(_ *http.Request) (*http.Response, error) {
			return createResponse(status, `{"ok":true}`), nil
		})
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, client.BaseURL, nil)
		require.NoError(t, err)

		body, err := client.doRequest(req)
		assert.NoError(t, err, "status %d", status)
		assert.NotNil(t, body)
	}
}

func TestDoRequestErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"auth detail field", http.StatusBadRequest, `{"detail":"Invalid OTP"}`, "Invalid OTP"},
		{"message field", http.StatusBadRequest, `{"message":"Team already exists"}`, "Team already exists"},
		{"plain text body", http.StatusBadRequest, `user not found`, "user not found"},
		{"empty body falls back to status", http.StatusBadRequest, ``, http.StatusText(http.StatusBadRequest)},
		{"unauthorized", http.StatusUnauthorized, `{"detail":"nope"}`, "401 Unauthorized."},
		{"forbidden", http.StatusForbidden, ``, "403 Forbidden."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(func(_ *http.Request) (*http.Response, error) {
				return createResponse(tc.status, tc.body), nil
			})
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, client.BaseURL, nil)
			require.NoError(t, err)

			_, err = client.doRequest(req)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestMakeRequestWithRetriesDoesNotRetryClientErrors(t *testing.T) {
	calls := 0
	client := newTestClient(func(_ *http.Request) (*http.Response, error) {
		calls++
		return createResponse(http.StatusBadRequest, `{"detail":"bad request"}`), nil
	})

	_, err := client.sendRequest(context.Background(), http.MethodGet, "/teams", nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestMakeRequestWithRetriesDoesNotRetryUnauthorized(t *testing.T) {
	calls := 0
	client := newTestClient(func(_ *http.Request) (*http.Response, error) {
		calls++
		return createResponse(http.StatusUnauthorized, ``), nil
	})

	_, err := client.sendRequest(context.Background(), http.MethodGet, "/teams", nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestMakeRequestWithRetriesRetriesServerErrors(t *testing.T) {
	calls := 0
	client := newTestClient(func(_ *http.Request) (*http.Response, error) {
		calls++
		if calls < 3 {
			return createResponse(http.StatusServiceUnavailable, ``), nil
		}
		return createResponse(http.StatusOK, `[]`), nil
	})

	body, err := client.sendRequest(context.Background(), http.MethodGet, "/teams", nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(body))
	assert.Equal(t, 3, calls)
}

func TestMakeRequestWithRetriesRewindsBody(t *testing.T) {
	var bodies []string
	calls := 0
	client := newTestClient(func(req *http.Request) (*http.Response, error) {
		calls++
		b, _ := io.ReadAll(req.Body)
		bodies = append(bodies, string(b))
		if calls < 2 {
			return createResponse(http.StatusInternalServerError, ``), nil
		}
		return createResponse(http.StatusOK, `{}`), nil
	})

	_, err := client.sendRequest(context.Background(), http.MethodPost, "/teams", map[string]string{"team_name": "Ushers"})
	require.NoError(t, err)
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
	assert.NotEmpty(t, bodies[1])
}

func TestMakeRequestWithRetriesHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := newTestClient(func(_ *http.Request) (*http.Response, error) {
		t.Fatal("transport should not be reached after cancellation")
		return nil, nil
	})

	_, err := client.sendRequest(ctx, http.MethodGet, "/teams", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDecodeResponseServiceAssignees(t *testing.T) {
	body := []byte(`[{
		"_id": "svc-1",
		"service_name": "Sunday Gathering",
		"start_datetime": "2026-06-07T15:00:00Z",
		"end_datetime": "2026-06-07T16:30:00Z",
		"teams": [{
			"team_name": "Worship",
			"positions": {
				"Vocals": ["a@x.com", "b@x.com"],
				"Drums": "solo@x.com",
				"Keys": ""
			}
		}]
	}]`)

	services, err := decodeResponse[[]models.Service](body)
	require.NoError(t, err)
	require.Len(t, services, 1)

	positions := services[0].Teams[0].Positions
	assert.Equal(t, models.Assignees{"a@x.com", "b@x.com"}, positions["Vocals"])
	assert.Equal(t, models.Assignees{"solo@x.com"}, positions["Drums"])
	assert.Empty(t, positions["Keys"])
}

func TestDecodeResponseMalformed(t *testing.T) {
	_, err := decodeResponse[[]models.Team]([]byte(`{"not":"a list"}`))
	assert.Error(t, err)
}

func TestIsRetryableError(t *testing.T) {
	client := newTestClient(nil)

	assert.True(t, client.isRetryableError(context.DeadlineExceeded))
	assert.True(t, client.isRetryableError(eris.New("503 Service Unavailable")))
	assert.True(t, client.isRetryableError(eris.New("429 Too Many Requests")))
	assert.False(t, client.isRetryableError(eris.New("404 Not Found")))
	assert.False(t, client.isRetryableError(assert.AnError))
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/tidwall/gjson"

	"github.com/worshipbuddy/schedulebuddy-cli/common/printer"
)

const (
	jitterDivisor = 2 // Divisor used to calculate maximum jitter range
)

// NewClient creates a new API client with the given base URL.
func NewClient(baseURL string) ClientInterface {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// sendRequest sends an HTTP request and returns the raw response body.
func (c *Client) sendRequest(ctx context.Context, method, endpoint string, body interface{}) ([]byte, error) {
	req, err := c.prepareRequest(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	return c.makeRequestWithRetries(ctx, req)
}

// prepareRequest creates an HTTP request with the proper headers. The API is
// unauthenticated beyond the OTP flow, so no credentials are attached.
func (c *Client) prepareRequest(ctx context.Context, method, endpoint string, body interface{}) (*http.Request, error) {
	var bodyReader io.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, eris.Wrap(err, "Failed to marshal request body")
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	url := c.BaseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, eris.Wrap(err, "Failed to create request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// makeRequestWithRetries executes the HTTP request with exponential backoff retry logic.
//
//nolint:gocognit // breaking this up will increase complexity of the package.
func (c *Client) makeRequestWithRetries(ctx context.Context, req *http.Request) ([]byte, error) {
	config := DefaultRequestConfig()
	var lastErr error

	for i := 0; i < config.MaxRetries; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			if i > 0 {
				printer.MoveCursorUp(1)
				printer.ClearToEndOfLine()
				printer.Infoln("Retrying...                                                                  ")
				// The body reader is consumed by each attempt.
				if req.GetBody != nil {
					fresh, err := req.GetBody()
					if err != nil {
						return nil, eris.Wrap(err, "Failed to rewind request body")
					}
					req.Body = fresh
				}
			}

			respBody, err := c.doRequest(req)
			if err == nil {
				return respBody, nil
			}

			// Don't retry if unauthorized
			if strings.Contains(err.Error(), "Unauthorized.") || strings.Contains(err.Error(), "Forbidden.") {
				return nil, err
			}

			// Check if the error is retryable
			if !c.isRetryableError(err) {
				return nil, err
			}

			if i < config.MaxRetries-1 { // Don't print retry message on last attempt
				// Apply exponential backoff with jitter
				delay := c.exponentialBackoffWithJitter(config.BaseDelay, i)
				prompt := fmt.Sprintf("Failed to make request [%s]: %s. Will retry...", req.URL, err.Error())
				printer.MoveCursorUp(1) // move cursor up to overwrite the previous "Retrying" line
				printer.Errorln(prompt)

				// Use timer instead of Sleep to handle cancellation
				timer := time.NewTimer(delay)
				select {
				case <-ctx.Done():
					timer.Stop()
					return nil, ctx.Err()
				case <-timer.C:
				}
			} else {
				printer.MoveCursorUp(1)
				printer.ClearToEndOfLine()
			}
			lastErr = err
		}
	}

	return nil, eris.Wrapf(lastErr, "Failed after %d retries", config.MaxRetries)
}

// doRequest executes a single HTTP request. Any 2xx status is a success; error
// bodies carry either a "detail" field (auth endpoints), a "message" field, or
// plain text.
func (c *Client) doRequest(req *http.Request) ([]byte, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, eris.New("401 Unauthorized.")
		}
		if resp.StatusCode == http.StatusForbidden {
			return nil, eris.New("403 Forbidden.")
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return nil, eris.New(errorMessage(resp.Status, body))
	}

	return io.ReadAll(resp.Body)
}

// errorMessage extracts a human-readable message from an error response body.
func errorMessage(status string, body []byte) string {
	if detail := gjson.GetBytes(body, "detail").String(); detail != "" {
		return detail
	}
	if message := gjson.GetBytes(body, "message").String(); message != "" {
		return message
	}
	if text := strings.TrimSpace(string(body)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return status
}

// isRetryableError checks if the error is transient and should be retried.
func (c *Client) isRetryableError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Check network errors
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}

	// Check HTTP status codes in error message (fallback)
	errorMsg := err.Error()
	return strings.Contains(errorMsg, "500") ||
		strings.Contains(errorMsg, "502") ||
		strings.Contains(errorMsg, "503") ||
		strings.Contains(errorMsg, "504") ||
		strings.Contains(errorMsg, "429")
}

// exponentialBackoffWithJitter calculates delay with exponential backoff and jitter.
func (c *Client) exponentialBackoffWithJitter(base time.Duration, attempt int) time.Duration {
	backoff := base * (1 << attempt)                                     // Exponential growth
	jitter := time.Duration(rand.Int63n(int64(backoff / jitterDivisor))) //nolint:gosec // it's safe to use rand here
	return backoff + jitter
}

// decodeResponse unmarshals a response body into T. The API returns raw JSON
// documents with no envelope.
func decodeResponse[T any](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, eris.Wrap(err, "Failed to parse response")
	}
	return out, nil
}

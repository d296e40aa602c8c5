// Package client talks to the response-logging API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rcliao/year-card/internal/model"
)

// SaveResponsePayload is the body of POST /api/responses.
type SaveResponsePayload struct {
	Name       string           `json:"name"`
	LoveAnswer model.LoveAnswer `json:"loveAnswer"`
	Wish       model.Wish       `json:"wish"`
}

// SaveResponseResult is the API's reply to a saved response.
type SaveResponseResult struct {
	OK bool   `json:"ok"`
	ID string `json:"id,omitempty"`
}

// Client calls the response-logging API.
type Client struct {
	baseURL string
	client  *http.Client
}

// New returns a Client for baseURL. A zero timeout means 15s.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// SaveResponse posts p. A non-2xx reply becomes an error carrying the
// response body text.
func (c *Client) SaveResponse(ctx context.Context, p SaveResponsePayload) (*SaveResponseResult, error) {
	body, _ := json.Marshal(p)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/responses", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("save response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		if text := string(b); text != "" {
			return nil, &StatusError{Code: resp.StatusCode, Body: text}
		}
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var result SaveResponseResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

// StatusError is returned for non-2xx replies.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("Failed to save response (%d)", e.Code)
}

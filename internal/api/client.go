// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the Empath chat backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the Empath API client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeNotRunning
	ErrTypeTimeout
	ErrTypeConnection
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrNotRunning = &ClientError{Type: ErrTypeNotRunning, Message: "assistant backend is not reachable"}
	ErrTimeout    = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the Empath client.
type ClientConfig struct {
	// BaseURL is the backend base URL (default: http://127.0.0.1:5000)
	// Note: Uses explicit IPv4 address instead of localhost to avoid IPv6
	// resolution issues on Windows
	BaseURL string

	// Timeout for chat requests (default: 30s). A request past this bound
	// is treated as failed; there are no retries.
	Timeout time.Duration

	// UserID is the fixed placeholder identifier carried on every send
	// (default: "anonymous").
	UserID string

	// CountryCode is the fixed placeholder locale code carried on every
	// send, used by the backend to pick a helpline (default: "IN").
	CountryCode string
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:     "http://127.0.0.1:5000",
		Timeout:     30 * time.Second,
		UserID:      "anonymous",
		CountryCode: "IN",
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the Empath backend.
// It is safe for concurrent use.
//
// Example:
//
//	client := api.NewClient()
//	resp, err := client.Chat(ctx, "I had a rough day")
//	text, _ := api.ReplyText(resp, err)
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a new Empath client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new Empath client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.UserID == "" {
		config.UserID = "anonymous"
	}
	if config.CountryCode == "" {
		config.CountryCode = "IN"
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckRunning verifies that the backend is reachable.
func (c *Client) CheckRunning(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/debug/env", nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrNotRunning
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeConnection,
			Message: "unexpected status from backend: " + resp.Status,
		}
	}

	return nil
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends one message to the backend and returns the reply.
// A single attempt is made; any failure is returned as a typed error for
// the caller to substitute with the generic fallback text.
func (c *Client) Chat(ctx context.Context, message string) (*ChatResponse, error) {
	reqBody := ChatRequest{
		UserID:      c.config.UserID,
		Message:     message,
		CountryCode: c.config.CountryCode,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, ErrTimeout
		}
		if errors.Is(err, context.Canceled) {
			return nil, &ClientError{Type: ErrTypeConnection, Message: "request canceled", Cause: err}
		}
		return nil, ErrNotRunning
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Try to read the backend's error message for the log
		var errBody ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil && errBody.Error != "" {
			return nil, &ClientError{
				Type:    ErrTypeInvalidResponse,
				Message: "chat request failed: " + errBody.Error,
			}
		}
		return nil, &ClientError{
			Type:    ErrTypeInvalidResponse,
			Message: "chat request failed: " + resp.Status,
		}
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	return &result, nil
}

// =============================================================================
// UTILITY METHODS
// =============================================================================

// GetConfig returns the client configuration.
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// IsNotRunning checks if an error indicates the backend is unreachable.
func IsNotRunning(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeNotRunning
	}
	return errors.Is(err, ErrNotRunning)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeTimeout
	}
	return errors.Is(err, ErrTimeout)
}

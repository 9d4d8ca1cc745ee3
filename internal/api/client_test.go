// Copyright (c) 2025 Empath Labs
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(url string) *Client {
	return NewClientWithConfig(&ClientConfig{
		BaseURL:     url,
		Timeout:     2 * time.Second,
		UserID:      "test-user",
		CountryCode: "IN",
	})
}

func TestChat_Success(t *testing.T) {
	var gotReq ChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %q, want /api/chat", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("method = %q, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(ChatResponse{Role: "bot", Text: "Hello"})
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.Chat(context.Background(), "hi there")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}

	if resp.Text != "Hello" {
		t.Errorf("Text = %q, want %q", resp.Text, "Hello")
	}
	if gotReq.UserID != "test-user" {
		t.Errorf("UserID = %q, want %q", gotReq.UserID, "test-user")
	}
	if gotReq.Message != "hi there" {
		t.Errorf("Message = %q, want %q", gotReq.Message, "hi there")
	}
	if gotReq.CountryCode != "IN" {
		t.Errorf("CountryCode = %q, want %q", gotReq.CountryCode, "IN")
	}
}

func TestChat_CrisisFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ChatResponse{Role: "bot", Text: "Please reach out", Crisis: true})
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).Chat(context.Background(), "help")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if !resp.Crisis {
		t.Error("Crisis flag should be preserved")
	}
}

func TestChat_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "internal_server_error"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Chat(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestChat_NotRunning(t *testing.T) {
	// Point at a closed port
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestClient(url).Chat(context.Background(), "hi")
	if !IsNotRunning(err) {
		t.Errorf("expected not-running error, got %v", err)
	}
}

func TestChat_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClientWithConfig(&ClientConfig{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	_, err := client.Chat(context.Background(), "hi")
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestCheckRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/debug/env" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := newTestClient(srv.URL).CheckRunning(context.Background()); err != nil {
		t.Errorf("CheckRunning failed: %v", err)
	}
}

func TestReplyText(t *testing.T) {
	tests := []struct {
		name   string
		resp   *ChatResponse
		err    error
		want   string
		wantOK bool
	}{
		{"success", &ChatResponse{Text: "Hello"}, nil, "Hello", true},
		{"missing text", &ChatResponse{Role: "bot"}, nil, FallbackNoReply, true},
		{"nil response", nil, nil, FallbackNoReply, true},
		{"failure", nil, ErrNotRunning, FallbackError, false},
		{"timeout", nil, ErrTimeout, FallbackError, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ReplyText(tt.resp, tt.err)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ReplyText() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	client := NewClientWithConfig(&ClientConfig{})
	cfg := client.GetConfig()

	if cfg.BaseURL != "http://127.0.0.1:5000" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.UserID != "anonymous" {
		t.Errorf("UserID = %q", cfg.UserID)
	}
	if cfg.CountryCode != "IN" {
		t.Errorf("CountryCode = %q", cfg.CountryCode)
	}
}

package services

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/eventlane/eventlane/internal/logging"
)

// stubBackend routes calls to function fields; unset methods fail the test.
type stubBackend struct {
	t      *testing.T
	get    func(ctx context.Context, path string, out any) error
	post   func(ctx context.Context, path string, body, out any) error
	put    func(ctx context.Context, path string, body, out any) error
	delete func(ctx context.Context, path string) error
}

func (s *stubBackend) Get(ctx context.Context, path string, out any) error {
	if s.get == nil {
		s.t.Fatalf("unexpected GET %s", path)
	}
	return s.get(ctx, path, out)
}

func (s *stubBackend) Post(ctx context.Context, path string, body, out any) error {
	if s.post == nil {
		s.t.Fatalf("unexpected POST %s", path)
	}
	return s.post(ctx, path, body, out)
}

func (s *stubBackend) Put(ctx context.Context, path string, body, out any) error {
	if s.put == nil {
		s.t.Fatalf("unexpected PUT %s", path)
	}
	return s.put(ctx, path, body, out)
}

func (s *stubBackend) Delete(ctx context.Context, path string) error {
	if s.delete == nil {
		s.t.Fatalf("unexpected DELETE %s", path)
	}
	return s.delete(ctx, path)
}

// decodeInto mimics the API client's decode step for stubbed responses.
func decodeInto(t *testing.T, raw string, out any) {
	t.Helper()
	if out == nil {
		return
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		t.Fatalf("decode stub response: %v", err)
	}
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

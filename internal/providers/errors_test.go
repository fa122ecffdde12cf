package providers

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Provider: "espn", StatusCode: 502, Message: "bad gateway"}
	if !strings.Contains(err.Error(), "status=502") {
		t.Fatalf("expected status in message, got %s", err.Error())
	}

	wrapped := fmt.Errorf("fetch scoreboard: %w", err)
	stErr, ok := AsStatusError(wrapped)
	if !ok || stErr.StatusCode != 502 {
		t.Fatalf("expected unwrapped status error, got %v", wrapped)
	}
}

func TestUpstreamShapeError(t *testing.T) {
	err := &UpstreamShapeError{Provider: "espn", Field: "events[].id"}
	if !strings.Contains(err.Error(), "events[].id") {
		t.Fatalf("expected field in message, got %s", err.Error())
	}

	wrapped := fmt.Errorf("flatten: %w", err)
	shapeErr, ok := AsUpstreamShapeError(wrapped)
	if !ok || shapeErr.Field != "events[].id" {
		t.Fatalf("expected unwrapped shape error, got %v", wrapped)
	}

	if _, ok := AsUpstreamShapeError(errors.New("boom")); ok {
		t.Fatal("expected plain error to not unwrap")
	}
}

func TestRateLimitError(t *testing.T) {
	err := &RateLimitError{Provider: "espn", StatusCode: 429, RetryAfter: time.Second}
	if !strings.Contains(err.Error(), "status=429") {
		t.Fatalf("expected status in message, got %s", err.Error())
	}
	if _, ok := AsRateLimitError(err); !ok {
		t.Fatal("expected rate limit error to unwrap")
	}
}

func TestErrGameNotFoundIsSentinel(t *testing.T) {
	wrapped := fmt.Errorf("find game: %w", ErrGameNotFound)
	if !errors.Is(wrapped, ErrGameNotFound) {
		t.Fatal("expected wrapped sentinel to match")
	}
}

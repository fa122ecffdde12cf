package server

import (
	"testing"

	"nfl-data-service/internal/config"
	"nfl-data-service/internal/providers/fixture"
)

func TestProviderFactoryBuildsWithDefaultInterval(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: "fixture"}, fixture.New())
	if prov == nil {
		t.Fatalf("expected provider")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("ESPN", nil); got != "espn" {
		t.Fatalf("expected lower-cased name, got %s", got)
	}
	if got := normalizeProviderName("", fixture.New()); got == "" || got == "provider" {
		t.Fatalf("expected derived name, got %s", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %s", got)
	}
}

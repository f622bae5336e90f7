package scraper

import (
	"testing"
	"time"

	"github.com/navid-fn/dailybar/internal/models"
	"github.com/sirupsen/logrus"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSortBars(t *testing.T) {
	bars := []models.Bar{{Time: day(3)}, {Time: day(1)}, {Time: day(2)}}

	SortBars(bars)

	for i, want := range []int{1, 2, 3} {
		if bars[i].Time.Day() != want {
			t.Errorf("Position %d: expected day %d, got %d", i, want, bars[i].Time.Day())
		}
	}
}

func TestTailBars(t *testing.T) {
	bars := []models.Bar{{Time: day(1)}, {Time: day(2)}, {Time: day(3)}, {Time: day(4)}}

	tests := []struct {
		name     string
		n        int
		expected int
		firstDay int
	}{
		{"Keep most recent 2", 2, 2, 3},
		{"Limit equals length", 4, 4, 1},
		{"Limit above length", 3681, 4, 1},
		{"Zero keeps all", 0, 4, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TailBars(bars, tt.n)
			if len(got) != tt.expected {
				t.Fatalf("Expected %d bars, got %d", tt.expected, len(got))
			}
			if got[0].Time.Day() != tt.firstDay {
				t.Errorf("Expected first day %d, got %d", tt.firstDay, got[0].Time.Day())
			}
		})
	}
}

func TestDefaultHTTPConfig(t *testing.T) {
	baseURL := "https://api.example.com"

	config := DefaultHTTPConfig(baseURL, 2.0)

	if config.BaseURL != baseURL {
		t.Errorf("Expected BaseURL '%s', got '%s'", baseURL, config.BaseURL)
	}
	if config.RateLimiter == nil {
		t.Fatal("Expected RateLimiter to be initialized")
	}
	if config.RateLimiter.Limit() != 2.0 {
		t.Errorf("Expected limit 2, got %v", config.RateLimiter.Limit())
	}
	if config.RequestTimeout != 30*time.Second {
		t.Errorf("Expected RequestTimeout 30s, got %v", config.RequestTimeout)
	}
	if config.NewClient().Timeout != config.RequestTimeout {
		t.Error("Expected client timeout to follow RequestTimeout")
	}
}

func TestDefaultHTTPConfigUnlimited(t *testing.T) {
	config := DefaultHTTPConfig("https://api.example.com", 0)

	if !config.RateLimiter.Allow() || !config.RateLimiter.Allow() {
		t.Error("Expected unlimited limiter to always allow")
	}
}

func TestNewLogger(t *testing.T) {
	if logger := NewLogger("debug"); logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %v", logger.GetLevel())
	}
	if logger := NewLogger("loud"); logger.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected fallback to info, got %v", logger.GetLevel())
	}
}

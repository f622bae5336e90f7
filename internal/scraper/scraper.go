package scraper

import (
	"context"
	"sort"

	"github.com/navid-fn/dailybar/internal/models"
)

// HistoryFetcher is the interface all market-data drivers must implement.
type HistoryFetcher interface {
	// FetchDaily returns the full daily history of symbol, ascending by date.
	FetchDaily(ctx context.Context, symbol string) ([]models.Bar, error)
	Name() string
}

// SortBars orders bars ascending by trading day, in place.
func SortBars(bars []models.Bar) {
	sort.SliceStable(bars, func(i, j int) bool {
		return bars[i].Time.Before(bars[j].Time)
	})
}

// TailBars keeps the most recent n bars of an ascending series.
// n <= 0 keeps everything.
func TailBars(bars []models.Bar, n int) []models.Bar {
	if n <= 0 || len(bars) <= n {
		return bars
	}
	return bars[len(bars)-n:]
}

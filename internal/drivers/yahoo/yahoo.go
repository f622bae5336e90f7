package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/navid-fn/dailybar/internal/models"
	"github.com/navid-fn/dailybar/internal/scraper"
	"github.com/sirupsen/logrus"
)

const chartAPI = "%s/v8/finance/chart/%s?%s"

// Yahoo fetches daily history from the Yahoo Finance chart API.
// A single request covers the whole history; nothing is retried.
type Yahoo struct {
	config     *scraper.HTTPConfig
	httpClient *http.Client
	logger     *logrus.Entry

	autoAdjust bool
	maxRows    int
}

// NewYahooFetcher creates a driver that keeps the most recent maxRows bars
// (maxRows <= 0 keeps the full history).
func NewYahooFetcher(config *scraper.HTTPConfig, autoAdjust bool, maxRows int, logger *logrus.Logger) *Yahoo {
	return &Yahoo{
		config:     config,
		httpClient: config.NewClient(),
		logger:     logger.WithField("driver", "yahoo"),
		autoAdjust: autoAdjust,
		maxRows:    maxRows,
	}
}

func (y *Yahoo) Name() string { return "yahoo" }

// FetchDaily downloads the maximum available daily history of symbol.
func (y *Yahoo) FetchDaily(ctx context.Context, symbol string) ([]models.Bar, error) {
	if err := y.config.RateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("range", "max")
	query.Set("interval", "1d")
	query.Set("events", "div,split")
	query.Set("includeAdjustedClose", "true")
	endpoint := fmt.Sprintf(chartAPI, y.config.BaseURL, url.PathEscape(symbol), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", y.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	y.logger.WithField("symbol", symbol).Debug("Requesting chart history")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	var data chartResponse
	if err := json.Unmarshal(body, &data); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("failed to unmarshal: %w", err)
	}

	// Unknown symbols come back as 404 with a populated chart.error.
	if data.Chart.Error != nil {
		return nil, fmt.Errorf("API returned error for %s: %w", symbol, data.Chart.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	if len(data.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}

	bars, err := data.Chart.Result[0].toBars(y.autoAdjust)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, err)
	}

	total := len(bars)
	bars = scraper.TailBars(bars, y.maxRows)

	y.logger.WithFields(logrus.Fields{
		"symbol":    symbol,
		"available": total,
		"kept":      len(bars),
	}).Info("Fetched daily history")

	return bars, nil
}

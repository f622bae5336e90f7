// Package yahoo provides a daily history driver for the Yahoo Finance chart API.
// This file holds the response model and its conversion to bars.
//
// Response format (trimmed):
//
//	{
//	  "chart": {
//	    "result": [{
//	      "meta": {"symbol": "AAPL", "exchangeTimezoneName": "America/New_York", "gmtoffset": -14400},
//	      "timestamp": [1717421400, 1717507800],
//	      "indicators": {
//	        "quote": [{"open": [..], "high": [..], "low": [..], "close": [..], "volume": [..]}],
//	        "adjclose": [{"adjclose": [..]}]
//	      }
//	    }],
//	    "error": null
//	  }
//	}
//
// Any array entry may be null.
package yahoo

import (
	"errors"
	"fmt"
	"math"

	"github.com/navid-fn/dailybar/internal/models"
	"github.com/navid-fn/dailybar/internal/scraper"
	"github.com/navid-fn/dailybar/utils"
)

var (
	// ErrNoData is returned when the provider answers without any bars.
	ErrNoData = errors.New("no price data returned")

	// ErrMismatchedArrays is returned when the parallel arrays differ in length.
	ErrMismatchedArrays = errors.New("mismatched array lengths in chart response")
)

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *chartError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

type chartMeta struct {
	Symbol               string `json:"symbol"`
	ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	GMTOffset            int    `json:"gmtoffset"`
}

type quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type adjClose struct {
	AdjClose []*float64 `json:"adjclose"`
}

type chartResult struct {
	Meta       chartMeta `json:"meta"`
	Timestamps []int64   `json:"timestamp"`
	Indicators struct {
		Quote    []quote    `json:"quote"`
		AdjClose []adjClose `json:"adjclose"`
	} `json:"indicators"`
}

// toBars converts parallel arrays into bars: nulls become NaN, rows with no
// price at all are dropped, and the result is ascending with one bar per day.
func (r *chartResult) toBars(autoAdjust bool) ([]models.Bar, error) {
	length := len(r.Timestamps)
	if length == 0 || len(r.Indicators.Quote) == 0 {
		return nil, ErrNoData
	}

	q := r.Indicators.Quote[0]
	if len(q.Open) != length || len(q.High) != length ||
		len(q.Low) != length || len(q.Close) != length || len(q.Volume) != length {
		return nil, ErrMismatchedArrays
	}

	var adj []*float64
	if autoAdjust && len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
		if len(adj) != length {
			return nil, ErrMismatchedArrays
		}
	}

	loc := utils.ExchangeLocation(r.Meta.ExchangeTimezoneName, r.Meta.GMTOffset)

	bars := make([]models.Bar, 0, length)
	for i := 0; i < length; i++ {
		bar := models.Bar{
			Time:   utils.TurnTimeStampToDay(r.Timestamps[i], loc),
			Open:   value(q.Open[i]),
			High:   value(q.High[i]),
			Low:    value(q.Low[i]),
			Close:  value(q.Close[i]),
			Volume: value(q.Volume[i]),
		}
		if math.IsNaN(bar.Open) && math.IsNaN(bar.High) && math.IsNaN(bar.Low) && math.IsNaN(bar.Close) {
			continue
		}
		if adj != nil {
			adjust(&bar, value(adj[i]))
		}
		bars = append(bars, bar)
	}

	if len(bars) == 0 {
		return nil, ErrNoData
	}

	scraper.SortBars(bars)
	return dedupeDays(bars), nil
}

// adjust rescales prices so that Close equals the adjusted close.
// Bars without a usable ratio are left untouched.
func adjust(bar *models.Bar, adjClose float64) {
	if math.IsNaN(adjClose) || math.IsNaN(bar.Close) || bar.Close == 0 {
		return
	}
	ratio := adjClose / bar.Close
	bar.Open *= ratio
	bar.High *= ratio
	bar.Low *= ratio
	bar.Close = adjClose
}

// dedupeDays keeps the last bar of each trading day in an ascending series.
func dedupeDays(bars []models.Bar) []models.Bar {
	out := bars[:0]
	for _, bar := range bars {
		if n := len(out); n > 0 && out[n-1].Time.Equal(bar.Time) {
			out[n-1] = bar
			continue
		}
		out = append(out, bar)
	}
	return out
}

func value(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

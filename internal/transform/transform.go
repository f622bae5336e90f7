// Package transform derives vendor-style daily records from raw OHLCV bars.
package transform

import (
	"errors"
	"fmt"
	"math"

	"github.com/navid-fn/dailybar/internal/models"
	"github.com/navid-fn/dailybar/utils"
	"github.com/shopspring/decimal"
)

// volumeWindow is the trailing window of the volume ratio.
const volumeWindow = 5

// boardLot is the number of shares in one traded lot.
const boardLot = 100

var ErrInvalidParams = errors.New("invalid transform params")

// Params holds the constants the derivations depend on.
type Params struct {
	TSCode string

	TotalShare int64
	FloatShare int64
	FreeShare  int64

	PE float64
	PB float64
	PS float64
}

// DefaultParams returns the share counts and ratios used for AAPL.US.
func DefaultParams() Params {
	return Params{
		TSCode:     "AAPL.US",
		TotalShare: 16_500_000_000,
		FloatShare: 16_000_000_000,
		FreeShare:  16_000_000_000,
		PE:         30.0,
		PB:         7.5,
		PS:         7.2,
	}
}

func (p Params) Validate() error {
	if p.TSCode == "" {
		return fmt.Errorf("%w: empty ts_code", ErrInvalidParams)
	}
	if p.FloatShare <= 0 {
		return fmt.Errorf("%w: float share must be positive, got %d", ErrInvalidParams, p.FloatShare)
	}
	if p.TotalShare < 0 || p.FreeShare < 0 {
		return fmt.Errorf("%w: negative share count", ErrInvalidParams)
	}
	return nil
}

// Transform builds one record per bar. bars must be ascending by date.
// The first record has no predecessor: its pre_close is its own close and
// change/pct_chg are zero. Undefined results are written as zero.
func Transform(bars []models.Bar, p Params) ([]models.DailyRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	volumeMA := rollingMean(bars, volumeWindow)
	floatShare := float64(p.FloatShare)

	records := make([]models.DailyRecord, len(bars))
	for i, bar := range bars {
		rec := models.DailyRecord{
			TSCode:       p.TSCode,
			TradeDate:    utils.TradeDate(bar.Time),
			Open:         round(bar.Open, 2),
			High:         round(bar.High, 2),
			Low:          round(bar.Low, 2),
			Close:        round(bar.Close, 2),
			Vol:          round(bar.Volume/boardLot, 2),
			Amount:       round(bar.Close*bar.Volume, 2),
			TurnoverRate: round(bar.Volume/floatShare*100, 4),
			VolumeRatio:  round(bar.Volume/volumeMA[i], 2),
			PE:           p.PE,
			PB:           p.PB,
			PS:           p.PS,
			TotalShare:   p.TotalShare,
			FloatShare:   p.FloatShare,
			FreeShare:    p.FreeShare,
			TotalMV:      round(bar.Close*float64(p.TotalShare), 2),
			CircMV:       round(bar.Close*floatShare, 2),
		}

		if i == 0 {
			rec.PreClose = rec.Close
		} else {
			prev := bars[i-1].Close
			rec.PreClose = round(prev, 2)
			rec.Change = round(bar.Close-prev, 2)
			rec.PctChg = round((bar.Close-prev)/prev*100, 2)
		}

		fillMissing(&rec)
		records[i] = rec
	}

	return records, nil
}

// rollingMean returns the trailing mean volume over up to window bars,
// skipping NaN volumes. A window with no observations yields NaN.
func rollingMean(bars []models.Bar, window int) []float64 {
	means := make([]float64, len(bars))
	for i := range bars {
		var sum float64
		var n int
		for j := max(0, i-window+1); j <= i; j++ {
			if v := bars[j].Volume; !math.IsNaN(v) {
				sum += v
				n++
			}
		}
		if n == 0 {
			means[i] = math.NaN()
			continue
		}
		means[i] = sum / float64(n)
	}
	return means
}

// round rounds half away from zero to the given decimal places.
// NaN and Inf pass through unchanged.
func round(x float64, places int32) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f, _ := decimal.NewFromFloat(x).Round(places).Float64()
	return f
}

// fillMissing zeroes every NaN or infinite numeric field.
func fillMissing(rec *models.DailyRecord) {
	fields := []*float64{
		&rec.Open, &rec.High, &rec.Low, &rec.Close,
		&rec.PreClose, &rec.Change, &rec.PctChg,
		&rec.Vol, &rec.Amount,
		&rec.TurnoverRate, &rec.VolumeRatio,
		&rec.PE, &rec.PB, &rec.PS,
		&rec.TotalMV, &rec.CircMV,
	}
	for _, f := range fields {
		if math.IsNaN(*f) || math.IsInf(*f, 0) {
			*f = 0
		}
	}
}

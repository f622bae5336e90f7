// Package models defines the domain models used across the application.
package models

import "time"

// Bar is a single daily OHLCV bar as delivered by a market-data provider.
// Missing provider values are stored as NaN.
type Bar struct {
	// Time is the trading day in the exchange's local timezone, truncated to midnight.
	Time time.Time `json:"time"`

	// Open is the opening price of the day.
	Open float64 `json:"open"`

	// High is the highest price during the day.
	High float64 `json:"high"`

	// Low is the lowest price during the day.
	Low float64 `json:"low"`

	// Close is the closing price of the day.
	Close float64 `json:"close"`

	// Volume is the number of shares traded.
	Volume float64 `json:"volume"`
}

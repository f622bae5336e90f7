package utils

import (
	"time"
)

// ExchangeLocation resolves an IANA timezone name reported by a provider.
// Falls back to a fixed zone built from gmtOffsetSeconds when the name is
// unknown to the local tz database.
func ExchangeLocation(name string, gmtOffsetSeconds int) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if gmtOffsetSeconds == 0 {
		return time.UTC
	}
	return time.FixedZone(name, gmtOffsetSeconds)
}

// TurnTimeStampToDay converts a unix timestamp (seconds) to midnight of the
// same calendar day in loc.
func TurnTimeStampToDay(timestamp int64, loc *time.Location) time.Time {
	t := time.Unix(timestamp, 0).In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// TradeDate formats a day as YYYYMMDD.
func TradeDate(t time.Time) string {
	return t.Format("20060102")
}

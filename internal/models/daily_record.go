package models

// DailyRecord is one row of the vendor-style daily table written to disk.
// Field order matches the column order of the output file.
type DailyRecord struct {
	// TSCode is the vendor ticker identifier (e.g., "AAPL.US").
	TSCode string `json:"ts_code"`

	// TradeDate is the trading day formatted as YYYYMMDD.
	TradeDate string `json:"trade_date"`

	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`

	// PreClose is the previous day's close. The first record uses its own close.
	PreClose float64 `json:"pre_close"`

	// Change is Close - PreClose.
	Change float64 `json:"change"`

	// PctChg is Change / PreClose * 100.
	PctChg float64 `json:"pct_chg"`

	// Vol is the volume in board lots of 100 shares.
	Vol float64 `json:"vol"`

	// Amount is the notional traded value, Close * Volume.
	Amount float64 `json:"amount"`

	// TurnoverRate is volume as a percentage of float shares.
	TurnoverRate float64 `json:"turnover_rate"`

	// VolumeRatio is volume over its trailing 5-day mean.
	VolumeRatio float64 `json:"volume_ratio"`

	PE float64 `json:"pe"`
	PB float64 `json:"pb"`
	PS float64 `json:"ps"`

	TotalShare int64 `json:"total_share"`
	FloatShare int64 `json:"float_share"`
	FreeShare  int64 `json:"free_share"`

	// TotalMV is Close * TotalShare.
	TotalMV float64 `json:"total_mv"`

	// CircMV is Close * FloatShare.
	CircMV float64 `json:"circ_mv"`
}

// Columns lists the output column names in file order.
var Columns = []string{
	"ts_code", "trade_date",
	"open", "high", "low", "close",
	"pre_close", "change", "pct_chg",
	"vol", "amount",
	"turnover_rate", "volume_ratio",
	"pe", "pb", "ps",
	"total_share", "float_share", "free_share",
	"total_mv", "circ_mv",
}

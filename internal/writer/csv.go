// Package writer serializes daily records to delimited text.
package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/navid-fn/dailybar/internal/models"
)

// floatPrecision is the number of decimals written for every float column.
const floatPrecision = 4

// WriteCSV writes a header row followed by one row per record.
// There is no index column.
func WriteCSV(w io.Writer, records []models.DailyRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(models.Columns); err != nil {
		return err
	}
	for i := range records {
		if err := cw.Write(formatRow(&records[i])); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveCSV creates (or truncates) path and writes records into it.
// The file is written in place; a failure midway leaves a partial file.
func SaveCSV(path string, records []models.DailyRecord) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return WriteCSV(f, records)
}

// formatRow renders a record in models.Columns order.
func formatRow(r *models.DailyRecord) []string {
	return []string{
		r.TSCode,
		r.TradeDate,
		formatFloat(r.Open),
		formatFloat(r.High),
		formatFloat(r.Low),
		formatFloat(r.Close),
		formatFloat(r.PreClose),
		formatFloat(r.Change),
		formatFloat(r.PctChg),
		formatFloat(r.Vol),
		formatFloat(r.Amount),
		formatFloat(r.TurnoverRate),
		formatFloat(r.VolumeRatio),
		formatFloat(r.PE),
		formatFloat(r.PB),
		formatFloat(r.PS),
		strconv.FormatInt(r.TotalShare, 10),
		strconv.FormatInt(r.FloatShare, 10),
		strconv.FormatInt(r.FreeShare, 10),
		formatFloat(r.TotalMV),
		formatFloat(r.CircMV),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', floatPrecision, 64)
}

package writer

import (
	"io"
	"strings"
	"text/tabwriter"

	"github.com/navid-fn/dailybar/internal/models"
)

// Preview prints the first n records as an aligned table.
func Preview(w io.Writer, records []models.DailyRecord, n int) error {
	n = min(n, len(records))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := io.WriteString(tw, strings.Join(models.Columns, "\t")+"\t\n"); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if _, err := io.WriteString(tw, strings.Join(formatRow(&records[i]), "\t")+"\t\n"); err != nil {
			return err
		}
	}
	return tw.Flush()
}

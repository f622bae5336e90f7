package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/navid-fn/dailybar/internal/models"
)

func sampleRecords() []models.DailyRecord {
	return []models.DailyRecord{
		{
			TSCode: "AAPL.US", TradeDate: "20240102",
			Open: 187.15, High: 188.44, Low: 183.89, Close: 185.64,
			PreClose: 185.64, Change: 0, PctChg: 0,
			Vol: 820886.41, Amount: 15238934567.12,
			TurnoverRate: 0.5131, VolumeRatio: 1,
			PE: 30, PB: 7.5, PS: 7.2,
			TotalShare: 16_500_000_000, FloatShare: 16_000_000_000, FreeShare: 16_000_000_000,
			TotalMV: 3063060000000, CircMV: 2970240000000,
		},
		{
			TSCode: "AAPL.US", TradeDate: "20240103",
			Close: 184.25, PreClose: 185.64, Change: -1.39, PctChg: -0.75,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer

	if err := WriteCSV(&buf, sampleRecords()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}

	wantHeader := "ts_code,trade_date,open,high,low,close,pre_close,change,pct_chg,vol,amount," +
		"turnover_rate,volume_ratio,pe,pb,ps,total_share,float_share,free_share,total_mv,circ_mv"
	if lines[0] != wantHeader {
		t.Errorf("Unexpected header:\n got: %s\nwant: %s", lines[0], wantHeader)
	}

	wantFirst := "AAPL.US,20240102,187.1500,188.4400,183.8900,185.6400,185.6400,0.0000,0.0000," +
		"820886.4100,15238934567.1200,0.5131,1.0000,30.0000,7.5000,7.2000," +
		"16500000000,16000000000,16000000000,3063060000000.0000,2970240000000.0000"
	if lines[1] != wantFirst {
		t.Errorf("Unexpected first row:\n got: %s\nwant: %s", lines[1], wantFirst)
	}

	fields := strings.Split(lines[2], ",")
	if len(fields) != len(models.Columns) {
		t.Fatalf("Expected %d fields, got %d", len(models.Columns), len(fields))
	}
	if fields[7] != "-1.3900" || fields[8] != "-0.7500" {
		t.Errorf("Expected change -1.3900 and pct_chg -0.7500, got %s and %s", fields[7], fields[8])
	}
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	// Existing content is replaced, not appended to.
	if err := os.WriteFile(path, []byte("stale\nstale\nstale\nstale\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := SaveCSV(path, sampleRecords()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "stale") {
		t.Error("Expected file to be truncated")
	}
	if got := strings.Count(string(data), "\n"); got != 3 {
		t.Errorf("Expected 3 lines, got %d", got)
	}
}

func TestSaveCSVMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	if err := SaveCSV(path, sampleRecords()); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestPreview(t *testing.T) {
	var buf bytes.Buffer

	if err := Preview(&buf, sampleRecords(), 1); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[0], "ts_code") || !strings.Contains(lines[0], "circ_mv") {
		t.Errorf("Expected header columns, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "20240102") || strings.Contains(buf.String(), "20240103") {
		t.Errorf("Expected only the first record, got %q", buf.String())
	}
}

func TestPreviewMoreRowsThanRecords(t *testing.T) {
	var buf bytes.Buffer

	if err := Preview(&buf, sampleRecords(), 5); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 3 {
		t.Errorf("Expected 3 lines, got %d", got)
	}
}

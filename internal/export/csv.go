// Package export serializes ledger snapshots for download. The column set
// and order are a stable contract consumed by external tooling.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/adaptiq/adaptiq/internal/ledger"
)

// header is the fixed CSV column order.
var header = []string{"Timestamp", "Question", "Selected", "Correct", "Result", "Confidence", "Level"}

// WriteCSV writes the records to w in insertion order with the stable
// header. An empty snapshot still produces the header row.
func WriteCSV(w io.Writer, records []ledger.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Timestamp.Format(time.RFC3339),
			rec.Question,
			rec.Selected,
			rec.Correct,
			string(rec.Outcome),
			strconv.Itoa(rec.Confidence),
			strconv.Itoa(rec.Level),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

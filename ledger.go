package debtservice

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/etnz/debtservice/date"
	"github.com/shopspring/decimal"
)

// Policy tells WriteLedger what to do with the rows already in the ledger.
type Policy int

const (
	// Overwrite truncates the ledger: it always ends with a header and exactly one row.
	Overwrite Policy = iota
	// AppendDedup appends a row, but keeps only the latest row of a given day.
	AppendDedup
)

func (p Policy) String() string {
	switch p {
	case Overwrite:
		return "overwrite"
	case AppendDedup:
		return "append"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// StampFormat is the format of the ledger's date column.
const StampFormat = "2006-01-02 15:04"

var ledgerHeader = []string{"date", "bond_yield", "total_rate", "grand_annual", "grand_interest"}

// LedgerRow is a row of the ledger, as persisted.
type LedgerRow struct {
	Date          string
	BondYield     decimal.Decimal
	TotalRate     decimal.Decimal
	AnnualPayment decimal.Decimal
	TotalInterest decimal.Decimal
}

// Row returns the ledger row for this record, rounded for display.
func (r CostRecord) Row() LedgerRow {
	return LedgerRow{
		Date:          r.Date.Format(StampFormat),
		BondYield:     decimal.NewFromFloat(float64(r.BondYield)).Round(3),
		TotalRate:     decimal.NewFromFloat(float64(r.TotalRate)).Round(3),
		AnnualPayment: decimal.NewFromFloat(r.AnnualPayment).Round(2),
		TotalInterest: decimal.NewFromFloat(r.TotalInterest).Round(2),
	}
}

func (row LedgerRow) record() []string {
	return []string{
		row.Date,
		row.BondYield.String(),
		row.TotalRate.String(),
		row.AnnualPayment.String(),
		row.TotalInterest.String(),
	}
}

// WriteLedger records rec in the CSV ledger at path, according to policy.
//
// There is no locking and no atomic rename: a crash in the middle of a write
// can leave a truncated file.
func WriteLedger(path string, rec CostRecord, policy Policy) error {
	switch policy {
	case Overwrite:
		return overwriteLedger(path, rec.Row())
	case AppendDedup:
		return appendLedger(path, rec.Row())
	}
	return fmt.Errorf("unsupported ledger policy %v", policy)
}

// overwriteLedger writes a fresh ledger made of the header and row.
func overwriteLedger(path string, row LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	w.Write(ledgerHeader)
	w.Write(row.record())
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write ledger %q: %w", path, err)
	}
	return f.Close()
}

// appendLedger appends row to the ledger, or replaces the last row if it is from the same day.
func appendLedger(path string, row LedgerRow) error {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && len(bytes.TrimSpace(content)) == 0) {
		return overwriteLedger(path, row)
	}
	if err != nil {
		return err
	}

	day, err := date.ParseStamp(row.Date)
	if err != nil {
		return err
	}

	// offset is where the new row is written.
	offset := int64(len(content))
	if start, last := lastLine(content); last != nil {
		fields, err := csv.NewReader(bytes.NewReader(last)).Read()
		if err == nil && len(fields) > 0 {
			if lastDay, err := date.ParseStamp(fields[0]); err == nil && lastDay == day {
				offset = int64(start)
			}
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := f.Truncate(offset); err != nil {
		f.Close()
		return err
	}
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		f.Close()
		return err
	}
	if offset > 0 && content[offset-1] != '\n' {
		if _, err := f.Write([]byte{'\n'}); err != nil {
			f.Close()
			return err
		}
	}
	w := csv.NewWriter(f)
	w.Write(row.record())
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("cannot write ledger %q: %w", path, err)
	}
	return f.Close()
}

// lastLine returns the last non empty line in content, and the offset where it starts.
func lastLine(content []byte) (start int, line []byte) {
	trimmed := bytes.TrimRight(content, "\r\n")
	if len(trimmed) == 0 {
		return 0, nil
	}
	start = bytes.LastIndexByte(trimmed, '\n') + 1
	return start, trimmed[start:]
}

// ReadLedger reads all the rows in the ledger at path.
func ReadLedger(path string) ([]LedgerRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger %q: %w", path, err)
	}

	var rows []LedgerRow
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && rec[0] == ledgerHeader[0] {
			continue // header
		}
		if len(rec) < len(ledgerHeader) {
			return nil, fmt.Errorf("ledger %q line %d: want %d fields got %d", path, i+1, len(ledgerHeader), len(rec))
		}
		row := LedgerRow{Date: rec[0]}
		for j, dst := range []*decimal.Decimal{&row.BondYield, &row.TotalRate, &row.AnnualPayment, &row.TotalInterest} {
			*dst, err = decimal.NewFromString(rec[j+1])
			if err != nil {
				return nil, fmt.Errorf("ledger %q line %d: invalid %s %q: %w", path, i+1, ledgerHeader[j+1], rec[j+1], err)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

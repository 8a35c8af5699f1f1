package sentibook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sentibook/sentibook/date"
)

// Ledger is the decoded content of a ledger file: an append-only list of
// records in file order.
type Ledger struct {
	records []Record
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{records: make([]Record, 0)}
}

// Append adds a record at the end of the ledger.
func (l *Ledger) Append(r Record) { l.records = append(l.records, r) }

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns the records in file order. The returned slice is shared;
// callers must not modify it.
func (l *Ledger) Records() []Record { return l.records }

// Has reports whether a record exists for that company on that date. It is a
// linear scan over the full ledger, which is fine at one row per company per
// day.
func (l *Ledger) Has(company string, on date.Date) bool {
	for _, r := range l.records {
		if r.CompanyName == company && r.Date == on {
			return true
		}
	}
	return false
}

// LedgerFile persists records to a CSV file. It only ever appends: existing
// rows are never rewritten.
//
// It assumes single-process access. Two concurrent appends for the same
// company and day can both pass the duplicate check.
type LedgerFile struct {
	Path string
}

// Load decodes the ledger file. A missing file is an empty ledger, not an
// error.
func (f LedgerFile) Load() (*Ledger, error) {
	file, err := os.Open(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", f.Path, err)
	}
	defer file.Close()

	ledger, err := DecodeLedger(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger file %q: %w", f.Path, err)
	}
	return ledger, nil
}

// Append writes the record at the end of the ledger file, creating the file
// (header row first) when it does not exist yet. When a record for the same
// (company, date) pair is already present the write is skipped and Append
// returns added=false: a duplicate is a successful no-op.
func (f LedgerFile) Append(rec Record) (added bool, err error) {
	ledger, err := f.Load()
	if err != nil {
		return false, err
	}
	if ledger.Has(rec.CompanyName, rec.Date) {
		return false, nil
	}

	_, err = os.Stat(f.Path)
	isNew := errors.Is(err, fs.ErrNotExist)

	var buf bytes.Buffer
	if isNew {
		buf.WriteString(Header)
		buf.WriteByte('\n')
	}
	if err := EncodeRecord(&buf, rec); err != nil {
		return false, err
	}

	file, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return false, fmt.Errorf("cannot open ledger file %q: %w", f.Path, err)
	}
	defer file.Close()

	// A single write keeps the append atomic at row granularity.
	if _, err := file.Write(buf.Bytes()); err != nil {
		return false, fmt.Errorf("cannot append to ledger file %q: %w", f.Path, err)
	}
	return true, nil
}

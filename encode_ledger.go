package sentibook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ledgerColumns is the fixed column order of the ledger file.
var ledgerColumns = []string{"company_name", "company_symbol", "date", "stock_change", "sentiment_score"}

// Header is the first line of every ledger file.
const Header = "company_name,company_symbol,date,stock_change,sentiment_score"

func errColumns(got int) error {
	return fmt.Errorf("ledger row has %d columns, want %d", got, len(ledgerColumns))
}

// DecodeLedger reads a full ledger from CSV data. The first row must be the
// ledger header; an empty stream decodes to an empty ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(ledgerColumns)

	ledger := NewLedger()
	header, err := cr.Read()
	if err == io.EOF {
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger header: %w", err)
	}
	if strings.Join(header, ",") != Header {
		return nil, fmt.Errorf("unexpected ledger header %q, want %q", strings.Join(header, ","), Header)
	}

	for {
		row, err := cr.Read()
		if err == io.EOF {
			return ledger, nil
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read ledger row: %w", err)
		}
		rec, err := recordFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("invalid ledger row %v: %w", row, err)
		}
		ledger.Append(rec)
	}
}

// EncodeRecord writes a single record as one CSV row.
func EncodeRecord(w io.Writer, rec Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rec.row()); err != nil {
		return fmt.Errorf("cannot write ledger row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// EncodeLedger writes the header and every record, producing a complete
// ledger file image.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return err
	}
	for _, rec := range ledger.Records() {
		if err := EncodeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

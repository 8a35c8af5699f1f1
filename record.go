package sentibook

import (
	"strconv"

	"github.com/sentibook/sentibook/date"
	"github.com/shopspring/decimal"
)

// Record is one daily sentiment snapshot for a company. Records are created
// once per successful run and never mutated or deleted.
type Record struct {
	CompanyName string
	Symbol      string
	Date        date.Date
	StockChange string // as rendered by the quote source, e.g. "+1.23%"
	Sentiment   Score
}

// row returns the record as a CSV row, in ledger column order.
func (r Record) row() []string {
	return []string{
		r.CompanyName,
		r.Symbol,
		r.Date.String(),
		r.StockChange,
		// decimal renders the shortest exact form ("0.2", not "0.200000").
		decimal.NewFromFloat(float64(r.Sentiment)).String(),
	}
}

// recordFromRow parses a CSV row in ledger column order.
func recordFromRow(row []string) (Record, error) {
	var r Record
	if len(row) != len(ledgerColumns) {
		return r, errColumns(len(row))
	}
	on, err := date.Parse(row[2])
	if err != nil {
		return r, err
	}
	score, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return r, err
	}
	return Record{
		CompanyName: row[0],
		Symbol:      row[1],
		Date:        on,
		StockChange: row[3],
		Sentiment:   Score(score),
	}, nil
}

package statement

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	enc "github.com/stauntonj/rently/internal/encoding"
	"github.com/stauntonj/rently/internal/reconcile"
)

// Parser reads bank statement CSV exports and produces settlement entries.
// The layout is auto-detected by matching column headers against known
// profiles; debit rows and zero movements are skipped.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]reconcile.Entry, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	raw, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read statement: %w", err)
	}

	// Separator depends on the bank, so try each profile with its own.
	for i := range profiles {
		profile := &profiles[i]

		rows, err := readRows(raw, profile.Separator)
		if err != nil {
			continue
		}

		cols, headerIdx, ok := findHeader(profile, rows)
		if !ok {
			continue
		}

		return parseRows(profile, cols, rows[headerIdx+1:])
	}

	return nil, fmt.Errorf("no matching statement format found")
}

func readRows(raw []byte, sep rune) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.Comma = sep
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader.ReadAll()
}

// colIndex maps column names to their index in the header row.
type colIndex map[string]int

// findHeader scans rows for one containing every required column of the
// profile. Statement exports often carry preamble lines before the header.
func findHeader(p *Profile, rows [][]string) (colIndex, int, bool) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		if matchesProfile(p, cols) {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(p *Profile, cols colIndex, rows [][]string) ([]reconcile.Entry, error) {
	dateIdx := cols[p.DateCol]
	refIdx := cols[p.RefCol]

	amountIdx := -1
	if p.CreditCol != "" {
		amountIdx = cols[p.CreditCol]
	} else {
		amountIdx = cols[p.AmountCol]
	}

	var entries []reconcile.Entry

	for _, row := range rows {
		date, ok := parseDate(row, dateIdx, p.DateLayout)
		if !ok {
			// Footer or summary row.
			continue
		}

		amount, ok := parseCredit(row, amountIdx, p.CreditCol == "")
		if !ok {
			continue
		}

		entries = append(entries, reconcile.Entry{
			Date:      date,
			Amount:    amount,
			Reference: cellValue(row, refIdx),
		})
	}

	return entries, nil
}

func parseDate(row []string, idx int, layout string) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// parseCredit returns the incoming amount of a row. In signed mode negative
// values are debits and skipped.
func parseCredit(row []string, idx int, signed bool) (decimal.Decimal, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return decimal.Decimal{}, false
	}

	amount, err := parseAmount(s)
	if err != nil {
		return decimal.Decimal{}, false
	}

	if amount.IsZero() {
		return decimal.Decimal{}, false
	}

	if amount.IsNegative() {
		if signed {
			return decimal.Decimal{}, false
		}

		amount = amount.Neg()
	}

	return amount, true
}

// parseAmount accepts both European ("1.234,56") and plain ("1234.56")
// number formats.
func parseAmount(s string) (decimal.Decimal, error) {
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	return decimal.NewFromString(strings.TrimSpace(s))
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

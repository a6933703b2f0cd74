package statement

// Profile describes the column layout of one bank's CSV export. Only credit
// movements matter here: a settlement entry is money a tenant paid in.
type Profile struct {
	Name       string
	Separator  rune
	DateCol    string
	DateLayout string
	RefCol     string

	// CreditCol holds incoming amounts. When AmountCol is set instead, the
	// column is signed and only positive values are credits.
	CreditCol string
	AmountCol string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.DateCol, p.RefCol}

	if p.CreditCol != "" {
		cols = append(cols, p.CreditCol)
	} else {
		cols = append(cols, p.AmountCol)
	}

	return cols
}

// profiles is the ordered list of statement layouts tried during
// auto-detection. More specific profiles come first.
var profiles = []Profile{
	{
		Name:       "extrato",
		Separator:  ';',
		DateCol:    "Data mov.",
		DateLayout: "02-01-2006",
		RefCol:     "Descrição",
		CreditCol:  "Crédito",
	},
	{
		Name:       "movimentos",
		Separator:  ';',
		DateCol:    "Data",
		DateLayout: "02-01-2006",
		RefCol:     "Descrição",
		AmountCol:  "Montante",
	},
	{
		Name:       "generic",
		Separator:  ',',
		DateCol:    "Date",
		DateLayout: "2006-01-02",
		RefCol:     "Reference",
		AmountCol:  "Amount",
	},
}

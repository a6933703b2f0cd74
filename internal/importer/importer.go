package importer

import (
	"io"

	"github.com/stauntonj/rently/internal/reconcile"
)

// Format identifies a supported bank statement layout.
type Format string

const (
	FormatStatement Format = "statement"
)

type Parser interface {
	Parse(r io.Reader) ([]reconcile.Entry, error)
}

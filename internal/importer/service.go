package importer

import (
	"fmt"
	"io"

	"github.com/stauntonj/rently/internal/importer/statement"
	"github.com/stauntonj/rently/internal/reconcile"
)

type Service struct {
	statementParser Parser
}

func NewService() *Service {
	return &Service{
		statementParser: statement.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]reconcile.Entry, error) {
	var parser Parser

	switch format {
	case FormatStatement:
		parser = s.statementParser
	default:
		return nil, fmt.Errorf("unknown statement format: %s", format)
	}

	return parser.Parse(r)
}

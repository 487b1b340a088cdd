package hclfe

import (
	"github.com/sandeepsanjusplr/buck/internal/adapters/frontend"
	"github.com/sandeepsanjusplr/buck/internal/core/domain"
	"github.com/sandeepsanjusplr/buck/internal/core/ports"
)

var _ ports.FrontEnd = (*FrontEnd)(nil)

// FrontEnd creates HCL build-file parsers.
type FrontEnd struct {
	logger ports.Logger
}

// New creates the HCL front end.
func New(logger ports.Logger) *FrontEnd {
	return &FrontEnd{logger: logger}
}

// Syntax implements ports.FrontEnd.
func (f *FrontEnd) Syntax() domain.Syntax {
	return domain.SyntaxHCL
}

// NewParser implements ports.FrontEnd.
func (f *FrontEnd) NewParser(opts domain.ParserOptions, fs ports.Filesystem, globber ports.Globber) (ports.BuildFileParser, error) {
	return frontend.NewParser(domain.SyntaxHCL, decoder{}, opts, fs, globber, f.logger), nil
}

package matrix

import "uva-matrix/internal/model"

// Parser converts the rows of one vehicle sheet into matrix entries
type Parser struct {
	Layout  Layout
	Options Options
}

// NewParser creates a Parser using the default layout
func NewParser(opts Options) *Parser {
	return &Parser{
		Layout:  DefaultLayout(),
		Options: opts,
	}
}

// Result is the outcome of parsing one sheet
type Result struct {
	Entries        []model.Entry
	RowsRead       int      // Data rows seen after the header
	SkippedRows    []int    // 1-based sheet row numbers without an L2 name
	MissingColumns []string // PETS labels not found in the header (header mode only)
}

// Parse folds the data rows of a sheet, in order, into entries
func (p *Parser) Parse(rows [][]string) Result {
	var res Result

	headerRows := p.Options.HeaderRows
	if headerRows < 0 {
		headerRows = 0
	}
	if headerRows > len(rows) {
		headerRows = len(rows)
	}

	layout := p.Layout
	if p.Options.ColumnMode == ColumnsByHeader && headerRows > 0 {
		layout, res.MissingColumns = layout.WithHeader(rows[headerRows-1])
	}

	var carry Carry
	for i, row := range rows[headerRows:] {
		res.RowsRead++

		var entry model.Entry
		var ok bool
		carry, entry, ok = Step(carry, row, layout, p.Options)
		if !ok {
			res.SkippedRows = append(res.SkippedRows, headerRows+i+1)
			continue
		}
		res.Entries = append(res.Entries, entry)
	}

	return res
}

package content

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/nao1215/pagegrid/options"
)

// Table is tabular content rendered as an HTML table.
// The first record is the header row.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable wraps records as table content. The first record is the
// header; every row must have the header's column count.
func NewTable(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	header := slices.Clone(records[0])
	rows := make([][]string, 0, len(records)-1)
	for idx, row := range records[1:] {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%w: row %d has %d columns, header has %d",
				ErrRaggedTable, idx+1, len(row), len(header))
		}
		rows = append(rows, slices.Clone(row))
	}
	return &Table{header: header, rows: rows}, nil
}

// NewTableFromCSV loads table content from a CSV file. Read and parse
// errors surface here, at wrap time.
func NewTableFromCSV(path string) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // Author-provided document path is intentional
	if err != nil {
		return nil, fmt.Errorf("read csv file: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv file %s: %w", path, err)
	}
	return NewTable(records)
}

// HTML renders the table. The records are built into a markdown table
// and converted, so cell text follows the same inline rules as every
// other text fragment in the document.
func (t *Table) HTML(_ *options.Options) (string, error) {
	var buf strings.Builder
	md := markdown.NewMarkdown(&buf)
	md.Table(markdown.TableSet{
		Header: t.header,
		Rows:   t.rows,
	})
	if err := md.Build(); err != nil {
		return "", fmt.Errorf("build table markdown: %w", err)
	}

	body, err := markdownToHTML(buf.String())
	if err != nil {
		return "", err
	}
	body = strings.Replace(body, "<table>", "<table class='table table-hover'>", 1)
	return "<div class='table-responsive pg-table'>\n" + body + "</div>", nil
}

// Dependencies returns the base stylesheet dependency.
func (t *Table) Dependencies() []string { return []string{"bootstrap"} }

// Equal reports whether other is a Table with identical records.
func (t *Table) Equal(other Content) bool {
	o, ok := other.(*Table)
	if !ok || !slices.Equal(t.header, o.header) || len(t.rows) != len(o.rows) {
		return false
	}
	for i := range t.rows {
		if !slices.Equal(t.rows[i], o.rows[i]) {
			return false
		}
	}
	return true
}

// String returns the display name used in tree summaries.
func (t *Table) String() string { return "Table" }

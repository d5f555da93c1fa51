package domain

// Default column names of the labeled text datasets.
const (
	DefaultTextColumn   = "text"
	DefaultTargetColumn = "target"
)

// Columns names the free-text and label columns of a dataset.
type Columns struct {
	Text   string
	Target string
}

// DefaultColumns returns the text/target column pair.
func DefaultColumns() Columns {
	return Columns{Text: DefaultTextColumn, Target: DefaultTargetColumn}
}

// Dataset is a header plus rows of equal width. Cells are kept as strings;
// columns not touched by preprocessing pass through verbatim.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// NewDataset builds a dataset from a header and rows without copying.
func NewDataset(header []string, rows [][]string) *Dataset {
	return &Dataset{Header: header, Rows: rows}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnIndex resolves a column name to its position in the header.
func (d *Dataset) ColumnIndex(name string) (int, error) {
	for i, h := range d.Header {
		if h == name {
			return i, nil
		}
	}
	return -1, &MissingColumnError{Column: name}
}

// Column returns a copy of the named column's cells.
func (d *Dataset) Column(name string) ([]string, error) {
	idx, err := d.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Clone returns a deep copy so that callers can transform it freely.
func (d *Dataset) Clone() *Dataset {
	header := make([]string, len(d.Header))
	copy(header, d.Header)
	rows := make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		r := make([]string, len(row))
		copy(r, row)
		rows[i] = r
	}
	return &Dataset{Header: header, Rows: rows}
}

package domain

// MissingRow reports a roster name that matched no asset computer name.
type MissingRow struct {
	Name string `json:"name"`
}

// DuplicateRow reports one computer name contributing to a roster name that
// matched more than once.
type DuplicateRow struct {
	ComputerName string `json:"computername"`
	Name         string `json:"name"`
}

// Report column orders. The report writer takes an explicit header list; these
// are the shapes of the two discrepancy files.
var (
	MissingHeaders   = []string{"name"}
	DuplicateHeaders = []string{"computername", "name"}
)

// Columns returns the row as a header-keyed map for the report writer.
func (r MissingRow) Columns() map[string]string {
	return map[string]string{"name": r.Name}
}

// Columns returns the row as a header-keyed map for the report writer.
func (r DuplicateRow) Columns() map[string]string {
	return map[string]string{"computername": r.ComputerName, "name": r.Name}
}

// MissingColumns converts a missing set into writer rows.
func MissingColumns(rows []MissingRow) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Columns())
	}
	return out
}

// DuplicateColumns converts a duplicate set into writer rows.
func DuplicateColumns(rows []DuplicateRow) []map[string]string {
	out := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Columns())
	}
	return out
}

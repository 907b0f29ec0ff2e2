package reader

import (
	"strconv"

	"github.com/vegasq/csvcat/table"
)

// SchemaInfo describes one column of a loaded table.
type SchemaInfo struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	// Shadowed is true when a later column has the same name, making this
	// column unreachable by name.
	Shadowed bool `json:"shadowed"`
}

// ExtractSchemaInfo lists the columns of t in header order.
func ExtractSchemaInfo(t *table.Table) []SchemaInfo {
	infos := make([]SchemaInfo, 0, t.ColumnCount())
	for i, name := range t.Columns() {
		pos, _ := t.LookupColumn(name)
		infos = append(infos, SchemaInfo{
			Position: i,
			Name:     name,
			Shadowed: pos != i,
		})
	}
	return infos
}

// SchemaTable renders schema information as a table with the columns
// position, name and shadowed, so it can be queried and formatted like data.
func SchemaTable(infos []SchemaInfo) (*table.Table, error) {
	rows := make([]table.Row, len(infos))
	for i, info := range infos {
		rows[i] = table.Row{
			strconv.Itoa(info.Position),
			info.Name,
			strconv.FormatBool(info.Shadowed),
		}
	}
	return table.New([]string{"position", "name", "shadowed"}, rows)
}

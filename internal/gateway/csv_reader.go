package gateway

import (
	"context"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/dimchansky/utfbom"
	"golang.org/x/text/encoding/charmap"

	"macenroll/internal/domain"
)

// CSVTableRepository loads the three input tables from comma-delimited files.
// The format is deliberately naive: no quoting, no escaping, no embedded
// newlines. The exports this tool consumes never produce those, and rows that
// do not line up with the header are dropped rather than rejected.
type CSVTableRepository struct{}

// NewCSVTableRepository creates a new repository instance.
func NewCSVTableRepository() *CSVTableRepository {
	return &CSVTableRepository{}
}

// LoadRoster reads the roster file. Rows without a name column are dropped.
func (r *CSVTableRepository) LoadRoster(ctx context.Context, path string) ([]domain.RosterEntry, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	var entries []domain.RosterEntry
	for _, row := range rows {
		name, ok := row["name"]
		if !ok {
			continue
		}
		entries = append(entries, domain.RosterEntry{Name: name})
	}
	return entries, nil
}

// LoadAssetExport reads the asset-management export. Rows missing any of the
// computername, serialnumber or username columns are dropped.
func (r *CSVTableRepository) LoadAssetExport(ctx context.Context, path string) ([]domain.AssetExportRow, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	var assets []domain.AssetExportRow
	for _, row := range rows {
		computerName, ok1 := row["computername"]
		serialNumber, ok2 := row["serialnumber"]
		userName, ok3 := row["username"]
		if !ok1 || !ok2 || !ok3 {
			continue
		}
		assets = append(assets, domain.AssetExportRow{
			ComputerName: computerName,
			SerialNumber: serialNumber,
			UserName:     userName,
		})
	}
	return assets, nil
}

// LoadInventory reads the inventory export. Rows missing the serialnumber or
// inventorynumber columns are dropped; any further columns are kept opaquely.
func (r *CSVTableRepository) LoadInventory(ctx context.Context, path string) ([]domain.InventoryRow, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}

	var inventory []domain.InventoryRow
	for _, row := range rows {
		serialNumber, ok1 := row["serialnumber"]
		inventoryNumber, ok2 := row["inventorynumber"]
		if !ok1 || !ok2 {
			continue
		}
		extra := make(map[string]string)
		for k, v := range row {
			if k == "serialnumber" || k == "inventorynumber" {
				continue
			}
			extra[k] = v
		}
		inventory = append(inventory, domain.InventoryRow{
			SerialNumber:    serialNumber,
			InventoryNumber: inventoryNumber,
			Extra:           extra,
		})
	}
	return inventory, nil
}

// readTable reads and decodes a file, then parses it into normalized-key row
// maps. All failures to produce text are ParseErrors.
func readTable(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	defer file.Close()

	raw, err := io.ReadAll(utfbom.SkipOnly(file))
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	text, err := decodeText(raw)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}

	rows := ParseTable(text)
	for i, row := range rows {
		rows[i] = NormalizeKeys(row)
	}
	return rows, nil
}

// decodeText returns the input as UTF-8 text. Exports from older tooling come
// out as Latin-1; anything that is not valid UTF-8 is decoded as such.
func decodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// ParseTable splits delimited text into header-keyed row maps. The first
// non-empty line is the header; each field is comma-split with header tokens
// trimmed. Data rows whose field count differs from the header count are
// silently dropped.
func ParseTable(text string) []map[string]string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil
	}

	header := strings.Split(lines[0], ",")
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	var rows []map[string]string
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) != len(header) {
			continue
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = fields[i]
		}
		rows = append(rows, row)
	}
	return rows
}

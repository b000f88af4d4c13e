// Package filecsv converts vault records to and from their interchange forms:
// a JSON array, a CSV table with a fixed column order, and a ZIP bundling both.
package filecsv

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"token-tool/domain/model"
	"token-tool/infrastructure/persistence"
)

// Columns is the exact CSV column contract, in order.
var Columns = []string{"label", "type", "page_id", "token", "added_at"}

// FileStampLayout names export files with a human-readable timestamp.
const FileStampLayout = "2006-01-02_15h04"

// Bundle holds the three downloadable forms of one export.
type Bundle struct {
	JSONName string
	JSON     []byte
	CSVName  string
	CSV      []byte
	ZipName  string
	Zip      []byte
}

// Export serializes records under the given base name ("token_vault" or
// "token_selected"); every filename embeds the same timestamp.
func Export(records []model.TokenRecord, base string, now time.Time) (*Bundle, error) {
	jsonBytes, err := persistence.MarshalRecords(records)
	if err != nil {
		return nil, err
	}
	csvBytes, err := MarshalCSV(records)
	if err != nil {
		return nil, err
	}

	ts := now.Format(FileStampLayout)
	b := &Bundle{
		JSONName: fmt.Sprintf("%s_%s.json", base, ts),
		JSON:     jsonBytes,
		CSVName:  fmt.Sprintf("%s_%s.csv", base, ts),
		CSV:      csvBytes,
		ZipName:  fmt.Sprintf("%s_%s.zip", base, ts),
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct {
		name string
		data []byte
	}{{b.JSONName, b.JSON}, {b.CSVName, b.CSV}} {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(entry.data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	b.Zip = buf.Bytes()
	return b, nil
}

// MarshalCSV renders one row per record with the fixed column order; missing
// fields render as empty cells.
func MarshalCSV(records []model.TokenRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := w.Write([]string{r.Label, r.Type, r.PageID, r.Token, r.AddedAt}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Parse turns an uploaded JSON or CSV file into records, merged as-is with no
// field validation. The format is chosen by filename extension, with a JSON
// sniff as fallback for extensionless uploads.
func Parse(filename string, data []byte) ([]model.TokenRecord, error) {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return parseJSON(data)
	case strings.HasSuffix(lower, ".csv"):
		return parseCSV(data)
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return parseJSON(data)
	}
	return parseCSV(data)
}

func parseJSON(data []byte) ([]model.TokenRecord, error) {
	var records []model.TokenRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, model.NewParseError(fmt.Sprintf("invalid JSON import: %v", err), err)
	}
	return records, nil
}

func parseCSV(data []byte) ([]model.TokenRecord, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, model.NewParseError(fmt.Sprintf("invalid CSV import: %v", err), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(strings.ToLower(col))] = i
	}
	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	records := make([]model.TokenRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.TokenRecord{
			Label:   cell(row, "label"),
			Type:    cell(row, "type"),
			PageID:  cell(row, "page_id"),
			Token:   cell(row, "token"),
			AddedAt: cell(row, "added_at"),
		})
	}
	return records, nil
}

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/fivetwenty-io/oklink/internal/constants"
	"github.com/fivetwenty-io/oklink/pkg/oklink"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// maxCellWidth bounds nested values rendered into a table cell.
const maxCellWidth = 60

func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %s (use table, json or yaml)", constants.ErrUnsupportedOutput, format)
	}
}

// renderResult prints the data of a successful result. A failure code is
// returned as the *oklink.DomainError carrying the upstream message.
func renderResult(out io.Writer, format string, result *oklink.Result[json.RawMessage]) error {
	raw, err := result.GetOrThrow()
	if err != nil {
		return fmt.Errorf("upstream code %s: %w", result.Code(), err)
	}

	err = validateOutputFormat(format)
	if err != nil {
		return err
	}

	data, err := decodeData(raw)
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case constants.FormatYAML:
		return yaml.NewEncoder(out).Encode(yamlValue(data))
	default:
		return renderTable(out, data)
	}
}

func decodeData(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var data any

	err := decoder.Decode(&data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}

	return data, nil
}

// yamlValue replaces json.Number so numbers are not emitted as quoted strings.
func yamlValue(value any) any {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = yamlValue(v[i])
		}

		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = yamlValue(item)
		}

		return out
	default:
		return value
	}
}

// renderTable prints records as rows. When the data is a single record
// wrapping one list of records, as paged list endpoints return, the scalar
// fields are printed above the table and the inner list becomes the rows.
func renderTable(out io.Writer, data any) error {
	if data == nil {
		_, _ = fmt.Fprintln(out, "No records")

		return nil
	}

	records, scalar := tableRecords(data)
	if records == nil {
		_, _ = fmt.Fprintln(out, formatCell(scalar))

		return nil
	}

	if len(records) == 1 {
		if header, inner, ok := splitPagedRecord(records[0]); ok {
			for _, key := range sortedKeys(header) {
				_, _ = fmt.Fprintf(out, "%s: %s\n", key, formatCell(header[key]))
			}

			records = inner
		}
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(out, "No records")

		return nil
	}

	columns := recordColumns(records)

	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}

	table := tablewriter.NewWriter(out)
	table.Header(header...)

	for _, record := range records {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			value, ok := record[column]
			if !ok {
				row = append(row, constants.NotAvailable)

				continue
			}

			row = append(row, formatCell(value))
		}

		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// tableRecords returns the records of data, or nil and the value itself when
// data is not a record or a list of records.
func tableRecords(data any) ([]map[string]any, any) {
	switch v := data.(type) {
	case map[string]any:
		return []map[string]any{v}, nil
	case []any:
		records := make([]map[string]any, 0, len(v))

		for _, item := range v {
			record, ok := item.(map[string]any)
			if !ok {
				return nil, data
			}

			records = append(records, record)
		}

		return records, nil
	default:
		return nil, data
	}
}

func splitPagedRecord(record map[string]any) (map[string]any, []map[string]any, bool) {
	var (
		listKey string
		inner   []map[string]any
	)

	for key, value := range record {
		list, ok := value.([]any)
		if !ok {
			continue
		}

		records, scalar := tableRecords(list)
		if records == nil && scalar != nil {
			continue
		}

		if listKey != "" {
			return nil, nil, false
		}

		listKey = key
		inner = records
	}

	if listKey == "" {
		return nil, nil, false
	}

	header := make(map[string]any, len(record)-1)

	for key, value := range record {
		if key != listKey {
			header[key] = value
		}
	}

	return header, inner, true
}

func recordColumns(records []map[string]any) []string {
	var columns []string

	for _, record := range records {
		for key := range record {
			if !slices.Contains(columns, key) {
				columns = append(columns, key)
			}
		}
	}

	sort.Strings(columns)

	return columns
}

func sortedKeys(record map[string]any) []string {
	keys := make([]string, 0, len(record))
	for key := range record {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool, float64, int64:
		return fmt.Sprint(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		if len(encoded) > maxCellWidth {
			return string(encoded[:maxCellWidth]) + "..."
		}

		return string(encoded)
	}
}

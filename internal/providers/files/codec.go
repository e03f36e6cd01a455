package files

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nba-props-service/internal/providers"
)

type decodeFunc func(io.Reader) (providers.Table, error)

var codecs = map[string]decodeFunc{
	".csv":  decodeCSV,
	".json": decodeJSON,
	".yaml": decodeYAML,
	".yml":  decodeYAML,
}

func codecFor(path string) (decodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := codecs[ext]
	if !ok {
		return nil, fmt.Errorf("%w %q", providers.ErrUnsupportedFormat, ext)
	}
	return decode, nil
}

var errTrailingData = errors.New("unexpected data after JSON array")

func decodeCSV(r io.Reader) (providers.Table, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return providers.Table{}, err
	}
	if len(records) == 0 {
		return providers.Table{}, providers.ErrMissingHeader
	}
	return providers.NewTable(records[0], records[1:])
}

func decodeJSON(r io.Reader) (providers.Table, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var objects []map[string]any
	if err := dec.Decode(&objects); err != nil {
		return providers.Table{}, err
	}
	if err := dec.Decode(new(json.RawMessage)); err != io.EOF {
		return providers.Table{}, errTrailingData
	}
	return tableFromObjects(objects)
}

func decodeYAML(r io.Reader) (providers.Table, error) {
	var objects []map[string]any
	if err := yaml.NewDecoder(r).Decode(&objects); err != nil {
		if err == io.EOF {
			return providers.Table{}, providers.ErrMissingHeader
		}
		return providers.Table{}, err
	}
	return tableFromObjects(objects)
}

// tableFromObjects flattens a sequence of objects into a table. The header is
// the union of keys, in first-seen order; a key missing from an object is a blank cell.
func tableFromObjects(objects []map[string]any) (providers.Table, error) {
	var cols []string
	seen := make(map[string]bool)
	rows := make([]map[string]string, 0, len(objects))
	for _, obj := range objects {
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		row := make(map[string]string, len(obj))
		for _, k := range keys {
			col := providers.NormalizeColumn(k)
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
			if _, dup := row[col]; !dup {
				row[col] = cellText(obj[k])
			}
		}
		rows = append(rows, row)
	}
	if len(cols) == 0 {
		return providers.Table{}, providers.ErrMissingHeader
	}
	return providers.Table{Columns: cols, Rows: rows}, nil
}

func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

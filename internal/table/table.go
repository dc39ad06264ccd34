// Package table renders values maps for human and machine consumption:
// column maps, CSV lines, and pretty-printed tables.
package table

import (
	"fmt"
	"io"
	"strings"

	gptable "github.com/jedib0t/go-pretty/v6/table"

	"github.com/tacogips/crumb/internal/crumb"
)

// Columns converts a values map to a map of value columns keyed by argument
// name. If names is nil the first record's names are used; every record must
// cover all requested names.
func Columns(vm crumb.ValuesMap, names []string) (map[string][]string, error) {
	if len(vm) == 0 {
		return nil, fmt.Errorf("empty values map")
	}
	if names == nil {
		names = vm[0].Names()
	}

	cols := make(map[string][]string, len(names))
	for _, rec := range vm {
		for _, name := range names {
			v, ok := rec.Get(name)
			if !ok {
				return nil, fmt.Errorf("record is missing argument %q", name)
			}
			cols[name] = append(cols[name], v)
		}
	}
	return cols, nil
}

// WriteCSV writes one comma-separated line of values per record.
func WriteCSV(w io.Writer, vm crumb.ValuesMap) error {
	for _, rec := range vm {
		values := make([]string, len(rec))
		for i, av := range rec {
			values[i] = av.Value
		}
		if _, err := fmt.Fprintln(w, strings.Join(values, ",")); err != nil {
			return err
		}
	}
	return nil
}

// Render writes the values map as a text table with argument names as the
// header row.
func Render(w io.Writer, vm crumb.ValuesMap) {
	if len(vm) == 0 {
		return
	}

	t := gptable.NewWriter()
	t.SetOutputMirror(w)

	header := gptable.Row{}
	for _, name := range vm[0].Names() {
		header = append(header, name)
	}
	t.AppendHeader(header)

	for _, rec := range vm {
		row := gptable.Row{}
		for _, av := range rec {
			row = append(row, av.Value)
		}
		t.AppendRow(row)
	}
	t.Render()
}

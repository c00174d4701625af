package size

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// legacyHeader matches the header row of BSD size(1).
const legacyHeader = "   text\t   data\t    bss\t    dec\t    hex\tfilename"

// WriteLegacyHeader writes the size(1) header row.
func WriteLegacyHeader(w io.Writer) error {
	_, err := fmt.Fprintln(w, legacyHeader)
	return err
}

// WriteLegacyRow writes one size(1) row for the given totals. The dec
// column is text+data+bss and hex is the same value in lowercase hex.
func WriteLegacyRow(w io.Writer, t Totals, path string) error {
	dec := t.Dec()
	_, err := fmt.Fprintf(w, "%7d\t%7d\t%7d\t%7d\t%7x\t%s\n", t.Text, t.Data, t.Bss, dec, dec, path)
	return err
}

// WriteGroups renders the extended per-category report as pretty-printed
// JSON or YAML. Categories appear in enum order; empty categories are
// omitted.
func WriteGroups(w io.Writer, g Groups, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(g); err != nil {
			enc.Close()
			return err
		}
		return enc.Close()
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

var categoryColors = map[Category]*color.Color{
	Text:  color.New(color.FgGreen),
	Data:  color.New(color.FgYellow),
	Bss:   color.New(color.FgCyan),
	Other: color.New(color.FgHiBlack),
}

// WriteSectionTable lists every classified section in an aligned table,
// in file order. With human set, sizes are printed in humanized form
// instead of raw byte counts; with colored set, category names are
// color-coded.
func WriteSectionTable(w io.Writer, sections []Section, human, colored bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Section", "Size", "Category"})
	table.SetBorder(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, s := range sections {
		sz := strconv.FormatUint(s.Size, 10)
		if human {
			sz = humanize.Bytes(s.Size)
		}
		cat := s.Category.String()
		if colored {
			cat = categoryColors[s.Category].Sprint(cat)
		}
		table.Append([]string{s.Name, sz, cat})
	}
	table.Render()
}

package size

import (
	"debug/macho"

	"github.com/sirupsen/logrus"
)

// Reserved Mach-O segment and section names the classifier keys on.
const (
	machoSegText = "__TEXT"
	machoSegData = "__DATA"
	machoSectBss = "__bss"
)

// machoNames translates (segment, section) name pairs to the
// conventional names used by ELF-style reports. Pairs without an entry
// keep their native section name. The mapping is cosmetic: category
// decisions use the raw names, never the mapped ones.
var machoNames = map[[2]string]string{
	{machoSegText, "__text"}:    ".text",
	{machoSegText, "__const"}:   ".rodata",
	{machoSegText, "__cstring"}: ".cstring",
	{machoSegData, "__data"}:    ".data",
	{machoSegData, "__const"}:   ".data.rel.ro",
	{machoSegData, "__bss"}:     ".bss",
}

// classifyMachO maps the flattened (segment, section) pairs of a thin
// Mach-O binary onto the four categories. The zero-fill section name
// wins over the segment, so a __bss section is bss wherever it lives.
func classifyMachO(f *macho.File) []Section {
	sections := make([]Section, 0, len(f.Sections))
	for _, sec := range f.Sections {
		var category Category
		switch {
		case sec.Name == machoSectBss:
			category = Bss
		case sec.Seg == machoSegData:
			category = Data
		case sec.Seg == machoSegText:
			category = Text
		default:
			category = Other
		}

		name := sec.Name
		if mapped, ok := machoNames[[2]string{sec.Seg, sec.Name}]; ok {
			name = mapped
		}

		logrus.WithFields(logrus.Fields{
			"segment":  sec.Seg,
			"section":  sec.Name,
			"size":     sec.Size,
			"category": category,
		}).Debug("classified Mach-O section")

		sections = append(sections, Section{
			Name:     name,
			Size:     sec.Size,
			Category: category,
		})
	}
	return sections
}

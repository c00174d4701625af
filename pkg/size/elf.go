package size

import (
	"debug/elf"

	"github.com/sirupsen/logrus"
)

// classifyELF maps ELF section headers onto the four categories.
//
// Non-allocated sections are metadata. Allocated sections that are
// executable or read-only count as text; the remaining writable sections
// are data, except SHT_NOBITS sections, which occupy no file bytes and
// are bss. Sizes are sh_size verbatim.
func classifyELF(f *elf.File) []Section {
	sections := make([]Section, 0, len(f.Sections))
	for i, sec := range f.Sections {
		if sec.Type == elf.SHT_NULL {
			continue
		}
		if sec.Name == "" {
			// The name did not resolve from the string table. The
			// section is dropped and the report undercounts rather
			// than aborting.
			logrus.WithField("index", i).Warn("skipping section with unresolvable name")
			continue
		}

		var category Category
		switch {
		case sec.Flags&elf.SHF_ALLOC == 0:
			category = Other
		case sec.Flags&elf.SHF_EXECINSTR != 0 || sec.Flags&elf.SHF_WRITE == 0:
			category = Text
		case sec.Type != elf.SHT_NOBITS:
			category = Data
		default:
			category = Bss
		}

		logrus.WithFields(logrus.Fields{
			"section":  sec.Name,
			"size":     sec.Size,
			"category": category,
		}).Debug("classified ELF section")

		sections = append(sections, Section{
			Name:     sec.Name,
			Size:     sec.Size,
			Category: category,
		})
	}
	return sections
}

package size

import (
	"debug/pe"

	"github.com/sirupsen/logrus"
)

// classifyPE maps PE/COFF section table entries onto the four categories.
//
// PE images rarely carry an explicit bss section. Zero-initialized data
// lives in the virtual space of a writable section beyond its raw bytes,
// so the classifier reports each writable section at its on-disk size and
// accumulates the virtual/raw excess into a synthesized .bss entry. The
// optional header's SizeOfUninitializedData field is authoritative when
// nonzero, but linkers commonly leave it zero, making the accumulated
// excess the only reliable signal.
func classifyPE(f *pe.File) []Section {
	sections := make([]Section, 0, len(f.Sections)+1)
	var excess uint64
	for _, sec := range f.Sections {
		raw := uint64(sec.Size)
		writable := sec.Characteristics&pe.IMAGE_SCN_MEM_WRITE != 0
		readable := sec.Characteristics&pe.IMAGE_SCN_MEM_READ != 0

		var category Category
		switch {
		case !writable:
			category = Text
		case readable:
			category = Data
			if virt := uint64(sec.VirtualSize); virt > raw {
				excess += virt - raw
			}
		default:
			category = Other
		}

		logrus.WithFields(logrus.Fields{
			"section":  sec.Name,
			"size":     raw,
			"category": category,
		}).Debug("classified PE section")

		sections = append(sections, Section{
			Name:     sec.Name,
			Size:     raw,
			Category: category,
		})
	}

	bss := excess
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		if oh.SizeOfUninitializedData != 0 {
			bss = uint64(oh.SizeOfUninitializedData)
		}
	case *pe.OptionalHeader64:
		if oh.SizeOfUninitializedData != 0 {
			bss = uint64(oh.SizeOfUninitializedData)
		}
	}

	return append(sections, Section{Name: ".bss", Size: bss, Category: Bss})
}

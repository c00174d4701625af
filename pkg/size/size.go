package size

import (
	"github.com/pkg/errors"

	"github.com/mozilla/rust-size/pkg/size/objfile"
)

// File is an opened object file ready for classification.
type File struct {
	obj *objfile.File

	// Cached classification
	sections []Section
}

// Open memory-maps the object file at path and detects its format.
// Classification is deferred until Sections is called.
func Open(path string) (*File, error) {
	obj, err := objfile.Open(path)
	if err != nil {
		return nil, err
	}
	return &File{obj: obj}, nil
}

// Close releases the underlying mapping.
func (f *File) Close() error {
	return f.obj.Close()
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.obj.Path()
}

// Format returns the detected container format.
func (f *File) Format() objfile.Format {
	return f.obj.Format()
}

// Sections classifies every section of the file into the four
// categories, in file order. The result is cached; the mapping is
// immutable once opened and classification is pure.
func (f *File) Sections() ([]Section, error) {
	if f.sections != nil {
		return f.sections, nil
	}

	var sections []Section
	switch f.obj.Format() {
	case objfile.FormatELF:
		ef, err := f.obj.ELF()
		if err != nil {
			return nil, err
		}
		sections = classifyELF(ef)
	case objfile.FormatPE:
		pf, err := f.obj.PE()
		if err != nil {
			return nil, err
		}
		sections = classifyPE(pf)
	case objfile.FormatMachO:
		mf, err := f.obj.MachO()
		if err != nil {
			return nil, err
		}
		sections = classifyMachO(mf)
	case objfile.FormatMachOFat:
		return nil, errors.Errorf("%s: fat Mach-O binaries are not supported", f.obj.Path())
	default:
		return nil, errors.Errorf("%s: unhandled file type", f.obj.Path())
	}

	f.sections = sections
	return sections, nil
}

// Totals returns the legacy text/data/bss sums for the file.
func (f *File) Totals() (Totals, error) {
	sections, err := f.Sections()
	if err != nil {
		return Totals{}, err
	}
	return Sum(sections), nil
}

// Groups returns per-category name-to-size buckets for extended reporting.
func (f *File) Groups() (Groups, error) {
	sections, err := f.Sections()
	if err != nil {
		return Groups{}, err
	}
	return Group(sections), nil
}

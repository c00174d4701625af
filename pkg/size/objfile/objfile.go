// Package objfile opens compiled object files for inspection. It
// memory-maps the file read-only, sniffs the container format from the
// leading magic bytes, and lends reader views to the standard library
// debug parsers.
package objfile

import (
	"bytes"
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"encoding/binary"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// Format identifies the container format of an object file.
type Format int

const (
	FormatUnknown Format = iota
	FormatELF
	FormatPE
	FormatMachO
	FormatMachOFat // fat/universal Mach-O, detected but not supported
)

var formatNames = map[Format]string{
	FormatUnknown:  "unknown",
	FormatELF:      "ELF",
	FormatPE:       "PE",
	FormatMachO:    "Mach-O",
	FormatMachOFat: "fat Mach-O",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Mach-O magic numbers as read big-endian from the first four bytes.
// Thin binaries appear in both byte orders and both word sizes; fat
// headers are always stored big-endian.
const (
	machoMagic32 = 0xfeedface
	machoMagic64 = 0xfeedfacf
	machoCigam32 = 0xcefaedfe
	machoCigam64 = 0xcffaedfe
	machoFat     = 0xcafebabe
	machoFatSwap = 0xbebafeca
)

// DetectFormat sniffs the container format from the leading magic bytes.
func DetectFormat(buf []byte) Format {
	if len(buf) >= 4 && buf[0] == 0x7f && buf[1] == 'E' && buf[2] == 'L' && buf[3] == 'F' {
		return FormatELF
	}
	if len(buf) >= 2 && buf[0] == 'M' && buf[1] == 'Z' {
		return FormatPE
	}
	if len(buf) >= 4 {
		switch binary.BigEndian.Uint32(buf) {
		case machoMagic32, machoMagic64, machoCigam32, machoCigam64:
			return FormatMachO
		case machoFat, machoFatSwap:
			return FormatMachOFat
		}
	}
	return FormatUnknown
}

// File is a memory-mapped object file.
type File struct {
	path   string
	file   *os.File
	data   mmap.MMap
	format Format
}

// Open maps the file at path read-only and detects its format.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "failed to map %s", path)
	}

	return &File{
		path:   path,
		file:   f,
		data:   data,
		format: DetectFormat(data),
	}, nil
}

// Close unmaps the file and closes the underlying descriptor.
func (f *File) Close() error {
	if f.data != nil {
		err := f.data.Unmap()
		f.data = nil
		if err != nil {
			f.file.Close()
			f.file = nil
			return errors.Wrap(err, "failed to unmap file")
		}
	}
	if f.file != nil {
		err := f.file.Close()
		f.file = nil
		return err
	}
	return nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Format returns the detected container format.
func (f *File) Format() Format {
	return f.format
}

// Bytes returns the mapped file contents. The slice is only valid until
// Close is called.
func (f *File) Bytes() []byte {
	return f.data
}

// ELF parses the mapping as an ELF file.
func (f *File) ELF() (*elf.File, error) {
	ef, err := elf.NewFile(bytes.NewReader(f.data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s as ELF", f.path)
	}
	return ef, nil
}

// PE parses the mapping as a PE/COFF file.
func (f *File) PE() (*pe.File, error) {
	pf, err := pe.NewFile(bytes.NewReader(f.data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s as PE", f.path)
	}
	return pf, nil
}

// MachO parses the mapping as a thin Mach-O file. Fat binaries are
// rejected by format detection before this is reached.
func (f *File) MachO() (*macho.File, error) {
	mf, err := macho.NewFile(bytes.NewReader(f.data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s as Mach-O", f.path)
	}
	return mf, nil
}

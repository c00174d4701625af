package size

import (
	"debug/elf"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumExcludesOther(t *testing.T) {
	totals := Sum([]Section{
		{Name: ".text", Size: 100, Category: Text},
		{Name: ".data", Size: 40, Category: Data},
		{Name: ".bss", Size: 50, Category: Bss},
		{Name: ".symtab", Size: 512, Category: Other},
		{Name: ".debug_info", Size: 1024, Category: Other},
	})

	assert.Equal(t, Totals{Text: 100, Data: 40, Bss: 50}, totals)
	assert.Equal(t, uint64(190), totals.Dec())
}

func TestGroupOverwritesDuplicateNames(t *testing.T) {
	g := Group([]Section{
		{Name: ".text", Size: 100, Category: Text},
		{Name: ".text", Size: 200, Category: Text},
	})

	require.Len(t, g.Text, 1)
	assert.Equal(t, uint64(200), g.Text[".text"])
}

func TestGroupOmitsEmptyCategories(t *testing.T) {
	g := Group([]Section{
		{Name: ".text", Size: 100, Category: Text},
	})

	assert.NotNil(t, g.Text)
	assert.Nil(t, g.Data)
	assert.Nil(t, g.Bss)
	assert.Nil(t, g.Other)
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Text", Text.String())
	assert.Equal(t, "Data", Data.String())
	assert.Equal(t, "Bss", Bss.String())
	assert.Equal(t, "Other", Other.String())
	assert.Equal(t, "Category(9)", Category(9).String())
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []Category{Text, Data, Bss, Other}, Categories())
}

// The classic ELF end-to-end case: one executable section, one zero-fill
// section and one debug section produce the familiar size(1) row.
func TestELFLegacyTotals(t *testing.T) {
	f := &elf.File{Sections: []*elf.Section{
		elfSection(".text", elf.SHT_PROGBITS, elf.SHF_ALLOC|elf.SHF_EXECINSTR, 100),
		elfSection(".bss", elf.SHT_NOBITS, elf.SHF_ALLOC|elf.SHF_WRITE, 50),
		elfSection(".debug", elf.SHT_PROGBITS, 0, 30),
	}}

	totals := Sum(classifyELF(f))
	assert.Equal(t, Totals{Text: 100, Data: 0, Bss: 50}, totals)
	assert.Equal(t, uint64(150), totals.Dec())
}

func TestOpenRejectsFatMachO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "universal.bin")
	content := append([]byte{0xca, 0xfe, 0xba, 0xbe}, make([]byte, 28)...)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Sections()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fat Mach-O binaries are not supported")
}

func TestOpenRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-object")
	require.NoError(t, os.WriteFile(path, []byte("just some text\n"), 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.Sections()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unhandled file type")
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

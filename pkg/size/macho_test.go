package size

import (
	"debug/macho"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func machoSection(seg, name string, size uint64) *macho.Section {
	return &macho.Section{SectionHeader: macho.SectionHeader{
		Name: name,
		Seg:  seg,
		Size: size,
	}}
}

func TestClassifyMachO(t *testing.T) {
	tests := []struct {
		name     string
		sec      *macho.Section
		want     Category
		wantName string
	}{
		{
			name:     "text segment code",
			sec:      machoSection("__TEXT", "__text", 100),
			want:     Text,
			wantName: ".text",
		},
		{
			name:     "text segment const",
			sec:      machoSection("__TEXT", "__const", 64),
			want:     Text,
			wantName: ".rodata",
		},
		{
			name:     "text segment cstring",
			sec:      machoSection("__TEXT", "__cstring", 32),
			want:     Text,
			wantName: ".cstring",
		},
		{
			name:     "data segment data",
			sec:      machoSection("__DATA", "__data", 40),
			want:     Data,
			wantName: ".data",
		},
		{
			name:     "data segment const maps to relro but stays data",
			sec:      machoSection("__DATA", "__const", 24),
			want:     Data,
			wantName: ".data.rel.ro",
		},
		{
			name:     "data segment bss",
			sec:      machoSection("__DATA", "__bss", 50),
			want:     Bss,
			wantName: ".bss",
		},
		{
			name:     "zero-fill name wins over text segment",
			sec:      machoSection("__TEXT", "__bss", 8),
			want:     Bss,
			wantName: "__bss",
		},
		{
			name:     "unknown segment is other",
			sec:      machoSection("__OBJC", "__message_refs", 16),
			want:     Other,
			wantName: "__message_refs",
		},
		{
			name:     "unmapped text section keeps native name",
			sec:      machoSection("__TEXT", "__unwind_info", 12),
			want:     Text,
			wantName: "__unwind_info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &macho.File{Sections: []*macho.Section{tt.sec}}
			got := classifyMachO(f)
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0].Category)
			assert.Equal(t, tt.wantName, got[0].Name)
			assert.Equal(t, tt.sec.Size, got[0].Size)
		})
	}
}

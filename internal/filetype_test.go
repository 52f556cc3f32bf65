package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDynamicFileType(t *testing.T) {
	tests := []struct {
		filename string
		want     int
	}{
		{"words.txt", FileTypeTXT},
		{"WORDS.TXT", FileTypeTXT},
		{"dir/readme.md", FileTypeMD},
		{"page.htm", FileTypeHTML},
		{"feed.xml", FileTypeXML},
		{"report.docx", FileTypeDOCX},
		{"paper.pdf", FileTypePDF},
		{"bundle.tar.gz", FileTypeTARGZ},
		{"bundle.tgz", FileTypeTARGZ},
		{"single.gz", FileTypeGZ},
		{"archive.7z", FileType7Z},
		{"main.go", FileTypeText},
		{"noext", FileTypeOther},
		{"image.png", FileTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, GetDynamicFileType(tt.filename))
		})
	}
}

func TestGetParser_FallsBackToRaw(t *testing.T) {
	p, err := GetParser(9999)
	require.NoError(t, err)
	assert.IsType(t, &RawFileParser{}, p)

	assert.Contains(t, RegisteredTypes(), FileTypeOther)
}

type namedParser struct{ name string }

func (p *namedParser) Parse(string) ([]byte, error) { return []byte(p.name), nil }

func TestRegisterParser_IgnoresDuplicate(t *testing.T) {
	const kind = 4242
	first := &namedParser{name: "first"}
	RegisterParser(kind, first)
	RegisterParser(kind, &namedParser{name: "second"})

	p, err := GetParser(kind)
	require.NoError(t, err)
	assert.Same(t, first, p)
}

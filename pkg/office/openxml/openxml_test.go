package openxml

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeZip(t *testing.T, name string, parts map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for n, body := range parts {
		w, err := zw.Create(n)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

const wNS = `xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"`

func TestDocx(t *testing.T) {
	path := writeZip(t, "a.docx", map[string]string{
		"word/document.xml": `<w:document ` + wNS + `><w:body><w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>hello</w:t></w:r><w:r><w:t>world</w:t></w:r></w:p></w:body></w:document>`,
		"word/styles.xml":   `<w:styles ` + wNS + `><w:style><w:name w:val="ignored"/></w:style></w:styles>`,
		"word/header1.xml":  `<w:hdr ` + wNS + `><w:p><w:r><w:t>header</w:t></w:r></w:p></w:hdr>`,
	})

	out, err := NewDocx().Parse(path)
	require.NoError(t, err)
	words := strings.Fields(string(out))
	assert.ElementsMatch(t, []string{"hello", "world", "header"}, words)
}

func TestPptx_SlideOrder(t *testing.T) {
	slide := func(s string) string {
		return `<p:sld xmlns:p="p" xmlns:a="a"><p:txBody><a:p><a:r><a:t>` + s + `</a:t></a:r></a:p></p:txBody></p:sld>`
	}
	path := writeZip(t, "a.pptx", map[string]string{
		"ppt/slides/slide10.xml": slide("ten"),
		"ppt/slides/slide2.xml":  slide("two"),
		"ppt/slides/slide1.xml":  slide("one"),
	})

	out, err := NewPptx().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "ten"}, strings.Fields(string(out)))
}

func TestPptx_LineBreak(t *testing.T) {
	path := writeZip(t, "br.pptx", map[string]string{
		"ppt/slides/slide1.xml": `<p:sld xmlns:p="p" xmlns:a="a"><p:txBody><a:p><a:r><a:t>first</a:t></a:r><a:br><a:rPr lang="en-US"/></a:br><a:r><a:t>second</a:t></a:r></a:p></p:txBody></p:sld>`,
	})

	out, err := NewPptx().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, strings.Fields(string(out)))
}

func TestXlsx(t *testing.T) {
	path := writeZip(t, "a.xlsx", map[string]string{
		"xl/sharedStrings.xml":     `<sst><si><t>apple</t></si><si><t>pear</t></si></sst>`,
		"xl/worksheets/sheet1.xml": `<worksheet><sheetData><row><c t="inlineStr"><is><t>plum</t></is></c><c><v>42</v></c></row></sheetData></worksheet>`,
	})

	out, err := NewXlsx().Parse(path)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"apple", "pear", "plum"}, strings.Fields(string(out)))
}

func TestOdt(t *testing.T) {
	path := writeZip(t, "a.odt", map[string]string{
		"content.xml": `<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:text="` + odtTextNS + `"><office:body><text:h>title</text:h><text:p>body <text:span>span</text:span></text:p><other>skip</other></office:body></office:document-content>`,
	})

	out, err := NewOdt().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "body", "span"}, strings.Fields(string(out)))
}

func TestVsdx(t *testing.T) {
	path := writeZip(t, "a.vsdx", map[string]string{
		"visio/pages/pages.xml": `<Pages><Page Name="ignored"/></Pages>`,
		"visio/pages/page1.xml": `<PageContents><Shapes><Shape><Cell V="1"/><Text>process step</Text></Shape></Shapes></PageContents>`,
	})

	out, err := NewVsdx().Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"process", "step"}, strings.Fields(string(out)))
}

func TestParse_NoParts(t *testing.T) {
	path := writeZip(t, "empty.docx", map[string]string{"other.xml": "<x/>"})
	_, err := NewDocx().Parse(path)
	assert.Error(t, err)
}

func TestPartLess(t *testing.T) {
	assert.True(t, partLess("ppt/slides/slide2.xml", "ppt/slides/slide10.xml"))
	assert.False(t, partLess("ppt/slides/slide10.xml", "ppt/slides/slide2.xml"))
	assert.True(t, partLess("ppt/notesSlides/notesSlide9.xml", "ppt/slides/slide1.xml"))
}

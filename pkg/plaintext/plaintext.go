package plaintext

import (
	"lextrie/internal"
	"lextrie/pkg/plaintext/plainhtml"
	"lextrie/pkg/plaintext/plainmd"
	"lextrie/pkg/plaintext/plaintxt"
	"lextrie/pkg/plaintext/plainxml"
)

func init() {
	internal.RegisterParser(internal.FileTypeTXT, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeCSV, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeJSON, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeText, &plaintxt.TextPlainParser{})
	internal.RegisterParser(internal.FileTypeXML, &plainxml.TextXMLParser{})
	internal.RegisterParser(internal.FileTypeHTML, &plainhtml.TextHTMLParser{})
	internal.RegisterParser(internal.FileTypeMD, &plainmd.TextMarkdownParser{})
}

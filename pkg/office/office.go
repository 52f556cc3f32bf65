package office

import (
	"lextrie/internal"
	"lextrie/pkg/office/ole"
	"lextrie/pkg/office/openxml"
	"lextrie/pkg/office/pdf"
	"lextrie/pkg/office/rtf"
	"lextrie/pkg/office/xls"
)

func init() {
	internal.RegisterParser(internal.FileTypeDOCX, openxml.NewDocx())
	internal.RegisterParser(internal.FileTypeXLSX, openxml.NewXlsx())
	internal.RegisterParser(internal.FileTypePPTX, openxml.NewPptx())
	internal.RegisterParser(internal.FileTypeODT, openxml.NewOdt())
	internal.RegisterParser(internal.FileTypeVSDX, openxml.NewVsdx())
	internal.RegisterParser(internal.FileTypeRTF, &rtf.OfficeRtfParser{})
	internal.RegisterParser(internal.FileTypeXLS, &xls.OfficeXlsParser{})
	internal.RegisterParser(internal.FileTypeDOC, &ole.OleFileParser{})
	internal.RegisterParser(internal.FileTypePPT, &ole.OleFileParser{})
	internal.RegisterParser(internal.FileTypePDF, &pdf.OfficePdfParser{})
}

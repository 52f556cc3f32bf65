package internal

import (
	"path/filepath"
	"strings"
)

// 文件类型常量定义
const (
	FileTypeHTML  = 1
	FileTypeTXT   = 2
	FileTypeXML   = 3
	FileTypeJSON  = 4
	FileTypeCSV   = 5
	FileTypeText  = 6 // 其他文本类
	FileTypeDOC   = 7
	FileTypeDOCX  = 8
	FileTypeXLS   = 9
	FileTypeXLSX  = 10
	FileTypePPT   = 11
	FileTypePPTX  = 12
	FileTypePDF   = 13
	FileTypeODT   = 15
	FileTypeMD    = 16
	FileTypeRTF   = 17
	FileTypeTAR   = 18
	FileTypeGZ    = 19
	FileTypeTARGZ = 20
	FileTypeZIP   = 21
	FileType7Z    = 22
	FileTypeRAR   = 23
	FileTypeBZ2   = 24
	FileTypeJAR   = 25
	FileTypeWAR   = 26
	FileTypeXZ    = 29
	FileTypeVSDX  = 201
	FileTypeOther = 114
)

// 后缀映射表
var suffixMap = map[string]int{
	"html":     FileTypeHTML,
	"htm":      FileTypeHTML,
	"txt":      FileTypeTXT,
	"xml":      FileTypeXML,
	"json":     FileTypeJSON,
	"csv":      FileTypeCSV,
	"md":       FileTypeMD,
	"markdown": FileTypeMD,
	"doc":      FileTypeDOC,
	"docx":     FileTypeDOCX,
	"xls":      FileTypeXLS,
	"xlsx":     FileTypeXLSX,
	"ppt":      FileTypePPT,
	"pptx":     FileTypePPTX,
	"pdf":      FileTypePDF,
	"odt":      FileTypeODT,
	"rtf":      FileTypeRTF,
	"vsdx":     FileTypeVSDX,
	"tar":      FileTypeTAR,
	"gz":       FileTypeGZ,
	"tgz":      FileTypeTARGZ,
	"tar.gz":   FileTypeTARGZ,
	"zip":      FileTypeZIP,
	"7z":       FileType7Z,
	"rar":      FileTypeRAR,
	"bz2":      FileTypeBZ2,
	"jar":      FileTypeJAR,
	"war":      FileTypeWAR,
	"xz":       FileTypeXZ,
}

// 按纯文本处理的其他后缀
var textOtherSuffixes = []string{"css", "js", "log", "ini", "py", "go", "java", "c", "cpp", "h", "sh", "bat", "php", "rb", "yaml", "yml", "toml"}

// GetDynamicFileType 根据文件名后缀推断文件类型
func GetDynamicFileType(filename string) int {
	lowerFilename := strings.ToLower(filename)

	// 检查复合后缀
	var ext string
	if strings.HasSuffix(lowerFilename, ".tar.gz") {
		ext = "tar.gz"
	} else {
		ext = strings.TrimPrefix(filepath.Ext(lowerFilename), ".")
	}

	if t, ok := suffixMap[ext]; ok {
		return t
	}
	for _, s := range textOtherSuffixes {
		if ext == s {
			return FileTypeText
		}
	}
	return FileTypeOther
}

package compressfile

import (
	"fmt"
	"os"

	"github.com/ulikunitz/xz"
)

type XzFileParser struct{}

func (p *XzFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	xzReader, err := xz.NewReader(file)
	if err != nil {
		return []byte{}, fmt.Errorf("创建xz reader失败: %w", err)
	}

	return withTmpDir("xz_extract_", func(dir string) ([]byte, error) {
		if err := writeDstFile(xzReader, joinSafe(dir, streamName(filePath, ".xz")), 0o644); err != nil {
			return []byte{}, err
		}
		return parseDir("xz", dir)
	})
}

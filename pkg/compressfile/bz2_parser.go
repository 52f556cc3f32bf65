package compressfile

import (
	"compress/bzip2"
	"fmt"
	"os"
)

type Bz2FileParser struct{}

func (p *Bz2FileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	return withTmpDir("bz2_extract_", func(dir string) ([]byte, error) {
		if err := writeDstFile(bzip2.NewReader(file), joinSafe(dir, streamName(filePath, ".bz2")), 0o644); err != nil {
			return []byte{}, err
		}
		return parseDir("bz2", dir)
	})
}

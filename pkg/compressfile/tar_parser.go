package compressfile

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"

	"lextrie/pkg/logger"
)

type TarFileParser struct{}

func (p *TarFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	return parseTarFromReader(file)
}

// parseTarFromReader 只解出普通文件，链接和设备文件被忽略
func parseTarFromReader(reader io.Reader) ([]byte, error) {
	tr := tar.NewReader(reader)
	return withTmpDir("tar_extract_", func(dir string) ([]byte, error) {
		for {
			header, err := tr.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return []byte{}, fmt.Errorf("tar解析错误: %w", err)
			}
			if header.Typeflag != tar.TypeReg {
				continue
			}

			safePath := joinSafe(dir, header.Name)
			if err := writeDstFile(tr, safePath, 0o644); err != nil {
				return []byte{}, err
			}
			logger.DebugLogger.Printf("提取文件: %s", header.Name)
		}
		return parseDir("tar", dir)
	})
}

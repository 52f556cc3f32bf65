package compressfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nwaples/rardecode"

	"lextrie/pkg/logger"
)

type RarFileParser struct{}

func (p *RarFileParser) Parse(filePath string) ([]byte, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开文件: %w", err)
	}
	defer file.Close()

	reader, err := rardecode.NewReader(file, "") // 空密码
	if err != nil {
		return []byte{}, fmt.Errorf("创建rar reader失败: %w", err)
	}

	return withTmpDir("rar_extract_", func(dir string) ([]byte, error) {
		for {
			hdr, err := reader.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return []byte{}, fmt.Errorf("rar解析错误: %w", err)
			}
			if hdr.IsDir {
				continue
			}
			if err := writeDstFile(reader, joinSafe(dir, hdr.Name), 0o644); err != nil {
				return []byte{}, err
			}
			logger.DebugLogger.Printf("提取文件: %s", hdr.Name)
		}
		return parseDir("rar", dir)
	})
}

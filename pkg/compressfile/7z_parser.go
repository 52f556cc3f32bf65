package compressfile

import (
	"fmt"

	"github.com/gen2brain/go-unarr"

	"lextrie/pkg/logger"
)

type SevenZFileParser struct{}

func (p *SevenZFileParser) Parse(filePath string) ([]byte, error) {
	archive, err := unarr.NewArchive(filePath)
	if err != nil {
		return []byte{}, fmt.Errorf("无法打开7z文件: %w", err)
	}
	defer archive.Close()

	return withTmpDir("7z_extract_", func(dir string) ([]byte, error) {
		files, err := archive.Extract(dir)
		if err != nil {
			return []byte{}, fmt.Errorf("提取7z文件失败: %w", err)
		}
		logger.Logger.Printf("7z文件提取完成，共 %d 个条目", len(files))
		return parseDir("7z", dir)
	})
}

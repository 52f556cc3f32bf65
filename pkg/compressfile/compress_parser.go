package compressfile

/*
	压缩文件内部的文件类型不确定，解压到临时目录后再按扩展名选择解析器
*/

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"lextrie/internal"
	"lextrie/pkg/logger"
)

// withTmpDir 在 internal.TmpDir 下创建临时目录并在 fn 返回后清理
func withTmpDir(pattern string, fn func(dir string) ([]byte, error)) ([]byte, error) {
	dir, err := internal.MkdirTemp(pattern)
	if err != nil {
		return []byte{}, err
	}
	defer os.RemoveAll(dir)
	logger.DebugLogger.Printf("临时目录: %s", dir)

	return fn(dir)
}

// sanitizePath 防止路径遍历
func sanitizePath(path string) string {
	sanitized := strings.TrimPrefix(filepath.Join("/", path), "/")
	if path != sanitized {
		logger.DebugLogger.Printf("路径安全处理: %s -> %s", path, sanitized)
	}
	return sanitized
}

func joinSafe(dir, name string) string {
	return filepath.Join(dir, sanitizePath(name))
}

// writeDstFile 将 r 的内容写入 safePath，必要时创建父目录
func writeDstFile(r io.Reader, safePath string, mode fs.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(safePath), 0o755); err != nil {
		return fmt.Errorf("创建目录 %s 失败: %w", filepath.Dir(safePath), err)
	}
	dstFile, err := os.OpenFile(safePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("创建文件 %s 失败: %w", safePath, err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, r); err != nil {
		return fmt.Errorf("复制文件 %s 内容失败: %w", safePath, err)
	}
	return nil
}

// streamName 单文件压缩流（gz/bz2/xz）解压后的文件名
func streamName(filePath, suffix string) string {
	base := filepath.Base(filePath)
	if strings.HasSuffix(strings.ToLower(base), suffix) {
		base = base[:len(base)-len(suffix)]
	}
	if base == "" {
		base = "stream.txt"
	}
	return base
}

// WalkDir 遍历目录，按扩展名为每个文件选择解析器并拼接提取结果
func WalkDir(dir string) ([]byte, int, error) {
	var buffer bytes.Buffer
	var fileCnt int

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		parser, err := internal.GetParser(internal.GetDynamicFileType(path))
		if err != nil {
			return fmt.Errorf("获取解析器失败: %w", err)
		}

		logger.Logger.Printf("解析文件: %s", strings.TrimPrefix(path, dir))
		content, err := parser.Parse(path)
		if err != nil {
			return fmt.Errorf("读取文件 %s 失败: %w", path, err)
		}
		fileCnt++

		buffer.Write(content)
		buffer.WriteString("\n\n")
		return nil
	})

	return buffer.Bytes(), fileCnt, err
}

// parseDir 解析目录下全部文件并记录数量
func parseDir(kind, dir string) ([]byte, error) {
	content, cnt, err := WalkDir(dir)
	if err != nil {
		return content, err
	}
	logger.Logger.Printf("%s文件解析完成，共提取 %d 个文件", kind, cnt)
	return content, nil
}

func init() {
	internal.RegisterParser(internal.FileTypeZIP, &ZipFileParser{})
	internal.RegisterParser(internal.FileTypeJAR, &ZipFileParser{})
	internal.RegisterParser(internal.FileTypeWAR, &ZipFileParser{})
	internal.RegisterParser(internal.FileTypeTAR, &TarFileParser{})
	internal.RegisterParser(internal.FileTypeGZ, &GzFileParser{})
	internal.RegisterParser(internal.FileTypeTARGZ, &GzFileParser{})
	internal.RegisterParser(internal.FileTypeBZ2, &Bz2FileParser{})
	internal.RegisterParser(internal.FileTypeXZ, &XzFileParser{})
	internal.RegisterParser(internal.FileType7Z, &SevenZFileParser{})
	internal.RegisterParser(internal.FileTypeRAR, &RarFileParser{})
}

package internal

import (
	"fmt"
	"os"
)

// TmpDir 解析过程中临时文件的基础目录，空字符串表示系统临时目录
var TmpDir string

// MkdirTemp 在 TmpDir 下创建临时目录，调用方负责删除
func MkdirTemp(pattern string) (string, error) {
	if TmpDir != "" {
		if err := os.MkdirAll(TmpDir, 0o755); err != nil {
			return "", fmt.Errorf("创建临时目录 %s 失败: %w", TmpDir, err)
		}
	}
	dir, err := os.MkdirTemp(TmpDir, pattern)
	if err != nil {
		return "", fmt.Errorf("创建临时目录失败: %w", err)
	}
	return dir, nil
}

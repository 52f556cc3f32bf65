package lexicon

import "strings"

// Options 控制分词
type Options struct {
	Fold      bool // 将 ASCII 大写字母转为小写
	MinLength int  // 过短的片段被丢弃
	MaxLength int  // 过长的片段被丢弃，0 表示不限
}

// DefaultOptions 折叠大小写、不限长度
var DefaultOptions = Options{Fold: true, MinLength: 1}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// Tokenize 将文本切分为连续 ASCII 字母片段，非 ASCII 字母一律视为分隔符
func Tokenize(text string, opts Options) []string {
	var words []string
	start := -1
	emit := func(end int) {
		if start < 0 {
			return
		}
		w := text[start:end]
		start = -1
		if len(w) < opts.MinLength || (opts.MaxLength > 0 && len(w) > opts.MaxLength) {
			return
		}
		if opts.Fold {
			w = strings.ToLower(w)
		}
		words = append(words, w)
	}

	for i := 0; i < len(text); i++ {
		if isLetter(text[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		emit(i)
	}
	emit(len(text))
	return words
}

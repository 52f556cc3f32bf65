package lexicon

import (
	"fmt"

	"lextrie/internal"
	"lextrie/pkg/logger"
	"lextrie/pkg/search/trie"
)

// Stats 加载统计
type Stats struct {
	Tokens     int // 参与插入的单词数
	Inserted   int // 新增的单词数
	Duplicates int // 已存在的单词数
	Rejected   int // 含非法字符被拒绝的单词数
}

// Add 累加另一份统计
func (s *Stats) Add(o Stats) {
	s.Tokens += o.Tokens
	s.Inserted += o.Inserted
	s.Duplicates += o.Duplicates
	s.Rejected += o.Rejected
}

func (s Stats) String() string {
	return fmt.Sprintf("tokens=%d inserted=%d duplicates=%d rejected=%d", s.Tokens, s.Inserted, s.Duplicates, s.Rejected)
}

// Loader 将文本或文件中的单词写入 Trie
type Loader struct {
	Trie    *trie.Trie
	Options Options
}

// NewLoader 创建写入 t 的加载器
func NewLoader(t *trie.Trie, opts Options) *Loader {
	return &Loader{Trie: t, Options: opts}
}

// AddWords 逐个插入单词，非法单词计入 Rejected 后继续，空串被跳过
func (l *Loader) AddWords(words []string) Stats {
	var st Stats
	for _, w := range words {
		if w == "" {
			continue
		}
		st.Tokens++
		before := l.Trie.Len()
		if err := l.Trie.Insert(w); err != nil {
			logger.DebugLogger.Printf("拒绝单词: %v", err)
			st.Rejected++
			continue
		}
		if l.Trie.Len() > before {
			st.Inserted++
		} else {
			st.Duplicates++
		}
	}
	return st
}

// AddText 分词后插入
func (l *Loader) AddText(text string) Stats {
	return l.AddWords(Tokenize(text, l.Options))
}

// LoadFile 按文件类型选择解析器提取文本后插入，kind 为 0 时根据文件名推断
func (l *Loader) LoadFile(path string, kind int) (Stats, error) {
	if kind == 0 {
		kind = internal.GetDynamicFileType(path)
	}
	parser, err := internal.GetParser(kind)
	if err != nil {
		return Stats{}, fmt.Errorf("获取解析器失败: %w", err)
	}

	logger.Logger.Printf("解析文件 %s (类型 %d)", path, kind)
	text, err := parser.Parse(path)
	if err != nil {
		return Stats{}, fmt.Errorf("解析文件 %s 失败: %w", path, err)
	}

	st := l.AddText(string(text))
	logger.Logger.Printf("文件 %s 加载完成: %s", path, st)
	return st, nil
}

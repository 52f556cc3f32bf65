package trie

// alphabetSize 字母表大小，仅支持 'a'..'z'
const alphabetSize = 26

type node struct {
	children [alphabetSize]*node
	terminal bool // 是否为某个已插入单词的结尾
}

// Trie 小写字母前缀树，非并发安全
type Trie struct {
	root  *node
	words int
	nodes int
}

// New 创建空的前缀树，根节点在构造时创建且不会被替换
func New() *Trie {
	return &Trie{root: &node{}, nodes: 1}
}

// NewFromWords 创建前缀树并依次插入 words，遇到第一个非法单词即返回错误
func NewFromWords(words []string) (*Trie, error) {
	t := New()
	for _, w := range words {
		if err := t.Insert(w); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Insert 插入单词。整个单词先校验再修改树，校验失败时树保持不变。
// 重复插入同一个单词不会产生结构变化。
func (t *Trie) Insert(word string) error {
	if err := validate(word); err != nil {
		return err
	}
	if word == "" {
		return nil
	}

	n := t.root
	for i := 0; i < len(word); i++ {
		idx := word[i] - 'a'
		if n.children[idx] == nil {
			n.children[idx] = &node{}
			t.nodes++
		}
		n = n.children[idx]
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
	return nil
}

// Search 判断 word 是否为完整插入过的单词
func (t *Trie) Search(word string) (bool, error) {
	n, err := t.findNode(word)
	if err != nil || n == nil {
		return false, err
	}
	return n.terminal, nil
}

// StartsWith 判断是否存在以 prefix 开头的单词，空前缀恒为 true
func (t *Trie) StartsWith(prefix string) (bool, error) {
	n, err := t.findNode(prefix)
	if err != nil {
		return false, err
	}
	return n != nil, nil
}

// Len 返回不同单词的数量
func (t *Trie) Len() int {
	return t.words
}

// Size 返回节点数量（含根节点）
func (t *Trie) Size() int {
	return t.nodes
}

// WordsWithPrefix 按字典序返回所有以 prefix 开头的单词
func (t *Trie) WordsWithPrefix(prefix string) ([]string, error) {
	n, err := t.findNode(prefix)
	if err != nil {
		return nil, err
	}
	results := []string{}
	if n == nil {
		return results, nil
	}

	collect(n, []byte(prefix), func(word string) bool {
		results = append(results, word)
		return true
	})
	return results, nil
}

// Walk 按字典序遍历所有单词，fn 返回 false 时停止
func (t *Trie) Walk(fn func(word string) bool) {
	collect(t.root, nil, fn)
}

// findNode 沿 key 的路径查找节点，路径不存在时返回 nil
func (t *Trie) findNode(key string) (*node, error) {
	if err := validate(key); err != nil {
		return nil, err
	}
	n := t.root
	for i := 0; i < len(key); i++ {
		n = n.children[key[i]-'a']
		if n == nil {
			return nil, nil
		}
	}
	return n, nil
}

// collect 深度优先遍历，子节点下标顺序即字典序
func collect(n *node, path []byte, fn func(string) bool) bool {
	if n.terminal && !fn(string(path)) {
		return false
	}
	for i, child := range n.children {
		if child == nil {
			continue
		}
		if !collect(child, append(path, byte('a'+i)), fn) {
			return false
		}
	}
	return true
}

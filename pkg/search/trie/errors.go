package trie

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter 输入包含 'a'..'z' 以外的字符
var ErrInvalidCharacter = errors.New("trie: invalid character")

// InvalidCharacterError 记录非法字符及其字节偏移
type InvalidCharacterError struct {
	Input  string
	Offset int
	Char   rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("trie: invalid character %q at offset %d in %q", e.Char, e.Offset, e.Input)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

func validate(s string) error {
	for i, r := range s {
		if r < 'a' || r > 'z' {
			return &InvalidCharacterError{Input: s, Offset: i, Char: r}
		}
	}
	return nil
}

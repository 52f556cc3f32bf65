package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	ConfigFile, InputFile, Words, SearchWords, Prefixes, Complete = "", "", "", "", "", ""
	FileType = 0
}

func TestRun_Words(t *testing.T) {
	defer resetFlags()
	Words = "cat, car,dog"
	SearchWords = "cat,ca,dog,do,Cat"
	Prefixes = "ca,do,cow"
	Complete = "ca"

	var out bytes.Buffer
	require.NoError(t, run(&out))

	got := out.String()
	assert.Contains(t, got, "loaded: tokens=3 inserted=3 duplicates=0 rejected=0 words=3 nodes=8\n")
	assert.Contains(t, got, "search cat: true\n")
	assert.Contains(t, got, "search ca: false\n")
	assert.Contains(t, got, "search dog: true\n")
	assert.Contains(t, got, "search do: false\n")
	assert.Contains(t, got, "search Cat: trie: invalid character 'C' at offset 0")
	assert.Contains(t, got, "prefix ca: true\n")
	assert.Contains(t, got, "prefix do: true\n")
	assert.Contains(t, got, "prefix cow: false\n")
	assert.Contains(t, got, "complete ca: car cat\n")
}

func TestRun_InputFile(t *testing.T) {
	defer resetFlags()
	dir := t.TempDir()
	InputFile = filepath.Join(dir, "words.md")
	require.NoError(t, os.WriteFile(InputFile, []byte("# Tries\n\nA trie stores words."), 0o644))
	SearchWords = "trie,tries,words"

	var out bytes.Buffer
	require.NoError(t, run(&out))
	assert.Contains(t, out.String(), "search trie: true\n")
	assert.Contains(t, out.String(), "search tries: true\n")
	assert.Contains(t, out.String(), "search words: true\n")
}

func TestRun_MissingInput(t *testing.T) {
	defer resetFlags()
	InputFile = filepath.Join(t.TempDir(), "missing.txt")

	var out bytes.Buffer
	assert.Error(t, run(&out))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a,b ,,c, "))
	assert.Nil(t, splitList(""))
}

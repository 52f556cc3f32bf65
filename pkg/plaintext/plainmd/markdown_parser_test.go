package plainmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMd(t *testing.T) {
	src := "# Title here\n\nSome *emphasis* and `code` text.\n\n- first item\n- second item\n\n```\nfenced block\n```\n\n<div>skipped html</div>\n\n[link text](http://example.com \"link title\")\n"

	got, err := (&TextMarkdownParser{}).ParseMd([]byte(src))
	require.NoError(t, err)

	for _, want := range []string{"Title here", "emphasis", "code", "first item", "second item", "fenced block", "link text", "link title"} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "skipped html")
	assert.NotContains(t, got, "http://example.com")
	assert.NotContains(t, got, "#")
}

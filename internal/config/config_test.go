package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.True(t, cfg.Lexicon.Fold)
	assert.Equal(t, 1, cfg.Lexicon.MinLength)
	assert.Equal(t, 0, cfg.Lexicon.MaxLength)
	assert.Empty(t, cfg.Extract.TmpDir)
	assert.False(t, cfg.Log.Verbose)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lextrie.yaml")
	content := "lexicon:\n  fold: false\n  min_length: 3\n  max_length: 12\nextract:\n  tmp_dir: /var/tmp/lextrie\nlog:\n  verbose: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.False(t, cfg.Lexicon.Fold)
	assert.Equal(t, 3, cfg.Lexicon.MinLength)
	assert.Equal(t, 12, cfg.Lexicon.MaxLength)
	assert.Equal(t, "/var/tmp/lextrie", cfg.Extract.TmpDir)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("LEXTRIE_LEXICON_MIN_LENGTH", "4")
	t.Setenv("LEXTRIE_LOG_DEBUG", "true")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Lexicon.MinLength)
	assert.True(t, cfg.Log.Debug)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		lexicon LexiconConfig
		wantErr bool
	}{
		{name: "defaults", lexicon: LexiconConfig{MinLength: 1}, wantErr: false},
		{name: "negative min", lexicon: LexiconConfig{MinLength: -1}, wantErr: true},
		{name: "negative max", lexicon: LexiconConfig{MaxLength: -2}, wantErr: true},
		{name: "max below min", lexicon: LexiconConfig{MinLength: 5, MaxLength: 3}, wantErr: true},
		{name: "max unlimited", lexicon: LexiconConfig{MinLength: 5, MaxLength: 0}, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Lexicon: tt.lexicon}
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

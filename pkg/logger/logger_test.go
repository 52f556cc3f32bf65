package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Levels(t *testing.T) {
	defer Discard()

	var buf bytes.Buffer
	Setup(&buf, true, false)
	Logger.Printf("loaded %d words", 3)
	DebugLogger.Printf("hidden %s", "detail")

	out := buf.String()
	assert.Contains(t, out, "loaded 3 words")
	assert.Contains(t, out, "INF")
	assert.NotContains(t, out, "hidden detail")

	buf.Reset()
	Setup(&buf, false, true)
	DebugLogger.Println("visible", "detail")
	assert.Contains(t, buf.String(), "visible detail")
	assert.Contains(t, buf.String(), "DBG")
}

func TestSetup_Quiet(t *testing.T) {
	defer Discard()

	var buf bytes.Buffer
	Setup(&buf, false, false)
	Logger.Print("nothing")
	DebugLogger.Print("nothing")
	assert.Empty(t, buf.String())
}

func TestDebugLoggerForwardsToLogger(t *testing.T) {
	defer Discard()

	var buf bytes.Buffer
	SetLogger(NewZerolog(&buf, zerolog.InfoLevel))
	SetDebugLogger(&debugLogger{})
	DebugLogger.Print("forwarded")
	assert.Contains(t, buf.String(), "forwarded")
}

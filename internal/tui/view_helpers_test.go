package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "he...", fitText("hello world", 5))
	assert.Equal(t, "hel", fitText("hello", 3))
	assert.Equal(t, "пр...", fitText("привет мир", 5))
}

func TestValueOrNA(t *testing.T) {
	assert.Equal(t, "N/A", valueOrNA("  "))
	assert.Equal(t, "v1", valueOrNA(" v1 "))
}

func TestFormatWatermark(t *testing.T) {
	want := time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC).Local().Format("2006-01-02 15:04:05")
	assert.Equal(t, want, formatWatermark("2024-01-01T00:05:00.000000"))
	assert.Equal(t, want, formatWatermark("2024-01-01T00:05:00Z"))
	assert.Equal(t, "garbage", formatWatermark("garbage"))
	assert.Equal(t, "N/A", formatWatermark(""))
}

package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFileSize(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "--"},
		{"negative", -5, "--"},
		{"bytes", 512, "512 B"},
		{"kilobytes", 2048, "2.0 kB"},
		{"megabytes", 3 * 1000 * 1000, "3.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FileSize(tt.bytes))
		})
	}
}

func TestFileGlyph_CoversCommonTypes(t *testing.T) {
	// Each mimetype family must map to a non-default glyph.
	for _, mt := range []string{
		"application/pdf",
		"image/png",
		"video/mp4",
		"application/zip",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	} {
		assert.NotEqual(t, FileGlyph("application/octet-stream"), FileGlyph(mt), mt)
	}
}

func TestDaysLeftStyle(t *testing.T) {
	assert.Equal(t, StyleDim, DaysLeftStyle(-1))
	assert.Equal(t, StyleRed, DaysLeftStyle(0))
	assert.Equal(t, StyleRed, DaysLeftStyle(2))
	assert.Equal(t, StyleYellow, DaysLeftStyle(5))
	assert.Equal(t, StyleGreen, DaysLeftStyle(14))
}

func TestHumanTimestamp(t *testing.T) {
	now := time.Now()

	assert.Equal(t, "Just now", HumanTimestamp(now))
	assert.Equal(t, "5m ago", HumanTimestamp(now.Add(-5*time.Minute)))
	assert.Equal(t, "3h ago", HumanTimestamp(now.Add(-3*time.Hour)))

	old := time.Date(2025, 10, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Oct 2, 2025", HumanTimestamp(old))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "longer st…", Truncate("longer string", 10))
	// Rune-aware: Hebrew text must not be split mid-character.
	assert.Equal(t, "אלגוריתמ…", Truncate("אלגוריתמים", 9))
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "SIZE"},
		[][]string{
			{"lecture1.pdf", "1.2 MB"},
			{"x.txt", "3 B"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[2], "lecture1.pdf")
	assert.Contains(t, lines[3], "x.txt")
}

func TestRenderProgress_Bounds(t *testing.T) {
	assert.Contains(t, RenderProgress(0, 8), "0%")
	assert.Contains(t, RenderProgress(1.5, 8), "100%")
	assert.Contains(t, RenderProgress(-0.5, 8), "0%")
}

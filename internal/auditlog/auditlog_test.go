package auditlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLine(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "empty", tokens: nil, want: ""},
		{name: "single token", tokens: []string{"sedctl"}, want: "sedctl"},
		{name: "two tokens", tokens: []string{"program", "--status"}, want: "program --status"},
		{
			name:   "option values preserved verbatim",
			tokens: []string{"sedctl", "--lock-unlock", "--device", "/dev/nvme0n1", "--accesstype", "RW"},
			want:   "sedctl --lock-unlock --device /dev/nvme0n1 --accesstype RW",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommandLine(tt.tokens))
		})
	}
}

func TestCommandLine_GrowthPreservesContent(t *testing.T) {
	// Force several growth steps past the initial capacity.
	tokens := []string{"sedctl"}
	for i := 0; i < 64; i++ {
		tokens = append(tokens, strings.Repeat("x", 31))
	}
	got := CommandLine(tokens)
	assert.Equal(t, strings.Join(tokens, " "), got)
}

func TestLogger_LogCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sedctl.log")
	l := New(path, "sedctl")
	l.now = func() time.Time {
		return time.Date(2024, time.March, 5, 14, 30, 9, 0, time.UTC)
	}

	err := l.LogCommand([]string{"sedctl", "--discover", "--device", "/dev/nvme0n1"}, 0, 1230*time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Tue Mar  5 14:30:09 2024 sedctl: sedctl --discover --device /dev/nvme0n1. "+
			"Exit status is 0 (success). Command took 1.23 s.\n",
		string(data))
}

func TestLogger_LogCommand_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sedctl.log")
	l := New(path, "sedctl")

	err := l.LogCommand([]string{"sedctl", "--revert"}, 0x3F, 40*time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Exit status is 63 (failure). Command took 0.04 s.")
}

func TestLogger_AppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sedctl.log")
	l := New(path, "sedctl")

	require.NoError(t, l.Append("first"))
	require.NoError(t, l.Append("second\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "sedctl: first")
	assert.Contains(t, lines[1], "sedctl: second")
}

func TestLogger_AppendOpenFailureNonFatal(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "missing", "sedctl.log"), "sedctl")
	err := l.Append("entry")
	assert.Error(t, err)
}

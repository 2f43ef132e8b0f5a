package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/unscramble/internal/config"
)

func noEnv(string) (string, bool) { return "", false }

func writeDict(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestRunStartupFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr string
	}{
		{name: "unknown option", args: []string{"--bogus", "x"}, want: config.ExitUsage, wantErr: config.Usage},
		{name: "len-min out of range", args: []string{"--len-min", "9"}, want: config.ExitLenMin},
		{name: "bad letters", args: []string{"--lett", "ab#"}, want: config.ExitInvalidLetters},
		{
			name:    "missing dictionary",
			args:    []string{"--dict", filepath.Join(t.TempDir(), "missing"), "--lett", "abc"},
			want:    config.ExitDictionary,
			wantErr: "cannot be opened",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, noEnv, strings.NewReader(""), &out, &errOut))
			assert.Empty(t, out.String())
			assert.Contains(t, errOut.String(), tt.wantErr)
		})
	}
}

func TestRunMissingDictionaryLogsCause(t *testing.T) {
	var errOut bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing")

	code := run([]string{"--dict", path, "--lett", "abc"}, noEnv, strings.NewReader(""), &bytes.Buffer{}, &errOut)

	assert.Equal(t, config.ExitDictionary, code)
	assert.Contains(t, errOut.String(), "failed to load dictionary")
	assert.Contains(t, errOut.String(), "no such file or directory")
}

func TestRunExitStatus(t *testing.T) {
	dict := writeDict(t, "cat", "cats", "dog")

	tests := []struct {
		name     string
		input    string
		want     int
		wantLast string
	}{
		{name: "scored", input: "cat\n", want: config.ExitOK, wantLast: "Game over. You scored 3"},
		{name: "scored then quit", input: "cats\nq\n", want: config.ExitOK, wantLast: "Game over. You scored 14"},
		{name: "empty input", input: "", want: config.ExitNoWords, wantLast: "No words guessed!"},
		{name: "only rejections", input: "dog\nzz\n", want: config.ExitNoWords, wantLast: "No words guessed!"},
		{name: "quit straight away", input: "q\n", want: config.ExitNoWords, wantLast: "No words guessed!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			args := []string{"--dict", dict, "--lett", "cats"}

			code := run(args, noEnv, strings.NewReader(tt.input), &out, &bytes.Buffer{})

			assert.Equal(t, tt.want, code)
			lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
			assert.Equal(t, tt.wantLast, lines[len(lines)-1])
		})
	}
}

func TestLoadDictionaryBuiltin(t *testing.T) {
	d, err := loadDictionary("")
	require.NoError(t, err)
	assert.True(t, d.Contains("CAT"))
}

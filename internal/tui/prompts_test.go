package tui

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func lines(input string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(input))
}

func TestReadLine(t *testing.T) {
	t.Run("reads a single line and echoes the prompt", func(t *testing.T) {
		var out bytes.Buffer
		line, err := ReadLine(lines("  fix bug  \nsecond line\n"), &out, "message: ")
		require.NoError(t, err)
		require.Equal(t, "  fix bug  ", line)
		require.Equal(t, "message: ", out.String())
	})

	t.Run("handles CRLF and missing trailing newline", func(t *testing.T) {
		line, err := ReadLine(lines("windows\r\n"), &bytes.Buffer{}, "")
		require.NoError(t, err)
		require.Equal(t, "windows", line)

		line, err = ReadLine(lines("no newline"), &bytes.Buffer{}, "")
		require.NoError(t, err)
		require.Equal(t, "no newline", line)
	})

	t.Run("EOF yields an empty answer", func(t *testing.T) {
		line, err := ReadLine(lines(""), &bytes.Buffer{}, "")
		require.NoError(t, err)
		require.Empty(t, line)
	})
}

func TestParseYesNo(t *testing.T) {
	for answer, want := range map[string]bool{"y": true, "YES": true, " n ": false, "no": false} {
		got, err := ParseYesNo(answer, !want)
		require.NoError(t, err)
		require.Equal(t, want, got, answer)
	}

	got, err := ParseYesNo("", true)
	require.NoError(t, err)
	require.True(t, got)

	_, err = ParseYesNo("maybe", false)
	require.Error(t, err)
}

func TestPrompter(t *testing.T) {
	t.Run("reads from the input stream when not on a terminal", func(t *testing.T) {
		t.Setenv("PUSHIT_NO_INTERACTIVE", "")
		var out bytes.Buffer
		p := &Prompter{In: strings.NewReader("hello world\n"), Out: &out}

		line, err := p.AskLine("Commit message:", "")
		require.NoError(t, err)
		require.Equal(t, "hello world", line)
		require.Equal(t, "Commit message: ", out.String())
	})

	t.Run("confirm uses the default on an empty answer", func(t *testing.T) {
		t.Setenv("PUSHIT_NO_INTERACTIVE", "")
		var out bytes.Buffer
		p := &Prompter{In: strings.NewReader("\n"), Out: &out}

		ok, err := p.Confirm("Push?", true)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Push? [Y/n] ", out.String())
	})

	t.Run("shows the placeholder as the default answer", func(t *testing.T) {
		t.Setenv("PUSHIT_NO_INTERACTIVE", "")
		var out bytes.Buffer
		p := NewPrompter(strings.NewReader("\n"), &out)

		line, err := p.AskLine("Commit message:", "Update: 2026/10/19 14:03:05")
		require.NoError(t, err)
		require.Empty(t, line)
		require.Equal(t, "Commit message: [Update: 2026/10/19 14:03:05] ", out.String())
	})

	t.Run("questions share one buffered reader", func(t *testing.T) {
		t.Setenv("PUSHIT_NO_INTERACTIVE", "")
		p := NewPrompter(strings.NewReader("y\nfix bug\n"), &bytes.Buffer{})

		ok, err := p.Confirm("Push?", false)
		require.NoError(t, err)
		require.True(t, ok)

		line, err := p.AskLine("Commit message:", "")
		require.NoError(t, err)
		require.Equal(t, "fix bug", line)
	})

	t.Run("a zero-value prompter also keeps buffered input", func(t *testing.T) {
		t.Setenv("PUSHIT_NO_INTERACTIVE", "")
		p := &Prompter{In: strings.NewReader("n\nsecond\n"), Out: &bytes.Buffer{}}

		ok, err := p.Confirm("Push?", true)
		require.NoError(t, err)
		require.False(t, ok)

		line, err := p.AskLine("Commit message:", "")
		require.NoError(t, err)
		require.Equal(t, "second", line)
	})

	t.Run("refuses to prompt when interactivity is disabled", func(t *testing.T) {
		t.Setenv("PUSHIT_NO_INTERACTIVE", "1")
		p := &Prompter{In: strings.NewReader("ignored\n"), Out: &bytes.Buffer{}}

		_, err := p.AskLine("Commit message:", "")
		require.ErrorIs(t, err, ErrInteractiveDisabled)

		_, err = p.Confirm("Push?", false)
		require.ErrorIs(t, err, ErrInteractiveDisabled)
	})
}

func TestMarkers(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	require.Equal(t, "✓ Commit", SuccessMarker("Commit"))
	require.Equal(t, "✗ Push", FailureMarker("Push"))
	require.Equal(t, "========================================\nhi\n========================================", Banner("hi"))
}

func TestNewPrompter(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	require.False(t, p.TTY, "a non-stdin reader never uses terminal widgets")
}

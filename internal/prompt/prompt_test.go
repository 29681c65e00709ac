package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestLabel(t *testing.T) {
	assert.Equal(t, "Enter platform (windows/mac)", Label("Enter platform", []string{"windows", "mac"}))
	assert.Equal(t, "Enter platform", Label("Enter platform", nil))
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unix newline", "windows\n", "windows"},
		{"windows newline", "mac\r\n", "mac"},
		{"no newline", "email", "email"},
		{"only first line", "sms\nwhatsapp\n", "sms"},
		{"keeps inner spacing", "  Gaming  \n", "  Gaming  "},
		{"empty stream", "", ""},
		{"blank line", "\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := ReadLine(strings.NewReader(tt.input), &out, "Enter platform")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Enter platform: ", out.String())
		})
	}
}

func TestReadLine_ReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := ReadLine(failingReader{}, &out, "Enter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

func TestReadLine_WriteError(t *testing.T) {
	_, err := ReadLine(strings.NewReader("x\n"), failingWriter{}, "Enter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write prompt")
}

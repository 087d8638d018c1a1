package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyToClipboard(t *testing.T) {
	origWrite := ClipboardWrite
	origUnsupported := ClipboardUnsupported
	defer func() {
		ClipboardWrite = origWrite
		ClipboardUnsupported = origUnsupported
	}()

	ClipboardUnsupported = false

	var captured string
	ClipboardWrite = func(text string) error {
		captured = text
		return nil
	}

	err := CopyToClipboard("https://paste.example.com/s/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://paste.example.com/s/abc123", captured)
}

func TestCopyToClipboard_Unsupported(t *testing.T) {
	origUnsupported := ClipboardUnsupported
	defer func() { ClipboardUnsupported = origUnsupported }()

	ClipboardUnsupported = true

	err := CopyToClipboard("anything")
	assert.ErrorIs(t, err, ErrClipboardUnsupported)
}

func TestPasteFromClipboardTrims(t *testing.T) {
	origRead := ClipboardRead
	origUnsupported := ClipboardUnsupported
	defer func() {
		ClipboardRead = origRead
		ClipboardUnsupported = origUnsupported
	}()

	ClipboardUnsupported = false
	ClipboardRead = func() (string, error) {
		return "  abc123\n", nil
	}

	got, err := PasteFromClipboard()
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestPasteFromClipboard_Unsupported(t *testing.T) {
	origUnsupported := ClipboardUnsupported
	defer func() { ClipboardUnsupported = origUnsupported }()

	ClipboardUnsupported = true

	got, err := PasteFromClipboard()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenInBrowser(t *testing.T) {
	original := BrowserOpen
	defer func() { BrowserOpen = original }()

	var captured string
	BrowserOpen = func(url string) error {
		captured = url
		return nil
	}

	err := OpenInBrowser("https://paste.example.com/s/abc123")
	require.NoError(t, err)
	assert.Equal(t, "https://paste.example.com/s/abc123", captured)
}

// Package actions provides host-desktop side effects: clipboard access and
// opening URLs in the browser.
package actions

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// ErrClipboardUnsupported indicates the platform has no clipboard support.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this platform")

// ClipboardWrite is a function variable for clipboard writes (swappable in tests).
var ClipboardWrite = clipboard.WriteAll

// ClipboardRead is a function variable for clipboard reads (swappable in tests).
var ClipboardRead = clipboard.ReadAll

// ClipboardUnsupported mirrors clipboard.Unsupported (swappable in tests).
var ClipboardUnsupported = clipboard.Unsupported

// BrowserOpen is a function variable for opening URLs (swappable in tests).
var BrowserOpen = browser.OpenURL

// CopyToClipboard copies text to the system clipboard.
// Returns a descriptive error if clipboard is unsupported on the platform.
func CopyToClipboard(text string) error {
	if ClipboardUnsupported {
		return ErrClipboardUnsupported
	}

	return ClipboardWrite(text)
}

// PasteFromClipboard reads the system clipboard, trimming surrounding
// whitespace. Used to prefill the snippet identifier on import.
// Returns "" without error when the clipboard is unsupported or empty.
func PasteFromClipboard() (string, error) {
	if ClipboardUnsupported {
		return "", nil
	}

	text, err := ClipboardRead()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// OpenInBrowser opens the given URL in the default browser.
func OpenInBrowser(rawURL string) error {
	return BrowserOpen(rawURL)
}

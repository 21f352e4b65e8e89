package handlers

import (
	"fmt"
	"io"
	"mime"
	"strings"

	"github.com/pocketbase/pocketbase/core"
)

// maxTextBytes bounds the size of a submitted quote.
const maxTextBytes = 1 << 20

// readText returns the quote text of a request: the raw body for text/plain
// requests, the "text" form field otherwise.
func readText(e *core.RequestEvent) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(e.Request.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		body, err := io.ReadAll(io.LimitReader(e.Request.Body, maxTextBytes+1))
		if err != nil {
			return "", fmt.Errorf("read body: %w", err)
		}
		if len(body) > maxTextBytes {
			return "", fmt.Errorf("text exceeds %d bytes", maxTextBytes)
		}
		return string(body), nil
	}

	if err := e.Request.ParseForm(); err != nil {
		return "", fmt.Errorf("parse form: %w", err)
	}
	text := e.Request.PostForm.Get("text")
	if len(text) > maxTextBytes {
		return "", fmt.Errorf("text exceeds %d bytes", maxTextBytes)
	}
	return text, nil
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

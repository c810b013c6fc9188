// Package dataurl recognizes RFC 2397 data URLs and extracts their payload.
package dataurl

import (
	"encoding/base64"
	"strings"
)

// DataURL holds the components of a parsed data URL.
type DataURL struct {
	// MediaType is the declared MIME type (e.g. "image/svg+xml").
	// Defaults to "text/plain" when the URL omits it, per RFC 2397.
	MediaType string
	// Data is the payload. Base64 payloads are already decoded.
	Data string
	// IsBase64 reports whether the original payload carried ";base64".
	IsBase64 bool
}

// Parse parses a data URL of the form data:[<mediatype>][;base64],<data>.
// It returns nil when the string is not a data URL (wrong scheme, missing
// comma, or a base64 payload that does not decode). Callers rely on the nil
// result to fall through to heuristic content sniffing, so Parse never
// returns an error.
func Parse(s string) *DataURL {
	if !strings.HasPrefix(s, "data:") {
		return nil
	}

	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil
	}

	header := strings.TrimPrefix(parts[0], "data:")
	payload := parts[1]

	headerParts := strings.Split(header, ";")
	mediaType := headerParts[0]
	if mediaType == "" {
		mediaType = "text/plain"
	}

	isBase64 := false
	for _, p := range headerParts[1:] {
		if strings.TrimSpace(p) == "base64" {
			isBase64 = true
			break
		}
	}

	if isBase64 {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil
		}
		payload = string(decoded)
	}

	return &DataURL{
		MediaType: mediaType,
		Data:      payload,
		IsBase64:  isBase64,
	}
}

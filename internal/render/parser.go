package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"tokenlens/internal/dataurl"
)

// DefaultTrimSize is the display-truncation threshold applied to media
// attributes in the returned JSON object when the caller passes trimSize <= 0.
const DefaultTrimSize = 100

// Sentinel markers the test harness contract wraps around its output.
const (
	gasOpen     = "<NFT_GAS>"
	gasClose    = "</NFT_GAS>"
	outputOpen  = "<NFT_OUTPUT>"
	outputClose = "</NFT_OUTPUT>"
)

// ParseFunctionOutput decodes the raw output of a contract render function.
//
// When output is a data URL declaring application/json, the payload is
// parsed as an ERC-721 style metadata envelope and each recognized media
// attribute (image, image_data, animation_url, in that order) becomes one
// Content item; the returned JSON object carries the envelope with those
// attributes truncated to trimSize for display. Any other input is decoded
// as a single unlabeled item.
//
// gas is threaded through to the result. trimSize <= 0 selects
// DefaultTrimSize.
func ParseFunctionOutput(output string, gas int64, trimSize int) (ParsedOutput, error) {
	if trimSize <= 0 {
		trimSize = DefaultTrimSize
	}

	du := dataurl.Parse(output)
	if du == nil || du.MediaType != "application/json" {
		item, err := decodeContent(output, "")
		if err != nil {
			return ParsedOutput{}, err
		}
		return ParsedOutput{Gas: gas, Content: []Content{item}}, nil
	}

	var root any
	if err := json.Unmarshal([]byte(du.Data), &root); err != nil {
		return ParsedOutput{}, &InvalidJSONError{Payload: du.Data, Err: err}
	}
	obj, ok := root.(map[string]any)
	if !ok {
		// Valid JSON that is not an object cannot carry media attributes.
		pretty, _ := json.MarshalIndent(root, "", "  ")
		return ParsedOutput{}, &NoRenderableAttributeError{JSON: string(pretty)}
	}

	var meta TokenMetadata
	if err := json.Unmarshal([]byte(du.Data), &meta); err != nil {
		// Object shape is fine but an attribute has the wrong type.
		return ParsedOutput{}, &InvalidJSONError{Payload: du.Data, Err: err}
	}

	attrs := []struct {
		name  string
		value string
	}{
		{"image", meta.Image},
		{"image_data", meta.ImageData},
		{"animation_url", meta.AnimationURL},
	}

	var items []Content
	for _, attr := range attrs {
		if attr.value == "" {
			continue
		}
		item, err := decodeContent(attr.value, attr.name)
		if err != nil {
			return ParsedOutput{}, err
		}
		items = append(items, item)
		obj[attr.name] = trim(attr.value, trimSize)
	}

	if len(items) == 0 {
		pretty, _ := json.MarshalIndent(obj, "", "  ")
		return ParsedOutput{}, &NoRenderableAttributeError{JSON: string(pretty)}
	}

	return ParsedOutput{Gas: gas, Content: items, JSON: obj}, nil
}

// ParseTestOutput decodes a harness log wrapping gas cost and render output
// in <NFT_GAS> and <NFT_OUTPUT> sentinel pairs. The inner output substring
// is decoded exactly as ParseFunctionOutput would, with gas overridden to
// the extracted value.
func ParseTestOutput(output string) (ParsedOutput, error) {
	gasStr := between(output, gasOpen, gasClose)
	gas, err := strconv.ParseInt(gasStr, 10, 64)
	if err != nil || gas < 0 {
		return ParsedOutput{}, &InvalidGasError{Value: gasStr, Output: output}
	}

	inner := strings.TrimSpace(between(output, outputOpen, outputClose))
	return ParseFunctionOutput(inner, gas, 0)
}

// between returns the substring between the first occurrence of open and
// the last occurrence of cls. Taking the last close occurrence tolerates
// close-marker-like characters inside the payload. A missing marker yields
// an empty string; failure is deferred to whatever parse consumes the
// result.
func between(s, open, cls string) string {
	begin := strings.Index(s, open)
	end := strings.LastIndex(s, cls)
	if begin < 0 || end < 0 {
		return ""
	}
	begin += len(open)
	if begin > end {
		return ""
	}
	return s[begin:end]
}

// trim returns s unchanged when it fits within trimSize bytes; longer
// values are cut to trimSize with an annotation carrying the original
// length. The cut backs up to a rune boundary so the display string stays
// valid UTF-8. Used only to make the returned JSON object safe to display.
func trim(s string, trimSize int) string {
	if len(s) <= trimSize {
		return s
	}
	cut := trimSize
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return fmt.Sprintf("%s... [trimmed, %d bytes total]", s[:cut], len(s))
}

// Package render decodes the textual output of a smart-contract render call
// (a tokenURI-style function, or a sentinel-wrapped test harness log) into a
// normalized set of renderable media items.
//
// The pipeline is pure and synchronous: every call is an independent
// transformation of a string into a ParsedOutput or a typed error. No state
// is shared across calls.
package render

// ContentType identifies the rendering strategy for a decoded content item.
// It is a closed set; a value outside it never escapes a successful parse.
type ContentType string

const (
	SVG  ContentType = "svg"
	JPG  ContentType = "jpg"
	PNG  ContentType = "png"
	HTML ContentType = "html"
	Link ContentType = "link"

	// typeUnknown marks content that matched no classification rule.
	// It is internal only: decodeContent converts it into an
	// UnsupportedFormatError instead of returning it.
	typeUnknown ContentType = ""
)

// Content is one renderable unit. Content is either a canonical base64 data
// URL, decoded raw markup (HTML), or an untouched http(s) link; consumers
// branch on Type to pick an <img src>, <iframe srcdoc>, or anchor rendering.
type Content struct {
	// Label is the originating metadata attribute name ("image",
	// "image_data", "animation_url"), or empty when the whole function
	// output was a single item.
	Label   string      `json:"label,omitempty"`
	Content string      `json:"content"`
	Type    ContentType `json:"contentType"`
}

// ParsedOutput is the pipeline result.
type ParsedOutput struct {
	// Gas is the gas cost extracted from a harness log, or the value the
	// caller threaded through ParseFunctionOutput (0 by default).
	Gas int64 `json:"gas"`
	// Content holds the decoded items in attribute discovery order
	// (image, image_data, animation_url), or a single element when the
	// output was not a JSON envelope. Never empty on success.
	Content []Content `json:"content"`
	// JSON is the original parsed metadata object, present only when the
	// input was a JSON-in-data-URL envelope. The three media attributes
	// are replaced with display-truncated strings; the untruncated
	// payloads live only in Content.
	JSON map[string]any `json:"json,omitempty"`
}

// TokenMetadata is the explicit optional-field view of an ERC-721 style
// metadata envelope. An empty string counts as an absent attribute.
type TokenMetadata struct {
	Image        string `json:"image"`
	ImageData    string `json:"image_data"`
	AnimationURL string `json:"animation_url"`
}

package render

import "fmt"

// InvalidGasError reports a gas sentinel that is missing or non-numeric.
type InvalidGasError struct {
	Value  string // the offending gas substring (may be empty)
	Output string // the full harness output, for diagnostics
}

func (e *InvalidGasError) Error() string {
	return fmt.Sprintf("invalid gas format %q in harness output: %s", e.Value, e.Output)
}

// InvalidJSONError reports a data-URL JSON payload that failed to parse.
type InvalidJSONError struct {
	Payload string
	Err     error
}

func (e *InvalidJSONError) Error() string {
	return fmt.Sprintf("invalid metadata JSON (%v): %s", e.Err, e.Payload)
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }

// NoRenderableAttributeError reports a metadata envelope that carries none
// of the recognized media attributes (image, image_data, animation_url).
type NoRenderableAttributeError struct {
	JSON string // pretty-printed metadata, for diagnostics
}

func (e *NoRenderableAttributeError) Error() string {
	return fmt.Sprintf("metadata has no renderable attribute (image, image_data, animation_url): %s", e.JSON)
}

// UnsupportedFormatError reports content whose subtype matched no
// classification rule.
type UnsupportedFormatError struct {
	Label   string // originating attribute, empty for single-item output
	Content string // the full offending input
}

func (e *UnsupportedFormatError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("unsupported content format for attribute %q: %s", e.Label, e.Content)
	}
	return fmt.Sprintf("unsupported content format: %s", e.Content)
}

package render

import (
	"errors"
	"testing"
)

func TestDecodeContent(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantContent string
		wantType    ContentType
	}{
		{
			name:        "base64 svg data url passes through",
			input:       "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=",
			wantContent: "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=",
			wantType:    SVG,
		},
		{
			name:        "utf8 svg data url is re-encoded to base64",
			input:       "data:image/svg+xml;utf8,<svg></svg>",
			wantContent: "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=",
			wantType:    SVG,
		},
		{
			name:        "raw svg fragment is wrapped into a base64 data url",
			input:       "<svg></svg>",
			wantContent: "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=",
			wantType:    SVG,
		},
		{
			name:        "uppercase svg prefix is recognized",
			input:       `<SVG viewBox="0 0 1 1"></SVG>`,
			wantContent: "data:image/svg+xml;base64,PFNWRyB2aWV3Qm94PSIwIDAgMSAxIj48L1NWRz4=",
			wantType:    SVG,
		},
		{
			name:        "base64 html data url is decoded to raw markup",
			input:       "data:text/html;base64,PGh0bWw+aGk8L2h0bWw+",
			wantContent: "<html>hi</html>",
			wantType:    HTML,
		},
		{
			name:        "raw html passes through",
			input:       "<html><body>hi</body></html>",
			wantContent: "<html><body>hi</body></html>",
			wantType:    HTML,
		},
		{
			name:        "png data url passes through",
			input:       "data:image/png;base64,aGVsbG8=",
			wantContent: "data:image/png;base64,aGVsbG8=",
			wantType:    PNG,
		},
		{
			name:        "png link stays untouched",
			input:       "http://example.com/a.png",
			wantContent: "http://example.com/a.png",
			wantType:    PNG,
		},
		{
			name:        "jpeg extension maps to jpg",
			input:       "https://example.com/photo.JPEG",
			wantContent: "https://example.com/photo.JPEG",
			wantType:    JPG,
		},
		{
			name:        "jpeg data url subtype",
			input:       "data:image/jpeg;base64,aGVsbG8=",
			wantContent: "data:image/jpeg;base64,aGVsbG8=",
			wantType:    JPG,
		},
		{
			name:        "unknown extension falls back to link for http",
			input:       "https://example.com/token/42",
			wantContent: "https://example.com/token/42",
			wantType:    Link,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeContent(tt.input, "")
			if err != nil {
				t.Fatalf("decodeContent(%q) error: %v", tt.input, err)
			}
			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}
		})
	}
}

func TestDecodeContentUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		input string
		label string
	}{
		{"unknown extension", "foo.xyz", ""},
		{"no extension at all", "justsomestring", ""},
		{"unknown data url subtype", "data:image/gif;base64,aGVsbG8=", "image"},
		{"labelled attribute", "foo.xyz", "animation_url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeContent(tt.input, tt.label)
			var ufe *UnsupportedFormatError
			if !errors.As(err, &ufe) {
				t.Fatalf("decodeContent(%q) error = %v, want UnsupportedFormatError", tt.input, err)
			}
			if ufe.Label != tt.label {
				t.Errorf("Label = %q, want %q", ufe.Label, tt.label)
			}
			if ufe.Content != tt.input {
				t.Errorf("Content = %q, want %q", ufe.Content, tt.input)
			}
		})
	}
}

// Canonicalization is idempotent: decoding an already-canonical base64 SVG
// data URL a second time yields byte-identical content.
func TestDecodeContentIdempotent(t *testing.T) {
	first, err := decodeContent("<svg><rect/></svg>", "")
	if err != nil {
		t.Fatal(err)
	}
	second, err := decodeContent(first.Content, "")
	if err != nil {
		t.Fatal(err)
	}
	if second.Content != first.Content {
		t.Errorf("second decode changed content:\n first = %q\nsecond = %q", first.Content, second.Content)
	}
	if second.Type != SVG {
		t.Errorf("Type = %q, want %q", second.Type, SVG)
	}
}

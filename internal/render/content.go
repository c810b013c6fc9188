package render

import (
	"encoding/base64"
	"strings"

	"tokenlens/internal/dataurl"
)

// classifyRules maps a sniffed subtype (plus the original input, for the
// link fallback) to a ContentType. Rules are evaluated in fixed priority
// order so the classification stays total and auditable.
var classifyRules = []struct {
	match func(subtype, raw string) bool
	typ   ContentType
}{
	{func(sub, _ string) bool { return sub == "svg" }, SVG},
	{func(sub, _ string) bool { return sub == "png" }, PNG},
	{func(sub, _ string) bool { return sub == "jpg" || sub == "jpeg" }, JPG},
	{func(sub, _ string) bool { return sub == "html" }, HTML},
	{func(_, raw string) bool { return strings.HasPrefix(raw, "http") }, Link},
}

// sniffSubtype extracts the media subtype of one content string.
// Data URLs declare it in their media type ("image/svg+xml" -> "svg");
// everything else falls back to markup prefixes and then to the file
// extension after the last dot.
func sniffSubtype(raw string, du *dataurl.DataURL) string {
	if du != nil {
		sub := du.MediaType[strings.LastIndex(du.MediaType, "/")+1:]
		return strings.TrimSuffix(sub, "+xml")
	}
	lower := strings.ToLower(raw)
	switch {
	case strings.HasPrefix(lower, "<svg"):
		return "svg"
	case strings.HasPrefix(lower, "<html"):
		return "html"
	default:
		return lower[strings.LastIndex(lower, ".")+1:]
	}
}

func classify(subtype, raw string) ContentType {
	for _, rule := range classifyRules {
		if rule.match(subtype, raw) {
			return rule.typ
		}
	}
	return typeUnknown
}

// decodeContent classifies one media string and re-encodes it into its
// canonical representation. label names the originating metadata attribute
// and is used only for error messages.
//
// Canonical forms:
//   - recognized data URLs pass through unchanged, except base64 HTML
//     (decoded back to raw markup, since HTML renders as literal markup)
//     and non-base64 SVG (re-encoded to a base64 data URL);
//   - http(s) links pass through untouched;
//   - raw SVG fragments are wrapped into a base64 data URL;
//   - anything else passes through unchanged.
func decodeContent(raw, label string) (Content, error) {
	du := dataurl.Parse(raw)

	subtype := sniffSubtype(raw, du)
	typ := classify(subtype, raw)
	if typ == typeUnknown {
		return Content{}, &UnsupportedFormatError{Label: label, Content: raw}
	}

	content := raw
	switch {
	case du != nil && typ == HTML && du.IsBase64:
		content = du.Data
	case du != nil && typ == SVG && !du.IsBase64:
		content = encodeSVG(du.Data)
	case du == nil && strings.HasPrefix(strings.ToLower(raw), "<svg"):
		content = encodeSVG(raw)
	}

	return Content{Label: label, Content: content, Type: typ}, nil
}

// encodeSVG wraps raw SVG markup into a canonical base64 data URL.
func encodeSVG(markup string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(markup))
}

// Package extract writes decoded content items to disk for inspection.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"tokenlens/internal/dataurl"
	"tokenlens/internal/render"
)

// extByType maps content types to output file extensions.
var extByType = map[render.ContentType]string{
	render.SVG:  "svg",
	render.PNG:  "png",
	render.JPG:  "jpg",
	render.HTML: "html",
}

// WriteAll writes every content item of out into dir and returns the
// created paths, in item order. Data-URL payloads are written as decoded
// bytes, HTML markup verbatim, and links as one-line .url stubs.
func WriteAll(out render.ParsedOutput, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	paths := make([]string, 0, len(out.Content))
	for _, item := range out.Content {
		path := filepath.Join(dir, fileName(item))
		if err := os.WriteFile(path, itemBytes(item), 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// fileName builds "<label>-<uuid>.<ext>". Unlabeled items use "content" as
// the stem; links always get a .url stub extension since their bytes are
// the URL itself, not media.
func fileName(item render.Content) string {
	label := item.Label
	if label == "" {
		label = "content"
	}

	ext := "url"
	if !isLink(item) {
		if e, ok := extByType[item.Type]; ok {
			ext = e
		}
	}

	return fmt.Sprintf("%s-%s.%s", label, uuid.NewString(), ext)
}

func itemBytes(item render.Content) []byte {
	if isLink(item) {
		return []byte(item.Content + "\n")
	}
	if du := dataurl.Parse(item.Content); du != nil {
		return []byte(du.Data)
	}
	// Raw markup (decoded HTML) is written verbatim.
	return []byte(item.Content)
}

// isLink reports whether the item's canonical content is an untouched
// http(s) link. Image items can still be links (e.g. "http://…/a.png"
// classified as PNG but never re-encoded).
func isLink(item render.Content) bool {
	return strings.HasPrefix(item.Content, "http")
}

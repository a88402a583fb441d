// backend/utils/thumbnail.go
package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractThumbnailURL recovers the image URL embedded in a stored
// thumbnail markup fragment (the src attribute of its first img tag).
// Returns false for blank fragments or fragments without a usable src.
func ExtractThumbnailURL(fragment string) (string, bool) {
	if strings.TrimSpace(fragment) == "" {
		return "", false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", false
	}
	src, ok := doc.Find("img").First().Attr("src")
	if !ok || src == "" {
		return "", false
	}
	return src, true
}

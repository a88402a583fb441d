// backend/ingest/thumbnail.go
package ingest

import (
	"fmt"
	"strings"
)

// ThumbnailHTML derives the stored markup fragment from a raw thumbnail
// URL. Blank URLs (after trimming) produce an empty string; otherwise the
// URL is embedded as-is with the fixed presentational class the frontend
// styles.
func ThumbnailHTML(url string) string {
	if strings.TrimSpace(url) == "" {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" class="thumb-img" />`, url)
}

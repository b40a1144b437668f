package pathutil

import "strings"

// IDTemplate replaces a numeric announcement ID in metric labels and span names.
const IDTemplate = "/announcements/:id"

const announcementsPrefix = "/announcements/"

// NormalizePath collapses /announcements/{numeric id} to IDTemplate so metric
// labels stay bounded. The query string and one trailing slash are dropped.
// Other paths, including /announcements/nav, are returned unchanged.
//
//	NormalizePath("/announcements/123")   // "/announcements/:id"
//	NormalizePath("/announcements/123/")  // "/announcements/:id"
//	NormalizePath("/announcements/1?x=y") // "/announcements/:id"
//	NormalizePath("/announcements/nav")   // "/announcements/nav"
func NormalizePath(path string) string {
	path, _, _ = strings.Cut(path, "?")
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	if rest, ok := strings.CutPrefix(path, announcementsPrefix); ok && isDigits(rest) {
		return IDTemplate
	}
	return path
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

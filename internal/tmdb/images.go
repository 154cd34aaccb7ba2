package tmdb

import "strings"

// DefaultImageBaseURL is the TMDB image CDN root
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// Images templates full asset URLs from the path fragments returned by the API
type Images struct {
	Base string
}

// Poster returns the w342 poster URL, or "" when path is empty
func (i Images) Poster(path string) string { return i.url("w342", path) }

// Backdrop returns the w780 backdrop URL, or "" when path is empty
func (i Images) Backdrop(path string) string { return i.url("w780", path) }

// Profile returns the w185 profile URL, or "" when path is empty
func (i Images) Profile(path string) string { return i.url("w185", path) }

func (i Images) url(size, path string) string {
	if path == "" {
		return ""
	}
	base := strings.TrimRight(i.Base, "/")
	if base == "" {
		base = DefaultImageBaseURL
	}
	return base + "/" + size + path
}

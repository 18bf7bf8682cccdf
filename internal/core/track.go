package core

import "strings"

// CoverKind selects how a track's cover asset is rendered.
type CoverKind string

const (
	CoverImage CoverKind = "image"
	CoverVideo CoverKind = "video"
)

// ParseCoverKind maps a playlist "type" value to a CoverKind.
// Anything other than "video" renders as an image.
func ParseCoverKind(s string) CoverKind {
	if strings.EqualFold(strings.TrimSpace(s), string(CoverVideo)) {
		return CoverVideo
	}
	return CoverImage
}

// Track represents one playlist entry.
type Track struct {
	Source    string    `json:"source"`
	Cover     string    `json:"cover"`
	CoverKind CoverKind `json:"cover_kind"`
	Title     string    `json:"title"`
	Artist    string    `json:"artist"`
}

// IsVideoCover returns true if the cover should be rendered as a looping video.
func (t Track) IsVideoCover() bool {
	return t.CoverKind == CoverVideo
}

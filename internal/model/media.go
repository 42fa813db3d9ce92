package model

// MediaRef is an opaque reference to a stored attachment. The raw bytes live
// in object storage; reports only carry these references.
type MediaRef struct {
	Type         string `json:"type"`
	URL          string `json:"url"`
	Filename     string `json:"filename,omitempty"`
	Size         int64  `json:"size,omitempty"`
	MimeType     string `json:"mime_type,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

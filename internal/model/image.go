package model

import "time"

// DefaultImageMimeType is applied when an upload carries no MIME type.
const DefaultImageMimeType = "image/jpeg"

// Image is an uploaded picture. IssueID may be nil: uploads are staged
// unattached and linked to an issue later.
type Image struct {
	ID       int64  `json:"id"`
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`

	// Data is the opaque payload, typically base64-encoded.
	Data string `json:"data"`

	IssueID *int64 `json:"issueId,omitempty"`

	// Metadata is an opaque caller-defined string (usually JSON).
	Metadata *string `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewImage carries the caller-supplied fields for image creation.
// An empty Filename is replaced with a generated one; an empty MimeType
// defaults to DefaultImageMimeType.
type NewImage struct {
	Filename string  `json:"filename,omitempty"`
	MimeType string  `json:"mimeType,omitempty"`
	Data     string  `json:"data"`
	IssueID  *int64  `json:"issueId,omitempty"`
	Metadata *string `json:"metadata,omitempty"`
}

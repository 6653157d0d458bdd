package models

import "time"

// Revision is a published, validated [Configuration] kept by the server.
type Revision struct {
	// ID is a UUIDv7 assigned on publish.
	ID string `json:"id"`

	// Number is a monotonically increasing revision counter starting at 1.
	Number int64 `json:"number"`

	// Checksum is the hex digest of the canonical JSON form of Config.
	// Two revisions with equal checksums carry the same configuration.
	Checksum string `json:"checksum"`

	// Author is the token subject of the publisher.
	Author string `json:"author,omitempty"`

	Config    Configuration `json:"config"`
	CreatedAt time.Time     `json:"created_at"`
}

// RenderedHead is the HTML produced from a configuration for injection into
// generated pages.
type RenderedHead struct {
	RevisionID      string `json:"revision_id,omitempty"`
	Head            string `json:"head"`
	BodyAttrs       string `json:"body_attrs"`
	ColorModeScript string `json:"color_mode_script"`
}

package models

// ViolationResponse is the wire form of a single configuration violation.
type ViolationResponse struct {
	Kind    string `json:"kind"`
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// ErrorResponse is returned by the HTTP API when a request cannot be served.
// Violations is only set for configurations rejected by validation.
type ErrorResponse struct {
	Error      string              `json:"error"`
	Violations []ViolationResponse `json:"violations,omitempty"`
}

// RevisionList is the response of the revision history endpoint.
type RevisionList struct {
	Revisions []Revision `json:"revisions"`
	Length    int        `json:"length"`
}

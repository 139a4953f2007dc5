package model

// PinCandidate is one remote search result. The remote API guarantees at
// least an identifier and an image URL; everything else is passthrough.
type PinCandidate struct {
	ID          string `json:"id"`
	ImageURL    string `json:"images_url"`
	Title       string `json:"title,omitempty"`
	AlreadyUsed bool   `json:"already_used"`
}

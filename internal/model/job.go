package model

import "time"

// Job statuses. Pending is what the tracker reports for unknown IDs and
// is never stored explicitly.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"
	StatusError      = "error"
)

// JobTypePin tags jobs whose source image came from a search result.
const JobTypePin = "pin"

// JobRecord is one assembly job snapshot as exposed to the polling UI.
type JobRecord struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Message  string `json:"message,omitempty"`
	Type     string `json:"type,omitempty"`

	// Set when Status is done.
	OutputFilename string `json:"output_filename,omitempty"`
	MusicName      string `json:"music_name,omitempty"`
	Resolution     string `json:"resolution,omitempty"`
	Duration       int    `json:"duration,omitempty"`
	Title          string `json:"title,omitempty"`

	StartedAt time.Time `json:"-"`
	EndedAt   time.Time `json:"-"`
}

// Terminal reports whether the record reached a final state.
func (r *JobRecord) Terminal() bool {
	return r.Status == StatusDone || r.Status == StatusError
}

package model

// TimeFormat is the wall-clock format recorded in the durable logs.
const TimeFormat = "2006-01-02 15:04:05"

// VideoEntry is one produced video in the video log, newest first.
type VideoEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ThumbURL   string `json:"thumb_url"`
	Filename   string `json:"filename"`
	Music      string `json:"music"`
	Resolution string `json:"resolution"`
	Duration   int    `json:"duration"`
	CreatedAt  string `json:"created_at"`
	Source     string `json:"source,omitempty"`
}

// CreationEntry is one plain (non-sourced) job result, listed on the
// "my creations" page.
type CreationEntry struct {
	ID         string `json:"id"`
	Filename   string `json:"filename"`
	Music      string `json:"music"`
	Resolution string `json:"resolution"`
	Duration   int    `json:"duration"`
	CreatedAt  string `json:"created_at"`
}

// SentRecord marks a filename as forwarded to the upload-scheduling
// service; filename is the dedup key.
type SentRecord struct {
	Filename   string `json:"filename"`
	Title      string `json:"title"`
	ThumbURL   string `json:"thumb_url"`
	SentAt     string `json:"sent_at"`
	Endpoint   string `json:"endpoint"`
	QueueID    string `json:"queue_id"`
	TimerValue int    `json:"timer_value"`
	TimerUnit  string `json:"timer_unit"`
	UploadAt   string `json:"upload_at"`
	StorageURL string `json:"storage_url"`
	Duplicate  bool   `json:"duplicate"`
}

// InfoDocument is a per-item metadata document from the info folder.
type InfoDocument struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// Package forward delivers finished videos to the external
// upload-scheduling service, at most once per filename.
package forward

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/errs"
	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/internal/store"
	"github.com/banyumedia/fotovid/pkg/utils"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const submitPath = "/api/v1/submit"

// Request is one forwarding attempt.
type Request struct {
	Filename    string   `json:"filename"`
	TimerValue  int      `json:"timer_value"`
	TimerUnit   string   `json:"timer_unit"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
}

// Result is what the console shows after an accepted forward.
type Result struct {
	Message   string `json:"message"`
	QueueID   string `json:"queue_id"`
	UploadAt  string `json:"upload_at"`
	Duplicate bool   `json:"duplicate"`
}

type submitResponse struct {
	Success   bool   `json:"success"`
	Duplicate bool   `json:"duplicate"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	QueueID   string `json:"queue_id"`
	Timer     struct {
		UploadAt string `json:"upload_at"`
	} `json:"timer"`
	Storage struct {
		URL string `json:"url"`
	} `json:"github"`
}

// Client forwards videos. Configuration is injected at construction;
// nothing here reads ambient global state.
type Client struct {
	http     *resty.Client
	cfg      conf.ForwardConfig
	videos   *store.VideoLog
	sent     *store.SentLog
	videoDir string
}

func NewClient(cfg conf.ForwardConfig, videos *store.VideoLog, sent *store.SentLog, videoDir string) *Client {
	return &Client{
		// the timeout covers a whole video upload, hence generous
		http:     resty.New().SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
		cfg:      cfg,
		videos:   videos,
		sent:     sent,
		videoDir: videoDir,
	}
}

// Send forwards the named video. A filename already in the sent log is
// rejected with errs.AlreadySent before any network traffic; a missing
// file is rejected with errs.ObjectNotFound.
func (c *Client) Send(req Request) (*Result, error) {
	if req.Filename == "" {
		return nil, errors.New("filename is required")
	}
	if c.sent.Contains(req.Filename) {
		return nil, errs.AlreadySent
	}
	path := filepath.Join(c.videoDir, filepath.Base(req.Filename))
	if !utils.Exists(path) {
		return nil, errors.Wrapf(errs.ObjectNotFound, "video %s", req.Filename)
	}

	entry, _ := c.videos.Find(req.Filename)
	title := req.Title
	if title == "" {
		title = entry.Title
	}
	if title == "" {
		title = req.Filename
	}
	if req.TimerValue <= 0 {
		req.TimerValue = 5
	}
	if req.TimerUnit == "" {
		req.TimerUnit = "hours"
	}

	form := map[string]string{
		"timer_value": strconv.Itoa(req.TimerValue),
		"timer_unit":  req.TimerUnit,
		"title":       title,
	}
	if req.Description != "" {
		form["description"] = req.Description
	}
	if len(req.Tags) > 0 {
		form["tags"] = strings.Join(req.Tags, ",")
	}

	r := c.http.R().SetFormData(form).SetFile("video", path)
	if c.cfg.APIKey != "" {
		r.SetHeader("X-API-Key", c.cfg.APIKey)
	}
	resp, err := r.Post(strings.TrimRight(c.cfg.URL, "/") + submitPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reach upload scheduler")
	}

	var payload submitResponse
	if err := utils.Json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, errors.Wrap(err, "failed decode scheduler response")
	}
	if !payload.Success && !payload.Duplicate {
		reason := payload.Error
		if reason == "" {
			reason = "upload scheduler rejected the request"
		}
		return nil, errors.New(reason)
	}

	if err := c.sent.Append(model.SentRecord{
		Filename:   req.Filename,
		Title:      title,
		ThumbURL:   entry.ThumbURL,
		SentAt:     time.Now().Format(model.TimeFormat),
		Endpoint:   c.cfg.URL,
		QueueID:    payload.QueueID,
		TimerValue: req.TimerValue,
		TimerUnit:  req.TimerUnit,
		UploadAt:   payload.Timer.UploadAt,
		StorageURL: payload.Storage.URL,
		Duplicate:  payload.Duplicate,
	}); err != nil {
		utils.Log.Warnf("failed to append sent log for %s: %+v", req.Filename, err)
	}

	return &Result{
		Message:   payload.Message,
		QueueID:   payload.QueueID,
		UploadAt:  payload.Timer.UploadAt,
		Duplicate: payload.Duplicate,
	}, nil
}

package forward

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/banyumedia/fotovid/internal/conf"
	"github.com/banyumedia/fotovid/internal/errs"
	"github.com/banyumedia/fotovid/internal/model"
	"github.com/banyumedia/fotovid/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	client *Client
	videos *store.VideoLog
	sent   *store.SentLog
	dir    string
}

func newFixture(t *testing.T, endpoint string) *fixture {
	t.Helper()
	dir := t.TempDir()
	videos := store.NewVideoLog(filepath.Join(dir, "video_log.json"))
	sent := store.NewSentLog(filepath.Join(dir, "sent_log.json"))
	cfg := conf.ForwardConfig{URL: endpoint, APIKey: "secret", TimeoutSeconds: 5}
	return &fixture{
		client: NewClient(cfg, videos, sent, dir),
		videos: videos,
		sent:   sent,
		dir:    dir,
	}
}

func (f *fixture) writeVideo(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, name), []byte("video-bytes"), 0o644))
}

func TestSendSuccess(t *testing.T) {
	var gotTitle, gotAPIKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		gotTitle = r.FormValue("title")
		gotAPIKey = r.Header.Get("X-API-Key")
		assert.Equal(t, "5", r.FormValue("timer_value"))
		assert.Equal(t, "hours", r.FormValue("timer_unit"))
		file, header, err := r.FormFile("video")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "v.mp4", header.Filename)
		_, _ = w.Write([]byte(`{"success":true,"queue_id":"q9","timer":{"upload_at":"soon"},"github":{"url":"http://stored"}}`))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.writeVideo(t, "v.mp4")
	require.NoError(t, f.videos.Append(model.VideoEntry{Filename: "v.mp4", Title: "Recorded title", ThumbURL: "http://thumb"}))

	res, err := f.client.Send(Request{Filename: "v.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "q9", res.QueueID)
	assert.Equal(t, "soon", res.UploadAt)
	assert.False(t, res.Duplicate)
	assert.Equal(t, "Recorded title", gotTitle, "title falls back to the video log entry")
	assert.Equal(t, "secret", gotAPIKey)

	records := f.sent.List()
	require.Len(t, records, 1)
	assert.Equal(t, "v.mp4", records[0].Filename)
	assert.Equal(t, "http://stored", records[0].StorageURL)
	assert.Equal(t, "http://thumb", records[0].ThumbURL)
}

func TestSendRejectsAlreadySentWithoutHTTPCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.writeVideo(t, "v.mp4")
	require.NoError(t, f.sent.Append(model.SentRecord{Filename: "v.mp4"}))

	_, err := f.client.Send(Request{Filename: "v.mp4"})
	assert.ErrorIs(t, err, errs.AlreadySent)
	assert.False(t, called, "dedup must be enforced before any network call")
}

func TestSendRejectsMissingFileWithoutHTTPCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	_, err := f.client.Send(Request{Filename: "nope.mp4"})
	assert.ErrorIs(t, err, errs.ObjectNotFound)
	assert.False(t, called)
}

func TestSendRemoteRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"quota exceeded"}`))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.writeVideo(t, "v.mp4")

	_, err := f.client.Send(Request{Filename: "v.mp4"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Empty(t, f.sent.List(), "rejected sends are not recorded")
}

func TestSendRemoteDuplicateIsAccepted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"duplicate":true,"queue_id":"q1"}`))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.writeVideo(t, "v.mp4")

	res, err := f.client.Send(Request{Filename: "v.mp4"})
	require.NoError(t, err)
	assert.True(t, res.Duplicate)

	records := f.sent.List()
	require.Len(t, records, 1)
	assert.True(t, records[0].Duplicate)
}

func TestSendTitleFallsBackToFilename(t *testing.T) {
	var gotTitle string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		gotTitle = r.FormValue("title")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	f := newFixture(t, srv.URL)
	f.writeVideo(t, "v.mp4")

	_, err := f.client.Send(Request{Filename: "v.mp4"})
	require.NoError(t, err)
	assert.Equal(t, "v.mp4", gotTitle)
}

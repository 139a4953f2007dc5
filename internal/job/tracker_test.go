package job

import (
	"fmt"
	"testing"

	"github.com/banyumedia/fotovid/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTrackerUnknownIDIsPending(t *testing.T) {
	tr := NewTracker(8)
	rec := tr.Get("nope")
	assert.Equal(t, model.StatusPending, rec.Status)
	assert.Equal(t, 0, rec.Progress)
}

func TestTrackerProgressMonotonic(t *testing.T) {
	tr := NewTracker(8)
	tr.Start("j1", "")

	tr.Update("j1", 30, "step")
	assert.Equal(t, 30, tr.Get("j1").Progress)

	// stale lower value must not move progress backwards
	tr.Update("j1", 10, "")
	assert.Equal(t, 30, tr.Get("j1").Progress)

	tr.Update("j1", 95, "")
	assert.Equal(t, 95, tr.Get("j1").Progress)
}

func TestTrackerTerminalStatesAreFinal(t *testing.T) {
	tr := NewTracker(8)
	tr.Start("j1", "")
	tr.Done("j1", "ok", Result{OutputFilename: "v.mp4", Duration: 12})

	rec := tr.Get("j1")
	assert.Equal(t, model.StatusDone, rec.Status)
	assert.Equal(t, 100, rec.Progress)
	assert.Equal(t, "v.mp4", rec.OutputFilename)

	tr.Update("j1", 10, "late write")
	tr.Fail("j1", "late failure")
	rec = tr.Get("j1")
	assert.Equal(t, model.StatusDone, rec.Status)
	assert.Equal(t, 100, rec.Progress)
}

func TestTrackerFail(t *testing.T) {
	tr := NewTracker(8)
	tr.Start("j1", model.JobTypePin)
	tr.Fail("j1", "boom")

	rec := tr.Get("j1")
	assert.Equal(t, model.StatusError, rec.Status)
	assert.Equal(t, "boom", rec.Message)
	assert.Equal(t, model.JobTypePin, rec.Type)
}

func TestTrackerEvictsOldTerminalRecords(t *testing.T) {
	tr := NewTracker(4)
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("j%d", i)
		tr.Start(id, "")
		tr.Done(id, "ok", Result{})
	}
	tr.Start("running", "")
	tr.Start("overflow", "")

	// the oldest terminal records were evicted and read as pending again
	assert.Equal(t, model.StatusPending, tr.Get("j0").Status)
	// running jobs are never evicted
	assert.Equal(t, model.StatusProcessing, tr.Get("running").Status)
	assert.LessOrEqual(t, len(tr.List()), 4)
}

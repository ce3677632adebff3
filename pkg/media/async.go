package media

import (
	"fmt"

	"github.com/JenkinsJB/roids/internal/utils"
	"github.com/JenkinsJB/roids/pkg/annotation"
	"github.com/JenkinsJB/roids/pkg/serialization"
)

// Result is what a background load delivers: the decoded frame, the
// reconstituted project when the load originated from an annotation file
// import, or the error that aborted the load. Warning carries non-fatal
// conditions such as a referenced image that no longer exists.
type Result struct {
	Path    string
	Frame   *Frame
	Project *annotation.Project
	Warning string
	Err     error
}

type taggedResult struct {
	generation uint64
	Result
}

// Loader runs image decodes on background workers and delivers results
// through a single-slot completion channel. At most one load is logically
// outstanding: starting a new load supersedes the previous one, and a
// superseded worker's result is detected by its generation tag and
// dropped. There is no cancellation; an abandoned decode simply finishes
// into a channel nobody reads.
//
// Loader is not safe for concurrent use. Start and Poll must be called
// from the single thread that owns the editor state; workers communicate
// exclusively by value through the channel.
type Loader struct {
	generation uint64
	results    chan taggedResult
	pending    bool

	// loadFrame is swapped out in tests.
	loadFrame func(path string) (*Frame, error)
}

// NewLoader creates an idle loader.
func NewLoader() *Loader {
	return &Loader{loadFrame: Load}
}

// Pending reports whether a load is outstanding. While true, callers
// should keep polling and suppress canvas interaction.
func (l *Loader) Pending() bool {
	return l.pending
}

// StartImage dispatches a background decode of the image at path.
func (l *Loader) StartImage(path string) {
	gen, ch := l.supersede()
	load := l.loadFrame
	go func() {
		frame, err := load(path)
		res := Result{Path: path, Frame: frame}
		if err != nil {
			res.Frame = nil
			res.Err = err
		}
		ch <- taggedResult{generation: gen, Result: res}
	}()
}

// StartProject dispatches a background import of the annotation file at
// path followed by a decode of the image it references. A parse failure
// aborts the load; a missing or unreadable referenced image is reported
// as a warning alongside the reconstituted project.
func (l *Loader) StartProject(path string) {
	gen, ch := l.supersede()
	load := l.loadFrame
	go func() {
		res := Result{Path: path}
		project, err := serialization.Import(path)
		if err != nil {
			res.Err = err
			ch <- taggedResult{generation: gen, Result: res}
			return
		}
		res.Project = project

		if !utils.FileExists(project.MediaFile) {
			res.Warning = fmt.Sprintf("referenced media %q does not exist", project.MediaFile)
		} else if frame, err := load(project.MediaFile); err != nil {
			res.Warning = fmt.Sprintf("referenced media %q could not be decoded: %v", project.MediaFile, err)
		} else {
			res.Frame = frame
		}
		ch <- taggedResult{generation: gen, Result: res}
	}()
}

// Poll performs a non-blocking check of the completion channel. It
// returns false while no result is ready. A stale result from a
// superseded load is discarded without being surfaced.
func (l *Loader) Poll() (*Result, bool) {
	if l.results == nil {
		return nil, false
	}
	for {
		select {
		case res := <-l.results:
			if res.generation != l.generation {
				continue
			}
			l.pending = false
			out := res.Result
			return &out, true
		default:
			return nil, false
		}
	}
}

// supersede advances the generation and replaces the completion channel,
// orphaning any in-flight worker. Each worker writes into the buffered
// channel it captured at dispatch, so a stale write can neither block nor
// land in the live channel.
func (l *Loader) supersede() (uint64, chan taggedResult) {
	l.generation++
	l.results = make(chan taggedResult, 1)
	l.pending = true
	return l.generation, l.results
}

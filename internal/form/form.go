// Package form implements the location distance form: two place inputs
// resolved to coordinates through the geocode API, a calculate action that is
// enabled only once both are resolved, and a rendered result with a map link.
//
// The form owns its state and pushes every change to a View. View methods are
// invoked while the form's lock is held, in the order the state changed, and
// must not call back into the Form.
package form

import (
	"context"
	"io"
	"log"
	"place-distance-service/internal/client"
	"place-distance-service/internal/domain"
	"strings"
	"sync"
)

// Backend is the subset of the API client the form needs.
type Backend interface {
	Geocode(ctx context.Context, query string) (client.GeocodeResult, error)
	Calculate(ctx context.Context, start, end domain.Coordinates) (client.Distance, error)
}

// View renders form state. All methods must be cheap and non-blocking.
type View interface {
	SetStatus(role Role, s Status)
	SetCalculateEnabled(enabled bool)
	SetCalculateLabel(label string)
	ShowResult(r Result)
	HideResult()
	// Alert shows a blocking, user-facing error message.
	Alert(msg string)
}

type slot struct {
	coords *domain.Coordinates
	status Status
	// seq is the id of the latest search issued for this role.
	seq uint64
}

// Form is safe for concurrent use. Searches for the same role may overlap;
// only the response of the most recently issued search is applied.
type Form struct {
	backend Backend
	view    View
	logger  *log.Logger

	mu            sync.Mutex
	slots         [2]slot
	calcSeq       uint64
	calcInFlight  int
	result        *Result
	resultVisible bool
}

type Option func(*Form)

// WithLogger sets where diagnostic details of failed requests are written.
// The default discards them.
func WithLogger(l *log.Logger) Option {
	return func(f *Form) { f.logger = l }
}

// New builds a form and renders its initial state: both roles idle,
// calculate disabled, result hidden.
func New(backend Backend, view View, opts ...Option) *Form {
	f := &Form{
		backend: backend,
		view:    view,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, r := range []Role{Start, End} {
		f.setStatusLocked(r, Status{Kind: StatusIdle, Message: MsgIdle})
	}
	f.view.SetCalculateLabel(LabelCalculate)
	f.recomputeReadyLocked()

	return f
}

// SearchLocation resolves query for role and applies the outcome:
//   - blank query: StatusInvalid, no request is sent
//   - found: StatusFound, coordinate stored
//   - not found: StatusNotFound, coordinate cleared
//   - request failure: StatusFailed, coordinate left as it was
//
// It returns the role's status after the call and whether this call's
// outcome was applied. An outcome is dropped when a newer search for the
// same role was issued while this one was in flight.
func (f *Form) SearchLocation(ctx context.Context, role Role, query string) (Status, bool) {
	if !role.valid() {
		f.logger.Printf("search ignored: unknown role=%d", int(role))
		return Status{}, false
	}

	f.mu.Lock()
	s := &f.slots[role]
	s.seq++
	seq := s.seq

	if strings.TrimSpace(query) == "" {
		f.setStatusLocked(role, Status{Kind: StatusInvalid, Message: MsgEnterPlace})
		st := s.status
		f.mu.Unlock()
		return st, true
	}

	f.setStatusLocked(role, Status{Kind: StatusSearching, Message: MsgSearching})
	f.mu.Unlock()

	res, err := f.backend.Geocode(ctx, query)

	f.mu.Lock()
	defer f.mu.Unlock()

	if s.seq != seq {
		f.logger.Printf("search discarded: role=%s query=%q seq=%d latest=%d", role, query, seq, s.seq)
		return s.status, false
	}

	switch {
	case err != nil:
		f.logger.Printf("search failed: role=%s query=%q err=%v", role, query, err)
		f.setStatusLocked(role, Status{Kind: StatusFailed, Message: MsgSearchFailed})
	case res.Found:
		c := res.Coordinates
		s.coords = &c
		f.setStatusLocked(role, Status{
			Kind:    StatusFound,
			Message: MsgFoundPrefix + res.Address,
			Address: res.Address,
		})
		f.recomputeReadyLocked()
	default:
		s.coords = nil
		f.setStatusLocked(role, Status{Kind: StatusNotFound, Message: MsgNotFound})
		f.recomputeReadyLocked()
	}

	return s.status, true
}

// CalculateDistance requests the distance between the two resolved
// coordinates and shows it with the map link. It does nothing unless both
// roles are resolved. The calculate label reads LabelCalculating while a
// request is in flight and is always restored afterwards.
//
// A failure raises an alert and leaves the result panel as it was. The
// outcome is dropped when a newer calculation was issued, and a result is
// also dropped when either coordinate changed while the request was in flight.
func (f *Form) CalculateDistance(ctx context.Context) (Result, bool) {
	f.mu.Lock()
	if !f.readyLocked() {
		f.mu.Unlock()
		return Result{}, false
	}

	start, end := *f.slots[Start].coords, *f.slots[End].coords
	f.calcSeq++
	seq := f.calcSeq
	f.calcInFlight++
	f.view.SetCalculateLabel(LabelCalculating)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.calcInFlight--
		if f.calcInFlight == 0 {
			f.view.SetCalculateLabel(LabelCalculate)
		}
	}()

	d, err := f.backend.Calculate(ctx, start, end)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.calcSeq {
		f.logger.Printf("calculate discarded: seq=%d latest=%d err=%v", seq, f.calcSeq, err)
		return Result{}, false
	}

	if err != nil {
		f.logger.Printf("calculate failed: start=%v end=%v err=%v", start, end, err)
		f.view.Alert(MsgCalculateFailed)
		return Result{}, false
	}

	if !f.readyLocked() || *f.slots[Start].coords != start || *f.slots[End].coords != end {
		f.logger.Printf("calculate discarded: coordinates changed while in flight")
		return Result{}, false
	}

	r := Result{
		DistanceKm: d,
		MapURL:     MapURL(start, end),
		Start:      start,
		End:        end,
	}
	f.result = &r
	f.resultVisible = true
	f.view.ShowResult(r)

	return r, true
}

// Ready reports whether both roles hold a coordinate.
func (f *Form) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.readyLocked()
}

// Snapshot returns a copy of the current form state.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := State{
		Start:         roleStateOf(f.slots[Start]),
		End:           roleStateOf(f.slots[End]),
		Ready:         f.readyLocked(),
		Calculating:   f.calcInFlight > 0,
		ResultVisible: f.resultVisible,
	}
	if f.result != nil {
		r := *f.result
		st.Result = &r
	}
	return st
}

func roleStateOf(s slot) RoleState {
	rs := RoleState{Status: s.status}
	if s.coords != nil {
		c := *s.coords
		rs.Coordinates = &c
	}
	return rs
}

func (f *Form) readyLocked() bool {
	return f.slots[Start].coords != nil && f.slots[End].coords != nil
}

// recomputeReadyLocked enables calculate iff both coordinates are present
// and hides the result whenever they are not.
func (f *Form) recomputeReadyLocked() {
	ready := f.readyLocked()
	f.view.SetCalculateEnabled(ready)
	if !ready {
		f.resultVisible = false
		f.view.HideResult()
	}
}

func (f *Form) setStatusLocked(role Role, s Status) {
	f.slots[role].status = s
	f.view.SetStatus(role, s)
}

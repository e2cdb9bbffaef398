package report

import (
	"context"
	"sync"
	"time"

	corereport "firmasecuador/ms_reportes_core/internal/core/report"
)

// State is the lifecycle of one report session.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateLoading
	StateCommitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateLoading:
		return "loading"
	case StateCommitted:
		return "committed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// pendingBuffer stages a completed fetch until the minimum indicator
// duration elapses. All fields commit atomically, then the buffer is
// discarded.
type pendingBuffer struct {
	rows []any
	err  error
}

// Session drives one report screen: validate, fetch behind a loading
// indicator with a minimum display duration, commit atomically, then
// paginate purely in memory.
//
// Each load carries a generation number; a load superseded by a newer one
// discards its commit instead of clobbering current state.
type Session struct {
	svc          *Service
	pageSize     int
	minIndicator time.Duration

	// Injectable for tests.
	now   func() time.Time
	sleep func(time.Duration)

	mu         sync.Mutex
	state      State
	generation uint64
	rows       []any
	page       corereport.Page
	err        error
}

// NewSession builds an idle session. pageSize below 1 falls back to 10.
func NewSession(svc *Service, pageSize int, minIndicator time.Duration) *Session {
	if pageSize < 1 {
		pageSize = 10
	}
	return &Session{
		svc:          svc,
		pageSize:     pageSize,
		minIndicator: minIndicator,
		now:          time.Now,
		sleep:        time.Sleep,
		state:        StateIdle,
		page:         corereport.Page{Rows: []any{}, Number: 1, TotalPages: 1},
	}
}

// Load runs one fetch cycle. Validation failures return immediately with
// the session back in Idle and no indicator shown. After a successful or
// failed fetch the result is held until the minimum indicator duration has
// elapsed since the fetch started, then committed atomically. A load that
// was superseded by a newer one discards its result and reports
// ErrSuperseded.
func (s *Session) Load(ctx context.Context, query Query) error {
	s.mu.Lock()
	s.state = StateValidating
	s.mu.Unlock()

	if err := s.svc.ValidateQuery(&query); err != nil {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state = StateLoading
	s.mu.Unlock()

	started := s.now()

	var buffer pendingBuffer
	result, err := s.svc.Run(ctx, query)
	if err != nil {
		buffer.err = err
	} else {
		buffer.rows = result.Rows
	}

	// Hold the indicator open for at least the minimum duration so short
	// fetches do not flash it, and rows are never swapped mid-close.
	if remaining := s.minIndicator - s.now().Sub(started); remaining > 0 {
		s.sleep(remaining)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return ErrSuperseded
	}

	if buffer.err != nil {
		s.state = StateFailed
		s.err = buffer.err
		s.rows = []any{}
		s.page = corereport.Paginate(s.rows, 1, s.pageSize)
		return buffer.err
	}

	s.state = StateCommitted
	s.err = nil
	s.rows = buffer.rows
	s.page = corereport.Paginate(s.rows, 1, s.pageSize)
	return nil
}

// ChangePage moves the current page by delta. Requests landing outside
// [1, totalPages] are no-ops. Never performs I/O.
func (s *Session) ChangePage(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goToPageLocked(s.page.Number + delta)
}

// GoToPage jumps to an absolute page number with the same no-op clamping
// as ChangePage.
func (s *Session) GoToPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goToPageLocked(page)
}

func (s *Session) goToPageLocked(page int) {
	if page < 1 || page > s.page.TotalPages {
		return
	}
	s.page = corereport.Paginate(s.rows, page, s.pageSize)
}

// CurrentPage returns the committed page slice.
func (s *Session) CurrentPage() corereport.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// Rows returns the full committed row set, the export path's input.
func (s *Session) Rows() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// State reports the session's lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err returns the buffered fetch error, if the last load failed.
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	models "github.com/dubaitostars/starclient/internal"
	"github.com/dubaitostars/starclient/internal/ports"
	"github.com/dubaitostars/starclient/internal/utils"
)

// ErrMsgReturnBeforeDeparture is surfaced when the selected dates make a
// zero or negative trip length.
const ErrMsgReturnBeforeDeparture = "Return date must be after departure date"

// ErrMsgPriceUnavailable is surfaced when the pricing endpoint cannot be
// reached; the previously computed total stays visible.
const ErrMsgPriceUnavailable = "Could not calculate price. Please try again."

// Draft is the in-progress booking. TotalPrice is derived state: it is
// only ever written by the store's pricing recompute, never by callers.
type Draft struct {
	ID              uuid.UUID
	Destination     *models.Destination
	Accommodation   *models.Accommodation
	Package         *models.Package
	DepartureDate   *time.Time
	ReturnDate      *time.Time
	Travelers       int
	SpecialRequests string
	SelectedSeats   []string
	TotalPrice      float64
}

func emptyDraft() Draft {
	return Draft{ID: uuid.New(), Travelers: 1}
}

func (d Draft) clone() Draft {
	out := d
	if d.SelectedSeats != nil {
		out.SelectedSeats = append([]string(nil), d.SelectedSeats...)
	}
	return out
}

// Patch is a shallow merge into the draft; nil fields are untouched.
type Patch struct {
	Accommodation   *models.Accommodation
	Package         *models.Package
	DepartureDate   *time.Time
	ReturnDate      *time.Time
	Travelers       *int
	SpecialRequests *string
	SelectedSeats   []string
}

// BookingStore is the single owner of the booking draft. All mutations
// go through named methods; any change to a pricing input schedules an
// asynchronous, debounced recompute of the total. Each recompute carries
// a sequence number and cancels the previous in-flight request, so a
// stale quote can never overwrite a fresher total.
type BookingStore struct {
	mu      sync.Mutex
	pricing ports.PricingAPI

	draft    Draft
	lastErr  string
	loading  bool
	seq      uint64
	cancel   context.CancelFunc
	debounce time.Duration
	inflight sync.WaitGroup
	subs     []func(Draft)
}

type BookingOption func(*BookingStore)

// WithDebounce overrides the delay between an input change and the
// price request it triggers.
func WithDebounce(d time.Duration) BookingOption {
	return func(s *BookingStore) {
		s.debounce = d
	}
}

func NewBookingStore(pricing ports.PricingAPI, opts ...BookingOption) *BookingStore {
	s := &BookingStore{
		pricing:  pricing,
		draft:    emptyDraft(),
		debounce: 250 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Draft returns a snapshot copy; callers never hold a live reference.
func (s *BookingStore) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.clone()
}

func (s *BookingStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError is the user-visible message from the most recent failed
// validation or price fetch, empty when the last recompute succeeded.
func (s *BookingStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers a callback invoked with a draft snapshot after
// every state change, including asynchronous price updates.
func (s *BookingStore) Subscribe(fn func(Draft)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// StartBooking clears any previous draft and opens a new one for the
// given destination. The caller is expected to enter the booking flow.
func (s *BookingStore) StartBooking(dest models.Destination) Draft {
	s.mu.Lock()
	s.abortInflightLocked()
	s.draft = emptyDraft()
	d := dest
	s.draft.Destination = &d
	s.lastErr = ""
	s.recomputeLocked()
	return s.unlockAndNotify()
}

// SelectDestination sets the destination; picking a different one
// invalidates the accommodation choice, which is destination-scoped.
// It reports whether the accommodation was cleared so the caller can
// re-fetch the new destination's accommodation list.
func (s *BookingStore) SelectDestination(dest models.Destination) (Draft, bool) {
	s.mu.Lock()
	cleared := false
	if s.draft.Destination != nil && s.draft.Destination.ID != dest.ID && s.draft.Accommodation != nil {
		s.draft.Accommodation = nil
		cleared = true
	}
	d := dest
	s.draft.Destination = &d
	s.recomputeLocked()
	return s.unlockAndNotify(), cleared
}

// UpdateBooking shallow-merges the patch into the draft and, when a
// pricing input changed, schedules a recompute.
func (s *BookingStore) UpdateBooking(p Patch) Draft {
	s.mu.Lock()
	priced := false
	if p.Accommodation != nil {
		a := *p.Accommodation
		s.draft.Accommodation = &a
		priced = true
	}
	if p.Package != nil {
		pk := *p.Package
		s.draft.Package = &pk
		priced = true
	}
	if p.DepartureDate != nil {
		t := *p.DepartureDate
		s.draft.DepartureDate = &t
		priced = true
	}
	if p.ReturnDate != nil {
		t := *p.ReturnDate
		s.draft.ReturnDate = &t
		priced = true
	}
	if p.Travelers != nil {
		s.draft.Travelers = *p.Travelers
		priced = true
	}
	if p.SpecialRequests != nil {
		s.draft.SpecialRequests = *p.SpecialRequests
	}
	if p.SelectedSeats != nil {
		s.draft.SelectedSeats = append([]string(nil), p.SelectedSeats...)
	}
	if priced {
		s.recomputeLocked()
	}
	return s.unlockAndNotify()
}

// ResetBooking restores the empty initial draft.
func (s *BookingStore) ResetBooking() Draft {
	s.mu.Lock()
	s.abortInflightLocked()
	s.draft = emptyDraft()
	s.lastErr = ""
	s.loading = false
	return s.unlockAndNotify()
}

// IsBookingComplete reports whether every field required for submission
// is present.
func (s *BookingStore) IsBookingComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft
	return d.Destination != nil &&
		d.Accommodation != nil &&
		d.Package != nil &&
		d.DepartureDate != nil &&
		d.ReturnDate != nil &&
		d.Travelers > 0
}

// Wait blocks until no recompute is in flight. Pending requests that
// were superseded count as finished once their goroutines exit.
func (s *BookingStore) Wait() {
	s.inflight.Wait()
}

func (s *BookingStore) abortInflightLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.seq++
	s.loading = false
}

// recomputeLocked implements the derived-price rule. Caller holds the
// lock. When destination, package or either date is missing the total is
// deliberately left as-is, matching the platform's long-standing
// behavior.
func (s *BookingStore) recomputeLocked() {
	d := s.draft
	if d.Destination == nil || d.Package == nil || d.DepartureDate == nil || d.ReturnDate == nil {
		return
	}

	durationDays := utils.DurationDays(*d.DepartureDate, *d.ReturnDate)
	if durationDays <= 0 {
		// A request launched for the previously valid dates must not be
		// allowed to publish over this validation error.
		s.abortInflightLocked()
		s.lastErr = ErrMsgReturnBeforeDeparture
		return
	}

	s.abortInflightLocked()
	seq := s.seq
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.loading = true

	packageID := d.Package.ID
	destinationID := d.Destination.ID
	travelers := d.Travelers
	var nightly float64
	if d.Accommodation != nil {
		nightly = d.Accommodation.PricePerNight
	}

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		defer cancel()

		if s.debounce > 0 {
			timer := time.NewTimer(s.debounce)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return
			}
		}

		quote, err := s.pricing.CalculatePrice(ctx, packageID, destinationID, durationDays)

		s.mu.Lock()
		if seq != s.seq {
			// A newer recompute superseded this one; drop the result.
			s.mu.Unlock()
			return
		}
		if err != nil {
			s.lastErr = ErrMsgPriceUnavailable
			s.loading = false
			s.unlockAndNotify()
			return
		}
		total := quote.FinalPrice
		total += nightly * float64(durationDays) * float64(travelers)
		s.draft.TotalPrice = total
		s.lastErr = ""
		s.loading = false
		s.unlockAndNotify()
	}()
}

// unlockAndNotify snapshots the draft, releases the lock and fans the
// snapshot out to subscribers.
func (s *BookingStore) unlockAndNotify() Draft {
	snap := s.draft.clone()
	subs := s.subs
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
	return snap
}

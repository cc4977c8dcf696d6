package wizard

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	models "github.com/dubaitostars/starclient/internal"
	"github.com/dubaitostars/starclient/internal/ports"
	"github.com/dubaitostars/starclient/internal/store"
	"github.com/dubaitostars/starclient/internal/utils"
	"github.com/dubaitostars/starclient/internal/validator"
)

// Step is one of the four booking-flow stages. Transitions are strictly
// forward/backward, one step at a time.
type Step int

const (
	StepDestination Step = iota + 1
	StepAccommodation
	StepTravelDetails
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepDestination:
		return "Destination"
	case StepAccommodation:
		return "Accommodation"
	case StepTravelDetails:
		return "TravelDetails"
	case StepReview:
		return "Review"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

var (
	ErrStepIncomplete  = errors.New("current step is incomplete")
	ErrNotSignedIn     = errors.New("sign in required to submit a booking")
	ErrDraftIncomplete = errors.New("booking draft is incomplete")
)

// Wizard drives a BookingStore through the four-step flow. It is meant
// to be called from a single goroutine, the way a UI event loop would.
type Wizard struct {
	draft    *store.BookingStore
	catalog  ports.CatalogAPI
	bookings ports.BookingAPI
	validate *validator.CustomValidator

	step           Step
	accommodations []models.Accommodation
	popularTimes   *models.PopularTimes
	loadedScope    string
}

func New(draft *store.BookingStore, catalog ports.CatalogAPI, bookings ports.BookingAPI) *Wizard {
	return &Wizard{
		draft:    draft,
		catalog:  catalog,
		bookings: bookings,
		validate: validator.NewCustomValidator(),
		step:     StepDestination,
	}
}

func (w *Wizard) Step() Step { return w.step }

// Accommodations is the list scoped to the currently selected
// destination, populated by SelectDestination.
func (w *Wizard) Accommodations() []models.Accommodation { return w.accommodations }

// PopularTimes is display-only peak/off-peak data for the selected
// destination; nil when the fetch failed or none was selected.
func (w *Wizard) PopularTimes() *models.PopularTimes { return w.popularTimes }

// StepComplete is the gate for moving forward out of a step.
func (w *Wizard) StepComplete(step Step) bool {
	d := w.draft.Draft()
	switch step {
	case StepDestination:
		return d.Destination != nil
	case StepAccommodation:
		return d.Accommodation != nil
	case StepTravelDetails:
		return d.Package != nil && d.DepartureDate != nil && d.ReturnDate != nil
	case StepReview:
		return true
	default:
		return false
	}
}

// Next advances one step, refusing while the current step's
// completeness predicate is false.
func (w *Wizard) Next() (Step, error) {
	if !w.StepComplete(w.step) {
		return w.step, fmt.Errorf("%w: %s", ErrStepIncomplete, w.step)
	}
	if w.step < StepReview {
		w.step++
	}
	return w.step, nil
}

func (w *Wizard) Back() Step {
	if w.step > StepDestination {
		w.step--
	}
	return w.step
}

// SelectDestination records the choice and, when the destination
// actually changed, re-fetches its accommodation list. A previously
// selected accommodation belongs to the old destination and is dropped
// by the store. Popular-times data is fetched best-effort.
func (w *Wizard) SelectDestination(ctx context.Context, dest models.Destination) error {
	w.draft.SelectDestination(dest)

	if w.loadedScope == dest.ID && w.accommodations != nil {
		return nil
	}

	accommodations, err := w.catalog.ListAccommodations(ctx, models.AccommodationFilter{DestinationID: dest.ID})
	if err != nil {
		// The cached list belongs to the previous destination; never
		// offer it against the new one.
		w.accommodations = nil
		w.popularTimes = nil
		w.loadedScope = ""
		return fmt.Errorf("loading accommodations for %s: %w", dest.Name, err)
	}
	w.accommodations = accommodations
	w.loadedScope = dest.ID

	pt, err := w.catalog.GetPopularTimes(ctx, dest.ID)
	if err != nil {
		log.Printf("wizard: popular times unavailable for %s: %v", dest.ID, err)
		w.popularTimes = nil
	} else {
		w.popularTimes = &pt
	}
	return nil
}

func (w *Wizard) SelectAccommodation(a models.Accommodation) {
	w.draft.UpdateBooking(store.Patch{Accommodation: &a})
}

func (w *Wizard) SelectPackage(p models.Package) {
	w.draft.UpdateBooking(store.Patch{Package: &p})
}

func (w *Wizard) SetDates(departure, ret time.Time) {
	w.draft.UpdateBooking(store.Patch{DepartureDate: &departure, ReturnDate: &ret})
}

func (w *Wizard) SetTravelers(n int) {
	w.draft.UpdateBooking(store.Patch{Travelers: &n})
}

func (w *Wizard) SetSpecialRequests(text string) {
	w.draft.UpdateBooking(store.Patch{SpecialRequests: &text})
}

func (w *Wizard) SetSeats(seats []string) {
	w.draft.UpdateBooking(store.Patch{SelectedSeats: seats})
}

// Submit assembles the booking request from the draft plus the signed-in
// user and posts it. On success the draft is reset and the created
// booking returned; on failure the draft is left intact so the user can
// retry.
func (w *Wizard) Submit(ctx context.Context, user *models.User) (models.Booking, error) {
	if user == nil {
		return models.Booking{}, ErrNotSignedIn
	}
	if !w.draft.IsBookingComplete() {
		return models.Booking{}, ErrDraftIncomplete
	}

	// Let any in-flight price recompute settle so the submitted total
	// matches what the review step showed.
	w.draft.Wait()
	d := w.draft.Draft()

	req := models.BookingCreate{
		ClientReference: d.ID.String(),
		UserID:          user.ID,
		DepartureDate:   utils.FormatISO(*d.DepartureDate),
		ReturnDate:      utils.FormatISO(*d.ReturnDate),
		DestinationID:   d.Destination.ID,
		AccommodationID: d.Accommodation.ID,
		PackageID:       d.Package.ID,
		Travelers:       d.Travelers,
		SpecialRequests: d.SpecialRequests,
		SelectedSeats:   d.SelectedSeats,
		TotalPrice:      d.TotalPrice,
	}
	if err := w.validate.Validate(req); err != nil {
		return models.Booking{}, fmt.Errorf("invalid booking request: %w", err)
	}

	booking, err := w.bookings.CreateBooking(ctx, req)
	if err != nil {
		return models.Booking{}, fmt.Errorf("submitting booking: %w", err)
	}

	w.draft.ResetBooking()
	w.step = StepDestination
	w.accommodations = nil
	w.popularTimes = nil
	w.loadedScope = ""
	return booking, nil
}

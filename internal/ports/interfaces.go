package ports

import (
	"context"

	models "github.com/dubaitostars/starclient/internal"
)

// CatalogAPI is the read-only surface the booking flow browses.
type CatalogAPI interface {
	ListDestinations(ctx context.Context) ([]models.Destination, error)
	GetDestination(ctx context.Context, id string) (models.Destination, error)
	GetPopularTimes(ctx context.Context, destinationID string) (models.PopularTimes, error)
	ListAccommodations(ctx context.Context, filter models.AccommodationFilter) ([]models.Accommodation, error)
	GetAccommodation(ctx context.Context, id string) (models.Accommodation, error)
	ListPackages(ctx context.Context, classType string) ([]models.Package, error)
	GetPackage(ctx context.Context, id string) (models.Package, error)
}

// PricingAPI is the single endpoint the draft store recomputes against.
type PricingAPI interface {
	CalculatePrice(ctx context.Context, packageID, destinationID string, durationDays int) (models.PriceQuote, error)
}

type BookingAPI interface {
	CreateBooking(ctx context.Context, req models.BookingCreate) (models.Booking, error)
	ListBookings(ctx context.Context, status models.BookingStatus) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (models.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch models.BookingUpdate) (models.Booking, error)
	CancelBooking(ctx context.Context, id string) error
	GetInvoice(ctx context.Context, bookingID string) (models.Invoice, error)
}

type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (models.AuthToken, error)
	Register(ctx context.Context, req models.UserCreate) (models.User, error)
	CurrentUser(ctx context.Context) (models.User, error)
	UpdatePreferences(ctx context.Context, preferences map[string]any) (models.User, error)
}

// TokenStore persists the bearer token between runs, the way a browser
// keeps it under a fixed local-storage key.
type TokenStore interface {
	Token() (string, error)
	Save(token string) error
	Clear() error
}

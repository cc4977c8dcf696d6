package models

import "time"

// Catalog records are read-only on this side of the wire; the client only
// ever selects them into a booking draft.

type Destination struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Distance    float64  `json:"distance"`
	TravelTime  int      `json:"travel_time"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	PriceFactor float64  `json:"price_factor"`
}

type PopularTimes struct {
	Months        map[string]int `json:"months"`
	PeakMonths    []string       `json:"peak_months"`
	OffPeakMonths []string       `json:"off_peak_months"`
}

type Accommodation struct {
	ID            string   `json:"id"`
	DestinationID string   `json:"destination_id"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	PricePerNight float64  `json:"price_per_night"`
	Capacity      int      `json:"capacity"`
	Rating        float64  `json:"rating"`
}

// AccommodationFilter narrows GET /accommodations. Zero values mean the
// parameter is omitted from the query string.
type AccommodationFilter struct {
	DestinationID string
	Type          string
	MinPrice      float64
	MaxPrice      float64
	MinRating     float64
}

type Review struct {
	ID        string  `json:"id"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"created_at"`
}

type Availability struct {
	AvailableDates []string `json:"available_dates"`
	BookedDates    []string `json:"booked_dates"`
}

type Package struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	ClassType string   `json:"class_type"`
	Price     float64  `json:"price"`
	Features  []string `json:"features"`
	Capacity  int      `json:"capacity"`
}

// PriceQuote is the pricing endpoint's breakdown for a
// (package, destination, duration) triple.
type PriceQuote struct {
	PackageID         string  `json:"package_id"`
	DestinationID     string  `json:"destination_id"`
	Duration          int     `json:"duration"`
	BasePrice         float64 `json:"base_price"`
	DestinationFactor float64 `json:"destination_factor"`
	DurationFactor    float64 `json:"duration_factor"`
	FinalPrice        float64 `json:"final_price"`
}

type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCancelled BookingStatus = "Cancelled"
)

// BookingCreate is the request body for POST /bookings. Wire dates are
// ISO (YYYY-MM-DD) strings.
type BookingCreate struct {
	// ClientReference is the draft's id, generated client-side so a
	// retried submit can be deduplicated server-side.
	ClientReference string   `json:"client_reference" validate:"required,uuid4"`
	UserID          string   `json:"user_id" validate:"required"`
	DepartureDate   string   `json:"departure_date" validate:"required,iso_date"`
	ReturnDate      string   `json:"return_date" validate:"required,iso_date,trip_dates"`
	DestinationID   string   `json:"destination_id" validate:"required"`
	AccommodationID string   `json:"accommodation_id" validate:"required"`
	PackageID       string   `json:"package_id" validate:"required"`
	Travelers       int      `json:"travelers" validate:"required,min=1"`
	SpecialRequests string   `json:"special_requests,omitempty"`
	SelectedSeats   []string `json:"selected_seats,omitempty"`
	TotalPrice      float64  `json:"total_price" validate:"min=0"`
}

// BookingUpdate is a partial PUT /bookings/{id} body; nil fields are
// left unchanged by the server.
type BookingUpdate struct {
	DepartureDate   *string `json:"departure_date,omitempty"`
	ReturnDate      *string `json:"return_date,omitempty"`
	AccommodationID *string `json:"accommodation_id,omitempty"`
	PackageID       *string `json:"package_id,omitempty"`
	Travelers       *int    `json:"travelers,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	DepartureDate   string        `json:"departure_date"`
	ReturnDate      string        `json:"return_date"`
	DestinationID   string        `json:"destination_id"`
	AccommodationID string        `json:"accommodation_id"`
	PackageID       string        `json:"package_id"`
	Travelers       int           `json:"travelers"`
	SpecialRequests string        `json:"special_requests,omitempty"`
	SelectedSeats   []string      `json:"selected_seats,omitempty"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	CreatedAt       string        `json:"created_at"`
}

type InvoiceCustomer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type InvoiceBookingDetails struct {
	Destination   string `json:"destination"`
	Accommodation string `json:"accommodation"`
	Package       string `json:"package"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Duration      int    `json:"duration"`
	Travelers     int    `json:"travelers"`
}

type InvoiceCosts struct {
	BasePackage    float64 `json:"base_package"`
	Accommodation  float64 `json:"accommodation"`
	DestinationFee float64 `json:"destination_fee"`
	SpaceVisa      float64 `json:"space_visa"`
	Insurance      float64 `json:"insurance"`
}

type Invoice struct {
	BookingID      string                `json:"booking_id"`
	InvoiceNumber  string                `json:"invoice_number"`
	IssueDate      string                `json:"issue_date"`
	Customer       InvoiceCustomer       `json:"customer"`
	BookingDetails InvoiceBookingDetails `json:"booking_details"`
	Costs          InvoiceCosts          `json:"costs"`
	Total          float64               `json:"total"`
	PaymentStatus  string                `json:"payment_status"`
}

type User struct {
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserCreate struct {
	Email       string         `json:"email" validate:"required,email"`
	Password    string         `json:"password" validate:"required,strong_password"`
	Name        string         `json:"name" validate:"required,min=2,max=80"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AI endpoints are loosely typed on the server; requests mirror what the
// service actually reads.

type RecommendationRequest struct {
	Preferences   map[string]any `json:"user_preferences"`
	DestinationID string         `json:"destination_id,omitempty"`
}

type RecommendationResponse struct {
	Recommendations string `json:"recommendations"`
}

type PackingListRequest struct {
	DestinationID string         `json:"destination_id"`
	Duration      int            `json:"duration"`
	Preferences   map[string]any `json:"user_preferences,omitempty"`
}

type PackingListResponse struct {
	Destination string `json:"destination"`
	Duration    int    `json:"duration"`
	PackingList string `json:"packing_list"`
}

type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type TripPlanRequest struct {
	DestinationID       string   `json:"destination_id"`
	Duration            int      `json:"duration"`
	PreferredActivities []string `json:"preferred_activities,omitempty"`
	Budget              string   `json:"budget,omitempty"`
}

type TripPlanResponse struct {
	Destination string `json:"destination"`
	Itinerary   string `json:"itinerary"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version,omitempty"`
}

const DateLayout = "2006-01-02"

// ParseWireDate parses an ISO wire date in UTC.
func ParseWireDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	models "github.com/dubaitostars/starclient/internal"
	"github.com/dubaitostars/starclient/internal/client"
	"github.com/dubaitostars/starclient/internal/seatmap"
	"github.com/dubaitostars/starclient/internal/store"
	"github.com/dubaitostars/starclient/internal/wizard"
	"github.com/dubaitostars/starclient/pkg/config"
	"github.com/dubaitostars/starclient/pkg/invoice"
	"github.com/dubaitostars/starclient/pkg/token"
)

type App struct {
	config *config.Config
	api    *client.Client
	tokens *token.FileStore
	auth   *store.AuthStore
	draft  *store.BookingStore
	wizard *wizard.Wizard
}

func NewApp(cfg *config.Config) (*App, error) {
	tokenPath := cfg.Auth.TokenPath
	if tokenPath == "" {
		p, err := token.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving token path: %w", err)
		}
		tokenPath = p
	}
	tokens := token.NewFileStore(tokenPath)

	api := client.NewClient(
		client.WithBaseURL(cfg.API.BaseURL),
		client.WithTimeout(cfg.API.Timeout),
		client.WithTokenSource(tokens),
	)

	draft := store.NewBookingStore(api, store.WithDebounce(cfg.Booking.PriceDebounce))

	return &App{
		config: cfg,
		api:    api,
		tokens: tokens,
		auth:   store.NewAuthStore(api, tokens),
		draft:  draft,
		wizard: wizard.New(draft, api, api),
	}, nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := app.Run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("%v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: star <command> [flags]

catalog:
  destinations                 list destinations
  accommodations               list accommodations (-destination, -type, -min-rating)
  packages                     list packages (-class)
  compare <id,id,...>          compare packages side by side

booking:
  book                         run the booking flow (-destination, -accommodation,
                               -package, -depart, -return, -travelers, -seats, -requests)
  bookings                     list your bookings (-status)
  booking <id>                 show one booking
  cancel <id>                  cancel a booking
  invoice <id>                 download the invoice as PDF (-out)

account:
  login                        sign in (-email, -password)
  register                     create an account (-email, -password, -name)
  me                           show the signed-in user
  logout                       sign out

assistant:
  ask <question>               ask the travel assistant
  packing                      packing list (-destination, -days)
  plan                         trip itinerary (-destination, -days, -budget)

  health                       check service status`)
}

func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "destinations":
		return a.listDestinations(ctx)
	case "accommodations":
		return a.listAccommodations(ctx, args)
	case "packages":
		return a.listPackages(ctx, args)
	case "compare":
		return a.comparePackages(ctx, args)
	case "book":
		return a.book(ctx, args)
	case "bookings":
		return a.listBookings(ctx, args)
	case "booking":
		return a.showBooking(ctx, args)
	case "cancel":
		return a.cancelBooking(ctx, args)
	case "invoice":
		return a.downloadInvoice(ctx, args)
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "me":
		return a.whoAmI(ctx)
	case "logout":
		return a.auth.LogoutUser()
	case "ask":
		return a.ask(ctx, args)
	case "packing":
		return a.packing(ctx, args)
	case "plan":
		return a.plan(ctx, args)
	case "health":
		return a.health(ctx)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) listDestinations(ctx context.Context) error {
	destinations, err := a.api.ListDestinations(ctx)
	if err != nil {
		return err
	}
	for _, d := range destinations {
		fmt.Printf("%-12s %-20s %8.0f km  %4dh  x%.2f\n",
			d.ID, d.Name, d.Distance, d.TravelTime, d.PriceFactor)
	}
	return nil
}

func (a *App) listAccommodations(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("accommodations", flag.ExitOnError)
	destination := fs.String("destination", "", "destination id")
	accType := fs.String("type", "", "accommodation type")
	minRating := fs.Float64("min-rating", 0, "minimum rating")
	fs.Parse(args)

	list, err := a.api.ListAccommodations(ctx, models.AccommodationFilter{
		DestinationID: *destination,
		Type:          *accType,
		MinRating:     *minRating,
	})
	if err != nil {
		return err
	}
	for _, acc := range list {
		fmt.Printf("%-12s %-28s %-16s %9.2f/night  %.1f*\n",
			acc.ID, acc.Name, acc.Type, acc.PricePerNight, acc.Rating)
	}
	return nil
}

func (a *App) listPackages(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("packages", flag.ExitOnError)
	class := fs.String("class", "", "class type filter")
	fs.Parse(args)

	packages, err := a.api.ListPackages(ctx, *class)
	if err != nil {
		return err
	}
	for _, p := range packages {
		fmt.Printf("%-12s %-24s %-16s %10.2f\n", p.ID, p.Name, p.ClassType, p.Price)
	}
	return nil
}

func (a *App) comparePackages(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: star compare <id,id,...>")
	}
	packages, err := a.api.ComparePackages(ctx, strings.Split(args[0], ","))
	if err != nil {
		return err
	}
	for _, p := range packages {
		fmt.Printf("%-24s %-16s %10.2f  %s\n",
			p.Name, p.ClassType, p.Price, strings.Join(p.Features, ", "))
	}
	return nil
}

// book walks the wizard through all four steps non-interactively, the
// flags standing in for the user's clicks.
func (a *App) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	destinationID := fs.String("destination", "", "destination id")
	accommodationID := fs.String("accommodation", "", "accommodation id")
	packageID := fs.String("package", "", "package id")
	depart := fs.String("depart", "", "departure date (YYYY-MM-DD)")
	ret := fs.String("return", "", "return date (YYYY-MM-DD)")
	travelers := fs.Int("travelers", 1, "number of travelers")
	seats := fs.String("seats", "", "comma-separated seat labels")
	requests := fs.String("requests", "", "special requests")
	fs.Parse(args)

	if err := a.auth.CheckAuth(ctx); err != nil {
		return fmt.Errorf("%s", store.ErrMsgSessionExpired)
	}
	user := a.auth.User()
	if user == nil {
		return fmt.Errorf("please login first")
	}

	destination, err := a.api.GetDestination(ctx, *destinationID)
	if err != nil {
		return err
	}
	a.draft.StartBooking(destination)
	if err := a.wizard.SelectDestination(ctx, destination); err != nil {
		return err
	}
	if _, err := a.wizard.Next(); err != nil {
		return err
	}

	accommodation, err := a.api.GetAccommodation(ctx, *accommodationID)
	if err != nil {
		return err
	}
	a.wizard.SelectAccommodation(accommodation)
	if _, err := a.wizard.Next(); err != nil {
		return err
	}

	pkg, err := a.api.GetPackage(ctx, *packageID)
	if err != nil {
		return err
	}
	a.wizard.SelectPackage(pkg)

	departDate, err := models.ParseWireDate(*depart)
	if err != nil {
		return fmt.Errorf("invalid -depart date: %w", err)
	}
	returnDate, err := models.ParseWireDate(*ret)
	if err != nil {
		return fmt.Errorf("invalid -return date: %w", err)
	}
	a.wizard.SetDates(departDate, returnDate)
	a.wizard.SetTravelers(*travelers)
	if *requests != "" {
		a.wizard.SetSpecialRequests(*requests)
	}

	if *seats != "" {
		if err := a.selectSeats(pkg, *seats, *travelers); err != nil {
			return err
		}
	}

	if _, err := a.wizard.Next(); err != nil {
		return err
	}

	a.draft.Wait()
	if msg := a.draft.LastError(); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	draft := a.draft.Draft()
	fmt.Printf("Total price: %.2f\n", draft.TotalPrice)

	booking, err := a.wizard.Submit(ctx, user)
	if err != nil {
		return err
	}
	fmt.Printf("Booking confirmed: %s (status %s)\n", booking.ID, booking.Status)
	return nil
}

func (a *App) selectSeats(pkg models.Package, seatList string, travelers int) error {
	layout := seatmap.ForClass(pkg.ClassType)
	maxSeats := 0
	if a.config.Booking.EnforceSeatCapacity {
		maxSeats = travelers
	}
	selection := seatmap.NewSelection(layout, maxSeats)
	for _, label := range strings.Split(seatList, ",") {
		label = strings.TrimSpace(label)
		if !layout.Available(label) {
			return fmt.Errorf("seat %s is not available in %s", label, pkg.ClassType)
		}
		if _, err := selection.Toggle(label); err != nil {
			return fmt.Errorf("seat %s: %w", label, err)
		}
	}
	a.wizard.SetSeats(selection.Seats())
	return nil
}

func (a *App) listBookings(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bookings", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	fs.Parse(args)

	bookings, err := a.api.ListBookings(ctx, models.BookingStatus(*status))
	if err != nil {
		return err
	}
	for _, b := range bookings {
		fmt.Printf("%-12s %s -> %s  %2d traveler(s)  %10.2f  %s\n",
			b.ID, b.DepartureDate, b.ReturnDate, b.Travelers, b.TotalPrice, b.Status)
	}
	return nil
}

func (a *App) showBooking(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: star booking <id>")
	}
	b, err := a.api.GetBooking(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Printf("Booking %s (%s)\n", b.ID, b.Status)
	fmt.Printf("  %s -> %s, %d traveler(s)\n", b.DepartureDate, b.ReturnDate, b.Travelers)
	fmt.Printf("  destination=%s accommodation=%s package=%s\n",
		b.DestinationID, b.AccommodationID, b.PackageID)
	if len(b.SelectedSeats) > 0 {
		fmt.Printf("  seats: %s\n", strings.Join(b.SelectedSeats, ", "))
	}
	fmt.Printf("  total: %.2f\n", b.TotalPrice)
	return nil
}

func (a *App) cancelBooking(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: star cancel <id>")
	}
	if err := a.api.CancelBooking(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Booking %s cancelled\n", args[0])
	return nil
}

func (a *App) downloadInvoice(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("invoice", flag.ExitOnError)
	out := fs.String("out", ".", "output directory")
	fs.Parse(args)
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: star invoice [-out dir] <booking-id>")
	}

	inv, err := a.api.GetInvoice(ctx, fs.Arg(0))
	if err != nil {
		return err
	}
	pdfBytes, filename, err := invoice.Render(inv)
	if err != nil {
		return err
	}
	path := filepath.Join(*out, filename)
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("writing invoice: %w", err)
	}
	fmt.Printf("Saved %s\n", path)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	user, err := a.auth.LoginUser(ctx, models.Credentials{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("%s", a.auth.LastError())
	}
	fmt.Printf("Signed in as %s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	name := fs.String("name", "", "display name")
	fs.Parse(args)

	user, err := a.auth.RegisterUser(ctx, models.UserCreate{
		Email:    *email,
		Password: *password,
		Name:     *name,
	})
	if err != nil {
		return fmt.Errorf("%s", a.auth.LastError())
	}
	fmt.Printf("Welcome aboard, %s\n", user.Name)
	return nil
}

func (a *App) whoAmI(ctx context.Context) error {
	if err := a.auth.CheckAuth(ctx); err != nil {
		return fmt.Errorf("%s", a.auth.LastError())
	}
	user := a.auth.User()
	if user == nil {
		fmt.Println("Not signed in")
		return nil
	}
	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	return nil
}

func (a *App) ask(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: star ask <question>")
	}
	ans, err := a.api.Ask(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Println(ans.Answer)
	return nil
}

func (a *App) packing(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("packing", flag.ExitOnError)
	destination := fs.String("destination", "", "destination id")
	days := fs.Int("days", 7, "trip length in days")
	fs.Parse(args)

	list, err := a.api.GetPackingList(ctx, models.PackingListRequest{
		DestinationID: *destination,
		Duration:      *days,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Packing list for %s (%d days):\n%s\n", list.Destination, list.Duration, list.PackingList)
	return nil
}

func (a *App) plan(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	destination := fs.String("destination", "", "destination id")
	days := fs.Int("days", 7, "trip length in days")
	budget := fs.String("budget", "medium", "budget level")
	fs.Parse(args)

	plan, err := a.api.PlanTrip(ctx, models.TripPlanRequest{
		DestinationID: *destination,
		Duration:      *days,
		Budget:        *budget,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Itinerary for %s:\n%s\n", plan.Destination, plan.Itinerary)
	return nil
}

func (a *App) health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status, err := a.api.Health(ctx)
	if err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}
	fmt.Printf("%s (%s)\n", status.Status, status.Timestamp)
	return nil
}

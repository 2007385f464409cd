package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mveldre/rentahouse/internal/client/models"
)

var errBadFilter = errors.New("filters must be key=value pairs")

// List prints every listing.
func (a *App) List(ctx context.Context) error {
	return a.listWithFilters(ctx, nil)
}

// Search prints listings matching key=value filters,
// e.g. "search bedroom=2 isRented=false".
func (a *App) Search(ctx context.Context, args []string) error {
	filters, err := parseFilters(args)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: search key=value ...")
		return err
	}
	return a.listWithFilters(ctx, filters)
}

// Mine prints the current user's own listings.
func (a *App) Mine(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "You must log in to see your listings.")
		return nil
	}
	return a.listWithFilters(ctx, map[string]string{"userId": user.ID})
}

func (a *App) listWithFilters(ctx context.Context, filters map[string]string) error {
	properties, err := a.client.ListProperties(ctx, filters)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load listings: %s\n", err)
		return err
	}

	if len(properties) == 0 {
		fmt.Fprintln(a.out, "No properties found.")
		return nil
	}

	for _, p := range properties {
		fmt.Fprintln(a.out, formatProperty(&p))
	}
	return nil
}

// Show prints one listing in full, including owner contact and comments.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return nil
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid listing id: %s\n", args[0])
		return err
	}

	property, err := a.client.GetProperty(ctx, id)
	if err != nil {
		fmt.Fprintf(a.out, "Failed to load listing: %s\n", err)
		return err
	}

	a.printPropertyDetails(property)
	return nil
}

func parseFilters(args []string) (map[string]string, error) {
	if len(args) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", errBadFilter, arg)
		}
		filters[key] = value
	}
	return filters, nil
}

func formatProperty(p *models.Property) string {
	status := "available"
	if p.IsRented {
		status = "rented"
	}
	return fmt.Sprintf("#%d  %s | $%.0f | %d bd | %.0f m2 | %s",
		p.ID, p.Address, p.Price, p.Bedroom, p.Area, status)
}

func (a *App) printPropertyDetails(p *models.Property) {
	fmt.Fprintln(a.out, formatProperty(p))
	if p.Category.Name != "" {
		fmt.Fprintf(a.out, "category: %s\n", p.Category.Name)
	}
	if p.Content != "" {
		fmt.Fprintln(a.out, p.Content)
	}

	if p.User.FullName != "" {
		fmt.Fprintf(a.out, "listed by: %s", p.User.FullName)
		if p.User.Phone != "" {
			fmt.Fprintf(a.out, " (%s)", p.User.Phone)
		}
		fmt.Fprintln(a.out)
	}

	for _, img := range p.Images {
		fmt.Fprintf(a.out, "image: %s\n", img.BaseURL)
	}

	if len(p.Comments) == 0 {
		fmt.Fprintln(a.out, "No comments yet.")
		return
	}
	fmt.Fprintf(a.out, "Comments (%d):\n", len(p.Comments))
	for _, c := range p.Comments {
		fmt.Fprintf(a.out, "  [%s] %s: %s\n", strings.Repeat("*", c.Rating), c.User.FullName, c.Content)
	}
}

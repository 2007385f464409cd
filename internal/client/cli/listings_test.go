package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mveldre/rentahouse/internal/client/models"
)

func sampleProperties() []models.Property {
	return []models.Property{
		{ID: 1, Address: "1 Main St", Price: 950, Bedroom: 2, Area: 54},
		{ID: 2, Address: "5 Oak Ave", Price: 1200, Bedroom: 3, Area: 80, IsRented: true},
	}
}

func TestList_PrintsAllListings(t *testing.T) {
	client := &fakeAPI{properties: sampleProperties()}
	app, out := newTestApp(client, "")

	require.NoError(t, app.List(context.Background()))
	require.Nil(t, client.lastFilters)
	require.Contains(t, out.String(), "1 Main St")
	require.Contains(t, out.String(), "5 Oak Ave")
	require.Contains(t, out.String(), "rented")
}

func TestList_Empty(t *testing.T) {
	app, out := newTestApp(&fakeAPI{}, "")

	require.NoError(t, app.List(context.Background()))
	require.Contains(t, out.String(), "No properties found.")
}

func TestList_Error(t *testing.T) {
	client := &fakeAPI{listErr: errors.New("API error")}
	app, out := newTestApp(client, "")

	require.Error(t, app.List(context.Background()))
	require.Contains(t, out.String(), "Failed to load listings")
}

func TestSearch_ParsesFilters(t *testing.T) {
	client := &fakeAPI{properties: sampleProperties()}
	app, _ := newTestApp(client, "")

	require.NoError(t, app.Search(context.Background(), []string{"bedroom=2", "isRented=false"}))
	require.Equal(t, map[string]string{"bedroom": "2", "isRented": "false"}, client.lastFilters)
}

func TestSearch_MalformedFilter(t *testing.T) {
	app, out := newTestApp(&fakeAPI{}, "")

	err := app.Search(context.Background(), []string{"bedroom"})
	require.ErrorIs(t, err, errBadFilter)
	require.Contains(t, out.String(), "Usage: search")
}

func TestMine_RequiresLogin(t *testing.T) {
	client := &fakeAPI{}
	app, out := newTestApp(client, "")

	require.NoError(t, app.Mine(context.Background()))
	require.Contains(t, out.String(), "You must log in")
	require.Nil(t, client.lastFilters)
}

func TestMine_FiltersByCurrentUser(t *testing.T) {
	client := &fakeAPI{properties: sampleProperties()}
	app, _ := newTestApp(client, "")
	app.session.LoginUser(&models.User{ID: "42", FullName: "Alice"})

	require.NoError(t, app.Mine(context.Background()))
	require.Equal(t, map[string]string{"userId": "42"}, client.lastFilters)
}

func TestShow_PrintsDetails(t *testing.T) {
	property := &models.Property{
		ID: 7, Address: "1 Main St", Price: 950, Bedroom: 2, Area: 54,
		Content:  "Sunny two-bedroom near the park.",
		Category: models.Category{ID: "c1", Name: "apartment"},
		User:     models.User{FullName: "Bob", Phone: "+371200000"},
		Images:   []models.Image{{ID: "i1", BaseURL: "/uploads/1.jpg"}},
		Comments: []models.Comment{
			{ID: "c1", Content: "great place", Rating: 5, User: models.CommentAuthor{FullName: "Eve"}},
		},
	}
	client := &fakeAPI{property: property}
	app, out := newTestApp(client, "")

	require.NoError(t, app.Show(context.Background(), []string{"7"}))
	require.Equal(t, int64(7), client.lastID)

	s := out.String()
	require.Contains(t, s, "1 Main St")
	require.Contains(t, s, "apartment")
	require.Contains(t, s, "listed by: Bob (+371200000)")
	require.Contains(t, s, "image: /uploads/1.jpg")
	require.Contains(t, s, "[*****] Eve: great place")
}

func TestShow_BadID(t *testing.T) {
	app, out := newTestApp(&fakeAPI{}, "")

	require.Error(t, app.Show(context.Background(), []string{"seven"}))
	require.Contains(t, out.String(), "Invalid listing id")
}

func TestShow_NoArgs(t *testing.T) {
	app, out := newTestApp(&fakeAPI{}, "")

	require.NoError(t, app.Show(context.Background(), nil))
	require.Contains(t, out.String(), "Usage: show <id>")
}

// Package models contains the wire types exchanged with the RentAHouse API.
// Values are immutable snapshots: a record is replaced wholesale on re-fetch,
// never patched field by field.
package models

// User is the identity record of an account.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// Image is a single photo attached to a property listing.
type Image struct {
	ID      string `json:"id"`
	BaseURL string `json:"baseUrl"`
}

// Category classifies a listing (apartment, house, ...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentAuthor is the subset of the author record embedded in a comment.
type CommentAuthor struct {
	FullName string `json:"fullName"`
}

// Comment is a rating left on a property listing.
type Comment struct {
	ID      string        `json:"id"`
	Content string        `json:"content"`
	Rating  int           `json:"rating"`
	User    CommentAuthor `json:"user"`
}

// Property is a rental listing.
type Property struct {
	ID       int64     `json:"id"`
	Address  string    `json:"address"`
	Price    float64   `json:"price"`
	Bedroom  int       `json:"bedroom"`
	Area     float64   `json:"area"`
	Content  string    `json:"content"`
	Images   []Image   `json:"images"`
	Category Category  `json:"category"`
	Comments []Comment `json:"comments"`
	User     User      `json:"user"`
	IsRented bool      `json:"isRented"`
}

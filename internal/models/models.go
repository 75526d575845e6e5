// Package models defines the entities stored by the catalog service
// and the request payloads accepted by its HTTP handlers.
package models

import "time"

// Item is a catalog product record.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Photo       string    `json:"photo"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Quantity    int64     `json:"quantity"`
	Shipping1   bool      `json:"shipping1"`
	Shipping2   bool      `json:"shipping2"`
	RatingCount int64     `json:"ratingCount"`
	RatingSum   float64   `json:"ratingSum"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RatedItem is an Item augmented with the live average of its opinion
// ratings, computed by the database at read time.
type RatedItem struct {
	Item
	AverageRating float64 `json:"averageRating"`
}

// Opinion is a user-submitted review and rating tied to one Item.
// Opinions are created and deleted, never updated in place.
type Opinion struct {
	ID            string    `json:"id"`
	ItemID        string    `json:"itemID"`
	AuthorName    string    `json:"authorName"`
	AuthorSurname string    `json:"authorSurname"`
	OpinionText   string    `json:"opinionText"`
	RatingValue   int       `json:"ratingValue"`
	CreatedAt     time.Time `json:"createdAt"`
}

// User is an account record. The password hash is internal only and
// must never be serialized to a client response.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Admin        bool   `json:"admin"`
}

// ItemInput carries the fields of an item create or edit request.
// Numeric and boolean fields are pointers so that a missing field can
// be told apart from a zero value. Quantity is decoded as a float so
// non-integer payloads can be rejected explicitly.
type ItemInput struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Photo       string   `json:"photo"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Shipping1   *bool    `json:"shipping1"`
	Shipping2   *bool    `json:"shipping2"`
}

// OpinionInput carries the fields of an opinion creation request.
type OpinionInput struct {
	ItemID        string   `json:"itemID"`
	AuthorName    string   `json:"authorName"`
	AuthorSurname string   `json:"authorSurname"`
	OpinionText   string   `json:"opinionText"`
	RatingValue   *float64 `json:"ratingValue"`
}

package catalog

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// describes one catalog collection and how it is exposed
type Resource struct {
	Collection string // mongo collection and URL segment, e.g. "books"
	Singular   string // used in response keys, e.g. "bookId"
	Label      string // used in messages, e.g. "Book not found."
	Protected  bool   // writes require a bearer token
}

var (
	Books      = Resource{Collection: "books", Singular: "book", Label: "Book", Protected: true}
	Authors    = Resource{Collection: "authors", Singular: "author", Label: "Author", Protected: true}
	Contacts   = Resource{Collection: "contacts", Singular: "contact", Label: "Contact", Protected: true}
	Publishers = Resource{Collection: "publishers", Singular: "publisher", Label: "Publisher"}
	Reviews    = Resource{Collection: "reviews", Singular: "review", Label: "Review"}
)

// rule violations detected after binding, e.g. year ranges relative to today
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) ValidationMessages() []string {
	return e.Messages
}

type Book struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title     string             `bson:"title" json:"title"`
	Author    string             `bson:"author" json:"author"`
	Genre     string             `bson:"genre" json:"genre"`
	Year      *int               `bson:"year" json:"year"`
	Summary   string             `bson:"summary" json:"summary"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Author struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	BirthYear   *int               `bson:"birthYear" json:"birthYear"`
	Nationality string             `bson:"nationality" json:"nationality"`
	Alive       bool               `bson:"alive" json:"alive"`
	Awards      []string           `bson:"awards" json:"awards"`
	Bio         string             `bson:"bio" json:"bio"`
	Website     string             `bson:"website" json:"website"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Publisher struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Country   string             `bson:"country" json:"country"`
	Founded   *int               `bson:"founded" json:"founded"`
	Website   string             `bson:"website" json:"website"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Contact struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FirstName     string             `bson:"firstName" json:"firstName"`
	LastName      string             `bson:"lastName" json:"lastName"`
	Email         string             `bson:"email" json:"email"`
	FavoriteColor string             `bson:"favoriteColor" json:"favoriteColor"`
	Birthday      string             `bson:"birthday" json:"birthday"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	BookTitle string             `bson:"bookTitle" json:"bookTitle"`
	Reviewer  string             `bson:"reviewer" json:"reviewer"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

package catalog

import (
	"fmt"
	"strings"
	"time"
)

// minYear is the earliest year accepted for publication, birth, and founding dates.
const minYear = 1000

// collects range checks that depend on the current date
type checker struct {
	messages []string
}

func (c *checker) yearBetween(field string, year *int, maxYear int) {
	if year == nil {
		return
	}

	if *year < minYear || *year > maxYear {
		c.messages = append(c.messages, fmt.Sprintf("%s must be between %d and %d", field, minYear, maxYear))
	}
}

func (c *checker) err() error {
	if len(c.messages) == 0 {
		return nil
	}

	return &ValidationError{Messages: c.messages}
}

func setString(f Fields, key string, v *string) {
	if v != nil {
		f[key] = strings.TrimSpace(*v)
	}
}

// books

type CreateBookRequest struct {
	Title   string `json:"title" binding:"required,notblank,max=200"`
	Author  string `json:"author" binding:"required,notblank,max=100"`
	Genre   string `json:"genre" binding:"omitempty,max=50"`
	Year    *int   `json:"year"`
	Summary string `json:"summary" binding:"omitempty,max=1000"`
}

func (r CreateBookRequest) Validate(now time.Time) error {
	var c checker
	c.yearBetween("year", r.Year, now.Year()+1)
	return c.err()
}

func (r CreateBookRequest) Document(now time.Time) Book {
	genre := strings.TrimSpace(r.Genre)
	if genre == "" {
		genre = "Unknown"
	}

	return Book{
		Title:     strings.TrimSpace(r.Title),
		Author:    strings.TrimSpace(r.Author),
		Genre:     genre,
		Year:      r.Year,
		Summary:   strings.TrimSpace(r.Summary),
		CreatedAt: now,
	}
}

type UpdateBookRequest struct {
	Title   *string `json:"title" binding:"omitempty,notblank,max=200"`
	Author  *string `json:"author" binding:"omitempty,notblank,max=100"`
	Genre   *string `json:"genre" binding:"omitempty,max=50"`
	Year    *int    `json:"year"`
	Summary *string `json:"summary" binding:"omitempty,max=1000"`
}

func (r UpdateBookRequest) Validate(now time.Time) error {
	var c checker
	c.yearBetween("year", r.Year, now.Year()+1)
	return c.err()
}

func (r UpdateBookRequest) Fields() Fields {
	f := Fields{}
	setString(f, "title", r.Title)
	setString(f, "author", r.Author)
	setString(f, "genre", r.Genre)
	setString(f, "summary", r.Summary)

	if r.Year != nil {
		f["year"] = *r.Year
	}

	return f
}

// authors

type CreateAuthorRequest struct {
	Name        string   `json:"name" binding:"required,notblank,max=200"`
	BirthYear   *int     `json:"birthYear"`
	Nationality string   `json:"nationality" binding:"required,notblank,min=2,max=100"`
	Alive       *bool    `json:"alive"`
	Awards      []string `json:"awards"`
	Bio         string   `json:"bio" binding:"omitempty,max=2000"`
	Website     string   `json:"website" binding:"omitempty,url"`
}

func (r CreateAuthorRequest) Validate(now time.Time) error {
	var c checker
	c.yearBetween("birthYear", r.BirthYear, now.Year())
	return c.err()
}

func (r CreateAuthorRequest) Document(now time.Time) Author {
	alive := true
	if r.Alive != nil {
		alive = *r.Alive
	}

	awards := r.Awards
	if awards == nil {
		awards = []string{}
	}

	return Author{
		Name:        strings.TrimSpace(r.Name),
		BirthYear:   r.BirthYear,
		Nationality: strings.TrimSpace(r.Nationality),
		Alive:       alive,
		Awards:      awards,
		Bio:         strings.TrimSpace(r.Bio),
		Website:     strings.TrimSpace(r.Website),
		CreatedAt:   now,
	}
}

type UpdateAuthorRequest struct {
	Name        *string  `json:"name" binding:"omitempty,notblank,max=200"`
	BirthYear   *int     `json:"birthYear"`
	Nationality *string  `json:"nationality" binding:"omitempty,notblank,min=2,max=100"`
	Alive       *bool    `json:"alive"`
	Awards      []string `json:"awards"`
	Bio         *string  `json:"bio" binding:"omitempty,max=2000"`
	Website     *string  `json:"website" binding:"omitempty,url"`
}

func (r UpdateAuthorRequest) Validate(now time.Time) error {
	var c checker
	c.yearBetween("birthYear", r.BirthYear, now.Year())
	return c.err()
}

func (r UpdateAuthorRequest) Fields() Fields {
	f := Fields{}
	setString(f, "name", r.Name)
	setString(f, "nationality", r.Nationality)
	setString(f, "bio", r.Bio)
	setString(f, "website", r.Website)

	if r.BirthYear != nil {
		f["birthYear"] = *r.BirthYear
	}

	if r.Alive != nil {
		f["alive"] = *r.Alive
	}

	if r.Awards != nil {
		f["awards"] = r.Awards
	}

	return f
}

// publishers

type CreatePublisherRequest struct {
	Name    string `json:"name" binding:"required,notblank,max=200"`
	Country string `json:"country" binding:"required,notblank,min=2,max=100"`
	Founded *int   `json:"founded"`
	Website string `json:"website" binding:"omitempty,url"`
}

func (r CreatePublisherRequest) Validate(now time.Time) error {
	var c checker
	c.yearBetween("founded", r.Founded, now.Year())
	return c.err()
}

func (r CreatePublisherRequest) Document(now time.Time) Publisher {
	return Publisher{
		Name:      strings.TrimSpace(r.Name),
		Country:   strings.TrimSpace(r.Country),
		Founded:   r.Founded,
		Website:   strings.TrimSpace(r.Website),
		CreatedAt: now,
	}
}

type UpdatePublisherRequest struct {
	Name    *string `json:"name" binding:"omitempty,notblank,max=200"`
	Country *string `json:"country" binding:"omitempty,notblank,min=2,max=100"`
	Founded *int    `json:"founded"`
	Website *string `json:"website" binding:"omitempty,url"`
}

func (r UpdatePublisherRequest) Validate(now time.Time) error {
	var c checker
	c.yearBetween("founded", r.Founded, now.Year())
	return c.err()
}

func (r UpdatePublisherRequest) Fields() Fields {
	f := Fields{}
	setString(f, "name", r.Name)
	setString(f, "country", r.Country)
	setString(f, "website", r.Website)

	if r.Founded != nil {
		f["founded"] = *r.Founded
	}

	return f
}

// contacts

type CreateContactRequest struct {
	FirstName     string `json:"firstName" binding:"required,notblank,max=100"`
	LastName      string `json:"lastName" binding:"required,notblank,max=100"`
	Email         string `json:"email" binding:"required,email"`
	FavoriteColor string `json:"favoriteColor" binding:"required,notblank,max=50"`
	Birthday      string `json:"birthday" binding:"required,notblank,max=50"`
}

func (r CreateContactRequest) Validate(time.Time) error {
	return nil
}

func (r CreateContactRequest) Document(now time.Time) Contact {
	return Contact{
		FirstName:     strings.TrimSpace(r.FirstName),
		LastName:      strings.TrimSpace(r.LastName),
		Email:         strings.TrimSpace(r.Email),
		FavoriteColor: strings.TrimSpace(r.FavoriteColor),
		Birthday:      strings.TrimSpace(r.Birthday),
		CreatedAt:     now,
	}
}

type UpdateContactRequest struct {
	FirstName     *string `json:"firstName" binding:"omitempty,notblank,max=100"`
	LastName      *string `json:"lastName" binding:"omitempty,notblank,max=100"`
	Email         *string `json:"email" binding:"omitempty,email"`
	FavoriteColor *string `json:"favoriteColor" binding:"omitempty,notblank,max=50"`
	Birthday      *string `json:"birthday" binding:"omitempty,notblank,max=50"`
}

func (r UpdateContactRequest) Validate(time.Time) error {
	return nil
}

func (r UpdateContactRequest) Fields() Fields {
	f := Fields{}
	setString(f, "firstName", r.FirstName)
	setString(f, "lastName", r.LastName)
	setString(f, "email", r.Email)
	setString(f, "favoriteColor", r.FavoriteColor)
	setString(f, "birthday", r.Birthday)

	return f
}

// reviews

type CreateReviewRequest struct {
	BookTitle string `json:"bookTitle" binding:"required,notblank,max=200"`
	Reviewer  string `json:"reviewer" binding:"required,notblank,max=100"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"omitempty,max=1000"`
}

func (r CreateReviewRequest) Validate(time.Time) error {
	return nil
}

func (r CreateReviewRequest) Document(now time.Time) Review {
	return Review{
		BookTitle: strings.TrimSpace(r.BookTitle),
		Reviewer:  strings.TrimSpace(r.Reviewer),
		Rating:    r.Rating,
		Comment:   strings.TrimSpace(r.Comment),
		CreatedAt: now,
	}
}

type UpdateReviewRequest struct {
	BookTitle *string `json:"bookTitle" binding:"omitempty,notblank,max=200"`
	Reviewer  *string `json:"reviewer" binding:"omitempty,notblank,max=100"`
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment   *string `json:"comment" binding:"omitempty,max=1000"`
}

func (r UpdateReviewRequest) Validate(time.Time) error {
	return nil
}

func (r UpdateReviewRequest) Fields() Fields {
	f := Fields{}
	setString(f, "bookTitle", r.BookTitle)
	setString(f, "reviewer", r.Reviewer)
	setString(f, "comment", r.Comment)

	if r.Rating != nil {
		f["rating"] = *r.Rating
	}

	return f
}

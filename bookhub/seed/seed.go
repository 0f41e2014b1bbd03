// Package seed generates sample catalog documents for local databases.
package seed

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"codeberg.org/bookhub/server/bookhub/catalog"
	"codeberg.org/bookhub/server/internal/validation"
	"github.com/go-playground/validator/v10"
)

const (
	// DefaultCount is used when no usable count is given.
	DefaultCount = 50

	firstSampleYear = 1950
	reviewWindow    = 365 * 24 * time.Hour
)

// builds documents through the same request types and rules the API uses
type Generator struct {
	rng      *rand.Rand
	now      func() time.Time
	validate *validator.Validate
}

func NewGenerator(src rand.Source, now func() time.Time) *Generator {
	v := validator.New()
	v.SetTagName("binding")
	validation.Configure(v)

	return &Generator{
		rng:      rand.New(src),
		now:      now,
		validate: v,
	}
}

type request interface {
	Validate(now time.Time) error
}

func (g *Generator) check(req request, now time.Time) error {
	if err := g.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid sample %T: %w", req, err)
	}

	return req.Validate(now)
}

// returns n random books published between 1950 and the current year
func (g *Generator) Books(n int) ([]catalog.Book, error) {
	now := g.now()
	books := make([]catalog.Book, 0, n)

	for i := 0; i < n; i++ {
		year := firstSampleYear + g.rng.IntN(now.Year()-firstSampleYear+1)
		req := catalog.CreateBookRequest{
			Title:   pick(g.rng, bookTitles),
			Author:  pick(g.rng, bookAuthors),
			Genre:   pick(g.rng, genres),
			Year:    &year,
			Summary: pick(g.rng, summaries),
		}

		if err := g.check(req, now); err != nil {
			return nil, err
		}

		books = append(books, req.Document(now))
	}

	return books, nil
}

// returns the fixed publisher list
func (g *Generator) Publishers() ([]catalog.Publisher, error) {
	now := g.now()
	publishers := make([]catalog.Publisher, 0, len(publisherSamples))

	for _, p := range publisherSamples {
		founded := p.founded
		req := catalog.CreatePublisherRequest{
			Name:    p.name,
			Country: p.country,
			Founded: &founded,
			Website: p.website,
		}

		if err := g.check(req, now); err != nil {
			return nil, err
		}

		publishers = append(publishers, req.Document(now))
	}

	return publishers, nil
}

// returns n random reviews dated within the last year, weighted toward high ratings
func (g *Generator) Reviews(n int) ([]catalog.Review, error) {
	now := g.now()
	reviews := make([]catalog.Review, 0, n)

	for i := 0; i < n; i++ {
		rating := g.rating()
		req := catalog.CreateReviewRequest{
			BookTitle: pick(g.rng, reviewedTitles),
			Reviewer:  pick(g.rng, reviewers),
			Rating:    rating,
			Comment:   g.comment(rating),
		}

		if err := g.check(req, now); err != nil {
			return nil, err
		}

		createdAt := now.Add(-time.Duration(g.rng.Int64N(int64(reviewWindow))))
		reviews = append(reviews, req.Document(createdAt))
	}

	return reviews, nil
}

func (g *Generator) rating() int {
	total := 0
	for _, w := range ratingWeights {
		total += w
	}

	r := g.rng.IntN(total)
	for i, w := range ratingWeights {
		if r < w {
			return i + 1
		}
		r -= w
	}

	return len(ratingWeights)
}

func (g *Generator) comment(rating int) string {
	switch {
	case rating >= 4:
		return pick(g.rng, positiveComments)
	case rating == 3:
		return pick(g.rng, neutralComments)
	default:
		return pick(g.rng, negativeComments)
	}
}

func pick(rng *rand.Rand, items []string) string {
	return items[rng.IntN(len(items))]
}

// parses a positional count argument, falling back to DefaultCount
func ParseCount(arg string) int {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return DefaultCount
	}

	return n
}

// tallies publishers per country
func CountByCountry(publishers []catalog.Publisher) map[string]int {
	counts := make(map[string]int)
	for _, p := range publishers {
		counts[p.Country]++
	}

	return counts
}

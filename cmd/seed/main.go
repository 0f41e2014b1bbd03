package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"codeberg.org/bookhub/server/bookhub/catalog"
	"codeberg.org/bookhub/server/bookhub/seed"
	"codeberg.org/bookhub/server/internal/config"
	"codeberg.org/bookhub/server/internal/logger"
	"codeberg.org/bookhub/server/internal/storage"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: seed <command> [count]")
		fmt.Println("Commands:")
		fmt.Println("  books       - insert random books (default 50)")
		fmt.Println("  publishers  - insert the sample publisher list")
		fmt.Println("  reviews     - insert random reviews (default 50)")
		fmt.Println("  all         - books, publishers and reviews")
		os.Exit(1)
	}

	command := os.Args[1]

	count := seed.DefaultCount
	if len(os.Args) > 2 {
		count = seed.ParseCount(os.Args[2])
	}

	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	ctx := context.Background()

	store, err := storage.NewClient(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err)
	}

	defer store.Close(ctx) //nolint:errcheck // process exit

	logger.Info("connected to database", "database", cfg.DBName)

	now := time.Now().UTC()
	gen := seed.NewGenerator(rand.NewPCG(uint64(now.UnixNano()), uint64(os.Getpid())), time.Now)
	db := store.Database()

	switch command {
	case "books":
		err = seedBooks(ctx, db, gen, count)
	case "publishers":
		err = seedPublishers(ctx, db, gen)
	case "reviews":
		err = seedReviews(ctx, db, gen, count)
	case "all":
		if err = seedBooks(ctx, db, gen, count); err != nil {
			break
		}
		if err = seedPublishers(ctx, db, gen); err != nil {
			break
		}
		err = seedReviews(ctx, db, gen, count)
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}

	if err != nil {
		store.Close(ctx) //nolint:errcheck // exiting
		logger.Fatal("failed to populate database", "command", command, "error", err)
	}
}

func seedBooks(ctx context.Context, db *mongo.Database, gen *seed.Generator, count int) error {
	books, err := gen.Books(count)
	if err != nil {
		return err
	}

	fmt.Printf("Populating database with %d random books...\n", count)

	return insert(ctx, catalog.NewRepository[catalog.Book](db, catalog.Books.Collection), books, catalog.Books)
}

func seedPublishers(ctx context.Context, db *mongo.Database, gen *seed.Generator) error {
	publishers, err := gen.Publishers()
	if err != nil {
		return err
	}

	fmt.Printf("Populating database with %d publishers...\n", len(publishers))

	repo := catalog.NewRepository[catalog.Publisher](db, catalog.Publishers.Collection)
	if err := insert(ctx, repo, publishers, catalog.Publishers); err != nil {
		return err
	}

	counts := seed.CountByCountry(publishers)
	fmt.Printf("\nPublishers from %d different countries:\n", len(counts))
	for _, p := range publishers {
		if n, ok := counts[p.Country]; ok {
			fmt.Printf("   - %s: %d\n", p.Country, n)
			delete(counts, p.Country)
		}
	}

	return nil
}

func seedReviews(ctx context.Context, db *mongo.Database, gen *seed.Generator, count int) error {
	reviews, err := gen.Reviews(count)
	if err != nil {
		return err
	}

	fmt.Printf("Populating database with %d random reviews...\n", count)

	return insert(ctx, catalog.NewRepository[catalog.Review](db, catalog.Reviews.Collection), reviews, catalog.Reviews)
}

// writes the batch and reports the resulting collection size
func insert[T any](ctx context.Context, repo *catalog.Repository[T], docs []T, resource catalog.Resource) error {
	inserted, err := repo.InsertMany(ctx, docs)
	if err != nil {
		return err
	}

	total, err := repo.Count(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Added %d %s to the database\n", inserted, resource.Collection)
	fmt.Printf("Total %s in database: %d\n", resource.Collection, total)

	logger.Info("collection populated", "collection", resource.Collection, "inserted", inserted, "total", total)

	return nil
}

package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"bookshelf/internal/catalog"
	"bookshelf/internal/config"
	"bookshelf/internal/logging"
	"bookshelf/internal/platform/database"
	"bookshelf/internal/platform/openlibrary"

	"go.uber.org/zap"
)

type seedBook struct {
	Title    string
	ImageURL string
	ISBN     string
}

var starterCatalog = []seedBook{
	{"Dune", "https://covers.openlibrary.org/b/isbn/9780441013593-L.jpg", "978-0441013593"},
	{"Pride and Prejudice", "https://covers.openlibrary.org/b/isbn/9780141439518-L.jpg", "978-0141439518"},
	{"The Left Hand of Darkness", "https://covers.openlibrary.org/b/isbn/9780441478125-L.jpg", "978-0441478125"},
	{"Beloved", "https://covers.openlibrary.org/b/isbn/9781400033416-L.jpg", "978-1400033416"},
	{"The Name of the Rose", "https://covers.openlibrary.org/b/isbn/9780156001311-L.jpg", "978-0156001311"},
	{"Things Fall Apart", "https://covers.openlibrary.org/b/isbn/9780385474542-L.jpg", "978-0385474542"},
	{"One Hundred Years of Solitude", "https://covers.openlibrary.org/b/isbn/9780060883287-L.jpg", "978-0060883287"},
	{"The Remains of the Day", "https://covers.openlibrary.org/b/isbn/9780679731726-L.jpg", "978-0679731726"},
}

func main() {
	lookup := flag.Bool("lookup", false, "Refresh titles and covers from Open Library before inserting")
	flag.Parse()

	config.LoadEnvFiles()
	dbCfg := config.LoadDatabase()

	logger := logging.New(logging.Options{Level: os.Getenv("LOG_LEVEL")})
	defer logger.Sync()

	ctx := context.Background()
	pool, err := database.Open(ctx, dbCfg.DSN, dbCfg.Timeout)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.String("dsn", config.RedactDSN(dbCfg.DSN)), zap.Error(err))
	}
	defer pool.Close()

	books := starterCatalog
	if *lookup {
		books = enrich(ctx, openlibrary.NewClient("bookshelf-seed/1.0", 1, 2), books, logger)
	}

	repo := catalog.NewPostgresRepo(pool, dbCfg.Timeout)
	inserted, skipped, err := seed(ctx, catalog.NewService(repo), books, logger)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}

	total, err := repo.Count(ctx)
	if err != nil {
		logger.Fatal("failed to count books", zap.Error(err))
	}
	logger.Info("seed complete", zap.Int("inserted", inserted), zap.Int("skipped", skipped), zap.Int("total", total))
}

// seed inserts books through the catalog service. Books already present are
// skipped, so running it twice is harmless.
func seed(ctx context.Context, svc *catalog.Service, books []seedBook, logger *zap.Logger) (inserted, skipped int, err error) {
	for _, b := range books {
		_, err := svc.InsertBook(ctx, b.Title, b.ImageURL, b.ISBN)
		switch {
		case err == nil:
			inserted++
		case errors.Is(err, catalog.ErrDuplicateISBN):
			skipped++
			logger.Debug("book already cataloged", zap.String("isbn", b.ISBN))
		default:
			return inserted, skipped, err
		}
	}
	return inserted, skipped, nil
}

type editionLookup interface {
	LookupISBNs(ctx context.Context, isbns []string) (map[string]openlibrary.Edition, error)
}

// enrich overwrites title and cover with Open Library data where it has any.
// A failed lookup leaves the built-in data in place.
func enrich(ctx context.Context, lookup editionLookup, books []seedBook, logger *zap.Logger) []seedBook {
	isbns := make([]string, len(books))
	for i, b := range books {
		isbns[i] = b.ISBN
	}

	editions, err := lookup.LookupISBNs(ctx, isbns)
	if err != nil {
		logger.Warn("open library lookup failed, using built-in catalog", zap.Error(err))
		return books
	}

	out := make([]seedBook, len(books))
	for i, b := range books {
		if ed, ok := editions[b.ISBN]; ok {
			if ed.Title != "" {
				b.Title = ed.Title
			}
			if cover := ed.CoverURL(); cover != "" {
				b.ImageURL = cover
			}
		}
		out[i] = b
	}
	return out
}

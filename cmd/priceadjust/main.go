package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/service/product"
	"github.com/vladislavdragonenkov/storefront/internal/storage/sqlstore"
	"github.com/vladislavdragonenkov/storefront/internal/version"
)

const defaultTimeout = 30 * time.Second

// setupLogger настраивает формат и уровень логирования для утилиты.
func setupLogger() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetLevel(log.InfoLevel)
}

func main() {
	setupLogger()

	var (
		driver      string
		dsn         string
		percent     float64
		showVersion bool
	)

	flag.StringVar(&driver, "driver", "postgres", "database driver: postgres|sqlite")
	flag.StringVar(&dsn, "dsn", "", "PostgreSQL DSN or SQLite path (fallback: STOREFRONT_POSTGRES_DSN)")
	flag.Float64Var(&percent, "percent", 0, "price change percentage, e.g. 10 for +10%")
	flag.BoolVar(&showVersion, "version", false, "print build info and exit")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	if strings.TrimSpace(dsn) == "" {
		dsn = strings.TrimSpace(os.Getenv("STOREFRONT_POSTGRES_DSN"))
	}
	if dsn == "" {
		fail("STOREFRONT_POSTGRES_DSN (or -dsn) is required")
	}
	if percent == 0 {
		fail("-percent is required and must be non-zero")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	store, err := openStore(ctx, driver, dsn)
	if err != nil {
		fail("open store: %v", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		fail("ensure schema: %v", err)
	}

	updated, err := adjustPrices(store, percent)
	if err != nil {
		fail("price adjustment failed: %v", err)
	}

	log.WithFields(log.Fields{
		"updated": updated,
		"percent": percent,
	}).Info("цены обновлены")
	fmt.Printf("price adjustment ok: updated=%d percent=%.2f\n", updated, percent)
}

func openStore(ctx context.Context, driver, dsn string) (*sqlstore.Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "postgres":
		return sqlstore.OpenPostgres(ctx, dsn)
	case "sqlite":
		return sqlstore.OpenSQLite(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported driver: %s (use postgres|sqlite)", driver)
	}
}

// adjustPrices загружает все товары, применяет процентное изменение цены и
// сохраняет каждый товар обратно. Возвращает число обновлённых товаров.
func adjustPrices(store *sqlstore.Store, percent float64) (int, error) {
	repo := sqlstore.NewProductRepository(store)

	products, err := repo.FindAll()
	if err != nil {
		return 0, fmt.Errorf("load products: %w", err)
	}

	svc := product.NewService(nil)
	if err := svc.IncreasePrice(products, percent); err != nil {
		return 0, err
	}

	for _, p := range products {
		if err := repo.Update(p); err != nil {
			return 0, fmt.Errorf("save product %s: %w", p.ID(), err)
		}
	}
	return len(products), nil
}

func fail(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

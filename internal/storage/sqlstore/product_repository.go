package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type productRepository struct {
	db *sql.DB
}

// NewProductRepository создаёт SQL-реализацию ProductRepository.
func NewProductRepository(store *Store) domain.ProductRepository {
	return &productRepository{db: store.DB()}
}

// Create сохраняет новый товар.
func (r *productRepository) Create(product *domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products (id, name, price_minor)
		VALUES ($1, $2, $3)
	`, product.ID(), product.Name(), product.PriceMinor())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrProductExists
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update перезаписывает существующий товар.
func (r *productRepository) Update(product *domain.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name = $1,
		    price_minor = $2
		WHERE id = $3
	`, product.Name(), product.PriceMinor(), product.ID())
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Find возвращает товар или ErrProductNotFound.
func (r *productRepository) Find(id string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var (
		name       string
		priceMinor int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT name, price_minor FROM products WHERE id = $1
	`, id).Scan(&name, &priceMinor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("select product: %w", err)
	}
	return domain.NewProduct(id, name, priceMinor)
}

// FindAll возвращает все товары, отсортированные по ID. Пустой список —
// нормальный результат.
func (r *productRepository) FindAll() ([]*domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price_minor FROM products ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		var (
			id, name   string
			priceMinor int64
		)
		if err := rows.Scan(&id, &name, &priceMinor); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		product, err := domain.NewProduct(id, name, priceMinor)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

var _ domain.ProductRepository = (*productRepository)(nil)

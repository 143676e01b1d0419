package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	sqlite "modernc.org/sqlite"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

const (
	opTimeout = 5 * time.Second
)

var (
	orderReconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_reconcile_total",
		Help: "Total number of order update reconciliations grouped by result.",
	}, []string{"result"})
	orderItemsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_order_items_deleted_total",
		Help: "Total number of stale order item rows deleted during reconciliation.",
	})
	orderItemsUpserted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_order_items_upserted_total",
		Help: "Total number of order item rows upserted during reconciliation.",
	})
)

type orderRepository struct {
	db     *sql.DB
	logger *log.Entry
}

// NewOrderRepository создаёт SQL-реализацию OrderRepository.
func NewOrderRepository(store *Store) domain.OrderRepository {
	return &orderRepository{
		db:     store.DB(),
		logger: log.WithField("component", "order-repository"),
	}
}

// Create вставляет родительскую запись заказа и все позиции в одной
// транзакции: сохранённое состояние либо целиком отражает агрегат, либо
// не появляется вовсе.
func (r *orderRepository) Create(order *domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, customer_id, total_minor)
		VALUES ($1, $2, $3)
	`, order.ID(), order.CustomerID(), order.Total())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrderExists
		}
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range order.Items() {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, price_minor, qty)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, item.ID(), order.ID(), item.ProductID(), item.Name(), item.PriceMinor(), item.Qty()); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit create order: %w", err)
	}

	return nil
}

// Update приводит сохранённые записи к агрегату в три фазы внутри одной
// транзакции: обновление родителя, удаление исчезнувших позиций, upsert
// остальных. Любая ошибка откатывает транзакцию целиком и возвращается
// как единая ErrUpdateOrderFailed; детали остаются в логе.
func (r *orderRepository) Update(order *domain.Order) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return r.reconcileFailed(order.ID(), "begin tx", err)
	}

	deleted, upserted, err := r.reconcile(ctx, tx, order)
	if err != nil {
		_ = tx.Rollback()
		if errors.Is(err, domain.ErrOrderNotFound) {
			return err
		}
		return r.reconcileFailed(order.ID(), "reconcile", err)
	}

	if err := tx.Commit(); err != nil {
		return r.reconcileFailed(order.ID(), "commit", err)
	}

	orderReconcileTotal.WithLabelValues("success").Inc()
	orderItemsDeleted.Add(float64(deleted))
	orderItemsUpserted.Add(float64(upserted))
	return nil
}

// reconcile выполняет три фазы сверки. Возвращает число удалённых и
// обновлённых строк позиций.
func (r *orderRepository) reconcile(ctx context.Context, tx *sql.Tx, order *domain.Order) (int, int, error) {
	res, err := tx.ExecContext(ctx, `
		UPDATE orders
		SET customer_id = $1,
		    total_minor = $2
		WHERE id = $3
	`, order.CustomerID(), order.Total(), order.ID())
	if err != nil {
		return 0, 0, fmt.Errorf("update order row: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, 0, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return 0, 0, domain.ErrOrderNotFound
	}

	rows, err := tx.QueryContext(ctx, `
		SELECT id FROM order_items WHERE order_id = $1
	`, order.ID())
	if err != nil {
		return 0, 0, fmt.Errorf("load existing item ids: %w", err)
	}
	existing := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, 0, fmt.Errorf("scan item id: %w", err)
		}
		existing = append(existing, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, 0, fmt.Errorf("iterate item ids: %w", err)
	}

	items := order.Items()
	current := make(map[string]struct{}, len(items))
	for _, item := range items {
		current[item.ID()] = struct{}{}
	}

	deleted := 0
	for _, id := range existing {
		if _, keep := current[id]; keep {
			continue
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE id = $1`, id); err != nil {
			return 0, 0, fmt.Errorf("delete stale item %s: %w", id, err)
		}
		deleted++
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO order_items (id, order_id, product_id, name, price_minor, qty)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				order_id = excluded.order_id,
				product_id = excluded.product_id,
				name = excluded.name,
				price_minor = excluded.price_minor,
				qty = excluded.qty
		`, item.ID(), order.ID(), item.ProductID(), item.Name(), item.PriceMinor(), item.Qty()); err != nil {
			return 0, 0, fmt.Errorf("upsert item %s: %w", item.ID(), err)
		}
	}

	return deleted, len(items), nil
}

func (r *orderRepository) reconcileFailed(orderID, phase string, cause error) error {
	r.logger.WithFields(log.Fields{
		"order_id": orderID,
		"phase":    phase,
	}).WithError(cause).Error("order reconciliation failed")
	orderReconcileTotal.WithLabelValues("failure").Inc()
	return domain.ErrUpdateOrderFailed
}

// Find возвращает заказ с позициями. Агрегат пересобирается через
// конструктор, поэтому повреждённые строки всплывают как ошибка валидации.
func (r *orderRepository) Find(id string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var customerID string
	err := r.db.QueryRowContext(ctx, `
		SELECT customer_id FROM orders WHERE id = $1
	`, id).Scan(&customerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("select order: %w", err)
	}

	items, err := r.loadItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return domain.NewOrder(id, customerID, items)
}

// FindAll возвращает все заказы с позициями или ErrNoOrders на пустой таблице.
func (r *orderRepository) FindAll() ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_id FROM orders ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	type orderRow struct {
		id         string
		customerID string
	}
	parents := make([]orderRow, 0)
	for rows.Next() {
		var row orderRow
		if err := rows.Scan(&row.id, &row.customerID); err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		parents = append(parents, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	if len(parents) == 0 {
		return nil, domain.ErrNoOrders
	}

	orders := make([]*domain.Order, 0, len(parents))
	for _, parent := range parents {
		items, err := r.loadItems(ctx, parent.id)
		if err != nil {
			return nil, err
		}
		order, err := domain.NewOrder(parent.id, parent.customerID, items)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (r *orderRepository) loadItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, name, price_minor, qty
		FROM order_items
		WHERE order_id = $1
		ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var (
			id, productID, name string
			priceMinor          int64
			qty                 int32
		)
		if err := rows.Scan(&id, &productID, &name, &priceMinor, &qty); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		item, err := domain.NewOrderItem(id, productID, name, priceMinor, qty)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order items: %w", err)
	}

	return items, nil
}

// isUniqueViolation распознаёт нарушение уникального ключа для обоих
// поддерживаемых драйверов.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		// SQLITE_CONSTRAINT_PRIMARYKEY и SQLITE_CONSTRAINT_UNIQUE.
		return sqliteErr.Code() == 1555 || sqliteErr.Code() == 2067
	}
	return false
}

var _ domain.OrderRepository = (*orderRepository)(nil)

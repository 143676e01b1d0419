package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository создаёт SQL-реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{db: store.DB()}
}

// Create сохраняет нового клиента.
func (r *customerRepository) Create(customer *domain.Customer) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	street, number, zip, city := addressColumns(customer)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO customers (id, name, street, number, zipcode, city, active, reward_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, customer.ID(), customer.Name(), street, number, zip, city, customer.IsActive(), customer.RewardPoints())
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCustomerExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// Update перезаписывает существующего клиента.
func (r *customerRepository) Update(customer *domain.Customer) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	street, number, zip, city := addressColumns(customer)
	res, err := r.db.ExecContext(ctx, `
		UPDATE customers
		SET name = $1,
		    street = $2,
		    number = $3,
		    zipcode = $4,
		    city = $5,
		    active = $6,
		    reward_points = $7
		WHERE id = $8
	`, customer.Name(), street, number, zip, city, customer.IsActive(), customer.RewardPoints(), customer.ID())
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Find возвращает клиента или ErrCustomerNotFound.
func (r *customerRepository) Find(id string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, street, number, zipcode, city, active, reward_points
		FROM customers
		WHERE id = $1
	`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// FindAll возвращает всех клиентов, отсортированных по ID. Пустой список —
// нормальный результат.
func (r *customerRepository) FindAll() ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, street, number, zipcode, city, active, reward_points
		FROM customers
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}
	return customers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer пересобирает клиента из строки через конструктор и мутаторы.
func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var (
		id, name, street, zip, city string
		number                      int
		active                      bool
		rewardPoints                int64
	)
	if err := row.Scan(&id, &name, &street, &number, &zip, &city, &active, &rewardPoints); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	customer, err := domain.NewCustomer(id, name)
	if err != nil {
		return nil, err
	}
	// Пустая улица означает, что адрес клиенту ещё не задавали.
	if street != "" {
		addr, err := domain.NewAddress(street, number, zip, city)
		if err != nil {
			return nil, err
		}
		customer.ChangeAddress(addr)
	}
	if !active {
		customer.Deactivate()
	}
	if err := customer.AddRewardPoints(rewardPoints); err != nil {
		return nil, err
	}
	return customer, nil
}

func addressColumns(customer *domain.Customer) (street string, number int, zip, city string) {
	addr, ok := customer.Address()
	if !ok {
		return "", 0, "", ""
	}
	return addr.Street(), addr.Number(), addr.Zip(), addr.City()
}

var _ domain.CustomerRepository = (*customerRepository)(nil)

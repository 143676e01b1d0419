package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// customerRepositoryInMemory — in-memory реализация CustomerRepository.
type customerRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Customer
}

// NewCustomerRepository возвращает in-memory репозиторий клиентов.
func NewCustomerRepository() domain.CustomerRepository {
	return &customerRepositoryInMemory{
		items: make(map[string]*domain.Customer),
	}
}

// Create сохраняет нового клиента, если ID ещё не занят.
func (r *customerRepositoryInMemory) Create(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[customer.ID()]; exists {
		return domain.ErrCustomerExists
	}
	clone, err := cloneCustomer(customer)
	if err != nil {
		return err
	}
	r.items[customer.ID()] = clone
	return nil
}

// Update перезаписывает существующего клиента.
func (r *customerRepositoryInMemory) Update(customer *domain.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[customer.ID()]; !exists {
		return domain.ErrCustomerNotFound
	}
	clone, err := cloneCustomer(customer)
	if err != nil {
		return err
	}
	r.items[customer.ID()] = clone
	return nil
}

// Find возвращает клиента или ErrCustomerNotFound.
func (r *customerRepositoryInMemory) Find(id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return cloneCustomer(customer)
}

// FindAll возвращает всех клиентов, отсортированных по ID. Пустой список —
// нормальный результат.
func (r *customerRepositoryInMemory) FindAll() ([]*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Customer, 0, len(r.items))
	for _, customer := range r.items {
		clone, err := cloneCustomer(customer)
		if err != nil {
			return nil, err
		}
		result = append(result, clone)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

// cloneCustomer пересобирает клиента через конструктор и мутаторы.
func cloneCustomer(customer *domain.Customer) (*domain.Customer, error) {
	clone, err := domain.NewCustomer(customer.ID(), customer.Name())
	if err != nil {
		return nil, err
	}
	if addr, ok := customer.Address(); ok {
		clone.ChangeAddress(addr)
	}
	// Новый клиент активен по умолчанию, поэтому достаточно погасить флаг.
	if !customer.IsActive() {
		clone.Deactivate()
	}
	if err := clone.AddRewardPoints(customer.RewardPoints()); err != nil {
		return nil, err
	}
	return clone, nil
}

var _ domain.CustomerRepository = (*customerRepositoryInMemory)(nil)

package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной
// разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]*domain.Order),
	}
}

// Create сохраняет новый заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Create(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID()]; exists {
		return domain.ErrOrderExists
	}
	clone, err := cloneOrder(order)
	if err != nil {
		return err
	}
	r.items[order.ID()] = clone
	return nil
}

// Update перезаписывает существующий заказ целиком: для хранения в памяти
// сверка позиций вырождается в замену снимка агрегата.
func (r *orderRepositoryInMemory) Update(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID()]; !exists {
		return domain.ErrOrderNotFound
	}
	clone, err := cloneOrder(order)
	if err != nil {
		return err
	}
	r.items[order.ID()] = clone
	return nil
}

// Find возвращает заказ или ErrOrderNotFound, если его нет.
func (r *orderRepositoryInMemory) Find(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return cloneOrder(order)
}

// FindAll возвращает все заказы, отсортированные по ID, или ErrNoOrders
// на пустом хранилище.
func (r *orderRepositoryInMemory) FindAll() ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return nil, domain.ErrNoOrders
	}

	result := make([]*domain.Order, 0, len(r.items))
	for _, order := range r.items {
		clone, err := cloneOrder(order)
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

// cloneOrder пересобирает агрегат через конструктор, чтобы хранилище и
// вызывающий код не делили память. Заодно повторяется валидация инвариантов.
func cloneOrder(order *domain.Order) (*domain.Order, error) {
	return domain.NewOrder(order.ID(), order.CustomerID(), order.Items())
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)

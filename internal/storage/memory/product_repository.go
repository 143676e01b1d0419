package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// productRepositoryInMemory — in-memory реализация ProductRepository.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Product
}

// NewProductRepository возвращает in-memory репозиторий товаров.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		items: make(map[string]*domain.Product),
	}
}

// Create сохраняет новый товар, если ID ещё не занят.
func (r *productRepositoryInMemory) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[product.ID()]; exists {
		return domain.ErrProductExists
	}
	clone, err := cloneProduct(product)
	if err != nil {
		return err
	}
	r.items[product.ID()] = clone
	return nil
}

// Update перезаписывает существующий товар.
func (r *productRepositoryInMemory) Update(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[product.ID()]; !exists {
		return domain.ErrProductNotFound
	}
	clone, err := cloneProduct(product)
	if err != nil {
		return err
	}
	r.items[product.ID()] = clone
	return nil
}

// Find возвращает товар или ErrProductNotFound.
func (r *productRepositoryInMemory) Find(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.items[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(product)
}

// FindAll возвращает все товары, отсортированные по ID. Пустой список —
// нормальный результат.
func (r *productRepositoryInMemory) FindAll() ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Product, 0, len(r.items))
	for _, product := range r.items {
		clone, err := cloneProduct(product)
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

func cloneProduct(product *domain.Product) (*domain.Product, error) {
	return domain.NewProduct(product.ID(), product.Name(), product.PriceMinor())
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)

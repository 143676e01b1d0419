package order

import (
	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// uuidGenerator реализует domain.IDGenerator поверх uuid v4.
type uuidGenerator struct{}

// NewUUIDGenerator возвращает генератор случайных идентификаторов.
func NewUUIDGenerator() domain.IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

var _ domain.IDGenerator = uuidGenerator{}

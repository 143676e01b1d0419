package product

import (
	"math"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// Service выполняет массовые операции над товарами.
type Service struct {
	logger *log.Entry
}

// NewService создаёт сервис товаров.
func NewService(logger *log.Entry) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "product-service")
	}
	return &Service{logger: logger}
}

// IncreasePrice повышает цену каждого товара на percentage процентов,
// округляя результат до ближайшей минимальной единицы. Первая ошибка
// валидации прерывает обход.
func (s *Service) IncreasePrice(products []*domain.Product, percentage float64) error {
	for _, p := range products {
		newPrice := int64(math.Round(float64(p.PriceMinor()) * (1 + percentage/100)))
		if err := p.ChangePrice(newPrice); err != nil {
			s.logger.WithFields(log.Fields{
				"product_id": p.ID(),
				"new_price":  newPrice,
			}).WithError(err).Warn("price increase rejected")
			return err
		}
	}
	return nil
}

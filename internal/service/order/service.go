package order

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
)

// PlacedOrder — результат оформления заказа. RewardPoints — дельта бонусных
// баллов, заработанная заказом; сервис не трогает клиента, начисление и
// сохранение остаются на вызывающем коде.
type PlacedOrder struct {
	Order        *domain.Order
	RewardPoints int64
}

// Service выполняет операции над несколькими агрегатами сразу.
type Service struct {
	ids    domain.IDGenerator
	logger *log.Entry
}

// NewService создаёт сервис заказов с заданным генератором идентификаторов.
func NewService(ids domain.IDGenerator, logger *log.Entry) *Service {
	if ids == nil {
		ids = NewUUIDGenerator()
	}
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &Service{
		ids:    ids,
		logger: logger,
	}
}

// Total возвращает сумму итогов всех переданных заказов.
func (s *Service) Total(orders []*domain.Order) int64 {
	var total int64
	for _, order := range orders {
		total += order.Total()
	}
	return total
}

// PlaceOrder собирает новый заказ для клиента и считает заработанные
// бонусные баллы: половина суммы заказа, целочисленное деление.
func (s *Service) PlaceOrder(customer *domain.Customer, items []domain.OrderItem) (PlacedOrder, error) {
	if customer == nil {
		return PlacedOrder{}, domain.ErrCustomerIDRequired
	}
	if len(items) == 0 {
		return PlacedOrder{}, domain.ErrOrderItemsRequired
	}

	order, err := domain.NewOrder(s.ids.NewID(), customer.ID(), items)
	if err != nil {
		return PlacedOrder{}, err
	}

	points := order.Total() / 2
	s.logger.WithFields(log.Fields{
		"order_id":      order.ID(),
		"customer_id":   customer.ID(),
		"total_minor":   order.Total(),
		"reward_points": points,
	}).Info("order placed")

	return PlacedOrder{Order: order, RewardPoints: points}, nil
}

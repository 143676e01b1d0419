package order_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/service/order"
)

// seqIDGenerator выдаёт предсказуемые идентификаторы для тестов.
type seqIDGenerator struct {
	next int
}

func (g *seqIDGenerator) NewID() string {
	g.next++
	return fmt.Sprintf("order-%d", g.next)
}

func loggerForTests() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func newTestService() *order.Service {
	return order.NewService(&seqIDGenerator{}, loggerForTests())
}

func makeItem(t *testing.T, id, productID string, price int64, qty int32) domain.OrderItem {
	t.Helper()
	item, err := domain.NewOrderItem(id, productID, "Product "+productID, price, qty)
	if err != nil {
		t.Fatalf("make item %s: %v", id, err)
	}
	return item
}

func TestServiceTotal(t *testing.T) {
	svc := newTestService()

	order1, err := domain.NewOrder("order-a", "customer-1", []domain.OrderItem{
		makeItem(t, "item-1", "p1", 10, 2),
		makeItem(t, "item-2", "p2", 20, 3),
	})
	if err != nil {
		t.Fatalf("make order1: %v", err)
	}
	order2, err := domain.NewOrder("order-b", "customer-2", []domain.OrderItem{
		makeItem(t, "item-3", "p3", 30, 4),
		makeItem(t, "item-4", "p4", 40, 5),
	})
	if err != nil {
		t.Fatalf("make order2: %v", err)
	}

	if got := svc.Total([]*domain.Order{order1, order2}); got != 400 {
		t.Fatalf("expected total 400, got %d", got)
	}
	if got := svc.Total(nil); got != 0 {
		t.Fatalf("expected zero total for no orders, got %d", got)
	}
}

func TestServicePlaceOrder(t *testing.T) {
	svc := newTestService()

	customer, err := domain.NewCustomer("customer-1", "customer1")
	if err != nil {
		t.Fatalf("make customer: %v", err)
	}

	placed, err := svc.PlaceOrder(customer, []domain.OrderItem{
		makeItem(t, "item-1", "p1", 10, 2),
		makeItem(t, "item-2", "p2", 20, 3),
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}

	if placed.Order.Total() != 80 {
		t.Fatalf("expected order total 80, got %d", placed.Order.Total())
	}
	if placed.Order.ID() != "order-1" {
		t.Fatalf("expected generated id order-1, got %s", placed.Order.ID())
	}
	if placed.Order.CustomerID() != customer.ID() {
		t.Fatalf("expected customer %s, got %s", customer.ID(), placed.Order.CustomerID())
	}
	if placed.RewardPoints != 40 {
		t.Fatalf("expected 40 reward points, got %d", placed.RewardPoints)
	}

	// Сервис не трогает клиента: баллы применяет вызывающий код.
	if customer.RewardPoints() != 0 {
		t.Fatalf("service mutated the customer: %d points", customer.RewardPoints())
	}
	if err := customer.AddRewardPoints(placed.RewardPoints); err != nil {
		t.Fatalf("apply reward delta: %v", err)
	}
	if customer.RewardPoints() != 40 {
		t.Fatalf("expected 40 points after applying delta, got %d", customer.RewardPoints())
	}
}

func TestServicePlaceOrder_OddTotalTruncates(t *testing.T) {
	svc := newTestService()

	customer, err := domain.NewCustomer("customer-1", "customer1")
	if err != nil {
		t.Fatalf("make customer: %v", err)
	}

	// Итог 25: правило округления половины нигде не оговорено, реализация
	// использует целочисленное деление, поэтому фиксируем усечение до 12.
	placed, err := svc.PlaceOrder(customer, []domain.OrderItem{
		makeItem(t, "item-1", "p1", 25, 1),
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if placed.RewardPoints != 12 {
		t.Fatalf("expected truncated 12 points, got %d", placed.RewardPoints)
	}
}

func TestServicePlaceOrder_NoItems(t *testing.T) {
	svc := newTestService()

	customer, err := domain.NewCustomer("customer-1", "customer1")
	if err != nil {
		t.Fatalf("make customer: %v", err)
	}

	_, err = svc.PlaceOrder(customer, nil)
	if !errors.Is(err, domain.ErrOrderItemsRequired) {
		t.Fatalf("expected ErrOrderItemsRequired, got %v", err)
	}
}

func TestServicePlaceOrder_GeneratedIDsUnique(t *testing.T) {
	svc := order.NewService(nil, loggerForTests()) // боевой uuid-генератор

	customer, err := domain.NewCustomer("customer-1", "customer1")
	if err != nil {
		t.Fatalf("make customer: %v", err)
	}

	seen := map[string]struct{}{}
	for i := 0; i < 100; i++ {
		placed, err := svc.PlaceOrder(customer, []domain.OrderItem{
			makeItem(t, "item-1", "p1", 10, 1),
		})
		if err != nil {
			t.Fatalf("place order %d: %v", i, err)
		}
		if _, dup := seen[placed.Order.ID()]; dup {
			t.Fatalf("duplicate generated order id %s", placed.Order.ID())
		}
		seen[placed.Order.ID()] = struct{}{}
	}
}

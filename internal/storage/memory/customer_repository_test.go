package memory_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/memory"
)

func makeCustomer(t *testing.T, id, name string) *domain.Customer {
	t.Helper()
	customer, err := domain.NewCustomer(id, name)
	if err != nil {
		t.Fatalf("make customer %s: %v", id, err)
	}
	return customer
}

func TestCustomerRepositoryCreateFind(t *testing.T) {
	repo := memory.NewCustomerRepository()

	customer := makeCustomer(t, "cust-1", "Alice Johnson")
	addr, err := domain.NewAddress("Oak Avenue", 101, "98765", "Rivertown")
	if err != nil {
		t.Fatalf("make address: %v", err)
	}
	customer.ChangeAddress(addr)
	if err := customer.AddRewardPoints(150); err != nil {
		t.Fatalf("add points: %v", err)
	}

	if err := repo.Create(customer); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, err := repo.Find("cust-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name() != "Alice Johnson" || found.RewardPoints() != 150 || !found.IsActive() {
		t.Fatalf("round trip mismatch: %s/%d/%v", found.Name(), found.RewardPoints(), found.IsActive())
	}
	foundAddr, ok := found.Address()
	if !ok || foundAddr.Street() != "Oak Avenue" || foundAddr.City() != "Rivertown" {
		t.Fatalf("address lost in round trip: %+v ok=%v", foundAddr, ok)
	}
}

func TestCustomerRepositoryUpdate(t *testing.T) {
	repo := memory.NewCustomerRepository()

	customer := makeCustomer(t, "cust-1", "Bob Smith")
	if err := repo.Create(customer); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := customer.ChangeName("Robert Smith"); err != nil {
		t.Fatalf("change name: %v", err)
	}
	customer.Deactivate()
	if err := repo.Update(customer); err != nil {
		t.Fatalf("update: %v", err)
	}

	found, err := repo.Find("cust-1")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.Name() != "Robert Smith" || found.IsActive() {
		t.Fatalf("update not persisted: %s/%v", found.Name(), found.IsActive())
	}
}

func TestCustomerRepositoryFind_NotFound(t *testing.T) {
	repo := memory.NewCustomerRepository()

	if _, err := repo.Find("cust-404"); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound, got %v", err)
	}
	if err := repo.Update(makeCustomer(t, "cust-404", "Ghost")); !errors.Is(err, domain.ErrCustomerNotFound) {
		t.Fatalf("expected ErrCustomerNotFound on update, got %v", err)
	}
}

func TestCustomerRepositoryFindAll(t *testing.T) {
	repo := memory.NewCustomerRepository()

	// Пустой список клиентов — нормальный результат, в отличие от заказов.
	customers, err := repo.FindAll()
	if err != nil {
		t.Fatalf("find all on empty: %v", err)
	}
	if len(customers) != 0 {
		t.Fatalf("expected empty list, got %d", len(customers))
	}

	if err := repo.Create(makeCustomer(t, "cust-2", "Eva Brown")); err != nil {
		t.Fatalf("create cust-2: %v", err)
	}
	if err := repo.Create(makeCustomer(t, "cust-1", "David Green")); err != nil {
		t.Fatalf("create cust-1: %v", err)
	}

	customers, err = repo.FindAll()
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(customers) != 2 || customers[0].ID() != "cust-1" || customers[1].ID() != "cust-2" {
		t.Fatalf("unexpected customer list order")
	}
}

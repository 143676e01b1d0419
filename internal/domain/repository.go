package domain

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет новый заказ вместе с позициями одной атомарной операцией.
	Create(order *Order) error
	// Update приводит сохранённое состояние к агрегату: обновляет родительскую
	// запись, удаляет исчезнувшие позиции и добавляет/заменяет остальные в
	// одной транзакции.
	Update(order *Order) error
	// Find возвращает заказ с позициями или ErrOrderNotFound.
	Find(id string) (*Order, error)
	// FindAll возвращает все заказы или ErrNoOrders, если их нет.
	FindAll() ([]*Order, error)
}

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	Create(customer *Customer) error
	Update(customer *Customer) error
	// Find возвращает клиента или ErrCustomerNotFound.
	Find(id string) (*Customer, error)
	FindAll() ([]*Customer, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	Create(product *Product) error
	Update(product *Product) error
	// Find возвращает товар или ErrProductNotFound.
	Find(id string) (*Product, error)
	FindAll() ([]*Product, error)
}

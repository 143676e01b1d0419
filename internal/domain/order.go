package domain

// Order — корень агрегата заказа. Владеет позициями и отвечает за их
// инварианты; изменять набор позиций можно только через методы агрегата.
type Order struct {
	id         string
	customerID string
	items      []OrderItem
	totalMinor int64
}

// NewOrder создаёт заказ и проверяет инварианты агрегата:
//  1. id непустой;
//  2. customerID непустой;
//  3. хотя бы одна позиция;
//  4. идентификаторы позиций уникальны;
//  5. количество в каждой позиции положительное.
//
// Сумма вычисляется до валидации, чтобы неудачная проверка не оставила
// частично инициализированный total. Срез позиций копируется: заказ не
// делит память с вызывающим кодом.
func NewOrder(id, customerID string, items []OrderItem) (*Order, error) {
	order := &Order{
		id:         id,
		customerID: customerID,
		items:      append([]OrderItem(nil), items...),
	}
	order.totalMinor = order.calculateTotal()
	if err := order.validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// validate проверяет инварианты в фиксированном порядке; первая нарушенная
// проверка определяет возвращаемую ошибку.
func (o *Order) validate() error {
	if o.id == "" {
		return ErrOrderIDRequired
	}
	if o.customerID == "" {
		return ErrOrderCustomerRequired
	}
	if len(o.items) == 0 {
		return ErrOrderItemsRequired
	}
	seen := make(map[string]struct{}, len(o.items))
	for _, item := range o.items {
		if _, ok := seen[item.ID()]; ok {
			return ErrItemIDDuplicate
		}
		seen[item.ID()] = struct{}{}
	}
	for _, item := range o.items {
		if item.Qty() <= 0 {
			return ErrItemQtyInvalid
		}
	}
	return nil
}

// calculateTotal пересчитывает сумму заказа по позициям.
func (o *Order) calculateTotal() int64 {
	var total int64
	for _, item := range o.items {
		total += item.LineTotal()
	}
	return total
}

// ID возвращает идентификатор заказа.
func (o *Order) ID() string {
	return o.id
}

// CustomerID возвращает идентификатор клиента, которому принадлежит заказ.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items возвращает копию позиций в порядке добавления.
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// Total возвращает закэшированную сумму заказа. Сумма пересчитывается при
// каждом изменении набора позиций и всегда равна сумме LineTotal позиций.
func (o *Order) Total() int64 {
	return o.totalMinor
}

// AddItem добавляет позицию, пересчитывает сумму и заново проверяет все
// инварианты: позиция с дублирующимся ID отклоняется и на этом этапе.
// При ошибке заказ остаётся без изменений.
func (o *Order) AddItem(item OrderItem) error {
	prevItems := o.items
	prevTotal := o.totalMinor

	o.items = append(append([]OrderItem(nil), o.items...), item)
	o.totalMinor = o.calculateTotal()
	if err := o.validate(); err != nil {
		o.items = prevItems
		o.totalMinor = prevTotal
		return err
	}
	return nil
}

// RemoveItem удаляет позицию по идентификатору. Возвращает ErrItemNotFound,
// если позиции нет, и ErrLastItemRemoval, если удаление оставило бы заказ
// пустым. Повторная валидация не нужна: удаление не может нарушить
// остальные инварианты.
func (o *Order) RemoveItem(itemID string) error {
	idx := -1
	for i, item := range o.items {
		if item.ID() == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrItemNotFound
	}
	if len(o.items) == 1 {
		return ErrLastItemRemoval
	}

	o.items = append(append([]OrderItem(nil), o.items[:idx]...), o.items[idx+1:]...)
	o.totalMinor = o.calculateTotal()
	return nil
}

// ChangeCustomer переназначает заказ другому клиенту.
func (o *Order) ChangeCustomer(customerID string) error {
	if customerID == "" {
		return ErrOrderCustomerRequired
	}
	o.customerID = customerID
	return nil
}

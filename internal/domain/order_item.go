package domain

// OrderItem представляет одну позицию заказа. Значение неизменяемо после
// создания: все поля фиксируются конструктором.
type OrderItem struct {
	id         string
	productID  string
	name       string
	priceMinor int64
	qty        int32
}

// NewOrderItem создаёт позицию заказа, проверяя поля в порядке
// id → productID → name → price → qty. Первая нарушенная проверка
// определяет возвращаемую ошибку.
func NewOrderItem(id, productID, name string, priceMinor int64, qty int32) (OrderItem, error) {
	item := OrderItem{
		id:         id,
		productID:  productID,
		name:       name,
		priceMinor: priceMinor,
		qty:        qty,
	}
	if err := item.validate(); err != nil {
		return OrderItem{}, err
	}
	return item, nil
}

func (i OrderItem) validate() error {
	if i.id == "" {
		return ErrItemIDRequired
	}
	if i.productID == "" {
		return ErrItemProductRequired
	}
	if i.name == "" {
		return ErrItemNameRequired
	}
	if i.priceMinor <= 0 {
		return ErrItemPriceInvalid
	}
	if i.qty <= 0 {
		return ErrItemQtyInvalid
	}
	return nil
}

// ID возвращает идентификатор позиции (уникален в пределах заказа).
func (i OrderItem) ID() string {
	return i.id
}

// ProductID возвращает идентификатор товара, на который ссылается позиция.
func (i OrderItem) ProductID() string {
	return i.productID
}

// Name возвращает наименование товара на момент оформления.
func (i OrderItem) Name() string {
	return i.name
}

// PriceMinor возвращает цену за единицу в минимальных денежных единицах.
func (i OrderItem) PriceMinor() int64 {
	return i.priceMinor
}

// Qty возвращает количество единиц товара.
func (i OrderItem) Qty() int32 {
	return i.qty
}

// LineTotal возвращает стоимость позиции: цена, умноженная на количество.
func (i OrderItem) LineTotal() int64 {
	return i.priceMinor * int64(i.qty)
}

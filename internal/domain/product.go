package domain

// Product — товар каталога с изменяемыми именем и ценой.
type Product struct {
	id         string
	name       string
	priceMinor int64
}

// NewProduct создаёт товар, проверяя идентификатор, имя и цену.
func NewProduct(id, name string, priceMinor int64) (*Product, error) {
	product := &Product{
		id:         id,
		name:       name,
		priceMinor: priceMinor,
	}
	if err := product.validate(); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *Product) validate() error {
	if p.id == "" {
		return ErrProductIDRequired
	}
	if p.name == "" {
		return ErrProductNameRequired
	}
	if p.priceMinor <= 0 {
		return ErrProductPriceInvalid
	}
	return nil
}

// ID возвращает идентификатор товара.
func (p *Product) ID() string {
	return p.id
}

// Name возвращает наименование товара.
func (p *Product) Name() string {
	return p.name
}

// PriceMinor возвращает цену в минимальных денежных единицах.
func (p *Product) PriceMinor() int64 {
	return p.priceMinor
}

// ChangeName меняет наименование и заново проверяет сущность.
func (p *Product) ChangeName(name string) error {
	prev := p.name
	p.name = name
	if err := p.validate(); err != nil {
		p.name = prev
		return err
	}
	return nil
}

// ChangePrice меняет цену и заново проверяет сущность.
func (p *Product) ChangePrice(priceMinor int64) error {
	prev := p.priceMinor
	p.priceMinor = priceMinor
	if err := p.validate(); err != nil {
		p.priceMinor = prev
		return err
	}
	return nil
}

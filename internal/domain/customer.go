package domain

// Customer — клиент магазина. Активация требует заполненного адреса,
// бонусные баллы только накапливаются.
type Customer struct {
	id           string
	name         string
	address      Address
	hasAddress   bool
	active       bool
	rewardPoints int64
}

// NewCustomer создаёт клиента без адреса. Новый клиент считается активным.
func NewCustomer(id, name string) (*Customer, error) {
	customer := &Customer{
		id:     id,
		name:   name,
		active: true,
	}
	if err := customer.validate(); err != nil {
		return nil, err
	}
	return customer, nil
}

func (c *Customer) validate() error {
	if c.id == "" {
		return ErrCustomerIDRequired
	}
	if c.name == "" {
		return ErrCustomerNameRequired
	}
	return nil
}

// ID возвращает идентификатор клиента.
func (c *Customer) ID() string {
	return c.id
}

// Name возвращает имя клиента.
func (c *Customer) Name() string {
	return c.name
}

// Address возвращает адрес клиента и признак того, что адрес задан.
func (c *Customer) Address() (Address, bool) {
	return c.address, c.hasAddress
}

// IsActive возвращает текущий флаг активности.
func (c *Customer) IsActive() bool {
	return c.active
}

// RewardPoints возвращает накопленные бонусные баллы.
func (c *Customer) RewardPoints() int64 {
	return c.rewardPoints
}

// ChangeName меняет имя и заново проверяет сущность.
func (c *Customer) ChangeName(name string) error {
	prev := c.name
	c.name = name
	if err := c.validate(); err != nil {
		c.name = prev
		return err
	}
	return nil
}

// ChangeAddress задаёт или заменяет адрес клиента.
func (c *Customer) ChangeAddress(address Address) {
	c.address = address
	c.hasAddress = true
}

// Activate включает клиента; без адреса активация запрещена.
func (c *Customer) Activate() error {
	if !c.hasAddress {
		return ErrCustomerAddressRequired
	}
	c.active = true
	return nil
}

// Deactivate выключает клиента.
func (c *Customer) Deactivate() {
	c.active = false
}

// AddRewardPoints начисляет бонусные баллы. Счётчик монотонный, поэтому
// отрицательная дельта отклоняется.
func (c *Customer) AddRewardPoints(points int64) error {
	if points < 0 {
		return ErrRewardPointsNegative
	}
	c.rewardPoints += points
	return nil
}

package domain

// Address — адрес клиента как value object: проверяется при создании и
// дальше не меняется.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

// NewAddress создаёт адрес, проверяя обязательные поля.
func NewAddress(street string, number int, zip, city string) (Address, error) {
	addr := Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}
	if err := addr.validate(); err != nil {
		return Address{}, err
	}
	return addr, nil
}

func (a Address) validate() error {
	if a.street == "" {
		return ErrAddressStreetRequired
	}
	if a.city == "" {
		return ErrAddressCityRequired
	}
	if a.zip == "" {
		return ErrAddressZipRequired
	}
	if a.number <= 0 {
		return ErrAddressNumberInvalid
	}
	return nil
}

// Street возвращает улицу.
func (a Address) Street() string {
	return a.street
}

// Number возвращает номер дома.
func (a Address) Number() int {
	return a.number
}

// Zip возвращает почтовый индекс.
func (a Address) Zip() string {
	return a.zip
}

// City возвращает город.
func (a Address) City() string {
	return a.city
}

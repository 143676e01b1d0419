package domain

import (
	"errors"
	"fmt"
)

// Категории ошибок домена. Конкретные ошибки ниже оборачивают одну из
// категорий, поэтому вызывающий код может классифицировать их через errors.Is.
var (
	// ErrValidation — нарушено предусловие конструктора или инвариант агрегата.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound — поиск по идентификатору ничего не дал.
	ErrNotFound = errors.New("not found")
	// ErrPersistence — операция хранилища или транзакция завершилась с ошибкой.
	ErrPersistence = errors.New("persistence failed")
)

// Ошибки валидации позиции заказа (порядок проверки: id, product, name, price, qty).
var (
	ErrItemIDRequired      = validation("order item id must be provided")
	ErrItemProductRequired = validation("product id must be provided")
	ErrItemNameRequired    = validation("product name must be provided")
	ErrItemPriceInvalid    = validation("price must be greater than zero")
	ErrItemQtyInvalid      = validation("quantity must be greater than zero")
)

// Ошибки валидации заказа.
var (
	ErrOrderIDRequired       = validation("order id must be provided")
	ErrOrderCustomerRequired = validation("customer id must be provided")
	ErrOrderItemsRequired    = validation("order must contain at least one item")
	ErrItemIDDuplicate       = validation("each order item must have a unique id")
	// ErrLastItemRemoval возвращается, когда удаление оставило бы заказ пустым.
	ErrLastItemRemoval = validation("order must keep at least one item")
)

// Ошибки валидации клиента и адреса.
var (
	ErrCustomerIDRequired      = validation("customer id must be provided")
	ErrCustomerNameRequired    = validation("customer name must be provided")
	ErrCustomerAddressRequired = validation("customer must have an address to be activated")
	ErrRewardPointsNegative    = validation("reward points delta must be non-negative")

	ErrAddressStreetRequired = validation("street must be provided")
	ErrAddressCityRequired   = validation("city must be provided")
	ErrAddressZipRequired    = validation("zip code must be provided")
	ErrAddressNumberInvalid  = validation("address number must be a positive value")
)

// Ошибки валидации товара.
var (
	ErrProductIDRequired   = validation("product id must be provided")
	ErrProductNameRequired = validation("product name must be provided")
	ErrProductPriceInvalid = validation("product price must be greater than zero")
)

// Ошибки отсутствия данных.
var (
	ErrOrderNotFound    = notFound("order not found")
	ErrNoOrders         = notFound("no orders found")
	ErrItemNotFound     = notFound("item not found in order")
	ErrCustomerNotFound = notFound("customer not found")
	ErrProductNotFound  = notFound("product not found")
)

// Ошибки слоя хранения.
var (
	// ErrUpdateOrderFailed — единая грубая ошибка сверки позиций при обновлении.
	// Детали фазы остаются в логах хранилища.
	ErrUpdateOrderFailed = persistence("failed to update order")
	ErrOrderExists       = persistence("order already exists")
	ErrCustomerExists    = persistence("customer already exists")
	ErrProductExists     = persistence("product already exists")
)

func validation(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrValidation)
}

func notFound(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrNotFound)
}

func persistence(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrPersistence)
}

// IsValidation проверяет, относится ли ошибка к нарушению валидации.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound проверяет, относится ли ошибка к отсутствию данных.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsPersistence проверяет, относится ли ошибка к слою хранения.
func IsPersistence(err error) bool {
	return errors.Is(err, ErrPersistence)
}

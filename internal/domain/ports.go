package domain

// IDGenerator выдаёт глобально уникальные идентификаторы для новых
// сущностей. Выделен в порт, чтобы тесты могли подставить детерминированную
// реализацию вместо uuid.
type IDGenerator interface {
	NewID() string
}

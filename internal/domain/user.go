package domain

import "time"

// User — запись пользователя с контактными данными для коммерческого
// сопровождения и счётчиками активности.
type User struct {
	ID                string
	Email             *string
	FirstName         *string
	LastName          *string
	Organizacion      *string
	Direccion         *string
	Telefono          *string
	Ciudad            *string
	Moneda            *string
	MoneySymbol       *string
	QuotationsCount   int64
	InteractionsCount int64
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

func NewUser(id string, email, firstName, lastName *string) *User {
	return &User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
}

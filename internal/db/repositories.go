package db

import "gorm.io/gorm"

type Repositories struct {
	Users  *UserRepository
	Orders *OrderRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:  NewUserRepository(database),
		Orders: NewOrderRepository(database),
	}
}

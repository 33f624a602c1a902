package db

import (
	"github.com/sproutworks/ecopods/internal/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	database *gorm.DB
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{database: database}
}

// CreateAwardingPoints persists a new order and credits the owner's bonus
// points in one transaction, so a crash cannot award points without the
// order or record the order without its points.
func (repo *OrderRepository) CreateAwardingPoints(order *models.Order, ownerID uint, bonus int) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", ownerID).
			Update("points", gorm.Expr("points + ?", bonus)).Error
	})
}

func (repo *OrderRepository) FindByID(orderID string) (models.Order, bool, error) {
	var order models.Order
	result := repo.database.Where("id = ?", orderID).Limit(1).Find(&order)
	if result.Error != nil {
		return models.Order{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Order{}, false, nil
	}
	return order, true, nil
}

func (repo *OrderRepository) ListAll() ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := repo.database.Order("created_at DESC, rowid DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (repo *OrderRepository) ListByOwnerEmail(email string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := repo.database.
		Where("owner_email = ?", email).
		Order("created_at DESC, rowid DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListFiltered keeps orders matching both filters; "all" or an empty
// string leaves a dimension unconstrained.
func (repo *OrderRepository) ListFiltered(seed string, status string) ([]models.Order, error) {
	query := repo.database.Model(&models.Order{})
	if seed != "" && seed != "all" {
		query = query.Where("seed = ?", seed)
	}
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	orders := make([]models.Order, 0)
	if err := query.Order("created_at DESC, rowid DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (repo *OrderRepository) UpdateStatusTimeline(order *models.Order) error {
	return repo.database.Model(order).Select("status", "timeline").Updates(order).Error
}

func (repo *OrderRepository) DeleteByID(orderID string) error {
	return repo.database.Where("id = ?", orderID).Delete(&models.Order{}).Error
}

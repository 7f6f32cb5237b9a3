package db

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

// FindAllByOwner returns the owner's todos with tags preloaded. A non-empty
// search narrows to case-insensitive substring matches on the text.
func (gateway *GormTodoGateway) FindAllByOwner(ownerID uint, search string) ([]entity.Todo, error) {
	query := gateway.DB.Preload("Tags").Where("user_id = ?", ownerID)
	if search != "" {
		query = query.Where("LOWER(text) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	todos := make([]entity.Todo, 0)
	if err := query.Find(&todos).Error; err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByIDAndOwner(id uint, ownerID uint) (*entity.Todo, error) {
	var todo entity.Todo
	err := gateway.DB.Preload("Tags").
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&todo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &todo, nil
}

// Create persists the todo and its tag associations in a single transaction.
// Tag ids that do not exist are ignored; the todo row and the association
// rows either all commit or none do.
func (gateway *GormTodoGateway) Create(todo entity.Todo, tagIDs []uint) (*entity.Todo, error) {
	var tags []entity.Tag

	err := gateway.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&todo).Error; err != nil {
			return err
		}

		if len(tagIDs) == 0 {
			return nil
		}

		if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}

		return tx.Model(&todo).Association("Tags").Append(&tags)
	})
	if err != nil {
		return nil, err
	}

	todo.Tags = tags
	return &todo, nil
}

// Complete marks the todo done. Updating zero rows (wrong id or wrong owner)
// is not an error, so completion never leaks whether a foreign todo exists.
func (gateway *GormTodoGateway) Complete(id uint, ownerID uint) error {
	return gateway.DB.Model(&entity.Todo{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Update("complete", true).Error
}

// DeleteByIDAndOwner removes the todo and its tag associations in one
// transaction. A missing or foreign-owned id is a silent no-op.
func (gateway *GormTodoGateway) DeleteByIDAndOwner(id uint, ownerID uint) error {
	return gateway.DB.Transaction(func(tx *gorm.DB) error {
		var todo entity.Todo
		err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&todo).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := tx.Model(&todo).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&todo).Error
	})
}

package db

import (
	"gorm.io/gorm"

	"todo-api/internal/domain/entity"
)

type GormTagGateway struct {
	DB *gorm.DB
}

var _ TagGateway = (*GormTagGateway)(nil)

func NewGormTagGateway(db *gorm.DB) *GormTagGateway {
	return &GormTagGateway{DB: db}
}

func (gateway *GormTagGateway) FindAll() ([]entity.Tag, error) {
	tags := make([]entity.Tag, 0)
	if err := gateway.DB.Order("id").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (gateway *GormTagGateway) CountAll() (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.Tag{}).Count(&count).Error
	return count, err
}

func (gateway *GormTagGateway) Create(tag entity.Tag) (*entity.Tag, error) {
	if err := gateway.DB.Create(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

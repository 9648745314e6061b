package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kwon0144/HarborHub/internal/model"
)

// AddressRepository reads the hub location addresses.
type AddressRepository interface {
	GetByLocation(ctx context.Context, location string) (*model.Address, error)
	ListAll(ctx context.Context) ([]model.Address, error)
	Upsert(ctx context.Context, address *model.Address) error
}

type addressRepository struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) GetByLocation(ctx context.Context, location string) (*model.Address, error) {
	var address model.Address
	if err := r.db.WithContext(ctx).Where("location = ?", location).First(&address).Error; err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *addressRepository) ListAll(ctx context.Context) ([]model.Address, error) {
	var addresses []model.Address
	err := r.db.WithContext(ctx).Order("location ASC").Find(&addresses).Error
	return addresses, err
}

func (r *addressRepository) Upsert(ctx context.Context, address *model.Address) error {
	existing, err := r.GetByLocation(ctx, address.Location)
	if err == nil {
		address.ID = existing.ID
		return r.db.WithContext(ctx).Save(address).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return r.db.WithContext(ctx).Create(address).Error
}

package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"poolbalance/internal/store/model"
)

type Pool interface {
	Create(ctx context.Context, pool model.Pool) (*model.Pool, error)
	List(ctx context.Context) (model.PoolList, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Pool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type PoolStore struct {
	db *gorm.DB
}

// Make sure we conform to Pool interface
var _ Pool = (*PoolStore)(nil)

func NewPoolStore(db *gorm.DB) Pool {
	return &PoolStore{db: db}
}

func (p *PoolStore) Create(ctx context.Context, pool model.Pool) (*model.Pool, error) {
	result := p.db.WithContext(ctx).Create(&pool)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateKey
		}
		return nil, result.Error
	}
	return &pool, nil
}

func (p *PoolStore) List(ctx context.Context) (model.PoolList, error) {
	var pools model.PoolList
	result := p.db.WithContext(ctx).Order("created_at").Find(&pools)
	if result.Error != nil {
		return nil, result.Error
	}
	return pools, nil
}

func (p *PoolStore) Get(ctx context.Context, id uuid.UUID) (*model.Pool, error) {
	var pool model.Pool
	result := p.db.WithContext(ctx).Where("id = ?", id).First(&pool)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}
	return &pool, nil
}

func (p *PoolStore) Delete(ctx context.Context, id uuid.UUID) error {
	result := p.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Pool{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (p *PoolStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.db.WithContext(ctx).Model(&model.Pool{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

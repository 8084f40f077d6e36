package repository

import (
	"context"

	"social_feed/internal/domain/auth/model"
	profileModel "social_feed/internal/domain/profile/model"

	"gorm.io/gorm"
)

type AccountRepository interface {
	CreateWithProfile(ctx context.Context, account *model.AccountRow, profile *profileModel.ProfileRow) error
	GetByEmail(ctx context.Context, email string) (*model.AccountRow, error)
	GetByID(ctx context.Context, id string) (*model.AccountRow, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// CreateWithProfile 账号和初始资料在同一事务中创建
func (r *accountRepository) CreateWithProfile(ctx context.Context, account *model.AccountRow, profile *profileModel.ProfileRow) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		profile.UserID = account.ID
		return tx.Create(profile).Error
	})
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*model.AccountRow, error) {
	var row model.AccountRow
	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*model.AccountRow, error) {
	var row model.AccountRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
)

type IReviewerRepository interface {
	Get(ctx context.Context) (*entities.ReviewerProfile, error)
	Save(ctx context.Context, profile *entities.ReviewerProfile) error
}

type ReviewerRepository struct {
	db *gorm.DB
}

func NewReviewerRepository(db *gorm.DB) *ReviewerRepository {
	return &ReviewerRepository{
		db: db,
	}
}

func (r *ReviewerRepository) Get(ctx context.Context) (*entities.ReviewerProfile, error) {
	var profile entities.ReviewerProfile
	if err := r.db.WithContext(ctx).Where("id = ?", entities.MainReviewerID).First(&profile).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

// Save grava o perfil único do RT
func (r *ReviewerRepository) Save(ctx context.Context, profile *entities.ReviewerProfile) error {
	profile.ID = entities.MainReviewerID
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return fmt.Errorf("erro ao salvar perfil do RT: %w", err)
	}
	return nil
}

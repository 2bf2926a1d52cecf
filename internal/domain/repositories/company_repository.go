package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
)

type ICompanyRepository interface {
	Create(ctx context.Context, company *entities.Company) error
	FindByID(ctx context.Context, id string) (*entities.Company, error)
	FindByAccessCode(ctx context.Context, code string) (*entities.Company, error)
	ReplaceSectors(ctx context.Context, companyID string, sectors []entities.Sector) error
	UpdateStatus(ctx context.Context, companyID string, status entities.CompanyStatus) error
	AccessCodeExists(ctx context.Context, code string) (bool, error)
}

type CompanyRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewCompanyRepository(db *gorm.DB, ttl time.Duration) *CompanyRepository {
	return &CompanyRepository{
		db:    db,
		cache: cache.New(ttl, 2*ttl),
	}
}

func companyCacheKey(id string) string {
	return "company:" + id
}

func (r *CompanyRepository) Create(ctx context.Context, company *entities.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("erro ao criar empresa: %w", err)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (*entities.Company, error) {
	// Tentar obter do cache
	if cached, found := r.cache.Get(companyCacheKey(id)); found {
		return cloneCompany(cached.(*entities.Company)), nil
	}

	var company entities.Company
	err := r.db.WithContext(ctx).
		Preload("Sectors", func(db *gorm.DB) *gorm.DB { return db.Order("name ASC") }).
		Where("id = ?", id).
		First(&company).Error
	if err != nil {
		return nil, notFound(err)
	}

	r.cache.Set(companyCacheKey(id), cloneCompany(&company), cache.DefaultExpiration)
	return &company, nil
}

func (r *CompanyRepository) FindByAccessCode(ctx context.Context, code string) (*entities.Company, error) {
	var company entities.Company
	err := r.db.WithContext(ctx).
		Preload("Sectors").
		Where("access_code = ?", code).
		First(&company).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &company, nil
}

func (r *CompanyRepository) AccessCodeExists(ctx context.Context, code string) (bool, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&entities.Company{}).Where("access_code = ?", code).Count(&total).Error; err != nil {
		return false, err
	}
	return total > 0, nil
}

// ReplaceSectors substitui a lista de setores da empresa
func (r *CompanyRepository) ReplaceSectors(ctx context.Context, companyID string, sectors []entities.Sector) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&entities.Company{}).Where("id = ?", companyID).Count(&total).Error; err != nil {
			return err
		}
		if total == 0 {
			return ErrNotFound
		}

		if err := tx.Where("company_id = ?", companyID).Delete(&entities.Sector{}).Error; err != nil {
			return err
		}
		if len(sectors) == 0 {
			return nil
		}
		for i := range sectors {
			sectors[i].CompanyID = companyID
		}
		return tx.Create(&sectors).Error
	})
	if err != nil {
		return fmt.Errorf("erro ao atualizar setores: %w", err)
	}

	r.cache.Delete(companyCacheKey(companyID))
	return nil
}

// UpdateStatus abre ou fecha a empresa para novas respostas
func (r *CompanyRepository) UpdateStatus(ctx context.Context, companyID string, status entities.CompanyStatus) error {
	result := r.db.WithContext(ctx).Model(&entities.Company{}).
		Where("id = ?", companyID).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("erro ao atualizar status da empresa: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	r.cache.Delete(companyCacheKey(companyID))
	return nil
}

func cloneCompany(c *entities.Company) *entities.Company {
	out := *c
	out.Sectors = append([]entities.Sector(nil), c.Sectors...)
	return &out
}

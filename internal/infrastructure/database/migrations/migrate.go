package migrations

import (
	"gorm.io/gorm"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
)

// Migrate cria ou atualiza as tabelas do domínio
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Company{},
		&entities.Sector{},
		&entities.SurveyResponse{},
		&entities.ProbabilityAssessment{},
		&entities.DiagnosticReport{},
		&entities.ReviewerProfile{},
	)
}

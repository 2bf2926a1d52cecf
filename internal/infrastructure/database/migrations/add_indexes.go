package migrations

import (
	"gorm.io/gorm"
)

// AddIndexes adds indexes to the database to improve query performance
func AddIndexes(db *gorm.DB) error {
	indexes := []string{
		// Listagem de respostas por empresa e período
		"CREATE INDEX IF NOT EXISTS idx_responses_company_completed ON survey_responses (company_id, completed_at)",
		// Probabilidades por empresa (visão consolidada)
		"CREATE INDEX IF NOT EXISTS idx_probability_company ON probability_assessments (company_id)",
		// Versão vigente do laudo
		"CREATE INDEX IF NOT EXISTS idx_reports_main ON diagnostic_reports (company_id, sector_id) WHERE is_main",
		"CREATE INDEX IF NOT EXISTS idx_reports_timestamp ON diagnostic_reports (company_id, timestamp)",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	return nil
}

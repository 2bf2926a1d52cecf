package migrations

import (
	"gorm.io/gorm"

	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
)

// OptimizePerformanceIndexes adiciona índices específicos do PostgreSQL.
// Em outros bancos não faz nada.
func OptimizePerformanceIndexes(db *gorm.DB, log *logger.Logger) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}

	log.Info("Adicionando índices de performance otimizados...")

	indexes := []string{
		// Índice BRIN para consultas por período (respostas chegam em ordem cronológica)
		"CREATE INDEX IF NOT EXISTS idx_responses_completed_brin ON survey_responses USING BRIN (completed_at)",
		// Probabilidades definidas pelo RT
		"CREATE INDEX IF NOT EXISTS idx_probability_manual ON probability_assessments (company_id, sector_id) WHERE source = 'manual'",
	}

	for _, idx := range indexes {
		if err := db.Exec(idx).Error; err != nil {
			return err
		}
	}

	log.Info("Índices de performance criados com sucesso!")
	return nil
}

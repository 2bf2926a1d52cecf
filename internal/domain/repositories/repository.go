package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrNotFound indica que o registro buscado não existe
var ErrNotFound = errors.New("registro não encontrado")

// notFound traduz o erro do GORM para ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Repositories agrupa os repositórios da API
type Repositories struct {
	Companies     *CompanyRepository
	Responses     *ResponseRepository
	Probabilities *ProbabilityRepository
	Reports       *ReportRepository
	Reviewer      *ReviewerRepository
}

// NewRepositories cria todos os repositórios sobre a mesma conexão
func NewRepositories(db *gorm.DB, companyCacheTTL time.Duration) *Repositories {
	return &Repositories{
		Companies:     NewCompanyRepository(db, companyCacheTTL),
		Responses:     NewResponseRepository(db),
		Probabilities: NewProbabilityRepository(db),
		Reports:       NewReportRepository(db),
		Reviewer:      NewReviewerRepository(db),
	}
}

package handlers

import (
	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
)

type Handlers struct {
	Company    *CompanyHandler
	Survey     *SurveyHandler
	Diagnostic *DiagnosticHandler
	Dashboard  *DashboardHandler
	Reviewer   *ReviewerHandler
}

func NewHandlers(useCases *usecases.UseCases) *Handlers {
	return &Handlers{
		Company:    NewCompanyHandler(useCases.Companies),
		Survey:     NewSurveyHandler(useCases.Surveys),
		Diagnostic: NewDiagnosticHandler(useCases.Diagnostics),
		Dashboard:  NewDashboardHandler(useCases.Dashboard),
		Reviewer:   NewReviewerHandler(useCases.Reviewer),
	}
}

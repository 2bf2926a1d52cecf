package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/infrastructure/logger"
	"github.com/PavaniTiago/nr01-risk-api/internal/utils"
)

// DiagnosticUseCase implementa o diagnóstico por setor: métricas por tema,
// probabilidades, reconciliação e laudos
type DiagnosticUseCase struct {
	companyRepo     repositories.ICompanyRepository
	responseRepo    repositories.IResponseRepository
	probabilityRepo repositories.IProbabilityRepository
	reportRepo      repositories.IReportRepository
	reviewerRepo    repositories.IReviewerRepository
	reconciler      *risk.Reconciler
	group           singleflight.Group
	log             *logger.Logger
	now             func() time.Time
}

// NewDiagnosticUseCase cria uma nova instância de DiagnosticUseCase
func NewDiagnosticUseCase(
	companyRepo repositories.ICompanyRepository,
	responseRepo repositories.IResponseRepository,
	probabilityRepo repositories.IProbabilityRepository,
	reportRepo repositories.IReportRepository,
	reviewerRepo repositories.IReviewerRepository,
	state risk.StateStore,
	log *logger.Logger,
) *DiagnosticUseCase {
	return &DiagnosticUseCase{
		companyRepo:     companyRepo,
		responseRepo:    responseRepo,
		probabilityRepo: probabilityRepo,
		reportRepo:      reportRepo,
		reviewerRepo:    reviewerRepo,
		reconciler:      risk.NewReconciler(probabilityRepo, probabilityRepo, state),
		log:             log,
		now:             time.Now,
	}
}

// loadCompany busca a empresa e valida o setor selecionado ("all" sempre é válido)
func (u *DiagnosticUseCase) loadCompany(ctx context.Context, companyID, sectorID string) (*entities.Company, error) {
	company, err := u.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	if !risk.IsAggregate(sectorID) && !company.HasSector(sectorID) {
		return nil, ErrSectorNotFound
	}
	return company, nil
}

// ComputeThemeMetrics calcula gravidade, probabilidade e nível de risco dos 9 temas
func (u *DiagnosticUseCase) ComputeThemeMetrics(ctx context.Context, companyID, sectorFilter string) ([]risk.ThemeMetric, error) {
	if _, err := u.loadCompany(ctx, companyID, sectorFilter); err != nil {
		return nil, err
	}
	return u.computeThemeMetrics(ctx, companyID, sectorFilter)
}

func (u *DiagnosticUseCase) computeThemeMetrics(ctx context.Context, companyID, sectorFilter string) ([]risk.ThemeMetric, error) {
	responses, err := u.responseRepo.FindByCompany(ctx, companyID, repositories.ResponseFilter{SectorID: sectorFilter})
	if err != nil {
		return nil, err
	}

	// Overrides são relidos a cada passagem
	overrides := risk.Overrides{}
	scopeLabel := "all"
	if !risk.IsAggregate(sectorFilter) {
		scopeLabel = "sector"
		rows, err := u.probabilityRepo.FindByScope(ctx, companyID, sectorFilter)
		if err != nil {
			return nil, err
		}
		overrides = entities.ToOverrides(rows)
	}

	filtered := risk.FilterResponses(entities.ToRiskResponses(responses), companyID, sectorFilter)
	themeMetricsComputed.WithLabelValues(scopeLabel).Inc()

	return risk.ComputeThemeMetrics(risk.Questions, sectorFilter, filtered, overrides), nil
}

// ReconcileProbabilities recalcula o setor e grava as probabilidades apenas se mudaram.
// Chamadas concorrentes para o mesmo escopo compartilham uma única passagem.
func (u *DiagnosticUseCase) ReconcileProbabilities(ctx context.Context, companyID, sectorID string) (risk.ReconcileResult, error) {
	scope := risk.Scope{CompanyID: companyID, SectorID: sectorID}
	if risk.IsAggregate(sectorID) {
		reconcilePasses.WithLabelValues("skipped").Inc()
		return risk.ReconcileResult{CompanyID: companyID, SectorID: sectorID, Changed: []int{}, Skipped: true}, nil
	}

	if _, err := u.loadCompany(ctx, companyID, sectorID); err != nil {
		return risk.ReconcileResult{}, err
	}

	// a passagem é compartilhada: não depende do cancelamento de quem a iniciou
	passCtx := context.WithoutCancel(ctx)
	v, err, shared := u.group.Do(scope.Key(), func() (interface{}, error) {
		return u.reconcile(passCtx, scope)
	})
	result, _ := v.(risk.ReconcileResult)
	if shared {
		u.log.Debug("Reconciliação compartilhada", "scope", scope.Key())
	}
	return result, err
}

func (u *DiagnosticUseCase) reconcile(ctx context.Context, scope risk.Scope) (risk.ReconcileResult, error) {
	start := time.Now()
	defer func() { reconcileDuration.Observe(time.Since(start).Seconds()) }()

	metrics, err := u.computeThemeMetrics(ctx, scope.CompanyID, scope.SectorID)
	if err != nil {
		reconcilePasses.WithLabelValues("failed").Inc()
		return risk.ReconcileResult{}, err
	}

	result, err := u.reconciler.Reconcile(ctx, scope, risk.ProbabilitiesOf(metrics))
	if errors.Is(err, risk.ErrKnownStateNotUpdated) {
		// os dados foram gravados; a próxima passagem relê do banco
		u.log.Warn("Probabilidades gravadas sem atualizar o estado conhecido",
			"scope", scope.Key(), "changed", result.Changed, "error", err)
		err = nil
	}
	reconcilePasses.WithLabelValues(reconcileOutcome(result.Written, result.Skipped, err)).Inc()

	switch {
	case errors.Is(err, risk.ErrStalePersistedState):
		u.log.Warn("Falha ao gravar probabilidades; nova tentativa na próxima passagem",
			"scope", scope.Key(), "changed", result.Changed, "error", err)
	case err != nil:
		u.log.Error("Erro na reconciliação", "scope", scope.Key(), "error", err)
	case result.Written:
		u.log.Info("Probabilidades atualizadas", "scope", scope.Key(), "changed", result.Changed)
	}
	return result, err
}

// triggerReconcile executa uma passagem após mudanças; falhas só são registradas
func (u *DiagnosticUseCase) triggerReconcile(ctx context.Context, companyID, sectorID string) {
	if risk.IsAggregate(sectorID) {
		return
	}
	_, _ = u.ReconcileProbabilities(ctx, companyID, sectorID)
}

// ListProbabilities retorna as probabilidades persistidas de um setor
func (u *DiagnosticUseCase) ListProbabilities(ctx context.Context, companyID, sectorID string) ([]entities.ProbabilityAssessment, error) {
	if risk.IsAggregate(sectorID) {
		return nil, risk.ErrInvalidSectorSelection
	}
	if _, err := u.loadCompany(ctx, companyID, sectorID); err != nil {
		return nil, err
	}
	return u.probabilityRepo.FindByScope(ctx, companyID, sectorID)
}

func (u *DiagnosticUseCase) validateOverride(ctx context.Context, companyID, sectorID string, themeIdx int) error {
	if risk.IsAggregate(sectorID) {
		return risk.ErrInvalidSectorSelection
	}
	if !risk.ValidTheme(themeIdx) {
		return ErrInvalidTheme
	}
	_, err := u.loadCompany(ctx, companyID, sectorID)
	return err
}

// SetProbability grava o valor definido pelo RT e reconcilia o setor
func (u *DiagnosticUseCase) SetProbability(ctx context.Context, companyID, sectorID string, themeIdx, value int) error {
	if err := u.validateOverride(ctx, companyID, sectorID, themeIdx); err != nil {
		return err
	}
	if !risk.ValidProbability(value) {
		return ErrInvalidProbability
	}

	if err := u.probabilityRepo.SetOverride(ctx, companyID, sectorID, themeIdx, value); err != nil {
		return err
	}
	u.afterOverrideChange(ctx, companyID, sectorID)
	return nil
}

// ClearProbability remove o valor do RT; o tema volta ao valor derivado
func (u *DiagnosticUseCase) ClearProbability(ctx context.Context, companyID, sectorID string, themeIdx int) error {
	if err := u.validateOverride(ctx, companyID, sectorID, themeIdx); err != nil {
		return err
	}

	if err := u.probabilityRepo.ClearOverride(ctx, companyID, sectorID, themeIdx); err != nil {
		return err
	}
	u.afterOverrideChange(ctx, companyID, sectorID)
	return nil
}

func (u *DiagnosticUseCase) afterOverrideChange(ctx context.Context, companyID, sectorID string) {
	scope := risk.Scope{CompanyID: companyID, SectorID: sectorID}
	// O estado conhecido não reflete mais o banco
	if err := u.reconciler.Forget(ctx, scope); err != nil {
		u.log.Warn("Erro ao descartar estado conhecido", "scope", scope.Key(), "error", err)
	}
	u.triggerReconcile(ctx, companyID, sectorID)
}

// AssembleReport monta uma nova versão do laudo do setor, sem persistir.
// reviewerName vazio usa o nome do perfil do RT.
func (u *DiagnosticUseCase) AssembleReport(ctx context.Context, companyID, sectorID string, annotations risk.Annotations, reviewerName string) (*entities.DiagnosticReport, error) {
	if risk.IsAggregate(sectorID) {
		return nil, risk.ErrInvalidSectorSelection
	}

	metrics, err := u.ComputeThemeMetrics(ctx, companyID, sectorID)
	if err != nil {
		return nil, err
	}

	if reviewerName == "" {
		reviewerName = u.reviewerName(ctx)
	}

	scope := risk.Scope{CompanyID: companyID, SectorID: sectorID}
	report, err := risk.AssembleReport(scope, metrics, annotations, reviewerName, u.now().In(utils.GetBrasilLocation()))
	if err != nil {
		return nil, err
	}
	return entities.NewDiagnosticReport(uuid.NewString(), report), nil
}

func (u *DiagnosticUseCase) reviewerName(ctx context.Context) string {
	profile, err := u.reviewerRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			u.log.Warn("Erro ao buscar perfil do RT", "error", err)
		}
		return ""
	}
	return profile.NomeCompleto
}

// SaveReport grava a versão e a torna a vigente do setor
func (u *DiagnosticUseCase) SaveReport(ctx context.Context, report *entities.DiagnosticReport) error {
	if risk.IsAggregate(report.SectorID) {
		return risk.ErrInvalidSectorSelection
	}
	if err := u.reportRepo.Append(ctx, report); err != nil {
		return err
	}
	reportsSaved.Inc()
	u.log.Info("Laudo salvo", "company_id", report.CompanyID, "sector_id", report.SectorID, "report_id", report.ID)
	return nil
}

// GetCurrentReport retorna a versão vigente, ou a mais recente se nenhuma estiver marcada
func (u *DiagnosticUseCase) GetCurrentReport(ctx context.Context, companyID, sectorID string) (*entities.DiagnosticReport, error) {
	if _, err := u.loadCompany(ctx, companyID, sectorID); err != nil {
		return nil, err
	}

	report, err := u.reportRepo.FindCurrent(ctx, companyID, sectorID)
	if err == nil {
		return report, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	history, err := u.reportRepo.History(ctx, companyID, sectorID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, ErrReportNotFound
	}
	return &history[0], nil
}

// ReportHistory lista as versões do laudo do setor, mais recentes primeiro
func (u *DiagnosticUseCase) ReportHistory(ctx context.Context, companyID, sectorID string) ([]entities.DiagnosticReport, error) {
	if _, err := u.loadCompany(ctx, companyID, sectorID); err != nil {
		return nil, err
	}
	if risk.IsAggregate(sectorID) {
		sectorID = ""
	}
	reports, err := u.reportRepo.History(ctx, companyID, sectorID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar laudos: %w", err)
	}
	return reports, nil
}

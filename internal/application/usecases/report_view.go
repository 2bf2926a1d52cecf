package usecases

import (
	"context"
	"errors"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
	"github.com/PavaniTiago/nr01-risk-api/internal/utils"
)

// Textos usados quando o RT não preencheu o tema
const (
	fallbackSource          = "Exposição rotineira ao ambiente de trabalho."
	fallbackHealthEffects   = "Ansiedade, fadiga, estresse ocupacional."
	fallbackControlMeasures = "Monitoramento preventivo e manutenção de clima saudável."
	fallbackField           = "---"
	fallbackSignature       = "ASSINATURA DO RT"
)

// ReportView é o conteúdo do inventário de riscos pronto para impressão
type ReportView struct {
	ReportID string            `json:"report_id"`
	Date     string            `json:"date"`
	Author   string            `json:"author"`
	Unit     ReportUnit        `json:"unit"`
	Reviewer ReportReviewer    `json:"reviewer"`
	Themes   []ReportViewTheme `json:"themes"`
	Summary  ReportSummary     `json:"summary"`
}

type ReportUnit struct {
	Empresa string `json:"empresa"`
	CNPJ    string `json:"cnpj"`
	Setor   string `json:"setor"`
	Local   string `json:"local"`
}

type ReportReviewer struct {
	Nome       string `json:"nome"`
	CRP        string `json:"crp"`
	Email      string `json:"email"`
	Contato    string `json:"contato"`
	Assinatura string `json:"assinatura"`
}

type ReportViewTheme struct {
	risk.ThemeMetric
	FonteGeradora   string `json:"fonte_geradora"`
	AgravosSaude    string `json:"agravos_saude"`
	MedidasControle string `json:"medidas_controle"`
}

type ReportSummary struct {
	AgravosSaude    string `json:"agravos_saude"`
	MedidasControle string `json:"medidas_controle"`
}

func orFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// ReportView monta a visão de impressão do laudo vigente do setor
func (u *DiagnosticUseCase) ReportView(ctx context.Context, companyID, sectorID string) (*ReportView, error) {
	if risk.IsAggregate(sectorID) {
		return nil, risk.ErrInvalidSectorSelection
	}

	company, err := u.loadCompany(ctx, companyID, sectorID)
	if err != nil {
		return nil, err
	}

	report, err := u.GetCurrentReport(ctx, companyID, sectorID)
	if err != nil {
		return nil, err
	}

	var profile entities.ReviewerProfile
	if p, err := u.reviewerRepo.Get(ctx); err == nil {
		profile = *p
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	return buildReportView(company, &profile, report), nil
}

func buildReportView(company *entities.Company, profile *entities.ReviewerProfile, report *entities.DiagnosticReport) *ReportView {
	sources := report.FontesGeradoras.Data()
	health := report.AgravosPorTema.Data()
	measures := report.MedidasPorTema.Data()

	themes := make([]ReportViewTheme, 0, len(report.Themes.Data()))
	for _, tm := range report.Themes.Data() {
		themes = append(themes, ReportViewTheme{
			ThemeMetric:     tm,
			FonteGeradora:   orFallback(sources[tm.Theme], fallbackSource),
			AgravosSaude:    orFallback(health[tm.Theme], fallbackHealthEffects),
			MedidasControle: orFallback(measures[tm.Theme], fallbackControlMeasures),
		})
	}

	local := ""
	if company.Cidade != "" || company.UF != "" {
		local = company.Cidade + "/" + company.UF
	}

	return &ReportView{
		ReportID: report.ID,
		Date:     report.Timestamp.In(utils.GetBrasilLocation()).Format("02/01/2006"),
		Author:   report.Author,
		Unit: ReportUnit{
			Empresa: company.RazaoSocial,
			CNPJ:    company.CNPJ,
			Setor:   company.SectorName(report.SectorID),
			Local:   local,
		},
		Reviewer: ReportReviewer{
			Nome:       orFallback(profile.NomeCompleto, fallbackField),
			CRP:        orFallback(profile.CRP, fallbackField),
			Email:      orFallback(profile.Email, fallbackField),
			Contato:    orFallback(profile.Telefone, fallbackField),
			Assinatura: orFallback(profile.NomeCompleto, fallbackSignature),
		},
		Themes: themes,
		Summary: ReportSummary{
			AgravosSaude:    report.AgravosSaude,
			MedidasControle: report.MedidasControle,
		},
	}
}

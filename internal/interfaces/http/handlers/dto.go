package handlers

import (
	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/risk"
)

type CreateCompanyRequest struct {
	RazaoSocial    string   `json:"razao_social" validate:"required,max=200"`
	NomeFantasia   string   `json:"nome_fantasia" validate:"max=200"`
	CNPJ           string   `json:"cnpj" validate:"max=20"`
	Cidade         string   `json:"cidade" validate:"max=120"`
	UF             string   `json:"uf" validate:"omitempty,len=2"`
	TotalEmployees int      `json:"total_employees" validate:"gte=0"`
	Sectors        []string `json:"sectors" validate:"dive,max=120"`
}

func (r CreateCompanyRequest) toInput() usecases.CompanyInput {
	return usecases.CompanyInput{
		RazaoSocial:    r.RazaoSocial,
		NomeFantasia:   r.NomeFantasia,
		CNPJ:           r.CNPJ,
		Cidade:         r.Cidade,
		UF:             r.UF,
		TotalEmployees: r.TotalEmployees,
		Sectors:        r.Sectors,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Aberto Fechado"`
}

type SectorRequest struct {
	ID   string `json:"id" validate:"max=36"`
	Name string `json:"name" validate:"required,max=120"`
}

type UpdateSectorsRequest struct {
	Sectors []SectorRequest `json:"sectors" validate:"dive"`
}

func (r UpdateSectorsRequest) toInput() []usecases.SectorInput {
	out := make([]usecases.SectorInput, 0, len(r.Sectors))
	for _, s := range r.Sectors {
		out = append(out, usecases.SectorInput{ID: s.ID, Name: s.Name})
	}
	return out
}

type SubmitResponseRequest struct {
	CompanyID   string      `json:"company_id" validate:"required"`
	SectorID    string      `json:"sector_id" validate:"max=36"`
	JobFunction string      `json:"job_function" validate:"max=120"`
	Answers     map[int]int `json:"answers" validate:"required,min=1,dive,keys,min=1,max=90,endkeys,min=0,max=4"`
}

type ProbabilityRequest struct {
	Value int `json:"value" validate:"min=1,max=4"`
}

type AnnotationRequest struct {
	FonteGeradora   string `json:"fonte_geradora" validate:"max=2000"`
	AgravosSaude    string `json:"agravos_saude" validate:"max=2000"`
	MedidasControle string `json:"medidas_controle" validate:"max=2000"`
}

type SaveReportRequest struct {
	Author      string                    `json:"author" validate:"max=200"`
	Annotations map[int]AnnotationRequest `json:"annotations" validate:"dive,keys,min=0,max=8,endkeys"`
}

func (r SaveReportRequest) annotations() risk.Annotations {
	out := make(risk.Annotations, len(r.Annotations))
	for themeIdx, a := range r.Annotations {
		out[themeIdx] = risk.ThemeAnnotation{
			Source:          a.FonteGeradora,
			HealthEffects:   a.AgravosSaude,
			ControlMeasures: a.MedidasControle,
		}
	}
	return out
}

type ReviewerRequest struct {
	NomeCompleto string `json:"nome_completo" validate:"required,max=200"`
	CRP          string `json:"crp" validate:"max=30"`
	Email        string `json:"email" validate:"omitempty,email"`
	Telefone     string `json:"telefone" validate:"max=30"`
	Cidade       string `json:"cidade" validate:"max=120"`
	UF           string `json:"uf" validate:"omitempty,len=2"`
}

func (r ReviewerRequest) toInput() usecases.ReviewerInput {
	return usecases.ReviewerInput{
		NomeCompleto: r.NomeCompleto,
		CRP:          r.CRP,
		Email:        r.Email,
		Telefone:     r.Telefone,
		Cidade:       r.Cidade,
		UF:           r.UF,
	}
}

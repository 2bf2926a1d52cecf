package usecases

import (
	"context"
	"errors"
	"strings"

	"github.com/PavaniTiago/nr01-risk-api/internal/domain/entities"
	"github.com/PavaniTiago/nr01-risk-api/internal/domain/repositories"
)

// ReviewerInput são os dados do perfil do Responsável Técnico
type ReviewerInput struct {
	NomeCompleto string
	CRP          string
	Email        string
	Telefone     string
	Cidade       string
	UF           string
}

type ReviewerUseCase struct {
	reviewerRepo repositories.IReviewerRepository
}

func NewReviewerUseCase(reviewerRepo repositories.IReviewerRepository) *ReviewerUseCase {
	return &ReviewerUseCase{reviewerRepo: reviewerRepo}
}

// GetProfile retorna o perfil do RT; vazio se ainda não foi preenchido
func (u *ReviewerUseCase) GetProfile(ctx context.Context) (*entities.ReviewerProfile, error) {
	profile, err := u.reviewerRepo.Get(ctx)
	if errors.Is(err, repositories.ErrNotFound) {
		return &entities.ReviewerProfile{ID: entities.MainReviewerID}, nil
	}
	return profile, err
}

func (u *ReviewerUseCase) SaveProfile(ctx context.Context, in ReviewerInput) (*entities.ReviewerProfile, error) {
	profile := &entities.ReviewerProfile{
		NomeCompleto: strings.TrimSpace(in.NomeCompleto),
		CRP:          strings.TrimSpace(in.CRP),
		Email:        strings.TrimSpace(in.Email),
		Telefone:     strings.TrimSpace(in.Telefone),
		Cidade:       strings.TrimSpace(in.Cidade),
		UF:           strings.ToUpper(strings.TrimSpace(in.UF)),
	}
	if err := u.reviewerRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

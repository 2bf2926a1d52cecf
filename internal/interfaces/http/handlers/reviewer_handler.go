package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/PavaniTiago/nr01-risk-api/internal/application/usecases"
)

// ReviewerHandler lida com o perfil do Responsável Técnico
type ReviewerHandler struct {
	reviewerUseCase *usecases.ReviewerUseCase
}

func NewReviewerHandler(reviewerUseCase *usecases.ReviewerUseCase) *ReviewerHandler {
	return &ReviewerHandler{
		reviewerUseCase: reviewerUseCase,
	}
}

func (h *ReviewerHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.reviewerUseCase.GetProfile(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

func (h *ReviewerHandler) SaveProfile(c *fiber.Ctx) error {
	var req ReviewerRequest
	if ok, err := parseBody(c, &req); !ok {
		return err
	}

	profile, err := h.reviewerUseCase.SaveProfile(c.UserContext(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

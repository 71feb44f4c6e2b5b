package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/application/revenue"
)

// RevenueHandler serves the monthly profit/cost report (protected).
type RevenueHandler struct {
	uc *revenue.UseCase
}

// NewRevenueHandler builds the handler.
func NewRevenueHandler(uc *revenue.UseCase) *RevenueHandler {
	return &RevenueHandler{uc: uc}
}

// List GET /api/revenue/monthly
func (h *RevenueHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Report GET /api/revenue/monthly/report.pdf
func (h *RevenueHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Report(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="monthly_profit_cost.pdf"`)
	return c.Send(pdfBytes)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/saiidhanna21/garage/internal/application/catalog"
	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/application/orders"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
)

// OrderHandler handles order placement, deletion and the orders view.
type OrderHandler struct {
	uc         *orders.UseCase
	customerUC *catalog.CustomerUseCase
	itemUC     *catalog.GarageItemUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(uc *orders.UseCase, customerUC *catalog.CustomerUseCase, itemUC *catalog.GarageItemUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, customerUC: customerUC, itemUC: itemUC}
}

// Place godoc
// @Summary      Place a buy or sell order
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "customer_id (sell only), garage_item_id, order_date, order_type, quantity"
// @Success      201   {object}  dto.PlaceOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	result, err := h.uc.PlaceOrder(c.Context(), orders.PlaceOrderInput{
		CustomerID:   in.CustomerID,
		GarageItemID: in.GarageItemID,
		OrderDate:    in.OrderDate,
		Type:         in.OrderType,
		Quantity:     in.Quantity,
	})
	if err != nil {
		return orderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.PlaceOrderResponse{
		Order: toOrderResponse(result.Order),
		Item:  catalog.ToGarageItemResponse(result.Item),
	})
}

// Delete godoc
// @Summary      Delete an order, reversing its stock effect
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "order id"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	deleted, err := h.uc.DeleteOrder(c.Context(), c.Params("id"))
	if err != nil {
		return orderError(c, err)
	}
	return c.JSON(toOrderResponse(deleted))
}

// List godoc
// @Summary      List orders with the catalogs the view needs
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "invalid query"})
	}
	page.DefaultPage()

	list, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	// The page applies to the orders only; the supporting catalogs come
	// back whole so every listed order can resolve its references.
	customers, err := h.customerUC.List(c.Context(), 0, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items, err := h.itemUC.List(c.Context(), 0, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	out := dto.OrderListResponse{
		Orders:      make([]*dto.OrderResponse, 0, len(list)),
		Customers:   customers,
		GarageItems: items.Items,
		Products:    items.Products,
	}
	for _, o := range list {
		out.Orders = append(out.Orders, toOrderResponse(o))
	}
	return c.JSON(out)
}

func orderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidOrderType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ORDER_TYPE", Message: "order_type must be buy or sell"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid order data"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "quantity requested exceeds quantity on hand"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		GarageItemID: o.GarageItemID,
		OrderDate:    o.OrderDate,
		OrderType:    o.Type,
		Quantity:     o.Quantity,
		CreatedAt:    o.CreatedAt,
	}
}

package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mesflow/internal/models"
	"github.com/terraincognita07/mesflow/internal/services"
)

func (handler *Handler) ShowOrders(c *fiber.Ctx) error {
	orders, err := handler.orderService.List()
	if err != nil {
		return handler.internalError(c, "list orders", err)
	}
	if acceptsJSON(c) {
		return c.JSON(orders)
	}
	return handler.render(c, "orders", fiber.Map{
		"Title":    "Manufacturing Orders | MESflow",
		"Orders":   orders,
		"Statuses": models.OrderStatuses,
		"Today":    services.DateAtLocation(handler.now(), handler.location),
	})
}

func (handler *Handler) CreateOrder(c *fiber.Ctx) error {
	input := services.OrderInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/orders")
	}
	order, err := handler.orderService.Create(input)
	if err != nil {
		return handler.mutationFailed(c, "/orders", err)
	}
	return handler.mutationSucceeded(c, "/orders", "Order placed successfully!", order)
}

func (handler *Handler) ShowEditOrder(c *fiber.Ctx) error {
	orderID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	order, err := handler.orderService.Get(orderID)
	if err != nil {
		return handler.mutationFailed(c, "/orders", err)
	}
	if acceptsJSON(c) {
		return c.JSON(order)
	}
	return handler.render(c, "edit_order", fiber.Map{
		"Title":    "Edit Order | MESflow",
		"Order":    order,
		"Statuses": models.OrderStatuses,
	})
}

func (handler *Handler) UpdateOrder(c *fiber.Ctx) error {
	orderID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	editPath := "/orders/" + strconv.FormatUint(uint64(orderID), 10) + "/edit"

	input := services.OrderInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, editPath)
	}
	order, err := handler.orderService.Update(orderID, input)
	if err != nil {
		return handler.mutationFailed(c, editPath, err)
	}
	return handler.mutationSucceeded(c, "/orders", "Order updated successfully!", order)
}

func (handler *Handler) DeleteOrder(c *fiber.Ctx) error {
	orderID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	if err := handler.orderService.Delete(orderID); err != nil {
		return handler.mutationFailed(c, "/orders", err)
	}
	return handler.mutationSucceeded(c, "/orders", "Order deleted!", nil)
}

func (handler *Handler) ExportOrders(c *fiber.Ctx) error {
	content, err := handler.exportService.OrdersWorkbook()
	if err != nil {
		return handler.internalError(c, "build orders workbook", err)
	}
	c.Set(fiber.HeaderContentType, services.XLSXContentType)
	c.Attachment(services.OrdersExportName)
	return c.Send(content)
}

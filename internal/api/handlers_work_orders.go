package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mesflow/internal/models"
	"github.com/terraincognita07/mesflow/internal/services"
)

type workOrderStatusInput struct {
	Status string `json:"status" form:"status"`
}

func (handler *Handler) ShowWorkOrders(c *fiber.Ctx) error {
	workOrders, err := handler.workOrderService.List()
	if err != nil {
		return handler.internalError(c, "list work orders", err)
	}
	if acceptsJSON(c) {
		return c.JSON(workOrders)
	}

	orders, err := handler.orderService.List()
	if err != nil {
		return handler.internalError(c, "list orders", err)
	}
	users, err := handler.authService.ListUsers()
	if err != nil {
		return handler.internalError(c, "list users", err)
	}
	return handler.render(c, "work_orders", fiber.Map{
		"Title":      "Work Orders | MESflow",
		"WorkOrders": workOrders,
		"Orders":     orders,
		"Users":      users,
		"Statuses":   models.WorkOrderStatuses,
	})
}

func (handler *Handler) CreateWorkOrder(c *fiber.Ctx) error {
	input := services.WorkOrderInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/work-orders")
	}
	workOrder, err := handler.workOrderService.Create(input)
	if err != nil {
		return handler.mutationFailed(c, "/work-orders", err)
	}
	return handler.mutationSucceeded(c, "/work-orders", "Work order added!", workOrder)
}

func (handler *Handler) ChangeWorkOrderStatus(c *fiber.Ctx) error {
	workOrderID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	input := workOrderStatusInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/work-orders")
	}
	workOrder, err := handler.workOrderService.ChangeStatus(workOrderID, input.Status)
	if err != nil {
		return handler.mutationFailed(c, "/work-orders", err)
	}
	return handler.mutationSucceeded(c, "/work-orders", "Work order updated!", workOrder)
}

func (handler *Handler) DeleteWorkOrder(c *fiber.Ctx) error {
	workOrderID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	if err := handler.workOrderService.Delete(workOrderID); err != nil {
		return handler.mutationFailed(c, "/work-orders", err)
	}
	return handler.mutationSucceeded(c, "/work-orders", "Work order deleted!", nil)
}

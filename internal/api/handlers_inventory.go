package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mesflow/internal/services"
)

func (handler *Handler) ShowWorkCenters(c *fiber.Ctx) error {
	centers, err := handler.inventoryService.ListWorkCenters()
	if err != nil {
		return handler.internalError(c, "list work centers", err)
	}
	if acceptsJSON(c) {
		return c.JSON(centers)
	}
	return handler.render(c, "work_centers", fiber.Map{
		"Title":       "Work Centers | MESflow",
		"WorkCenters": centers,
	})
}

func (handler *Handler) CreateWorkCenter(c *fiber.Ctx) error {
	input := services.WorkCenterInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/work-centers")
	}
	center, err := handler.inventoryService.CreateWorkCenter(input)
	if err != nil {
		return handler.mutationFailed(c, "/work-centers", err)
	}
	return handler.mutationSucceeded(c, "/work-centers", "Work Center added!", center)
}

func (handler *Handler) DeleteWorkCenter(c *fiber.Ctx) error {
	centerID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	if err := handler.inventoryService.DeleteWorkCenter(centerID); err != nil {
		return handler.mutationFailed(c, "/work-centers", err)
	}
	return handler.mutationSucceeded(c, "/work-centers", "Work Center deleted!", nil)
}

func (handler *Handler) ShowStock(c *fiber.Ctx) error {
	items, err := handler.inventoryService.ListStock()
	if err != nil {
		return handler.internalError(c, "list stock", err)
	}
	if acceptsJSON(c) {
		return c.JSON(items)
	}
	return handler.render(c, "stock", fiber.Map{
		"Title": "Stock | MESflow",
		"Stock": items,
	})
}

func (handler *Handler) CreateStockItem(c *fiber.Ctx) error {
	input := services.StockInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/stock")
	}
	item, err := handler.inventoryService.CreateStockItem(input)
	if err != nil {
		return handler.mutationFailed(c, "/stock", err)
	}
	return handler.mutationSucceeded(c, "/stock", "Stock item added!", item)
}

func (handler *Handler) DeleteStockItem(c *fiber.Ctx) error {
	itemID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	if err := handler.inventoryService.DeleteStockItem(itemID); err != nil {
		return handler.mutationFailed(c, "/stock", err)
	}
	return handler.mutationSucceeded(c, "/stock", "Stock item deleted!", nil)
}

func (handler *Handler) ShowBOMs(c *fiber.Ctx) error {
	boms, err := handler.bomService.List()
	if err != nil {
		return handler.internalError(c, "list boms", err)
	}
	if acceptsJSON(c) {
		return c.JSON(boms)
	}
	items, err := handler.inventoryService.ListStock()
	if err != nil {
		return handler.internalError(c, "list stock", err)
	}
	return handler.render(c, "bom", fiber.Map{
		"Title": "Bill of Materials | MESflow",
		"BOMs":  boms,
		"Stock": items,
	})
}

func (handler *Handler) CreateBOM(c *fiber.Ctx) error {
	input := services.BOMInput{}
	if err := c.BodyParser(&input); err != nil {
		return handler.invalidForm(c, "/bom")
	}
	bom, err := handler.bomService.Create(input)
	if err != nil {
		return handler.mutationFailed(c, "/bom", err)
	}
	return handler.mutationSucceeded(c, "/bom", "BOM added!", bom)
}

func (handler *Handler) DeleteBOM(c *fiber.Ctx) error {
	bomID, ok := parseIDParam(c)
	if !ok {
		return handler.NotFound(c)
	}
	if err := handler.bomService.Delete(bomID); err != nil {
		return handler.mutationFailed(c, "/bom", err)
	}
	return handler.mutationSucceeded(c, "/bom", "BOM deleted!", nil)
}

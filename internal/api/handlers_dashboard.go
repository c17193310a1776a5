package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/terraincognita07/mesflow/internal/chart"
	"github.com/terraincognita07/mesflow/internal/services"
)

func (handler *Handler) ShowDashboard(c *fiber.Ctx) error {
	now := handler.now()
	summary, orders, err := handler.dashboardService.Summary(now)
	if err != nil {
		return handler.internalError(c, "load dashboard summary", err)
	}
	series, err := handler.dashboardService.MonthlyOrders(now)
	if err != nil {
		return handler.internalError(c, "load monthly orders", err)
	}
	attributes, err := chart.EncodeAttributes(series.Labels, series.Values)
	if err != nil {
		return handler.internalError(c, "encode chart attributes", err)
	}

	return handler.render(c, "dashboard", fiber.Map{
		"Title":     "Dashboard | MESflow",
		"Summary":   summary,
		"Orders":    orders,
		"Chart":     attributes,
		"ChartID":   chart.ElementID,
		"ChartJSON": "/api/dashboard/orders-chart",
		"ChartPNG":  "/api/dashboard/orders-chart.png",
		"Today":     services.DateAtLocation(now, handler.location),
	})
}

// OrdersChartConfig serves the same chart configuration the dashboard canvas
// builds in the browser.
func (handler *Handler) OrdersChartConfig(c *fiber.Ctx) error {
	series, err := handler.dashboardService.MonthlyOrders(handler.now())
	if err != nil {
		return handler.internalError(c, "load monthly orders", err)
	}
	payload, err := chart.MarshalConfig(chart.NewConfig(series.Labels, lo.ToAnySlice(series.Values)))
	if err != nil {
		return handler.internalError(c, "encode chart config", err)
	}
	c.Type("json", "utf-8")
	return c.Send(payload)
}

func (handler *Handler) OrdersChartPNG(c *fiber.Ctx) error {
	series, err := handler.dashboardService.MonthlyOrders(handler.now())
	if err != nil {
		return handler.internalError(c, "load monthly orders", err)
	}
	image, err := services.RenderMonthlyOrdersPNG(series)
	if err != nil {
		return handler.internalError(c, "render chart image", err)
	}
	c.Type("png")
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Send(image)
}

func (handler *Handler) internalError(c *fiber.Ctx, action string, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg(action)
	return apiError(c, fiber.StatusInternalServerError, "internal error")
}

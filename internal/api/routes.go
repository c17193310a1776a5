package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/login", handler.ShowLoginPage)
	app.Get("/signup", handler.ShowSignupPage)

	app.Get("/", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/dashboard", handler.AuthRequired, handler.ShowDashboard)
	app.Get("/profile", handler.AuthRequired, handler.ShowProfile)
	app.Post("/profile/password", handler.AuthRequired, handler.ChangePassword)

	orders := app.Group("/orders", handler.AuthRequired)
	orders.Get("/", handler.ShowOrders)
	orders.Post("/", handler.CreateOrder)
	orders.Get("/:id/edit", handler.ShowEditOrder)
	orders.Post("/:id/edit", handler.UpdateOrder)
	orders.Post("/:id/delete", handler.DeleteOrder)
	app.Get("/export/orders.xlsx", handler.AuthRequired, handler.ExportOrders)

	workOrders := app.Group("/work-orders", handler.AuthRequired)
	workOrders.Get("/", handler.ShowWorkOrders)
	workOrders.Post("/", handler.CreateWorkOrder)
	workOrders.Post("/:id/status", handler.ChangeWorkOrderStatus)
	workOrders.Post("/:id/delete", handler.DeleteWorkOrder)

	workCenters := app.Group("/work-centers", handler.AuthRequired)
	workCenters.Get("/", handler.ShowWorkCenters)
	workCenters.Post("/", handler.CreateWorkCenter)
	workCenters.Post("/:id/delete", handler.DeleteWorkCenter)

	stock := app.Group("/stock", handler.AuthRequired)
	stock.Get("/", handler.ShowStock)
	stock.Post("/", handler.CreateStockItem)
	stock.Post("/:id/delete", handler.DeleteStockItem)

	boms := app.Group("/bom", handler.AuthRequired)
	boms.Get("/", handler.ShowBOMs)
	boms.Post("/", handler.CreateBOM)
	boms.Post("/:id/delete", handler.DeleteBOM)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	dashboard := api.Group("/dashboard", handler.AuthRequired)
	dashboard.Get("/orders-chart", handler.OrdersChartConfig)
	dashboard.Get("/orders-chart.png", handler.OrdersChartPNG)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

package api

import (
	"errors"
	"fmt"
	"html/template"
	"time"

	"github.com/terraincognita07/mesflow/internal/db"
	"github.com/terraincognita07/mesflow/internal/services"
	"gorm.io/gorm"
)

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type Handler struct {
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	templates    map[string]*template.Template
	cookies      *secureCookieCodec
	loginLimiter *attemptLimiter
	now          func() time.Time

	repositories     *db.Repositories
	authService      *services.AuthService
	orderService     *services.OrderService
	dashboardService *services.DashboardService
	workOrderService *services.WorkOrderService
	inventoryService *services.InventoryService
	bomService       *services.BOMService
	exportService    *services.ExportService
}

func NewHandler(database *gorm.DB, secret string, templateDir string, location *time.Location, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}
	if location == nil {
		location = time.UTC
	}

	templates, err := parseTemplates(templateDir)
	if err != nil {
		return nil, err
	}
	cookies, err := newSecureCookieCodec([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("init cookie codec: %w", err)
	}

	handler := &Handler{
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
		templates:    templates,
		cookies:      cookies,
		loginLimiter: newAttemptLimiter(),
		now:          time.Now,
	}
	return handler.withDependencies(database), nil
}

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	repos := db.NewRepositories(database)
	handler.repositories = repos
	handler.authService = services.NewAuthService(repos.Users)
	handler.orderService = services.NewOrderService(repos.Orders, handler.location)
	handler.dashboardService = services.NewDashboardService(repos.Orders, handler.location)
	handler.workOrderService = services.NewWorkOrderService(repos.WorkOrders, repos.Orders, repos.Users)
	handler.inventoryService = services.NewInventoryService(repos.WorkCenters, repos.Stock)
	handler.bomService = services.NewBOMService(repos.BOMs, repos.Stock)
	handler.exportService = services.NewExportService(repos.Orders)
	return handler
}

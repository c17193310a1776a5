package api

import (
	"bytes"
	"fmt"
	"html/template"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

var pageTemplates = []string{
	"login",
	"signup",
	"dashboard",
	"orders",
	"edit_order",
	"work_orders",
	"work_centers",
	"stock",
	"bom",
	"profile",
	"not_found",
}

func parseTemplates(templateDir string) (map[string]*template.Template, error) {
	funcMap := newTemplateFuncMap()
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, page := range pageTemplates {
		parsed, err := template.New("base").Funcs(funcMap).ParseFiles(
			filepath.Join(templateDir, "base.html"),
			filepath.Join(templateDir, page+".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = parsed
	}
	return templates, nil
}

func newTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":     formatTemplateDate,
		"formatDateTime": formatTemplateDateTime,
		"formatFloat":    formatTemplateFloat,
		"isActiveRoute":  isActiveTemplateRoute,
	}
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	payload := handler.withTemplateDefaults(c, data)
	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", payload); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render template")
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func (handler *Handler) withTemplateDefaults(c *fiber.Ctx, data fiber.Map) fiber.Map {
	payload := fiber.Map{}
	for key, value := range data {
		payload[key] = value
	}
	if _, ok := payload["CurrentUser"]; !ok {
		if user, ok := currentUser(c); ok {
			payload["CurrentUser"] = user
		}
	}
	if _, ok := payload["Flash"]; !ok {
		payload["Flash"] = handler.popFlashCookie(c)
	}
	payload["CurrentPath"] = c.Path()
	payload["CSRFToken"] = csrfToken(c)
	return payload
}

func formatTemplateDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02")
}

func formatTemplateDateTime(value *time.Time) string {
	if value == nil || value.IsZero() {
		return ""
	}
	return value.Format("2006-01-02 15:04")
}

func formatTemplateFloat(value float64) string {
	rounded := math.Round(value*100) / 100
	if math.Abs(rounded-math.Round(rounded)) < 1e-9 {
		return fmt.Sprintf("%.0f", rounded)
	}
	return fmt.Sprintf("%.2f", rounded)
}

func isActiveTemplateRoute(currentPath string, route string) bool {
	path := strings.TrimSpace(currentPath)
	if route == "/" {
		return path == "/" || path == "/dashboard"
	}
	return path == route || strings.HasPrefix(path, route+"/")
}

package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
	"github.com/SecondHemisphere/api-portal-actividades/internal/config"
	httpx "github.com/SecondHemisphere/api-portal-actividades/internal/http"
	"github.com/SecondHemisphere/api-portal-actividades/internal/http/handlers"
	"github.com/SecondHemisphere/api-portal-actividades/internal/http/middleware"
	"github.com/SecondHemisphere/api-portal-actividades/internal/services"
)

// Run wires the application together and serves HTTP until the process
// is stopped.
func Run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer c.Close()

	if err := seedPolicies(c.PolicySvc); err != nil {
		return fmt.Errorf("failed to seed policies: %w", err)
	}

	router := httpx.BuildRouter(httpx.RouterDeps{
		Logger:        logger,
		Auth:          handlers.NewAuthHandlers(c.AuthSvc),
		Activities:    handlers.NewActivityHandlers(c.ActivitySvc),
		Categories:    handlers.NewCategoryHandlers(c.CategorySvc),
		Organizers:    handlers.NewOrganizerHandlers(c.OrganizerSvc),
		Policies:      &handlers.PolicyHandlers{PolicySvc: c.PolicySvc},
		JWT:           middleware.NewAuthMW(c.TokenSvc),
		Casbin:        middleware.NewCasbinMW(services.NewCasbinEnforcerWrapper(c.Casbin.E)),
		EnforceRoutes: cfg.EnforceRoutes,
	})

	addr := ":" + cfg.Port
	logger.Info("server starting", "addr", addr, "enforce_routes", cfg.EnforceRoutes)
	return http.ListenAndServe(addr, router)
}

// seedPolicies installs the default role policies on first boot. An
// existing policy table is left untouched so operators can manage
// rules through the admin endpoints.
func seedPolicies(policySvc domain.PolicyService) error {
	if len(policySvc.GetPolicies()) > 0 {
		return nil
	}
	defaults := [][3]string{
		{"role_admin", "/api/*", "(GET|POST|PUT|DELETE)"},
		{"role_" + domain.RoleOrganizer, "/api/activities*", "(GET|POST|PUT)"},
		{"role_" + domain.RoleOrganizer, "/api/categories*", "(GET|POST|PUT)"},
		{"role_" + domain.RoleOrganizer, "/api/organizers*", "(GET|PUT)"},
	}
	for _, p := range defaults {
		if err := policySvc.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return nil
}

package httpx

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/SecondHemisphere/api-portal-actividades/internal/http/handlers"
	"github.com/SecondHemisphere/api-portal-actividades/internal/http/middleware"
)

// RouterDeps bundles everything the route table needs
type RouterDeps struct {
	Logger     *slog.Logger
	Auth       *handlers.AuthHandlers
	Activities *handlers.ActivityHandlers
	Categories *handlers.CategoryHandlers
	Organizers *handlers.OrganizerHandlers
	Policies   *handlers.PolicyHandlers
	JWT        *middleware.AuthMW
	Casbin     *middleware.CasbinMW
	// EnforceRoutes guards mutating resource routes behind JWT + role
	// checks. Off by default: the source API exposes them publicly.
	EnforceRoutes bool
}

func BuildRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	metrics := NewMetrics()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(deps.Logger), metrics.Handler())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", deps.Auth.Login)
	auth.GET("/me", deps.JWT.WithJWT(), deps.Auth.Me)

	guard := func(g *gin.RouterGroup) gin.IRoutes {
		if deps.EnforceRoutes {
			return g.Group("").Use(deps.JWT.WithJWT(), deps.Casbin.Enforce())
		}
		return g
	}

	activities := api.Group("/activities")
	activities.GET("", deps.Activities.List)
	activities.GET("/search", deps.Activities.Search)
	activities.GET("/public/:id", deps.Activities.GetPublic)
	activities.GET("/:id", deps.Activities.Get)
	activitiesMut := guard(activities)
	activitiesMut.POST("", deps.Activities.Create)
	activitiesMut.PUT("/deactivate/:id", deps.Activities.Deactivate)
	activitiesMut.PUT("/:id", deps.Activities.Update)

	categories := api.Group("/categories")
	categories.GET("", deps.Categories.List)
	categories.GET("/search", deps.Categories.Search)
	categories.GET("/:id", deps.Categories.Get)
	categoriesMut := guard(categories)
	categoriesMut.POST("", deps.Categories.Create)
	categoriesMut.PUT("/deactivate/:id", deps.Categories.Deactivate)
	categoriesMut.PUT("/:id", deps.Categories.Update)

	organizers := api.Group("/organizers")
	organizers.GET("", deps.Organizers.List)
	organizers.GET("/organizers2", deps.Organizers.ListProfiles)
	organizers.GET("/search", deps.Organizers.Search)
	organizers.GET("/:id", deps.Organizers.Get)
	organizersMut := guard(organizers)
	organizersMut.POST("", deps.Organizers.Create)
	organizersMut.PUT("/deactivate/:id", deps.Organizers.Deactivate)
	organizersMut.PUT("/:id", deps.Organizers.Update)

	adm := r.Group("/api/admin").Use(deps.JWT.WithJWT(), deps.Casbin.Enforce())
	adm.GET("/policies", deps.Policies.List)
	adm.POST("/policies", deps.Policies.Add)
	adm.DELETE("/policies", deps.Policies.Remove)

	return r
}

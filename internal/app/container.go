package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/SecondHemisphere/api-portal-actividades/domain"
	"github.com/SecondHemisphere/api-portal-actividades/internal/config"
	"github.com/SecondHemisphere/api-portal-actividades/internal/infrastructure/auth"
	"github.com/SecondHemisphere/api-portal-actividades/internal/infrastructure/database"
	"github.com/SecondHemisphere/api-portal-actividades/internal/infrastructure/notifications"
	"github.com/SecondHemisphere/api-portal-actividades/internal/infrastructure/ratelimit"
	"github.com/SecondHemisphere/api-portal-actividades/internal/infrastructure/repositories"
	"github.com/SecondHemisphere/api-portal-actividades/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	DB          *gorm.DB
	RedisClient *redis.Client
	Casbin      *auth.CasbinService

	UserRepo      domain.UserRepository
	OrganizerRepo domain.OrganizerRepository
	CategoryRepo  domain.CategoryRepository
	ActivityRepo  domain.ActivityRepository

	PasswordSvc  domain.PasswordService
	TokenSvc     domain.TokenService
	NotifySvc    domain.NotificationService
	LoginLimiter domain.LoginRateLimiter
	AuthSvc      domain.AuthService
	ActivitySvc  domain.ActivityService
	CategorySvc  domain.CategoryService
	OrganizerSvc domain.OrganizerService
	PolicySvc    domain.PolicyService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()

	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	cas, err := auth.NewCasbinService(db, c.Config.CasbinModelPath)
	if err != nil {
		return err
	}
	c.DB = db
	c.Casbin = cas
	return nil
}

func (c *Container) initRedis() error {
	// An empty addr disables the login limiter entirely
	if c.Config.RedisAddr == "" {
		return nil
	}
	rc := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		return fmt.Errorf("redis unreachable at %s: %w", c.Config.RedisAddr, err)
	}
	c.RedisClient = rc.Client
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.OrganizerRepo = repositories.NewOrganizerRepository(c.DB)
	c.CategoryRepo = repositories.NewCategoryRepository(c.DB)
	c.ActivityRepo = repositories.NewActivityRepository(c.DB)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTKey,
		c.Config.JWTIssuer,
		c.Config.JWTAudience,
		c.Config.TokenTTL,
	)
	c.NotifySvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
		c.Logger,
	)

	if c.RedisClient != nil {
		c.LoginLimiter = ratelimit.NewRedisLoginLimiter(
			c.RedisClient,
			c.Config.LoginRateLimit,
			c.Config.LoginRateWindow,
			c.Logger,
		)
	}

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.LoginLimiter)
	c.ActivitySvc = services.NewActivityService(c.ActivityRepo)
	c.CategorySvc = services.NewCategoryService(c.CategoryRepo)
	c.OrganizerSvc = services.NewOrganizerService(c.OrganizerRepo, c.UserRepo, c.PasswordSvc, c.NotifySvc, c.Logger)
	c.PolicySvc = services.NewPolicyService(c.Casbin.E)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

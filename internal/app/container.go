package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/notesvc/domain"
	"github.com/you/notesvc/internal/config"
	"github.com/you/notesvc/internal/infrastructure/auth"
	"github.com/you/notesvc/internal/infrastructure/database"
	"github.com/you/notesvc/internal/infrastructure/notifications"
	"github.com/you/notesvc/internal/infrastructure/repositories"
	"github.com/you/notesvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo      domain.UserRepository
	NoteRepo      domain.NoteRepository
	ChallengeRepo domain.ChallengeRepository

	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
	NoteSvc         domain.NoteService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	container.DB = db
	container.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client

	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.NoteRepo = repositories.NewNoteRepository(c.DB)
	c.ChallengeRepo = repositories.NewChallengeRepository(c.RedisClient, c.Config.OTPRetention)
}

func (c *Container) initServices() {
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SessionTTL)
	c.NotificationSvc = notifications.NewEmailService(
		c.Config.SMTPHost,
		c.Config.SMTPPort,
		c.Config.SMTPUsername,
		c.Config.SMTPPassword,
		c.Config.SMTPFrom,
	)

	c.OTPSvc = services.NewOTPService(c.ChallengeRepo, services.OTPConfig{TTL: c.Config.OTPTTL})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.ChallengeRepo,
		c.OTPSvc,
		c.TokenSvc,
		c.NotificationSvc,
	)
	c.NoteSvc = services.NewNoteService(c.NoteRepo)
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

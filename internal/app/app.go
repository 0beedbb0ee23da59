package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/notesvc/internal/config"
	httpx "github.com/you/notesvc/internal/http"
	"github.com/you/notesvc/internal/http/handlers"
	"github.com/you/notesvc/internal/http/middleware"
	"github.com/you/notesvc/internal/infrastructure/auth"
	"github.com/you/notesvc/internal/infrastructure/database"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := database.AutoMigrate(container.DB); err != nil {
		return err
	}
	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	cas, err := auth.NewCasbinService(container.DB, cfg.CasbinModelPath)
	if err != nil {
		return err
	}
	seedPolicies(cas)

	authH := handlers.NewAuthHandlers(container.AuthSvc)
	noteH := handlers.NewNoteHandlers(container.NoteSvc)

	jwtMW := middleware.NewAuthMW(container.TokenSvc)
	casbinMW := middleware.NewCasbinMW(cas.E)

	r := httpx.BuildRouter(authH, noteH, jwtMW, casbinMW, cfg.AllowedOrigins)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}

func seedPolicies(cas *auth.CasbinService) {
	policies, _ := cas.E.GetPolicy()
	if len(policies) == 0 {
		cas.E.AddPolicy(middleware.RoleUser, "/auth/me", "GET")
		cas.E.AddPolicy(middleware.RoleUser, "/notes", "POST")
		cas.E.AddPolicy(middleware.RoleUser, "/notes/:id", "DELETE")
		_ = cas.E.SavePolicy()
		log.Println("casbin: seeded default policies")
	}
}

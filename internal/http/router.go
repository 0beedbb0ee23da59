package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/you/notesvc/internal/http/handlers"
	"github.com/you/notesvc/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, nh *handlers.NoteHandlers, jwtmw *middleware.AuthMW, cb *middleware.CasbinMW, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(allowedOrigins))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/resend-otp", ah.ResendOTP)
	auth.POST("/request-login-otp", ah.RequestLoginOTP)
	auth.POST("/login", ah.Login)

	v := r.Group("/").Use(jwtmw.WithJWT(), cb.Enforce())
	v.GET("/auth/me", ah.Me)
	v.POST("/notes", nh.Create)
	v.DELETE("/notes/:id", nh.Delete)

	return r
}

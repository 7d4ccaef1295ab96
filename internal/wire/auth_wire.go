package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/auth/sign-up - Register a new account
	r.Post("/api/auth/sign-up", authHandler.SignUp)

	// POST /api/auth/sign-in - Authenticate and open a session
	r.Post("/api/auth/sign-in", authHandler.SignIn)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, config, log))

		// POST /api/auth/sign-out - Revoke the current session
		r.Post("/api/auth/sign-out", authHandler.SignOut)
	})
}

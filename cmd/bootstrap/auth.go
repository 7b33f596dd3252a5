package bootstrap

import (
	"hotel-core/internal/handler/middleware"
	"hotel-core/internal/pkg/config"
	"hotel-core/internal/pkg/jwt"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		fx.Annotate(
			NewTokenVerifier,
			fx.As(new(middleware.TokenVerifier)),
		),
		NewAuthMiddleware,
	),
)

func NewTokenVerifier(cfg config.Config) *jwt.Verifier {
	return jwt.NewVerifier(cfg.Auth.Secret, cfg.Auth.Issuer)
}

func NewAuthMiddleware(verifier middleware.TokenVerifier, cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(verifier, cfg.Auth.Enabled)
}

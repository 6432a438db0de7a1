package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/techwavehq/techwave-api/internal/middleware"
	"github.com/techwavehq/techwave-api/internal/model"
	"github.com/techwavehq/techwave-api/internal/usecase"
)

// RouterConfig collects everything the router composes: the auth gates and
// one handler per resource.
type RouterConfig struct {
	Logger         *zerolog.Logger
	Authenticator  *middleware.Authenticator
	AllowedOrigins []string

	Auth     *AuthHandler
	Users    *UserHandler
	Products *ProductHandler
	Votes    *VoteHandler
	Features *FeatureHandler
	Reviews  *ReviewHandler
	Reports  *ReportHandler
	Coupons  *CouponHandler
	Payments *PaymentHandler
	Stats    *StatsHandler
}

// NewRouter builds the HTTP surface. Every protected route composes
// VerifyToken first, then at most one of RequireRole or RequireSelf.
func NewRouter(cfg RouterConfig) http.Handler {
	gate := cfg.Authenticator

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))
	r.Use(hlog.NewHandler(*cfg.Logger))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	}))

	r.Get("/healthz", Health)

	// session
	r.Post("/jwt", cfg.Auth.IssueToken)

	// users
	r.Post("/users", cfg.Users.Register)
	r.Group(func(r chi.Router) {
		r.Use(gate.VerifyToken)

		r.With(gate.RequireRole(model.RoleAdmin)).Get("/users", cfg.Users.List)
		r.With(gate.RequireSelf("email")).Get("/users/admin/{email}", cfg.Users.IsAdmin)
		r.With(gate.RequireSelf("email")).Get("/users/moderator/{email}", cfg.Users.IsModerator)
		r.With(gate.RequireRole(model.RoleAdmin)).Patch("/users/admin/{id}", cfg.Users.PromoteAdmin)
		r.With(gate.RequireRole(model.RoleAdmin)).Patch("/users/moderator/{id}", cfg.Users.PromoteModerator)
	})

	// products
	r.Get("/products", cfg.Products.List)
	r.Get("/products/{id}", cfg.Products.Get)
	r.Get("/product/search", cfg.Products.Search)
	r.Group(func(r chi.Router) {
		r.Use(gate.VerifyToken)

		r.Get("/products/user/{email}", cfg.Products.ListByOwner)
		r.Post("/products", cfg.Products.Create)
		r.Patch("/products/{id}", cfg.Products.Update)
		r.Delete("/products/{id}", cfg.Products.Delete)
	})

	// votes
	r.Get("/product/upVote/{id}", cfg.Votes.ListByProduct(usecase.VoteKindUp))
	r.Get("/product/downVote/{id}", cfg.Votes.ListByProduct(usecase.VoteKindDown))
	r.Group(func(r chi.Router) {
		r.Use(gate.VerifyToken)

		r.Get("/upVote/{email}", cfg.Votes.ListByEmail(usecase.VoteKindUp))
		r.Get("/downVote/{email}", cfg.Votes.ListByEmail(usecase.VoteKindDown))
		r.Post("/upVote", cfg.Votes.Cast(usecase.VoteKindUp))
		r.Post("/downVote", cfg.Votes.Cast(usecase.VoteKindDown))
	})

	// features
	r.Get("/features", cfg.Features.List)
	r.Get("/features/{id}", cfg.Features.Get)
	r.With(gate.VerifyToken, gate.RequireRole(model.RoleModerator)).
		Post("/features", cfg.Features.Create)

	// reviews
	r.Get("/reviews", cfg.Reviews.List)
	r.Post("/reviews", cfg.Reviews.Create)

	// reports
	r.Post("/reports", cfg.Reports.Create)
	r.Group(func(r chi.Router) {
		r.Use(gate.VerifyToken, gate.RequireRole(model.RoleModerator))

		r.Get("/reports", cfg.Reports.List)
		r.Delete("/reports/{id}", cfg.Reports.Delete)
	})

	// coupons
	r.Get("/coupons", cfg.Coupons.List)
	r.With(gate.VerifyToken).Patch("/coupons/{id}", cfg.Coupons.Update)
	r.Group(func(r chi.Router) {
		r.Use(gate.VerifyToken, gate.RequireRole(model.RoleAdmin))

		r.Post("/coupons", cfg.Coupons.Create)
		r.Delete("/coupons/{id}", cfg.Coupons.Delete)
	})

	// payments
	r.Post("/create-payment-intent", cfg.Payments.CreateIntent)
	r.Post("/payments", cfg.Payments.Record)
	r.With(gate.VerifyToken, gate.RequireSelf("email")).
		Get("/payments/{email}", cfg.Payments.History)

	// stats
	r.With(gate.VerifyToken, gate.RequireRole(model.RoleAdmin)).
		Get("/admin-stats", cfg.Stats.AdminStats)

	return r
}

package clubhub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/ntx-bassclub/clubhub/internal/http/handlers/advice/ask"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/auth/login"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/auth/logout"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/feed/commentcreate"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/feed/postcreate"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/feed/postlike"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/feed/postlist"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/gear/gearlist"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/gear/gearremove"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/gear/gearupsert"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/health"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/practice/practicecreate"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/practice/practicelist"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/tournament/tournamentlist"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/tournament/tournamentread"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/user/usercreate"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/user/userlist"
	"github.com/ntx-bassclub/clubhub/internal/http/handlers/user/userremove"
	"github.com/ntx-bassclub/clubhub/internal/http/middlewarectx"
	"github.com/ntx-bassclub/clubhub/internal/models"
	adviceservice "github.com/ntx-bassclub/clubhub/internal/services/advice"
	authservice "github.com/ntx-bassclub/clubhub/internal/services/auth"
	feedservice "github.com/ntx-bassclub/clubhub/internal/services/feed"
	gearservice "github.com/ntx-bassclub/clubhub/internal/services/gear"
	practiceservice "github.com/ntx-bassclub/clubhub/internal/services/practice"
	tournamentservice "github.com/ntx-bassclub/clubhub/internal/services/tournament"
	userservice "github.com/ntx-bassclub/clubhub/internal/services/user"
)

// Services bundles every business-logic dependency of the router.
type Services struct {
	Auth       *authservice.Service
	User       *userservice.Service
	Feed       *feedservice.Service
	Tournament *tournamentservice.Service
	Advice     *adviceservice.Service
	Gear       *gearservice.Service
	Practice   *practiceservice.Service
}

// RegisterRoutes mounts the full API surface on r.
func RegisterRoutes(r chi.Router, logger *slog.Logger, s *Services) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	limiter := rate.NewLimiter(rate.Limit(50), 100)

	r.Route("/api/v1", func(r chi.Router) {
		// Open endpoints.
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Signed-in members.
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(s.Auth, logger))
			r.Use(middlewarectx.RateLimitMiddleware(limiter, logger))

			r.Post("/logout", logout.New(logger, s.Auth).ServeHTTP)
			r.Get("/users", userlist.New(logger, s.User).ServeHTTP)

			r.Get("/feed", postlist.New(logger, s.Feed).ServeHTTP)
			r.Post("/feed", postcreate.New(logger, s.Feed).ServeHTTP)
			r.Post("/feed/{id}/like", postlike.New(logger, s.Feed).ServeHTTP)
			r.Post("/feed/{id}/comments", commentcreate.New(logger, s.Feed).ServeHTTP)

			r.Get("/tournaments", tournamentlist.New(logger, s.Tournament).ServeHTTP)
			r.Get("/tournaments/{id}", tournamentread.New(logger, s.Tournament).ServeHTTP)

			r.Post("/advice", ask.New(logger, s.Advice).ServeHTTP)

			r.Get("/gear", gearlist.New(logger, s.Gear).ServeHTTP)
			r.Put("/gear", gearupsert.New(logger, s.Gear).ServeHTTP)
			r.Delete("/gear/{id}", gearremove.New(logger, s.Gear).ServeHTTP)

			r.Post("/practice", practicecreate.New(logger, s.Practice).ServeHTTP)
			r.Get("/practice", practicelist.New(logger, s.Practice).ServeHTTP)

			// Coach only.
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(models.RoleCoach, logger))
				r.Post("/users", usercreate.New(logger, s.User).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, s.User).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/docs/*", httpSwagger.WrapHandler)
}

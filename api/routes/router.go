package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hotelier-app/hotelier-backend/api/controllers"
	"github.com/hotelier-app/hotelier-backend/api/middleware"
	"github.com/hotelier-app/hotelier-backend/internal/auth"
	"github.com/hotelier-app/hotelier-backend/internal/bookings"
	"github.com/hotelier-app/hotelier-backend/internal/guests"
	"github.com/hotelier-app/hotelier-backend/internal/rooms"
	"github.com/hotelier-app/hotelier-backend/pkg/auth/session"
	"github.com/hotelier-app/hotelier-backend/pkg/config"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
	"github.com/hotelier-app/hotelier-backend/pkg/logger"
	"github.com/hotelier-app/hotelier-backend/pkg/metrics"
	"github.com/hotelier-app/hotelier-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              controllers.Pinger
	Redis           *redis.Client
	SessionManager  session.AccessSessionChecker
	AuthService     auth.Service
	RegisterService auth.RegisterService
	BookingService  bookings.Service
	RoomService     *rooms.Service
	GuestService    *guests.Service
	HTTPMetrics     *metrics.HTTPMetrics
	PromRegistry    *prometheus.Registry
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(params.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	requireAuth := middleware.Auth(cfg.JWT, params.SessionManager, logg)
	requireAdmin := middleware.RequireRole(string(enums.AccountRoleAdmin), logg)

	readyDeps := map[string]controllers.Pinger{}
	if params.DB != nil {
		readyDeps["postgres"] = params.DB
	}
	if params.Redis != nil {
		readyDeps["redis"] = params.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readyDeps))
	})

	if params.PromRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.PromRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, params.Redis, logg)).Post("/login", controllers.AuthLogin(params.AuthService, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, params.Redis, logg)).Post("/register", controllers.AuthRegister(params.RegisterService, logg))
			r.Post("/refresh", controllers.AuthRefresh(params.AuthService, logg))
			r.With(requireAuth).Post("/logout", controllers.AuthLogout(params.AuthService, logg))
			r.With(requireAuth).Get("/me", controllers.AuthMe(params.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/bookings", controllers.CreateBooking(params.BookingService, logg))

			r.Route("/rooms", func(r chi.Router) {
				r.With(requireAdmin).Post("/", controllers.SetRoom(params.RoomService, logg))
				r.Get("/bookings", controllers.ListRoomBookings(params.RoomService, logg))
			})

			r.Route("/users", func(r chi.Router) {
				r.With(requireAdmin).Post("/", controllers.SetUser(params.GuestService, logg))
				r.Get("/", controllers.ListUsers(params.GuestService, logg))
			})
		})
	})

	return r
}

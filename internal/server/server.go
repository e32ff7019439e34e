package server

import (
	"net/http"
	"time"

	logger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"airsense/internal/handlers"
	"airsense/internal/handlers/airquality"
	"airsense/internal/handlers/auth"
	"airsense/internal/handlers/user"
	"airsense/internal/middleware"
	"airsense/internal/store"
)

type Server struct {
	Addr      string
	Store     store.Store
	JWTSecret string
	TokenTTL  time.Duration
	Log       *logrus.Logger
}

func NewServer(addr string, st store.Store, jwtSecret string, tokenTTL time.Duration, log *logrus.Logger) *Server {
	return &Server{
		Addr:      addr,
		Store:     st,
		JWTSecret: jwtSecret,
		TokenTTL:  tokenTTL,
		Log:       log,
	}
}

func HandlerFunc(h http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r)
	}
}

// Router assembles the full route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(logger.Logger("router", s.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", HandlerFunc(&auth.SignupHandler{
				Store:     s.Store,
				JWTSecret: s.JWTSecret,
				TokenTTL:  s.TokenTTL,
				Log:       s.Log,
			}))
			r.Post("/login", HandlerFunc(&auth.LoginHandler{
				Store:     s.Store,
				JWTSecret: s.JWTSecret,
				TokenTTL:  s.TokenTTL,
				Log:       s.Log,
			}))

			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthJWT(s.JWTSecret))
				r.Get("/me", HandlerFunc(&user.MeHandler{Store: s.Store}))
			})
		})

		r.Route("/user", func(r chi.Router) {
			r.Use(middleware.AuthJWT(s.JWTSecret))
			r.Put("/profile", HandlerFunc(&user.ProfileHandler{Store: s.Store}))
			r.Delete("/account", HandlerFunc(&user.DeleteHandler{Store: s.Store}))
		})

		r.Route("/airquality", func(r chi.Router) {
			r.Get("/current", HandlerFunc(&airquality.CurrentHandler{}))
			r.Get("/forecast", HandlerFunc(&airquality.ForecastHandler{}))
			r.Get("/map", HandlerFunc(&airquality.MapHandler{}))
			r.Get("/alerts", HandlerFunc(&airquality.AlertsHandler{}))
		})
	})

	r.Get("/ws/live", HandlerFunc(&handlers.LiveHandler{JWTSecret: s.JWTSecret}))

	return r
}

func (s *Server) Run() error {
	s.Log.WithField("addr", s.Addr).Info("server running")
	return http.ListenAndServe(s.Addr, s.Router())
}

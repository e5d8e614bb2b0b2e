package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/example/bookshop/internal/api/middleware"
	"github.com/example/bookshop/internal/auth"
)

type RouterConfig struct {
	Handlers     *Handlers
	AuthHandlers *AuthHandlers
	JWTService   *auth.JWTService
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(withLogging)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Store
	r.Post("/search", cfg.Handlers.Search)
	r.Get("/books", cfg.Handlers.GetBooks)
	r.Get("/inventory", cfg.Handlers.GetInventory)

	// Cart
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cfg.Handlers.GetCart)
		r.Delete("/", cfg.Handlers.ClearCart)
		r.Post("/items", cfg.Handlers.AddToCart)
		r.Delete("/items/{bookID}", cfg.Handlers.RemoveFromCart)
		r.Post("/items/{bookID}/increase", cfg.Handlers.IncreaseQuantity)
		r.Post("/items/{bookID}/decrease", cfg.Handlers.DecreaseQuantity)
	})

	r.Post("/checkout", cfg.Handlers.Checkout)

	// Notifications
	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", cfg.Handlers.GetNotifications)
		r.Delete("/", cfg.Handlers.ClearNotifications)
		r.Post("/read-all", cfg.Handlers.MarkAllNotificationsRead)
		r.Post("/{id}/read", cfg.Handlers.MarkNotificationRead)
		r.Delete("/{id}", cfg.Handlers.DismissNotification)
	})

	// Screen navigation
	r.Get("/screen", cfg.Handlers.GetScreen)
	r.Post("/screen", cfg.Handlers.Navigate)

	// Admin
	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", cfg.AuthHandlers.Login)
		r.Post("/logout", cfg.AuthHandlers.Logout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTService))
			r.Use(middleware.RequireRole(auth.RoleAdmin))
			r.Get("/sales", cfg.Handlers.GetSales)
			r.Get("/sales/summary", cfg.Handlers.GetSalesSummary)
			r.Get("/cart-activity", cfg.Handlers.GetCartActivity)
		})
	})

	return r
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Info("request")
	})
}

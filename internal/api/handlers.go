package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/example/bookshop/internal/notification"
	"github.com/example/bookshop/internal/query"
	"github.com/example/bookshop/internal/storefront"
)

type Handlers struct {
	controller   *storefront.Controller
	center       *notification.Center
	queryHandler *query.Handler
}

func NewHandlers(controller *storefront.Controller, center *notification.Center, queryHandler *query.Handler) *Handlers {
	return &Handlers{
		controller:   controller,
		center:       center,
		queryHandler: queryHandler,
	}
}

// Search Handlers

func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Prompt == "" {
		http.Error(w, "prompt is required", http.StatusBadRequest)
		return
	}

	// Blocks until the stream completes; failure degrades to the
	// fallback catalog rather than an error response.
	h.controller.Search(r.Context(), req.Prompt)

	respondJSON(w, http.StatusOK, map[string]any{
		"books":     h.controller.Displayed(),
		"searching": h.controller.Searching(),
	})
}

func (h *Handlers) GetBooks(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"books":     h.controller.Displayed(),
		"searching": h.controller.Searching(),
	})
}

func (h *Handlers) GetInventory(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.controller.Inventory())
}

// Cart Handlers

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"lines":            h.controller.CartLines(),
		"total_item_count": h.controller.TotalItemCount(),
	})
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookID string `json:"book_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.controller.AddToCart(r.Context(), req.BookID) {
		http.Error(w, "book not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	h.controller.RemoveFromCart(r.Context(), chi.URLParam(r, "bookID"))
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.controller.IncreaseQuantity(r.Context(), chi.URLParam(r, "bookID"))
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.controller.DecreaseQuantity(r.Context(), chi.URLParam(r, "bookID"))
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.controller.ClearCart(r.Context())
	w.WriteHeader(http.StatusOK)
}

// Checkout Handler

func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request) {
	records := h.controller.Checkout(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{
		"records": records,
		"units":   len(records),
	})
}

// Notification Handlers

func (h *Handlers) GetNotifications(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"notifications": h.center.All(),
		"unread":        h.center.UnreadCount(),
	})
}

func (h *Handlers) DismissNotification(w http.ResponseWriter, r *http.Request) {
	h.center.Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	h.center.MarkRead(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	h.center.MarkAllRead()
	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) ClearNotifications(w http.ResponseWriter, r *http.Request) {
	h.center.ClearAll()
	w.WriteHeader(http.StatusOK)
}

// Screen Handlers

func (h *Handlers) GetScreen(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"screen": string(h.controller.CurrentScreen())})
}

func (h *Handlers) Navigate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Screen string `json:"screen"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	screen := storefront.Screen(req.Screen)
	if !screen.Valid() {
		http.Error(w, "unknown screen", http.StatusBadRequest)
		return
	}
	h.controller.Navigate(screen)
	w.WriteHeader(http.StatusOK)
}

// Admin Handlers

func (h *Handlers) GetSales(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.controller.Sales())
}

func (h *Handlers) GetSalesSummary(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"books":       h.queryHandler.BookSales(),
		"total_units": h.queryHandler.TotalUnitsSold(),
	})
}

func (h *Handlers) GetCartActivity(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queryHandler.CartActivity())
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

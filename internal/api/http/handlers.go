package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"foodhub/internal/domain"
	"foodhub/internal/service"
)

// Handler exposes the service layer over HTTP. Taxonomy errors are
// reported as 200 responses carrying a human-readable message field,
// the convention this API has always used; only unexpected failures
// become 5xx.
type Handler struct {
	Menu   service.MenuServiceInterface
	Orders service.OrderServiceInterface
	Chat   service.ChatServiceInterface
	Hub    *service.Notifier
	QR     service.QRGenerator
}

func NewHandler(menu service.MenuServiceInterface, orders service.OrderServiceInterface, chat service.ChatServiceInterface, hub *service.Notifier, qr service.QRGenerator) *Handler {
	return &Handler{Menu: menu, Orders: orders, Chat: chat, Hub: hub, QR: qr}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/menu", h.getMenu).Methods("GET")
	r.HandleFunc("/add_dish", h.addDish).Methods("POST")
	r.HandleFunc("/remove_dish/{dishId}", h.removeDish).Methods("DELETE")
	r.HandleFunc("/new_order", h.newOrder).Methods("POST")
	r.HandleFunc("/update_order_status/{orderId}", h.updateOrderStatus).Methods("PATCH")
	r.HandleFunc("/review_orders", h.reviewOrders).Methods("GET")
	r.HandleFunc("/update_rating_review/{dishId}", h.updateRatingReview).Methods("PATCH")
	r.HandleFunc("/update_availability/{dishId}", h.updateAvailability).Methods("PATCH")
	r.HandleFunc("/chatbot", h.chatbot).Methods("POST")
	r.HandleFunc("/events", h.events).Methods("GET")
	r.HandleFunc("/order_qrcode/{orderId}", h.orderQRCode).Methods("GET")
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(body)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, map[string]string{"message": message})
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"status":    "healthy",
		"service":   "foodhub",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	dishes, err := h.Menu.ListDishes(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, dishes)
}

func (h *Handler) addDish(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DishName     *string  `json:"dish_name"`
		Price        *float64 `json:"price"`
		Availability bool     `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.DishName == nil || body.Price == nil {
		writeMessage(w, "Dish name and price are required!")
		return
	}

	dish, err := h.Menu.AddDish(r.Context(), *body.DishName, *body.Price, body.Availability)
	if errors.Is(err, domain.ErrValidation) {
		writeMessage(w, "Dish name and price are required!")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message": "Dish added successfully!",
		"dish":    dish,
	})
}

func (h *Handler) removeDish(w http.ResponseWriter, r *http.Request) {
	dishID := mux.Vars(r)["dishId"]
	if err := h.Menu.RemoveDish(r.Context(), dishID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeMessage(w, "Dish removed successfully!")
}

func (h *Handler) newOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CustomerName string   `json:"customer_name"`
		DishIDs      []string `json:"dish_ids"`
		Quantity     int      `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.PlaceOrder(r.Context(), body.CustomerName, body.DishIDs, body.Quantity)
	if errors.Is(err, domain.ErrInvalidDish) {
		writeMessage(w, "Invalid dish ID or dish not available!")
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]interface{}{
		"message":  "Order placed successfully!",
		"order_id": order.OrderID,
	})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err := h.Orders.UpdateStatus(r.Context(), orderID, body.Status)
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeMessage(w, "Invalid status!")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, "Order not found!")
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		writeMessage(w, "Order status updated successfully!")
	}
}

func (h *Handler) reviewOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, orders)
}

func (h *Handler) updateRatingReview(w http.ResponseWriter, r *http.Request) {
	dishID := mux.Vars(r)["dishId"]

	var body struct {
		Rating  *float64 `json:"rating"`
		Reviews *string  `json:"reviews"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Rating == nil || body.Reviews == nil {
		writeMessage(w, "Invalid rating or review!")
		return
	}

	_, err := h.Menu.AddRatingReview(r.Context(), dishID, *body.Rating, *body.Reviews)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, "Dish not found!")
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		writeMessage(w, "Rating and review updated successfully!")
	}
}

func (h *Handler) updateAvailability(w http.ResponseWriter, r *http.Request) {
	dishID := mux.Vars(r)["dishId"]

	var body struct {
		Availability *bool `json:"availability"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Availability == nil {
		writeMessage(w, "Availability is required!")
		return
	}

	dish, err := h.Menu.UpdateAvailability(r.Context(), dishID, *body.Availability)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, "Dish not found!")
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		writeJSON(w, map[string]interface{}{
			"message": "Availability updated successfully!",
			"dish":    dish,
		})
	}
}

func (h *Handler) chatbot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message *string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if body.Message == nil {
		writeMessage(w, "Message is required!")
		return
	}

	writeJSON(w, map[string]string{
		"response": h.Chat.Reply(r.Context(), *body.Message),
	})
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	if _, err := h.Orders.GetOrder(r.Context(), orderID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Order not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	png, err := h.QR.Generate(orderID)
	if err != nil {
		log.Printf("[api] failed to generate QR for order %s: %v", orderID, err)
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}

package domain

// Dish is a menu item. Ratings and Reviews grow in lock-step: the
// entry at index i of both slices belongs to the same submission.
type Dish struct {
	DishID       string    `json:"dish_id" bson:"dish_id"`
	DishName     string    `json:"dish_name" bson:"dish_name"`
	Price        float64   `json:"price" bson:"price"`
	Availability bool      `json:"availability" bson:"availability"`
	Ratings      []float64 `json:"rating" bson:"rating"`
	Reviews      []string  `json:"reviews" bson:"reviews"`
}

// Order is a customer request for one or more dishes. DishIDs may
// contain duplicates; each occurrence counts as a separate unit.
// Quantity is a single scalar applied to the whole order.
type Order struct {
	OrderID      string    `json:"order_id" bson:"order_id"`
	CustomerName string    `json:"customer_name" bson:"customer_name"`
	DishIDs      []string  `json:"dish_ids" bson:"dish_ids"`
	Quantity     int       `json:"quantity" bson:"quantity"`
	Status       string    `json:"status" bson:"status"`
	Ratings      []float64 `json:"rating" bson:"rating"`
	Reviews      []string  `json:"reviews" bson:"reviews"`
}

// StatusReceived is the only enforced order status; everything after
// it is caller-supplied unless strict status checking is enabled.
const StatusReceived = "received"

// KnownStatuses is the closed set used when strict status checking is
// turned on.
var KnownStatuses = map[string]bool{
	"received":         true,
	"preparing":        true,
	"out_for_delivery": true,
	"delivered":        true,
	"cancelled":        true,
}

// OrderEvent is pushed to connected clients whenever an order is
// created or its status changes.
type OrderEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

package services

import "pasar/internal/models"

// ProcessPaymentPlaceholder is the extension point for a future payment
// gateway integration. It runs after an order has committed and intentionally
// does nothing yet.
func ProcessPaymentPlaceholder(order *models.Order) {
}

package payment

type CheckoutRequest struct {
	BookingID int64 `json:"booking_id" binding:"required"`
}

type CheckoutResponse struct {
	SessionRef  string  `json:"session_ref"`
	CheckoutURL string  `json:"checkout_url"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

// ProviderResult is the callback body posted by the payment processor.
type ProviderResult struct {
	SessionRef string `json:"session_ref" binding:"required"`
	Status     string `json:"status" binding:"required"`
	Reason     string `json:"reason"`
}

package models

// HandoffPayload carries the gateway redirect material produced once per
// successful online hold. Opaque to everything but the auto-submit form.
type HandoffPayload struct {
	SPURL      string `json:"spURL"`
	EncData    string `json:"encData"`
	ClientCode string `json:"clientCode"`
	BookingID  string `json:"bookingId"`
}

// PaymentRequest is the input to payment initiation for a hold.
type PaymentRequest struct {
	BookingID     string  `json:"bookingId"`
	Amount        float64 `json:"amount"`
	ContactNumber string  `json:"contactNumber"`
}

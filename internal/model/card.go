package model

import "github.com/google/uuid"

// CardForm holds the raw values of a card entry form, mutated
// field-by-field as the user types.
type CardForm struct {
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVC            string `json:"cvc"`
	CardholderName string `json:"cardholderName"`
	Country        string `json:"country"`
}

// FieldValidation is the derived validation state of a single form field.
// While Touched is false no error is surfaced, even if the field is invalid.
type FieldValidation struct {
	Valid   bool   `json:"valid"`
	Error   string `json:"error,omitempty"`
	Touched bool   `json:"touched"`
}

// PaymentRequest is the payload handed to the payment gateway.
type PaymentRequest struct {
	Amount         float64 `json:"amount"`
	Currency       string  `json:"currency"`
	CardNumber     string  `json:"cardNumber"`
	CardholderName string  `json:"cardholderName"`
	Country        string  `json:"country"`
}

// PaymentResult is the gateway's answer to a single submission.
type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CheckoutRequest is the request payload for a checkout submission.
type CheckoutRequest struct {
	CartID uuid.UUID `json:"cartId"`
	Card   CardForm  `json:"card"`
}

// CheckoutResponse reports the outcome of a checkout submission.
// Fields is populated only when field validation failed; in that case
// no payment was attempted.
type CheckoutResponse struct {
	Status        string                     `json:"status"`
	OrderID       *uuid.UUID                 `json:"orderId,omitempty"`
	TransactionID string                     `json:"transactionId,omitempty"`
	Message       string                     `json:"message,omitempty"`
	Fields        map[string]FieldValidation `json:"fields,omitempty"`
	Subtotal      float64                    `json:"subtotal,omitempty"`
}

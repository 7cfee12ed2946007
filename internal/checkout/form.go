// Package checkout drives a single card-entry form through its
// submission lifecycle: idle while the user edits, validating on
// submit, then either submitting through the payment gateway or
// failing with per-field errors. One Form instance owns one form's
// state for its lifetime.
package checkout

import (
	"context"
	"time"

	"shopfront/internal/card"
	"shopfront/internal/model"
	"shopfront/internal/payment"

	"github.com/rs/zerolog"
)

// Status is the form's position in the submission state machine.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusValidating Status = "validating"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Field names a card form field.
type Field string

const (
	FieldCardNumber Field = "cardNumber"
	FieldExpiryDate Field = "expiryDate"
	FieldCVC        Field = "cvc"
	FieldName       Field = "cardholderName"
	FieldCountry    Field = "country"
)

var allFields = []Field{FieldCardNumber, FieldExpiryDate, FieldCVC, FieldName, FieldCountry}

// invalidFieldsMessage is the form-level message when submit finds
// invalid fields; the per-field errors carry the detail.
const invalidFieldsMessage = "Please correct the highlighted fields"

// gatewayErrorMessage is shown when the gateway itself errors rather
// than returning a decline. The raw error is logged, not surfaced.
const gatewayErrorMessage = "Payment could not be processed. Please try again."

// Form owns the state of one card-entry form: raw field values,
// per-field touched flags, and the submission status. It is not safe
// for concurrent use; each form belongs to a single submission flow.
type Form struct {
	values        model.CardForm
	touched       map[Field]bool
	status        Status
	message       string
	transactionID string
	gateway       payment.Gateway
	logger        zerolog.Logger
	now           func() time.Time
}

// NewForm creates an idle form bound to the given payment gateway.
func NewForm(gateway payment.Gateway, logger zerolog.Logger) *Form {
	return &Form{
		touched: make(map[Field]bool),
		status:  StatusIdle,
		gateway: gateway,
		logger:  logger.With().Str("component", "checkout-form").Logger(),
		now:     time.Now,
	}
}

// SetField records a keystroke-level edit. Number, expiry and CVC
// values are formatted for display as they are typed; editing returns
// the form to idle.
func (f *Form) SetField(field Field, raw string) {
	switch field {
	case FieldCardNumber:
		f.values.CardNumber = card.FormatNumber(raw)
	case FieldExpiryDate:
		f.values.ExpiryDate = card.FormatExpiry(raw)
	case FieldCVC:
		maxLen := card.CVCLength(card.Detect(f.values.CardNumber))
		f.values.CVC = card.FormatCVC(raw, maxLen)
	case FieldName:
		f.values.CardholderName = raw
	case FieldCountry:
		f.values.Country = raw
	}

	if f.status != StatusSubmitting {
		f.status = StatusIdle
		f.message = ""
	}
}

// SetValues applies a whole form payload at once, formatting each
// field the same way SetField does.
func (f *Form) SetValues(values model.CardForm) {
	f.SetField(FieldCardNumber, values.CardNumber)
	f.SetField(FieldExpiryDate, values.ExpiryDate)
	f.SetField(FieldCVC, values.CVC)
	f.SetField(FieldName, values.CardholderName)
	f.SetField(FieldCountry, values.Country)
}

// Blur marks a field as touched, which lets its validation error
// surface from then on.
func (f *Form) Blur(field Field) {
	f.touched[field] = true
}

// Values returns the current (formatted) field values.
func (f *Form) Values() model.CardForm {
	return f.values
}

// Status returns the form's submission status.
func (f *Form) Status() Status {
	return f.status
}

// Message returns the current form-level message, if any.
func (f *Form) Message() string {
	return f.message
}

// TransactionID returns the gateway transaction id of the last
// successful submission.
func (f *Form) TransactionID() string {
	return f.transactionID
}

// Validations computes the validation state of every field. Errors on
// untouched fields are suppressed so they are never surfaced before
// the user has visited the field or pressed submit.
func (f *Form) Validations() map[Field]model.FieldValidation {
	result := make(map[Field]model.FieldValidation, len(allFields))
	for _, field := range allFields {
		v := f.validateField(field)
		fv := model.FieldValidation{
			Valid:   v.Valid,
			Touched: f.touched[field],
		}
		if fv.Touched {
			fv.Error = v.Error
		}
		result[field] = fv
	}
	return result
}

// Submit runs the full submission flow: every field is force-validated
// and marked touched so all errors surface at once; only a fully valid
// form reaches the gateway. A gateway decline or error leaves the
// field values intact for resubmission; success resets the form.
func (f *Form) Submit(ctx context.Context, amount float64, currency string) Status {
	f.status = StatusValidating

	allValid := true
	for _, field := range allFields {
		f.touched[field] = true
		if !f.validateField(field).Valid {
			allValid = false
		}
	}

	if !allValid {
		f.status = StatusFailed
		f.message = invalidFieldsMessage
		f.logger.Debug().Msg("submission blocked by field validation")
		return f.status
	}

	f.status = StatusSubmitting

	req := model.PaymentRequest{
		Amount:         amount,
		Currency:       currency,
		CardNumber:     card.StripDigits(f.values.CardNumber),
		CardholderName: f.values.CardholderName,
		Country:        f.values.Country,
	}

	result, err := f.gateway.Submit(ctx, req)
	if err != nil {
		f.status = StatusFailed
		f.message = gatewayErrorMessage
		f.logger.Error().Err(err).Msg("payment gateway error")
		return f.status
	}

	if !result.Success {
		f.status = StatusFailed
		f.message = result.Error
		if f.message == "" {
			f.message = "Payment was declined"
		}
		f.logger.Info().Str("reason", f.message).Msg("payment declined")
		return f.status
	}

	f.transactionID = result.TransactionID
	f.Reset()
	f.status = StatusSucceeded
	f.logger.Info().Str("transaction_id", f.transactionID).Msg("payment succeeded")
	return f.status
}

// Reset clears all field values and touched state and returns the form
// to idle, as happens after a successful submission.
func (f *Form) Reset() {
	f.values = model.CardForm{}
	f.touched = make(map[Field]bool)
	f.status = StatusIdle
	f.message = ""
}

func (f *Form) validateField(field Field) card.Validation {
	switch field {
	case FieldCardNumber:
		return card.ValidateNumber(f.values.CardNumber)
	case FieldExpiryDate:
		return card.ValidateExpiry(f.values.ExpiryDate, f.now())
	case FieldCVC:
		brand := card.Detect(f.values.CardNumber)
		return card.ValidateCVC(f.values.CVC, brand)
	case FieldName:
		return card.ValidateName(f.values.CardholderName)
	case FieldCountry:
		return card.ValidateCountry(f.values.Country)
	default:
		return card.Validation{Valid: true}
	}
}

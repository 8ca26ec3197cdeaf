package swish

// PaymentParams are the caller-supplied inputs for creating a payment
// request. Optional fields left empty are omitted from the serialized JSON
// entirely; the provider treats an explicit null differently from an absent
// key. PayeeAlias is always overwritten with the configured merchant number
// before the request is sent.
type PaymentParams struct {
	PayeePaymentReference string  `json:"payeePaymentReference,omitempty"`
	PayerAlias            string  `json:"payerAlias,omitempty"`
	PayeeAlias            string  `json:"payeeAlias"`
	Amount                float64 `json:"amount"`
	Message               string  `json:"message,omitempty"`
	CallbackURL           string  `json:"callbackUrl"`
}

// RefundParams are the caller-supplied inputs for creating a refund.
// PayerAlias is always overwritten with the configured merchant number
// before the request is sent.
type RefundParams struct {
	PayerPaymentReference    string  `json:"payerPaymentReference,omitempty"`
	OriginalPaymentReference string  `json:"originalPaymentReference"`
	PaymentReference         string  `json:"paymentReference,omitempty"`
	PayerAlias               string  `json:"payerAlias"`
	PayeeAlias               string  `json:"payeeAlias"`
	Amount                   float64 `json:"amount"`
	Message                  string  `json:"message,omitempty"`
	CallbackURL              string  `json:"callbackUrl"`
}

// Wire shapes for the creation endpoints. Currency is fixed by the client,
// not caller-controlled.
type paymentRequest struct {
	PaymentParams
	Currency Currency `json:"currency"`
}

type refundRequest struct {
	RefundParams
	Currency Currency `json:"currency"`
}

package swish

import (
	"encoding/json"
	"fmt"
)

// Status is the lifecycle state the Swish API reports for a payment or
// refund. The client does not model transitions; it reports whatever the
// provider currently says.
type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusPaid      Status = "PAID"
	StatusError     Status = "ERROR"
	StatusValidated Status = "VALIDATED"
	StatusInitiated Status = "INITIATED"
)

func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch Status(raw) {
	case StatusCreated, StatusPaid, StatusError, StatusValidated, StatusInitiated:
		*s = Status(raw)
		return nil
	}
	return fmt.Errorf("unknown status %q", raw)
}

// Currency is the currency of an amount. SEK is the only currency Swish
// supports; anything else is rejected at decode time.
type Currency string

const CurrencySEK Currency = "SEK"

func (c *Currency) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if Currency(raw) != CurrencySEK {
		return fmt.Errorf("unsupported currency %q", raw)
	}
	*c = CurrencySEK
	return nil
}

// Payment is the provider's view of a payment request at fetch time.
type Payment struct {
	ID                    string   `json:"id"`
	Amount                float64  `json:"amount"`
	PayeePaymentReference string   `json:"payeePaymentReference,omitempty"`
	PaymentReference      string   `json:"paymentReference,omitempty"`
	PayerAlias            string   `json:"payerAlias,omitempty"`
	PayeeAlias            string   `json:"payeeAlias,omitempty"`
	Message               string   `json:"message,omitempty"`
	Status                Status   `json:"status,omitempty"`
	DateCreated           string   `json:"dateCreated"`
	Currency              Currency `json:"currency"`
	DatePaid              string   `json:"datePaid,omitempty"`
	ErrorCode             string   `json:"errorCode,omitempty"`
	ErrorMessage          string   `json:"errorMessage,omitempty"`
}

// Refund is the provider's view of a refund at fetch time. The lowercase
// "originalpaymentReference" key is how the provider actually spells it.
type Refund struct {
	ID                       string   `json:"id"`
	Amount                   float64  `json:"amount"`
	PayerPaymentReference    string   `json:"payerPaymentReference,omitempty"`
	OriginalPaymentReference string   `json:"originalpaymentReference,omitempty"`
	PayerAlias               string   `json:"payerAlias,omitempty"`
	PayeeAlias               string   `json:"payeeAlias,omitempty"`
	Message                  string   `json:"message,omitempty"`
	Status                   Status   `json:"status,omitempty"`
	DateCreated              string   `json:"dateCreated"`
	Currency                 Currency `json:"currency"`
	DatePaid                 string   `json:"datePaid,omitempty"`
	ErrorCode                string   `json:"errorCode,omitempty"`
	ErrorMessage             string   `json:"errorMessage,omitempty"`
	AdditionalInformation    string   `json:"additionalInformation,omitempty"`
}

// CreatedPayment is the receipt for a successful payment creation. The
// creation endpoint answers with an empty body; the identity lives in the
// Location and PaymentRequestToken response headers.
type CreatedPayment struct {
	ID           string `json:"id"`
	Location     string `json:"location"`
	RequestToken string `json:"requestToken,omitempty"`
}

// CreatedRefund is the receipt for a successful refund creation. Refund
// creation never returns a request token.
type CreatedRefund struct {
	ID       string `json:"id"`
	Location string `json:"location"`
}

package swish

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestPaymentRequest_OmitsAbsentFields(t *testing.T) {
	req := paymentRequest{
		PaymentParams: PaymentParams{
			PayeeAlias:  "1231181189",
			Amount:      100,
			CallbackURL: "https://example.com/api/swishcb/paymentrequests",
		},
		Currency: CurrencySEK,
	}

	m := marshalToMap(t, req)

	// Exactly the required keys plus the fields that carry a value.
	assert.ElementsMatch(t,
		[]string{"payeeAlias", "amount", "currency", "callbackUrl"},
		keysOf(m),
	)
	assert.Equal(t, "SEK", m["currency"])
	assert.Equal(t, 100.0, m["amount"])
}

func TestPaymentRequest_CarriesPresentFields(t *testing.T) {
	req := paymentRequest{
		PaymentParams: PaymentParams{
			PayeePaymentReference: "0123456789",
			PayerAlias:            "46712345678",
			PayeeAlias:            "1231181189",
			Amount:                100,
			Message:               "Kingston USB Flash Drive 8 GB",
			CallbackURL:           "https://example.com/api/swishcb/paymentrequests",
		},
		Currency: CurrencySEK,
	}

	m := marshalToMap(t, req)

	assert.ElementsMatch(t,
		[]string{"payeePaymentReference", "payerAlias", "payeeAlias", "amount", "currency", "message", "callbackUrl"},
		keysOf(m),
	)
	assert.Equal(t, "0123456789", m["payeePaymentReference"])
	assert.Equal(t, "46712345678", m["payerAlias"])
	assert.Equal(t, "Kingston USB Flash Drive 8 GB", m["message"])
}

func TestRefundRequest_OmitsAbsentFields(t *testing.T) {
	req := refundRequest{
		RefundParams: RefundParams{
			OriginalPaymentReference: "ABC123",
			PayerAlias:               "1231181189",
			PayeeAlias:               "46712345678",
			Amount:                   100,
			CallbackURL:              "https://example.com/api/swishcb/refunds",
		},
		Currency: CurrencySEK,
	}

	m := marshalToMap(t, req)

	assert.ElementsMatch(t,
		[]string{"originalPaymentReference", "payerAlias", "payeeAlias", "amount", "currency", "callbackUrl"},
		keysOf(m),
	)
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

package swish

import (
	"net/http"
	"strings"
)

// Custom header returned by the Swish API on payment creation. Header
// lookups are case-insensitive, so the provider's all-lowercase spelling
// matches too.
const paymentRequestTokenHeader = "PaymentRequestToken"

// extractLocation reads the created-resource location and the optional
// request token out of a creation response's headers. An empty location
// means the creation result cannot be assembled; an empty token is fine,
// only payment creation ever returns one.
func extractLocation(header http.Header) (location, requestToken string) {
	return header.Get("Location"), header.Get(paymentRequestTokenHeader)
}

// idFromLocation treats the final /-delimited segment of a location value as
// the resource identifier. A location with no separator is its own
// identifier.
func idFromLocation(location string) string {
	parts := strings.Split(location, "/")
	return parts[len(parts)-1]
}

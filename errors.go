package swish

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode is one of the documented Swish API error codes.
type ErrorCode string

const (
	ErrorCodeFF08   ErrorCode = "FF08"   // payeePaymentReference is invalid
	ErrorCodeRP03   ErrorCode = "RP03"   // callback URL is missing or does not use https
	ErrorCodeBE18   ErrorCode = "BE18"   // payer alias is invalid
	ErrorCodeRP01   ErrorCode = "RP01"   // payee alias is missing or empty
	ErrorCodePA02   ErrorCode = "PA02"   // amount value is missing or not a valid number
	ErrorCodeAM06   ErrorCode = "AM06"   // amount value is too low
	ErrorCodeAM02   ErrorCode = "AM02"   // amount value is too large
	ErrorCodeAM03   ErrorCode = "AM03"   // invalid or missing currency
	ErrorCodeRP02   ErrorCode = "RP02"   // wrong formatted message
	ErrorCodeRP06   ErrorCode = "RP06"   // another active payment request already exists for this payerAlias
	ErrorCodeACMT03 ErrorCode = "ACMT03" // payer not enrolled
	ErrorCodeACMT01 ErrorCode = "ACMT01" // counterpart is not activated
	ErrorCodeACMT07 ErrorCode = "ACMT07" // payee not enrolled
	ErrorCodePA01   ErrorCode = "PA01"   // parameter is not correct
	ErrorCodeRF02   ErrorCode = "RF02"   // original payment not found or more than 13 months old
)

var knownErrorCodes = map[ErrorCode]bool{
	ErrorCodeFF08: true, ErrorCodeRP03: true, ErrorCodeBE18: true,
	ErrorCodeRP01: true, ErrorCodePA02: true, ErrorCodeAM06: true,
	ErrorCodeAM02: true, ErrorCodeAM03: true, ErrorCodeRP02: true,
	ErrorCodeRP06: true, ErrorCodeACMT03: true, ErrorCodeACMT01: true,
	ErrorCodeACMT07: true, ErrorCodePA01: true, ErrorCodeRF02: true,
}

func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if !knownErrorCodes[ErrorCode(raw)] {
		return fmt.Errorf("unknown error code %q", raw)
	}
	*c = ErrorCode(raw)
	return nil
}

// RequestError is one normalized error from the Swish API. HTTPStatus is
// stamped from the exchange; the provider's own JSON never carries it. Code
// and AdditionalInformation are empty when the provider sent none.
type RequestError struct {
	HTTPStatus            int
	Code                  ErrorCode
	Message               string
	AdditionalInformation string
}

func (e *RequestError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("swish error [%s]: %s (status: %d)", e.Code, e.Message, e.HTTPStatus)
	}
	return fmt.Sprintf("swish error: %s (status: %d)", e.Message, e.HTTPStatus)
}

// UnmarshalJSON decodes the provider's error shape. errorMessage is
// mandatory: an entry without it does not count as a decodable error, which
// is what lets the lenient array path drop malformed entries.
func (e *RequestError) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code                  *ErrorCode `json:"errorCode"`
		Message               *string    `json:"errorMessage"`
		AdditionalInformation *string    `json:"additionalInformation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Message == nil {
		return errors.New("errorMessage is missing")
	}
	e.Message = *raw.Message
	if raw.Code != nil {
		e.Code = *raw.Code
	}
	if raw.AdditionalInformation != nil {
		e.AdditionalInformation = *raw.AdditionalInformation
	}
	return nil
}

// RequestErrors is the collection the provider returns when a single call
// fails for several reasons. It may be empty after lenient decoding.
type RequestErrors []*RequestError

func (es RequestErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("swish errors: [%s]", strings.Join(msgs, ", "))
}

// ConfigError reports unusable configuration: bad certificate material,
// wrong passphrase, malformed base URL. Not retryable.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swish config: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("swish config: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ParseError reports a response the client could not make sense of, such as
// a 2xx creation response with no Location header.
type ParseError struct {
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("swish parse: %s", e.Message)
}

func IsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	ok := errors.As(err, &reqErr)
	return reqErr, ok
}

func IsRequestErrors(err error) (RequestErrors, bool) {
	var reqErrs RequestErrors
	ok := errors.As(err, &reqErrs)
	return reqErrs, ok
}

func IsConfigError(err error) (*ConfigError, bool) {
	var cfgErr *ConfigError
	ok := errors.As(err, &cfgErr)
	return cfgErr, ok
}

func IsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	ok := errors.As(err, &parseErr)
	return parseErr, ok
}

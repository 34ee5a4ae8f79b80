package tableside

import "fmt"

// Kind classifies an Error into one of the platform's failure categories.
type Kind int

const (
	// KindUnknown marks an error code this SDK version does not recognize.
	// The original code and message are preserved verbatim on the Error.
	KindUnknown Kind = iota
	// KindCommunication marks a transport failure after all retries. The
	// request may or may not have reached the server; callers must not
	// blindly resubmit non-idempotent operations.
	KindCommunication
	KindNoPermission
	KindInvalidData
	KindInternal
	KindNotFound
	KindTemporarilyUnavailable
	KindConflict
	KindAuthentication
	KindNotSecure
	KindDeprecated
	KindCannotSubmitOrder
	KindAddressNotInRange
	KindPaymentRejected
	KindPaymentExceedsLimit
	KindPaymentMethodUnavailable
	KindOutOfStock
	KindUnavailable
)

var kindNames = map[Kind]string{
	KindUnknown:                  "unknown",
	KindCommunication:            "communication",
	KindNoPermission:             "no_permission",
	KindInvalidData:              "invalid_data",
	KindInternal:                 "internal",
	KindNotFound:                 "not_found",
	KindTemporarilyUnavailable:   "temporarily_unavailable",
	KindConflict:                 "conflict",
	KindAuthentication:           "authentication",
	KindNotSecure:                "not_secure",
	KindDeprecated:               "deprecated",
	KindCannotSubmitOrder:        "cannot_submit_order",
	KindAddressNotInRange:        "address_not_in_range",
	KindPaymentRejected:          "payment_rejected",
	KindPaymentExceedsLimit:      "payment_exceeds_limit",
	KindPaymentMethodUnavailable: "payment_method_unavailable",
	KindOutOfStock:               "out_of_stock",
	KindUnavailable:              "unavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error codes returned by the platform inside failure envelopes. Codes are
// URL-shaped strings; the URL itself is the discriminant, it is never
// fetched.
const (
	ErrCodeInvalidData              = "https://www.tableside.dev/errors/invalid_data"
	ErrCodeNoPermission             = "https://www.tableside.dev/errors/no_permission"
	ErrCodeInternal                 = "https://www.tableside.dev/errors/internal"
	ErrCodeNotFound                 = "https://www.tableside.dev/errors/not_found"
	ErrCodeTemporarilyUnavailable   = "https://www.tableside.dev/errors/temporarily_unavailable"
	ErrCodeConflict                 = "https://www.tableside.dev/errors/conflict"
	ErrCodeAuthentication           = "https://www.tableside.dev/errors/authentication"
	ErrCodeNotSecure                = "https://www.tableside.dev/errors/not_secure"
	ErrCodeDeprecated               = "https://www.tableside.dev/errors/deprecated"
	ErrCodeCannotSubmitOrder        = "https://www.tableside.dev/errors/cannot_submit_order"
	ErrCodeAddressNotInRange        = "https://www.tableside.dev/errors/address_not_in_range"
	ErrCodePaymentRejected          = "https://www.tableside.dev/errors/cc_rejected"
	ErrCodePaymentExceedsLimit      = "https://www.tableside.dev/errors/payment_exceeds_limit"
	ErrCodePaymentMethodUnavailable = "https://www.tableside.dev/errors/payment_method_unavailable"
	ErrCodeOutOfStock               = "https://www.tableside.dev/errors/out_of_stock"
	ErrCodeUnavailable              = "https://www.tableside.dev/errors/unavailable"
)

var kindByCode = map[string]Kind{
	ErrCodeInvalidData:              KindInvalidData,
	ErrCodeNoPermission:             KindNoPermission,
	ErrCodeInternal:                 KindInternal,
	ErrCodeNotFound:                 KindNotFound,
	ErrCodeTemporarilyUnavailable:   KindTemporarilyUnavailable,
	ErrCodeConflict:                 KindConflict,
	ErrCodeAuthentication:           KindAuthentication,
	ErrCodeNotSecure:                KindNotSecure,
	ErrCodeDeprecated:               KindDeprecated,
	ErrCodeCannotSubmitOrder:        KindCannotSubmitOrder,
	ErrCodeAddressNotInRange:        KindAddressNotInRange,
	ErrCodePaymentRejected:          KindPaymentRejected,
	ErrCodePaymentExceedsLimit:      KindPaymentExceedsLimit,
	ErrCodePaymentMethodUnavailable: KindPaymentMethodUnavailable,
	ErrCodeOutOfStock:               KindOutOfStock,
	ErrCodeUnavailable:              KindUnavailable,
}

// Error is the single error type every SDK call returns on failure. Kind
// drives programmatic handling; Code and Message carry the server's words
// unchanged, including for codes this SDK does not know yet.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("tableside: %s: %s (%s)", e.Kind, e.Message, e.Code)
	case e.Message != "":
		return fmt.Sprintf("tableside: %s: %s", e.Kind, e.Message)
	default:
		return fmt.Sprintf("tableside: %s", e.Kind)
	}
}

// Unwrap exposes the underlying cause, if any. Communication errors wrap the
// final transport failure.
func (e *Error) Unwrap() error {
	return e.cause
}

// translateError maps a failure envelope to a typed Error. Unrecognized
// codes surface as KindUnknown with code and message intact rather than
// being forced into some default category; the server grows codes faster
// than clients update.
func translateError(code, message string) *Error {
	kind, ok := kindByCode[code]
	if !ok {
		kind = KindUnknown
	}
	return &Error{Kind: kind, Code: code, Message: message}
}

func communicationError(message string, cause error) *Error {
	return &Error{Kind: KindCommunication, Message: message, cause: cause}
}

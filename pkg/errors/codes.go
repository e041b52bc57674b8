package errors

import "net/http"

// ErrorCode identifies a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	CodeOK           ErrorCode = "OK"
	CodeUnknown      ErrorCode = "UNKNOWN"
	CodeInternal     ErrorCode = "INTERNAL"
	CodeInvalidParam ErrorCode = "INVALID_PARAM"
	CodeNotFound     ErrorCode = "NOT_FOUND"
	CodeUnavailable  ErrorCode = "UNAVAILABLE"
	CodeTimeout      ErrorCode = "TIMEOUT"
)

// Feed and scheme error codes.
const (
	// CodeFeedUnavailable means the data feed could not be loaded at all
	// (missing file, unreadable, invalid JSON). The render degrades to a
	// single "unable to load data" state.
	CodeFeedUnavailable ErrorCode = "FEED_UNAVAILABLE"

	// CodeFeedEmpty means the feed loaded successfully but contains zero
	// records. Distinct from CodeFeedUnavailable.
	CodeFeedEmpty ErrorCode = "FEED_EMPTY"

	// CodeSchemeNotFound means no record matched the requested row or
	// scheme-name parameter and the collection had nothing to fall back to.
	CodeSchemeNotFound ErrorCode = "SCHEME_NOT_FOUND"

	// CodeSheetError means the upstream sheet API rejected a sync request.
	CodeSheetError ErrorCode = "SHEET_ERROR"
)

// HTTPStatus maps an error code to the HTTP status used by the API layer.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeNotFound, CodeSchemeNotFound, CodeFeedEmpty:
		return http.StatusNotFound
	case CodeFeedUnavailable, CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

package status

// ErrorCode is a numeric code to classify API errors in a stable way
type ErrorCode int

// Reserved ranges by domain:
//   2000-2499: chat turn, client/validation errors
//   2500-2999: chat turn, upstream/internal errors
//   3000-3499: catalog

// Chat client/validation errors
const (
	ChatInvalidRequestBody ErrorCode = 2000 + iota // 2000
	ChatMissingLanguage                            // 2001
	ChatUnsupportedLevel                           // 2002
	ChatMissingMessages                            // 2003
)

// Chat upstream/internal errors
const (
	ChatTurnFailed ErrorCode = 2500 + iota // 2500
)

// Catalog errors
const (
	CatalogUnsupportedLevel ErrorCode = 3000 + iota // 3000
)

// Fallback code for unclassified internal failures
const (
	ErrorCodeInternal ErrorCode = 9000
)

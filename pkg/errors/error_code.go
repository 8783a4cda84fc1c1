package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidRequest       ErrorCode = 102
	ErrCodeInvalidEstimation    ErrorCode = 103
	ErrCodeInvalidInstruction   ErrorCode = 104
	ErrCodeMissingParameter     ErrorCode = 105

	// Market data errors (200-299)
	ErrCodeMarketDataUnavailable ErrorCode = 200
	ErrCodeMarketDataFetchFailed ErrorCode = 201
	ErrCodeRoundingUnavailable   ErrorCode = 202

	// Cache errors (300-399)
	ErrCodeCacheLoadFailed ErrorCode = 300

	// Execution errors (400-499)
	ErrCodeOrderCreateFailed ErrorCode = 400
	ErrCodeOrderCancelFailed ErrorCode = 401
	ErrCodeOrderNotFound     ErrorCode = 402

	// Reconciliation errors (500-599)
	ErrCodeReconcileFailed  ErrorCode = 500
	ErrCodeReconcileTimeout ErrorCode = 501

	// Journal errors (600-699)
	ErrCodeJournalInitFailed  ErrorCode = 600
	ErrCodeJournalWriteFailed ErrorCode = 601
	ErrCodeJournalQueryFailed ErrorCode = 602
)

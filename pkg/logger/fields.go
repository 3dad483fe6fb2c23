package logger

// Unified log field names, kept consistent across the project so log
// queries stay simple.
const (
	// FieldTraceID request trace id
	FieldTraceID = "traceId"

	// FieldCategory category name
	FieldCategory = "category"

	// FieldDate entry date key
	FieldDate = "date"

	// FieldAction operation type
	FieldAction = "action"

	// FieldToken snapshot version token
	FieldToken = "token"

	// FieldPath blob path key or file path
	FieldPath = "path"

	// FieldDuration elapsed time
	FieldDuration = "duration"

	// FieldMethod method name
	FieldMethod = "method"

	// FieldError error message
	FieldError = "error"

	// FieldStorage storage backend type
	FieldStorage = "storage"
)

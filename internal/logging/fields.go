package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldResource   = "resource"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldDate       = "date"
	FieldTeam       = "team"
	FieldCount      = "count"
	FieldDropped    = "dropped"
	FieldDurationMS = "duration_ms"
)

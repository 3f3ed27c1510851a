package logging

import "log/slog"

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRunID      = "run_id"
	FieldProvider   = "provider"
	FieldEndpoint   = "endpoint"
	FieldTeam       = "team"
	FieldSeason     = "season"
	FieldGameID     = "game_id"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldSkipped    = "skipped"
	FieldAttempt    = "attempt"
	FieldDurationMS = "duration_ms"
	FieldPath       = "path"
)

// WithCommon appends service/version fields when provided.
func WithCommon(attrs []slog.Attr, service, version string) []slog.Attr {
	if service != "" {
		attrs = append(attrs, slog.String(FieldService, service))
	}
	if version != "" {
		attrs = append(attrs, slog.String(FieldVersion, version))
	}
	return attrs
}

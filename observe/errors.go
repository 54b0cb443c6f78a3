package observe

import "errors"

// Config.Validate sentinels. Each wraps the offending value into its message
// at the call site; errors.Is matching works against these.
var (
	ErrMissingServiceName     = errors.New("observe: service name is required")
	ErrInvalidSamplePct       = errors.New("observe: sample percentage must be between 0.0 and 1.0")
	ErrInvalidTracingExporter = errors.New("observe: unknown tracing exporter")
	ErrInvalidMetricsExporter = errors.New("observe: unknown metrics exporter")
	ErrInvalidLogLevel        = errors.New("observe: unknown log level")
)

var (
	// ErrNilObserver is returned when middleware construction receives no Observer.
	ErrNilObserver = errors.New("observe: observer is nil")

	// ErrMissingWorkName is returned by WorkMeta.Validate when Name is empty.
	ErrMissingWorkName = errors.New("observe: work name is required")
)

// Sampling fraction bounds accepted by TracingConfig.SamplePct.
const (
	MinSamplePct = 0.0
	MaxSamplePct = 1.0
)

// The valid name sets for Config. The empty string is accepted everywhere:
// a subsystem left unconfigured validates cleanly as long as it is disabled.
var (
	ValidTracingExporters = []string{"otlp", "jaeger", "stdout", "none", ""}
	ValidMetricsExporters = []string{"otlp", "prometheus", "stdout", "none", ""}
	ValidLogLevels        = []string{"debug", "info", "warn", "error", ""}
)

// RedactedFields are the log field keys whose values are always replaced
// with a redaction marker. Work inputs are on the list because argument
// values are caller data the library has no business persisting in logs.
// LoggingConfig.Redact extends this set per observer.
var RedactedFields = []string{
	"input",
	"inputs",
	"password",
	"secret",
	"token",
	"api_key",
	"apiKey",
	"credential",
}

package fetcher

const (
	// Command
	FetchUse = "geturl <url>"

	// Flags
	LogLevel        = "log-level"
	DefaultLogLevel = "error"

	// Environment, e.g. GETURL_LOG_LEVEL
	EnvPrefix = "GETURL"

	// Operation result messages, written to standard error
	FetchFailed    = "----------FETCH FAILED----------"
	FetchSucceeded = "----------FETCH SUCCEEDED----------"
)

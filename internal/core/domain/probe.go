package domain

import "time"

// ProbeTimeout bounds a connectivity probe.
const ProbeTimeout = 10 * time.Second

// ProbeStatus is the outcome class of a connectivity probe.
type ProbeStatus string

const (
	// ProbeLoading is reported while a probe is in flight.
	ProbeLoading ProbeStatus = "loading"
	// ProbeSuccess means the URL answered.
	ProbeSuccess ProbeStatus = "success"
	// ProbeError means the URL was rejected or could not be reached.
	ProbeError ProbeStatus = "error"
	// ProbeWarning means the probe timed out; the URL may still work.
	ProbeWarning ProbeStatus = "warning"
)

// Operator-facing probe messages.
const (
	ProbeMsgTesting  = "Testing connection..."
	ProbeMsgSuccess  = "Connection successful!"
	ProbeMsgFailed   = "Connection failed. Please check the URL."
	ProbeMsgTimeout  = "Connection test timed out. URL might still work."
	ProbeMsgEmptyURL = "Please enter a URL first"
	ProbeMsgBadURL   = "Please enter a valid URL"
)

// ProbeResult is the non-fatal status shown to the operator.
type ProbeResult struct {
	URL        string      `json:"url"`
	Status     ProbeStatus `json:"status"`
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode,omitempty"`
}

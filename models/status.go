package models

// StatusState is the value of StatusReport.Status while the server is
// accepting requests.
const StatusState = "running"

// StatusReport is the body of GET /api/status.
type StatusReport struct {
	// Status is always "running" for a live server.
	Status string `json:"status"`

	// Environment is the name of the loaded profile.
	Environment string `json:"environment"`

	// Timestamp is the response time in RFC 3339 with milliseconds, UTC.
	Timestamp string `json:"timestamp"`

	// Uptime is the number of seconds since the process started.
	Uptime float64 `json:"uptime"`
}

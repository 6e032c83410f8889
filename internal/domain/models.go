package domain

// Status is the label written for a probed URL.
type Status string

const (
	StatusUp       Status = "UP"
	StatusDegraded Status = "DEGRADED"
	StatusDown     Status = "DOWN"
)

// Outcome is the result of probing one URL. It is either a Success or a
// Failure; no other implementations exist.
type Outcome interface {
	outcome()
}

// Success means an HTTP response was received, whatever its status code.
type Success struct {
	StatusCode int
	Bytes      int64 // body bytes actually read
}

// Failure carries the last transport error after retries ran out.
type Failure struct {
	Description string
}

func (Success) outcome() {}
func (Failure) outcome() {}

// InRange reports whether the status code is 2xx.
func (s Success) InRange() bool {
	return s.StatusCode >= 200 && s.StatusCode < 300
}

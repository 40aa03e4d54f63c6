package corpus

import "fmt"

const (
	CapabilityTrigram = "pg_trgm"
	CapabilityVector  = "vector"
)

// CapabilityError reports a similarity or ranking function missing from the store.
type CapabilityError struct {
	Capability string
	Err        error
}

func (e *CapabilityError) Error() string {
	return e.Message()
}

func (e *CapabilityError) Unwrap() error { return e.Err }

// Message is the actionable, client facing description of the missing capability.
func (e *CapabilityError) Message() string {
	return fmt.Sprintf(
		`Database extension "%s" is not enabled. Please run "CREATE EXTENSION IF NOT EXISTS %s;" in your PostgreSQL database.`,
		e.Capability, e.Capability)
}

package guardrails

type ValidationResult struct {
	IsValid  bool   // true = allowed ; false = blocked
	Reason   string // Why the query was blocked
	Category string // "prompt_injection" or "safe"
	Method   string // "static"
}

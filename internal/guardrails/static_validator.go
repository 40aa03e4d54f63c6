package guardrails

import "strings"

// DefaultInjectionPatterns is the static denylist screened against every query.
var DefaultInjectionPatterns = []string{
	"ignore previous instructions",
	"system prompt",
	"you are now",
	"acting as",
	"forget everything",
	"disregard",
}

type StaticValidator struct {
	patterns []string
}

func NewStaticValidator(patterns []string) *StaticValidator {
	lowered := make([]string, 0, len(patterns))
	for _, p := range patterns {
		lowered = append(lowered, strings.ToLower(p))
	}
	return &StaticValidator{patterns: lowered}
}

func (v *StaticValidator) Validate(input string) ValidationResult {
	normalized := strings.ToLower(input)

	for _, pattern := range v.patterns {
		if strings.Contains(normalized, pattern) {
			return ValidationResult{
				IsValid:  false,
				Reason:   "matched injection pattern: " + pattern,
				Category: "prompt_injection",
				Method:   "static",
			}
		}
	}

	return ValidationResult{IsValid: true, Reason: "Input validated", Category: "safe", Method: "static"}
}

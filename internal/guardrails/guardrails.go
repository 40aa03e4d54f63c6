package guardrails

import (
	"github.com/rs/zerolog/log"
)

// RefusalAnswer is returned in place of an answer when a query is blocked.
const RefusalAnswer = "I'm sorry, but I cannot process that request. Please ask a question related to the zoning bylaws."

type Guardrails struct {
	staticValidator *StaticValidator
}

func NewGuardrails() *Guardrails {
	return &Guardrails{
		staticValidator: NewStaticValidator(DefaultInjectionPatterns),
	}
}

// ValidateInput screens an already sanitized query.
func (g *Guardrails) ValidateInput(input string) ValidationResult {
	result := g.staticValidator.Validate(input)
	if !result.IsValid {
		log.Info().
			Str("method", result.Method).
			Str("category", result.Category).
			Str("reason", result.Reason).
			Msg("Input blocked by static rules")
	}
	return result
}

package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest represents a request to analyze a job description.
// Company and Role are optional free text; JDText is required.
type AnalyzeRequest struct {
	Company string `json:"company"`
	Role    string `json:"role"`
	JDText  string `json:"jdText" validate:"required"`
}

// ToggleRequest represents a request to flip the confidence of one skill
// on an existing analysis record.
type ToggleRequest struct {
	Skill string `json:"skill" validate:"required"`
}

// Validate validates the AnalyzeRequest using the validator.
// Whitespace-only JD text is rejected the same as empty.
func (r *AnalyzeRequest) Validate() error {
	trimmed := *r
	trimmed.JDText = strings.TrimSpace(r.JDText)
	validate := validator.New()
	return validate.Struct(&trimmed)
}

// Validate validates the ToggleRequest using the validator.
func (r *ToggleRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

package cards

import (
	"strings"
	"unicode/utf8"

	"github.com/czytanka/backend/internal/domain"
)

// AddCardInput carries a manually entered card. Polish and Russian are
// required; BaseForm defaults to Polish when absent.
type AddCardInput struct {
	Polish   string
	Russian  string
	BaseForm string
	Example  string
}

func (in *AddCardInput) Validate() error {
	var fields []domain.FieldError

	polish := strings.TrimSpace(in.Polish)
	if polish == "" {
		fields = append(fields, domain.FieldError{Field: "polish", Message: "is required"})
	} else if utf8.RuneCountInString(polish) > domain.MaxPolishLen {
		fields = append(fields, domain.FieldError{Field: "polish", Message: "is too long"})
	}

	russian := strings.TrimSpace(in.Russian)
	if russian == "" {
		fields = append(fields, domain.FieldError{Field: "russian", Message: "is required"})
	} else if utf8.RuneCountInString(russian) > domain.MaxRussianLen {
		fields = append(fields, domain.FieldError{Field: "russian", Message: "is too long"})
	}

	if utf8.RuneCountInString(strings.TrimSpace(in.BaseForm)) > domain.MaxPolishLen {
		fields = append(fields, domain.FieldError{Field: "base_form", Message: "is too long"})
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.Example)) > domain.MaxExampleLen {
		fields = append(fields, domain.FieldError{Field: "example", Message: "is too long"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

package ledger

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/atelier/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidEntry is wrapped by every input rejection.
	ErrInvalidEntry = errors.New("invalid entry")

	ErrEmptyDescription = fmt.Errorf("%w: description is required", ErrInvalidEntry)
	ErrInvalidAmount    = fmt.Errorf("%w: amount must be a number greater than zero", ErrInvalidEntry)
	ErrUnknownCategory  = fmt.Errorf("%w: unknown category", ErrInvalidEntry)
)

type entryInput struct {
	Description string         `validate:"required"`
	Amount      float64        `validate:"finite,gt=0"`
	Category    model.Category `validate:"gte=0,lte=3"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// newEntry normalizes and validates a candidate entry.
func newEntry(description string, amount float64, category model.Category) (model.Entry, error) {
	in := entryInput{
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Category:    category,
	}
	if err := validate.Struct(in); err != nil {
		return model.Entry{}, mapValidationError(err)
	}
	return model.Entry{
		Description: in.Description,
		Amount:      in.Amount,
		Category:    in.Category,
	}, nil
}

func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	switch verrs[0].Field() {
	case "Description":
		return ErrEmptyDescription
	case "Amount":
		return ErrInvalidAmount
	default:
		return ErrUnknownCategory
	}
}

// ParseAmount parses a user-typed amount. Both "12.50" and "12,50" are
// accepted. Non-numeric, zero, negative and non-finite values are rejected.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return 0, ErrInvalidAmount
	}
	f, _ := d.Float64()
	if math.IsInf(f, 0) || f <= 0 {
		return 0, ErrInvalidAmount
	}
	return f, nil
}

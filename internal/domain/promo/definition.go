package promo

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var codePattern = regexp.MustCompile(`^[A-Z0-9_-]+$`)

type TimedRelease struct {
	DurationHours     float64 `yaml:"durationHours"`
	ImmediateReleases int     `yaml:"immediateReleases"`
}

func (t TimedRelease) Duration() time.Duration {
	return time.Duration(t.DurationHours * float64(time.Hour))
}

func (t TimedRelease) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.DurationHours, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&t.ImmediateReleases, validation.Min(0)),
	)
}

type Definition struct {
	Code            string        `yaml:"code"`
	DiscountPercent int           `yaml:"discountPercent"`
	MaxUses         int           `yaml:"maxUses"`
	LinkedProductID string        `yaml:"linkedProductId"`
	Active          bool          `yaml:"active"`
	TimedRelease    *TimedRelease `yaml:"timedRelease,omitempty"`
}

func (d Definition) IsTimed() bool {
	return d.TimedRelease != nil
}

func (d Definition) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Code, validation.Required, validation.Match(codePattern)),
		validation.Field(&d.DiscountPercent, validation.Min(0), validation.Max(100)),
		validation.Field(&d.MaxUses, validation.Required, validation.Min(1)),
		validation.Field(&d.LinkedProductID, validation.Required),
		validation.Field(&d.TimedRelease),
	)
	if err == nil && d.IsTimed() && d.TimedRelease.ImmediateReleases > d.MaxUses {
		err = validation.Errors{
			"timedRelease": validation.NewError("validation_immediate_releases", "immediateReleases cannot exceed maxUses"),
		}
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDefinition, d.Code, err)
	}
	return nil
}

func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail expects an already normalized address.
func ValidateEmail(email string) error {
	if err := validation.Validate(email, validation.Required, is.EmailFormat); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	return nil
}

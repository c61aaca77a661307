package request

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"room-reservation/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	hhmmPattern     = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
	usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}@.+\-_]{1,150}$`)
)

// RegisterValidators adds the custom rules (hhmm, isodate, username, printable) to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	for tag, fn := range map[string]validator.Func{
		"hhmm":      matchString(hhmmPattern),
		"username":  matchString(usernamePattern),
		"isodate":   isoDate,
		"printable": printable,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func isoDate(fl validator.FieldLevel) bool {
	_, err := reservation.ParseDate(fl.Field().String())
	return err == nil
}

// printable refuses control runes, CR and LF included.
func printable(fl validator.FieldLevel) bool {
	return strings.IndexFunc(fl.Field().String(), unicode.IsControl) < 0
}

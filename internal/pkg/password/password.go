package password

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrComparisonFailed = errors.New("password comparison failed")
	ErrInvalidPassword  = errors.New("invalid password")

	ErrTooShort       = errors.New("password must contain at least 8 characters")
	ErrEntirelyNumber = errors.New("password can't be entirely numeric")
	ErrTooCommon      = errors.New("password is too common")
	ErrTooSimilar     = errors.New("password is too similar to the username or email")
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 8
)

var commonPasswords = map[string]struct{}{
	"password": {}, "password1": {}, "12345678": {}, "123456789": {}, "qwertyuiop": {},
	"iloveyou": {}, "sunshine": {}, "princess": {}, "football": {}, "baseball": {},
	"welcome1": {}, "letmein1": {}, "abc12345": {}, "trustno1": {}, "superman": {},
}

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrInvalidPassword
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// Validate applies the account password policy. All violations are joined.
func Validate(password string, attributes ...string) error {
	var errList []error

	if len([]rune(password)) < MinLength {
		errList = append(errList, ErrTooShort)
	}
	if password != "" && strings.IndexFunc(password, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		errList = append(errList, ErrEntirelyNumber)
	}
	if _, ok := commonPasswords[strings.ToLower(password)]; ok {
		errList = append(errList, ErrTooCommon)
	}
	for _, attr := range attributes {
		if isSimilar(password, attr) {
			errList = append(errList, ErrTooSimilar)
			break
		}
	}

	return errors.Join(errList...)
}

func isSimilar(password, attribute string) bool {
	attr := strings.ToLower(strings.TrimSpace(attribute))
	if at := strings.IndexByte(attr, '@'); at > 0 {
		attr = attr[:at]
	}
	if len(attr) < 3 {
		return false
	}
	pw := strings.ToLower(password)
	return strings.Contains(pw, attr) || strings.Contains(attr, pw)
}

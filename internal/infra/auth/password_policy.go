package auth

import (
	"fmt"
	"unicode"

	"registrar/config"
	"registrar/internal/domain/service"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// PasswordViolation describes a single failed strength rule.
type PasswordViolation struct {
	Code    string
	Message string
}

func (v *PasswordViolation) Error() string {
	return v.Message
}

type passwordRule func(password string, userInputs []string) error

type passwordPolicy struct {
	rules []passwordRule
}

// NewPasswordPolicy builds the strength policy from configuration. A nil
// section yields a policy that accepts every non-empty password.
func NewPasswordPolicy(cfg *config.Config) service.PasswordPolicy {
	strength := cfg.PasswordStrength
	if strength == nil {
		return &passwordPolicy{}
	}

	var rules []passwordRule
	if strength.MinLength > 0 {
		rules = append(rules, minLengthRule(strength.MinLength))
	}
	if strength.MaxLength > 0 {
		rules = append(rules, maxLengthRule(strength.MaxLength))
	}
	if strength.RequireUppercase {
		rules = append(rules, classRule("uppercase", "an uppercase letter", unicode.IsUpper))
	}
	if strength.RequireLowercase {
		rules = append(rules, classRule("lowercase", "a lowercase letter", unicode.IsLower))
	}
	if strength.RequireNumbers {
		rules = append(rules, classRule("digit", "a number", unicode.IsDigit))
	}
	if strength.RequireSpecial {
		rules = append(rules, classRule("special", "a special character", func(r rune) bool {
			return unicode.IsPunct(r) || unicode.IsSymbol(r)
		}))
	}
	if strength.MinScore > 0 {
		rules = append(rules, strengthRule(min(strength.MinScore, 4)))
	}

	return &passwordPolicy{rules: rules}
}

// Validate returns the first violated rule.
func (p *passwordPolicy) Validate(password string, userInputs ...string) error {
	for _, rule := range p.rules {
		if err := rule(password, userInputs); err != nil {
			return err
		}
	}

	return nil
}

func minLengthRule(n int) passwordRule {
	return func(password string, _ []string) error {
		if len([]rune(password)) < n {
			return &PasswordViolation{Code: "min_length", Message: fmt.Sprintf("password must be at least %d characters long", n)}
		}

		return nil
	}
}

func maxLengthRule(n int) passwordRule {
	return func(password string, _ []string) error {
		if len([]rune(password)) > n {
			return &PasswordViolation{Code: "max_length", Message: fmt.Sprintf("password must be at most %d characters long", n)}
		}

		return nil
	}
}

func classRule(code, description string, match func(rune) bool) passwordRule {
	return func(password string, _ []string) error {
		for _, r := range password {
			if match(r) {
				return nil
			}
		}

		return &PasswordViolation{Code: code, Message: "password must contain at least " + description}
	}
}

func strengthRule(minScore int) passwordRule {
	return func(password string, userInputs []string) error {
		result := zxcvbn.PasswordStrength(password, userInputs)
		if result.Score >= minScore {
			return nil
		}

		return &PasswordViolation{Code: "weak", Message: "password is too easy to guess"}
	}
}

package rules

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

const matchTimeout = 100 * time.Millisecond

// Patterns holds the configured account field patterns. regexp2 is used so
// operators can express rules with lookaheads, e.g. a password that needs a
// digit and an uppercase letter.
type Patterns struct {
	name     *regexp2.Regexp
	email    *regexp2.Regexp
	password *regexp2.Regexp
}

func CompilePatterns(name, email, password string) (*Patterns, error) {
	compile := func(field, expr string) (*regexp2.Regexp, error) {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("compile %s pattern: %w", field, err)
		}
		re.MatchTimeout = matchTimeout
		return re, nil
	}

	nameRe, err := compile("name", name)
	if err != nil {
		return nil, err
	}
	emailRe, err := compile("email", email)
	if err != nil {
		return nil, err
	}
	passwordRe, err := compile("password", password)
	if err != nil {
		return nil, err
	}

	return &Patterns{name: nameRe, email: emailRe, password: passwordRe}, nil
}

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

func (p *Patterns) ValidName(s string) bool     { return matches(p.name, s) }
func (p *Patterns) ValidEmail(s string) bool    { return matches(p.email, s) }
func (p *Patterns) ValidPassword(s string) bool { return matches(p.password, s) }

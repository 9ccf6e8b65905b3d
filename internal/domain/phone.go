package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// subscriberPattern matches a bare nine-digit Kenyan mobile subscriber
// number (Safaricom 7XX..., Airtel/landline-mobile 1XX...).
var subscriberPattern = regexp.MustCompile(`^[17]\d{8}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// NormalizePhone maps any accepted representation of a local mobile
// number to the canonical international form without separators or a
// leading plus, e.g. "0712345678" -> "254712345678". Inputs that do not
// reduce to a known subscriber-number pattern are rejected with
// ErrValidation before any network call happens.
func NormalizePhone(raw string) (string, error) {
	s := phoneSeparators.Replace(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "+")

	switch {
	case strings.HasPrefix(s, "254") && len(s) == 12:
		s = s[3:]
	case strings.HasPrefix(s, "0") && len(s) == 10:
		s = s[1:]
	}

	if !subscriberPattern.MatchString(s) {
		return "", fmt.Errorf("%w: invalid phone number %q", ErrValidation, raw)
	}

	return "254" + s, nil
}

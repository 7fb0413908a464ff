package validator

import (
	"regexp"
	"strings"
)

// emailPattern is a pragmatic RFC 5322 subset: dot-atom local part and a
// dotted domain with a non-numeric TLD. MX probing is a provider concern;
// this check stays offline.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]{0,61}[A-Za-z0-9])?)*\.[A-Za-z]{2,}$`)

// Email validates address syntax and derives the local and domain parts.
func Email(address string) Outcome {
	address = strings.ToLower(strings.TrimSpace(address))
	if !emailPattern.MatchString(address) {
		return invalid(ReasonBadFormat)
	}

	at := strings.LastIndexByte(address, '@')
	return Outcome{
		Valid:  true,
		Reason: ReasonOK,
		Attributes: map[string]string{
			"local":  address[:at],
			"domain": address[at+1:],
		},
	}
}

// Domain validates a bare hostname: dotted labels of letters, digits and
// inner hyphens.
func Domain(name string) Outcome {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || strings.Contains(name, "@") || !strings.Contains(name, ".") {
		return invalid(ReasonBadFormat)
	}
	for _, label := range strings.Split(name, ".") {
		if !validLabel(label) {
			return invalid(ReasonBadFormat)
		}
	}
	return Outcome{Valid: true, Reason: ReasonOK}
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// Package validator implements the deterministic, offline checks for each
// identifier type. Nothing in this package performs I/O; every verdict is a
// pure function of the normalized input.
package validator

import "consulta/internal/identifier"

// Reason explains why an identifier failed (or passed) validation.
type Reason string

const (
	ReasonOK          Reason = "ok"
	ReasonBadLength   Reason = "bad_length"
	ReasonBadChecksum Reason = "bad_checksum"
	ReasonBadFormat   Reason = "bad_format"
)

// Outcome is the result of local validation. Attributes carries facts that
// can be derived without a network call, keyed by the canonical field name.
type Outcome struct {
	Valid      bool              `json:"valid"`
	Reason     Reason            `json:"reason"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

func invalid(reason Reason) Outcome {
	return Outcome{Valid: false, Reason: reason}
}

// Validate dispatches to the validator for the given type. Types without a
// local check (domains) pass through as valid.
func Validate(t identifier.Type, normalized string) Outcome {
	switch t {
	case identifier.TypeCPF:
		return CPF(normalized)
	case identifier.TypeCNPJ:
		return CNPJ(normalized)
	case identifier.TypeCEP:
		return CEP(normalized)
	case identifier.TypePhone:
		return Phone(normalized)
	case identifier.TypeEmail:
		return Email(normalized)
	case identifier.TypePlate:
		return Plate(normalized)
	case identifier.TypeDomain:
		return Domain(normalized)
	default:
		return invalid(ReasonBadFormat)
	}
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// Package classifier infers an identifier's type from its shape. It is pure
// string inspection: no I/O, no failure mode beyond unknown or ambiguous.
package classifier

import (
	"strings"

	"consulta/internal/identifier"
	"consulta/internal/validator"
)

func certain(t identifier.Type, normalized string) identifier.Classification {
	return identifier.Classification{Type: t, Normalized: normalized, Confidence: identifier.ConfidenceCertain}
}

// Classify runs the structural ladder over one raw token. Digit-only shapes
// are the most specific signal and are exhausted before textual heuristics.
func Classify(text string) identifier.Classification {
	q := identifier.NewRawQuery(text)
	digits := q.Digits()
	digitsOnly := digits == q.Alnum()

	// A leading country code is not part of the national number.
	if (len(digits) == 12 || len(digits) == 13) && strings.HasPrefix(digits, "55") {
		digits = digits[2:]
	}

	if digitsOnly {
		switch len(digits) {
		case 14:
			return certain(identifier.TypeCNPJ, digits)
		case 11:
			return classifyElevenDigits(digits)
		case 10:
			if validator.KnownDDD(digits[:2]) {
				return certain(identifier.TypePhone, digits)
			}
		case 8:
			return certain(identifier.TypeCEP, digits)
		}
	}

	original := q.Original()
	if at := strings.IndexByte(original, '@'); at >= 0 {
		if strings.IndexByte(original[at:], '.') > 0 {
			return certain(identifier.TypeEmail, strings.ToLower(original))
		}
		return certain(identifier.TypeUnknown, original)
	}

	plate := strings.ToUpper(q.Alnum())
	if validator.MatchesPlate(plate) {
		return certain(identifier.TypePlate, plate)
	}

	if strings.Contains(original, ".") {
		name := strings.ToLower(original)
		if validator.Domain(name).Valid {
			return certain(identifier.TypeDomain, name)
		}
	}

	return certain(identifier.TypeUnknown, original)
}

// classifyElevenDigits breaks the CPF-vs-phone tie. A valid area code
// followed by the mobile 9 marker is phone-shaped; the CPF checksum decides
// the rest. When both readings hold the caller must disambiguate.
func classifyElevenDigits(digits string) identifier.Classification {
	phoneShaped := validator.KnownDDD(digits[:2]) && digits[2] == '9'
	cpfShaped := validator.CPFChecksum(digits)

	switch {
	case phoneShaped && cpfShaped:
		return identifier.Classification{
			Type:       identifier.TypePhone,
			Normalized: digits,
			Confidence: identifier.ConfidenceAmbiguous,
			Candidates: []identifier.Type{identifier.TypePhone, identifier.TypeCPF},
		}
	case phoneShaped:
		return certain(identifier.TypePhone, digits)
	default:
		// Not phone-shaped: read as CPF and let validation report a bad
		// checksum rather than guessing further.
		return certain(identifier.TypeCPF, digits)
	}
}

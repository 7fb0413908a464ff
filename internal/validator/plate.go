package validator

import "fmt"

// platePrefixStates maps the first plate letter to the state most plates with
// that prefix were issued in. The mapping predates the Mercosul rollout and
// is incomplete by nature; absent entries leave the state unset.
var platePrefixStates = map[byte]string{
	'A': "PR", 'B': "PR", 'C': "PR", 'D': "PR", 'E': "PR",
	'F': "MG", 'G': "MG", 'H': "MG",
	'I': "SP", 'J': "SP", 'K': "SP", 'L': "SP", 'M': "SP",
	'N': "SP", 'O': "SP", 'P': "SP", 'Q': "SP",
	'R': "RJ",
	'S': "RS", 'T': "RS", 'U': "RS",
	'V': "CE", 'W': "PE", 'X': "BA", 'Y': "GO", 'Z': "PA",
}

// PlateState returns the probable issuing state for a plate's first letter.
func PlateState(first byte) (string, bool) {
	state, ok := platePrefixStates[first]
	return state, ok
}

func isLetter(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

// MatchesPlate reports whether a 7-character uppercase alphanumeric string
// fits the old (LLLNNNN) or Mercosul (LLLNLNN) grammar.
func MatchesPlate(alnum string) bool {
	if len(alnum) != 7 {
		return false
	}
	if !isLetter(alnum[0]) || !isLetter(alnum[1]) || !isLetter(alnum[2]) {
		return false
	}
	if !isDigit(alnum[3]) || !isDigit(alnum[5]) || !isDigit(alnum[6]) {
		return false
	}
	return isDigit(alnum[4]) || isLetter(alnum[4])
}

// Plate validates a license plate in either grammar and derives its format
// generation and probable state.
func Plate(alnum string) Outcome {
	if len(alnum) != 7 {
		return invalid(ReasonBadLength)
	}
	if !MatchesPlate(alnum) {
		return invalid(ReasonBadFormat)
	}

	mercosul := isLetter(alnum[4])
	attrs := map[string]string{
		"formato": "Antigo",
		"placa_formatada": fmt.Sprintf("%s-%s", alnum[:3], alnum[3:]),
	}
	if mercosul {
		attrs["formato"] = "Mercosul"
		attrs["placa_formatada"] = alnum
	}
	if state, ok := platePrefixStates[alnum[0]]; ok {
		attrs["estado_provavel"] = state
	}

	return Outcome{Valid: true, Reason: ReasonOK, Attributes: attrs}
}

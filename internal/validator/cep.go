package validator

// CEP validates a postal code. No authoritative table of unassigned ranges is
// published, so the check is format-only: exactly 8 digits.
func CEP(digits string) Outcome {
	if len(digits) != 8 || !allDigits(digits) {
		return invalid(ReasonBadLength)
	}
	return Outcome{Valid: true, Reason: ReasonOK}
}

package validator

import "fmt"

// fiscalRegions maps the ninth CPF digit to the probable state of issuance.
var fiscalRegions = [10]string{
	"RS",
	"DF/GO/MS/MT/TO",
	"AC/AM/AP/PA/RO/RR",
	"CE/MA/PI",
	"AL/PB/PE/RN",
	"BA/SE",
	"MG",
	"ES/RJ",
	"SP",
	"PR/SC",
}

// CPFChecksum reports whether an 11-digit string carries valid CPF check
// digits. Repeated-digit sequences are rejected outright; they satisfy the
// arithmetic but are known-invalid issuances.
func CPFChecksum(digits string) bool {
	if len(digits) != 11 || !allDigits(digits) || allSame(digits) {
		return false
	}

	sum1 := 0
	for i := 0; i < 9; i++ {
		sum1 += int(digits[i]-'0') * (10 - i)
	}
	d1 := (sum1 * 10 % 11) % 10

	sum2 := 0
	for i := 0; i < 10; i++ {
		sum2 += int(digits[i]-'0') * (11 - i)
	}
	d2 := (sum2 * 10 % 11) % 10

	return int(digits[9]-'0') == d1 && int(digits[10]-'0') == d2
}

// CPF validates an individual tax ID and derives its formatted form and
// probable state of origin.
func CPF(digits string) Outcome {
	if len(digits) != 11 || !allDigits(digits) {
		return invalid(ReasonBadLength)
	}
	if !CPFChecksum(digits) {
		return invalid(ReasonBadChecksum)
	}

	return Outcome{
		Valid:  true,
		Reason: ReasonOK,
		Attributes: map[string]string{
			"cpf_formatado":          fmt.Sprintf("%s.%s.%s-%s", digits[:3], digits[3:6], digits[6:9], digits[9:]),
			"estado_origem_provavel": fiscalRegions[digits[8]-'0'],
		},
	}
}

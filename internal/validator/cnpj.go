package validator

import "fmt"

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func cnpjDigit(digits string, weights []int) byte {
	total := 0
	for i, w := range weights {
		total += int(digits[i]-'0') * w
	}
	remainder := total % 11
	if remainder < 2 {
		return '0'
	}
	return byte('0' + 11 - remainder)
}

// CNPJChecksum reports whether a 14-digit string carries valid CNPJ check
// digits. Repeated-digit sequences are rejected.
func CNPJChecksum(digits string) bool {
	if len(digits) != 14 || !allDigits(digits) || allSame(digits) {
		return false
	}
	d1 := cnpjDigit(digits[:12], cnpjWeights1)
	d2 := cnpjDigit(digits[:12]+string(d1), cnpjWeights2)
	return digits[12] == d1 && digits[13] == d2
}

// CNPJ validates a company registration number.
func CNPJ(digits string) Outcome {
	if len(digits) != 14 || !allDigits(digits) {
		return invalid(ReasonBadLength)
	}
	if !CNPJChecksum(digits) {
		return invalid(ReasonBadChecksum)
	}

	return Outcome{
		Valid:  true,
		Reason: ReasonOK,
		Attributes: map[string]string{
			"cnpj_formatado": fmt.Sprintf("%s.%s.%s/%s-%s", digits[:2], digits[2:5], digits[5:8], digits[8:12], digits[12:]),
		},
	}
}

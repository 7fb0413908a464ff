// Package identifier defines the identifier taxonomy shared by the
// classifier, validators and resolution pipelines.
package identifier

import "strings"

// Type is the closed set of identifier kinds the engine understands.
type Type string

const (
	TypeCNPJ    Type = "cnpj"
	TypeCPF     Type = "cpf"
	TypeCEP     Type = "cep"
	TypePhone   Type = "phone"
	TypeDomain  Type = "domain"
	TypeEmail   Type = "email"
	TypePlate   Type = "plate"
	TypeUnknown Type = "unknown"
)

// IsValid reports whether t is one of the known types.
func (t Type) IsValid() bool {
	switch t {
	case TypeCNPJ, TypeCPF, TypeCEP, TypePhone, TypeDomain, TypeEmail, TypePlate, TypeUnknown:
		return true
	}
	return false
}

// Networked reports whether resolution of this type requires external
// providers. The remaining types terminate at local validation.
func (t Type) Networked() bool {
	switch t {
	case TypeCNPJ, TypeCEP, TypeEmail, TypeDomain:
		return true
	}
	return false
}

// Confidence qualifies a classification.
type Confidence string

const (
	ConfidenceCertain   Confidence = "certain"
	ConfidenceAmbiguous Confidence = "ambiguous"
)

// RawQuery is an immutable view of one input token. The stripped forms are
// derived once at construction and never change.
type RawQuery struct {
	original string
	digits   string
	alnum    string
}

// NewRawQuery trims the input and precomputes its digit-only and
// alphanumeric-only forms.
func NewRawQuery(text string) RawQuery {
	trimmed := strings.TrimSpace(text)
	var digits, alnum strings.Builder
	for _, r := range trimmed {
		switch {
		case r >= '0' && r <= '9':
			digits.WriteRune(r)
			alnum.WriteRune(r)
		case r >= 'a' && r <= 'z':
			alnum.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			alnum.WriteRune(r)
		}
	}
	return RawQuery{original: trimmed, digits: digits.String(), alnum: alnum.String()}
}

// Original returns the trimmed input text.
func (q RawQuery) Original() string { return q.original }

// Digits returns the digit-only form.
func (q RawQuery) Digits() string { return q.digits }

// Alnum returns the form stripped of everything but letters and digits.
func (q RawQuery) Alnum() string { return q.alnum }

// Classification is the classifier's verdict on one raw query.
type Classification struct {
	Type       Type       `json:"type"`
	Normalized string     `json:"normalized"`
	Confidence Confidence `json:"confidence"`

	// Candidates lists the competing types when Confidence is ambiguous.
	Candidates []Type `json:"candidates,omitempty"`
}

// Package records defines the canonical, provider-agnostic record shape for
// each identifier type. The field set of a record depends only on the type,
// never on which source answered, so converters in the provider clients must
// map every source onto these structs.
//
// CheckedAt is a freshness timestamp and is excluded from record equality.
package records

import (
	"time"

	"consulta/internal/identifier"
)

// Record is implemented by every canonical record type.
type Record interface {
	RecordType() identifier.Type
}

// Address is the nested address shape shared by company and postal records.
type Address struct {
	Logradouro string `json:"logradouro,omitempty"`
	Numero     string `json:"numero,omitempty"`
	Bairro     string `json:"bairro,omitempty"`
	Cidade     string `json:"cidade,omitempty"`
	UF         string `json:"uf,omitempty"`
	CEP        string `json:"cep,omitempty"`
}

// Partner is one entry of a company's ownership board.
type Partner struct {
	Nome         string `json:"nome,omitempty"`
	Qualificacao string `json:"qualificacao,omitempty"`
}

// CNPJ is the canonical company record.
type CNPJ struct {
	CNPJ          string    `json:"cnpj"`
	RazaoSocial   string    `json:"razao_social,omitempty"`
	NomeFantasia  string    `json:"nome_fantasia,omitempty"`
	Situacao      string    `json:"situacao,omitempty"`
	DataAbertura  string    `json:"data_abertura,omitempty"`
	CNAEPrincipal string    `json:"cnae_principal,omitempty"`
	Endereco      Address   `json:"endereco"`
	Telefone      string    `json:"telefone,omitempty"`
	Email         string    `json:"email,omitempty"`
	CapitalSocial string    `json:"capital_social,omitempty"`
	Socios        []Partner `json:"socios,omitempty"`
	CheckedAt     time.Time `json:"checked_at"`
}

func (CNPJ) RecordType() identifier.Type { return identifier.TypeCNPJ }

// CEP is the canonical postal code record.
type CEP struct {
	CEP        string    `json:"cep"`
	Logradouro string    `json:"logradouro,omitempty"`
	Bairro     string    `json:"bairro,omitempty"`
	Cidade     string    `json:"cidade,omitempty"`
	UF         string    `json:"uf,omitempty"`
	DDD        string    `json:"ddd,omitempty"`
	IBGE       string    `json:"ibge,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

func (CEP) RecordType() identifier.Type { return identifier.TypeCEP }

// CPF is the canonical individual tax ID record; derived offline.
type CPF struct {
	CPF          string    `json:"cpf"`
	Formatado    string    `json:"cpf_formatado"`
	EstadoOrigem string    `json:"estado_origem_provavel,omitempty"`
	CheckedAt    time.Time `json:"checked_at"`
}

func (CPF) RecordType() identifier.Type { return identifier.TypeCPF }

// Phone is the canonical telephone record; derived offline.
type Phone struct {
	Telefone  string    `json:"telefone"`
	DDD       string    `json:"ddd"`
	Numero    string    `json:"numero"`
	Regiao    string    `json:"regiao,omitempty"`
	Tipo      string    `json:"tipo"`
	Formato   string    `json:"formato"`
	CheckedAt time.Time `json:"checked_at"`
}

func (Phone) RecordType() identifier.Type { return identifier.TypePhone }

// Plate is the canonical license plate record; derived offline.
type Plate struct {
	Placa          string    `json:"placa"`
	PlacaFormatada string    `json:"placa_formatada"`
	Formato        string    `json:"formato"`
	EstadoProvavel string    `json:"estado_provavel,omitempty"`
	CheckedAt      time.Time `json:"checked_at"`
}

func (Plate) RecordType() identifier.Type { return identifier.TypePlate }

// Email is the canonical email record. The hashes support breach tooling
// without storing anything beyond the address itself.
type Email struct {
	Email       string    `json:"email"`
	Domain      string    `json:"domain"`
	SHA1        string    `json:"hash_sha1"`
	SHA256      string    `json:"hash_sha256"`
	HasMX       bool      `json:"domain_has_mx"`
	MailServers []string  `json:"mail_servers,omitempty"`
	CheckedAt   time.Time `json:"checked_at"`
}

func (Email) RecordType() identifier.Type { return identifier.TypeEmail }

// Domain is the canonical domain record.
type Domain struct {
	Domain    string    `json:"domain"`
	Online    bool      `json:"online"`
	A         []string  `json:"a,omitempty"`
	MX        []string  `json:"mx,omitempty"`
	NS        []string  `json:"ns,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

func (Domain) RecordType() identifier.Type { return identifier.TypeDomain }

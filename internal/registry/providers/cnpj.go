package providers

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"consulta/internal/registry/records"
)

// Default public endpoints for company data, in chain priority order.
const (
	ReceitaWSBaseURL = "https://receitaws.com.br/v1"
	BrasilAPIBaseURL = "https://brasilapi.com.br/api"
	CNPJWSBaseURL    = "https://publica.cnpj.ws"
)

// ReceitaWS resolves company records from receitaws.com.br.
type ReceitaWS struct {
	httpSource
}

func NewReceitaWS(baseURL string, timeout time.Duration) *ReceitaWS {
	if baseURL == "" {
		baseURL = ReceitaWSBaseURL
	}
	return &ReceitaWS{newHTTPSource("receitaws", baseURL, timeout, time.Second)}
}

func (c *ReceitaWS) Name() string { return c.name }

type receitaWSResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	CNPJ      string `json:"cnpj"`
	Nome      string `json:"nome"`
	Fantasia  string `json:"fantasia"`
	Situacao  string `json:"situacao"`
	Abertura  string `json:"abertura"`
	Atividade []struct {
		Text string `json:"text"`
	} `json:"atividade_principal"`
	Logradouro    string          `json:"logradouro"`
	Numero        string          `json:"numero"`
	Bairro        string          `json:"bairro"`
	Municipio     string          `json:"municipio"`
	UF            string          `json:"uf"`
	CEP           string          `json:"cep"`
	Telefone      string          `json:"telefone"`
	Email         string          `json:"email"`
	CapitalSocial json.Number     `json:"capital_social"`
	QSA           []receitaWSQSA  `json:"qsa"`
}

type receitaWSQSA struct {
	Nome string `json:"nome"`
	Qual string `json:"qual"`
}

func (c *ReceitaWS) Resolve(ctx context.Context, cnpj string) (records.CNPJ, error) {
	var resp receitaWSResponse
	if err := c.getJSON(ctx, c.baseURL+"/cnpj/"+cnpj, &resp); err != nil {
		return records.CNPJ{}, err
	}
	// ReceitaWS reports misses with HTTP 200 and a status field.
	if strings.EqualFold(resp.Status, "ERROR") {
		return records.CNPJ{}, NewError(CategoryNotFound, c.name, resp.Message, nil)
	}

	rec := records.CNPJ{
		CNPJ:          cnpj,
		RazaoSocial:   resp.Nome,
		NomeFantasia:  resp.Fantasia,
		Situacao:      resp.Situacao,
		DataAbertura:  resp.Abertura,
		Telefone:      resp.Telefone,
		Email:         resp.Email,
		CapitalSocial: resp.CapitalSocial.String(),
		Endereco: records.Address{
			Logradouro: resp.Logradouro,
			Numero:     resp.Numero,
			Bairro:     resp.Bairro,
			Cidade:     resp.Municipio,
			UF:         resp.UF,
			CEP:        resp.CEP,
		},
		CheckedAt: time.Now(),
	}
	if len(resp.Atividade) > 0 {
		rec.CNAEPrincipal = resp.Atividade[0].Text
	}
	for _, p := range resp.QSA {
		rec.Socios = append(rec.Socios, records.Partner{Nome: p.Nome, Qualificacao: p.Qual})
	}
	return rec, nil
}

// BrasilAPICNPJ resolves company records from brasilapi.com.br.
type BrasilAPICNPJ struct {
	httpSource
}

func NewBrasilAPICNPJ(baseURL string, timeout time.Duration) *BrasilAPICNPJ {
	if baseURL == "" {
		baseURL = BrasilAPIBaseURL
	}
	return &BrasilAPICNPJ{newHTTPSource("brasilapi-cnpj", baseURL, timeout, 500*time.Millisecond)}
}

func (c *BrasilAPICNPJ) Name() string { return c.name }

type brasilAPICNPJResponse struct {
	CNPJ              string      `json:"cnpj"`
	RazaoSocial       string      `json:"razao_social"`
	NomeFantasia      string      `json:"nome_fantasia"`
	SituacaoCadastral string      `json:"descricao_situacao_cadastral"`
	InicioAtividade   string      `json:"data_inicio_atividade"`
	CNAEDescricao     string      `json:"cnae_fiscal_descricao"`
	Logradouro        string      `json:"logradouro"`
	Numero            string      `json:"numero"`
	Bairro            string      `json:"bairro"`
	Municipio         string      `json:"municipio"`
	UF                string      `json:"uf"`
	CEP               string      `json:"cep"`
	Telefone          string      `json:"ddd_telefone_1"`
	Email             string      `json:"email"`
	CapitalSocial     json.Number `json:"capital_social"`
	QSA               []struct {
		Nome         string `json:"nome_socio"`
		Qualificacao string `json:"qualificacao_socio"`
	} `json:"qsa"`
}

func (c *BrasilAPICNPJ) Resolve(ctx context.Context, cnpj string) (records.CNPJ, error) {
	var resp brasilAPICNPJResponse
	if err := c.getJSON(ctx, c.baseURL+"/cnpj/v1/"+cnpj, &resp); err != nil {
		return records.CNPJ{}, err
	}

	rec := records.CNPJ{
		CNPJ:          cnpj,
		RazaoSocial:   resp.RazaoSocial,
		NomeFantasia:  resp.NomeFantasia,
		Situacao:      resp.SituacaoCadastral,
		DataAbertura:  resp.InicioAtividade,
		CNAEPrincipal: resp.CNAEDescricao,
		Telefone:      resp.Telefone,
		Email:         resp.Email,
		CapitalSocial: resp.CapitalSocial.String(),
		Endereco: records.Address{
			Logradouro: resp.Logradouro,
			Numero:     resp.Numero,
			Bairro:     resp.Bairro,
			Cidade:     resp.Municipio,
			UF:         resp.UF,
			CEP:        resp.CEP,
		},
		CheckedAt: time.Now(),
	}
	for _, p := range resp.QSA {
		rec.Socios = append(rec.Socios, records.Partner{Nome: p.Nome, Qualificacao: p.Qualificacao})
	}
	return rec, nil
}

// CNPJWS resolves company records from publica.cnpj.ws.
type CNPJWS struct {
	httpSource
}

func NewCNPJWS(baseURL string, timeout time.Duration) *CNPJWS {
	if baseURL == "" {
		baseURL = CNPJWSBaseURL
	}
	// The public tier allows 3 req/min; keep the limiter conservative.
	return &CNPJWS{newHTTPSource("cnpjws", baseURL, timeout, 20*time.Second)}
}

func (c *CNPJWS) Name() string { return c.name }

type cnpjWSResponse struct {
	RazaoSocial   string      `json:"razao_social"`
	CapitalSocial json.Number `json:"capital_social"`
	Socios        []struct {
		Nome         string `json:"nome"`
		Qualificacao struct {
			Descricao string `json:"descricao"`
		} `json:"qualificacao_socio"`
	} `json:"socios"`
	Estabelecimento struct {
		NomeFantasia    string `json:"nome_fantasia"`
		Situacao        string `json:"situacao_cadastral"`
		InicioAtividade string `json:"data_inicio_atividade"`
		Atividade       struct {
			Descricao string `json:"descricao"`
		} `json:"atividade_principal"`
		Logradouro string `json:"logradouro"`
		Numero     string `json:"numero"`
		Bairro     string `json:"bairro"`
		CEP        string `json:"cep"`
		DDD        string `json:"ddd1"`
		Telefone   string `json:"telefone1"`
		Email      string `json:"email"`
		Cidade     struct {
			Nome string `json:"nome"`
		} `json:"cidade"`
		Estado struct {
			Sigla string `json:"sigla"`
		} `json:"estado"`
	} `json:"estabelecimento"`
}

func (c *CNPJWS) Resolve(ctx context.Context, cnpj string) (records.CNPJ, error) {
	var resp cnpjWSResponse
	if err := c.getJSON(ctx, c.baseURL+"/cnpj/"+cnpj, &resp); err != nil {
		return records.CNPJ{}, err
	}

	est := resp.Estabelecimento
	telefone := est.Telefone
	if est.DDD != "" && telefone != "" {
		telefone = est.DDD + telefone
	}
	rec := records.CNPJ{
		CNPJ:          cnpj,
		RazaoSocial:   resp.RazaoSocial,
		NomeFantasia:  est.NomeFantasia,
		Situacao:      est.Situacao,
		DataAbertura:  est.InicioAtividade,
		CNAEPrincipal: est.Atividade.Descricao,
		Telefone:      telefone,
		Email:         est.Email,
		CapitalSocial: resp.CapitalSocial.String(),
		Endereco: records.Address{
			Logradouro: est.Logradouro,
			Numero:     est.Numero,
			Bairro:     est.Bairro,
			Cidade:     est.Cidade.Nome,
			UF:         est.Estado.Sigla,
			CEP:        est.CEP,
		},
		CheckedAt: time.Now(),
	}
	for _, p := range resp.Socios {
		rec.Socios = append(rec.Socios, records.Partner{Nome: p.Nome, Qualificacao: p.Qualificacao.Descricao})
	}
	return rec, nil
}

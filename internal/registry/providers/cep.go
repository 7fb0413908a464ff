package providers

import (
	"context"
	"strings"
	"time"

	"consulta/internal/registry/records"
)

// Default public endpoints for postal code data.
const (
	ViaCEPBaseURL  = "https://viacep.com.br/ws"
	OpenCEPBaseURL = "https://opencep.com/v1"
)

// ViaCEP resolves postal codes from viacep.com.br.
type ViaCEP struct {
	httpSource
}

func NewViaCEP(baseURL string, timeout time.Duration) *ViaCEP {
	if baseURL == "" {
		baseURL = ViaCEPBaseURL
	}
	return &ViaCEP{newHTTPSource("viacep", baseURL, timeout, 200*time.Millisecond)}
}

func (c *ViaCEP) Name() string { return c.name }

type viaCEPResponse struct {
	// ViaCEP reports misses with HTTP 200 and an "erro" marker whose JSON
	// type has changed over the years; decode it loosely.
	Erro       any    `json:"erro"`
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	IBGE       string `json:"ibge"`
	DDD        string `json:"ddd"`
}

func (c *ViaCEP) Resolve(ctx context.Context, cep string) (records.CEP, error) {
	var resp viaCEPResponse
	if err := c.getJSON(ctx, c.baseURL+"/"+cep+"/json/", &resp); err != nil {
		return records.CEP{}, err
	}
	if resp.Erro != nil {
		return records.CEP{}, NewError(CategoryNotFound, c.name, "postal code not assigned", nil)
	}

	return records.CEP{
		CEP:        cep,
		Logradouro: resp.Logradouro,
		Bairro:     resp.Bairro,
		Cidade:     resp.Localidade,
		UF:         resp.UF,
		DDD:        resp.DDD,
		IBGE:       resp.IBGE,
		CheckedAt:  time.Now(),
	}, nil
}

// BrasilAPICEP resolves postal codes from brasilapi.com.br.
type BrasilAPICEP struct {
	httpSource
}

func NewBrasilAPICEP(baseURL string, timeout time.Duration) *BrasilAPICEP {
	if baseURL == "" {
		baseURL = BrasilAPIBaseURL
	}
	return &BrasilAPICEP{newHTTPSource("brasilapi-cep", baseURL, timeout, 200*time.Millisecond)}
}

func (c *BrasilAPICEP) Name() string { return c.name }

type brasilAPICEPResponse struct {
	CEP          string `json:"cep"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
}

func (c *BrasilAPICEP) Resolve(ctx context.Context, cep string) (records.CEP, error) {
	var resp brasilAPICEPResponse
	if err := c.getJSON(ctx, c.baseURL+"/cep/v1/"+cep, &resp); err != nil {
		return records.CEP{}, err
	}

	return records.CEP{
		CEP:        cep,
		Logradouro: resp.Street,
		Bairro:     resp.Neighborhood,
		Cidade:     resp.City,
		UF:         resp.State,
		CheckedAt:  time.Now(),
	}, nil
}

// OpenCEP resolves postal codes from opencep.com.
type OpenCEP struct {
	httpSource
}

func NewOpenCEP(baseURL string, timeout time.Duration) *OpenCEP {
	if baseURL == "" {
		baseURL = OpenCEPBaseURL
	}
	return &OpenCEP{newHTTPSource("opencep", baseURL, timeout, 200*time.Millisecond)}
}

func (c *OpenCEP) Name() string { return c.name }

type openCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	IBGE       string `json:"ibge"`
}

func (c *OpenCEP) Resolve(ctx context.Context, cep string) (records.CEP, error) {
	var resp openCEPResponse
	if err := c.getJSON(ctx, c.baseURL+"/"+cep, &resp); err != nil {
		return records.CEP{}, err
	}

	return records.CEP{
		CEP:        strings.ReplaceAll(resp.CEP, "-", ""),
		Logradouro: resp.Logradouro,
		Bairro:     resp.Bairro,
		Cidade:     resp.Localidade,
		UF:         resp.UF,
		IBGE:       resp.IBGE,
		CheckedAt:  time.Now(),
	}, nil
}

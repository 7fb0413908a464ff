package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceitaWSResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cnpj/00000000000191", r.URL.Path)
		assert.Equal(t, "consulta/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"cnpj": "00.000.000/0001-91",
			"nome": "BANCO DO BRASIL SA",
			"fantasia": "BANCO DO BRASIL",
			"situacao": "ATIVA",
			"abertura": "01/08/1966",
			"atividade_principal": [{"text": "Bancos comerciais"}],
			"logradouro": "SAUN QUADRA 5",
			"numero": "S/N",
			"bairro": "ASA NORTE",
			"municipio": "BRASILIA",
			"uf": "DF",
			"cep": "70.040-912",
			"telefone": "(61) 3493-9002",
			"capital_social": 120000000000.00,
			"qsa": [{"nome": "TARCIANA PAULA GOMES MEDEIROS", "qual": "10-Diretor"}]
		}`))
	}))
	defer srv.Close()

	rec, err := NewReceitaWS(srv.URL, time.Second).Resolve(context.Background(), "00000000000191")
	require.NoError(t, err)

	assert.Equal(t, "00000000000191", rec.CNPJ)
	assert.Equal(t, "BANCO DO BRASIL SA", rec.RazaoSocial)
	assert.Equal(t, "BANCO DO BRASIL", rec.NomeFantasia)
	assert.Equal(t, "ATIVA", rec.Situacao)
	assert.Equal(t, "Bancos comerciais", rec.CNAEPrincipal)
	assert.Equal(t, "DF", rec.Endereco.UF)
	assert.Equal(t, "120000000000.00", rec.CapitalSocial)
	require.Len(t, rec.Socios, 1)
	assert.Equal(t, "10-Diretor", rec.Socios[0].Qualificacao)
	assert.False(t, rec.CheckedAt.IsZero())
}

func TestReceitaWSStatusErrorIsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ERROR", "message": "CNPJ invalido"}`))
	}))
	defer srv.Close()

	_, err := NewReceitaWS(srv.URL, time.Second).Resolve(context.Background(), "00000000000191")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestReceitaWSTooManyRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewReceitaWS(srv.URL, time.Second).Resolve(context.Background(), "00000000000191")
	require.Error(t, err)
	assert.Equal(t, CategoryRateLimited, CategoryOf(err))
}

func TestBrasilAPICNPJResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cnpj/v1/00000000000191", r.URL.Path)
		w.Write([]byte(`{
			"cnpj": "00000000000191",
			"razao_social": "BANCO DO BRASIL SA",
			"descricao_situacao_cadastral": "ATIVA",
			"data_inicio_atividade": "1966-08-01",
			"cnae_fiscal_descricao": "Bancos comerciais",
			"municipio": "BRASILIA",
			"uf": "DF",
			"capital_social": 120000000000,
			"qsa": [{"nome_socio": "TARCIANA", "qualificacao_socio": "Diretor"}]
		}`))
	}))
	defer srv.Close()

	rec, err := NewBrasilAPICNPJ(srv.URL, time.Second).Resolve(context.Background(), "00000000000191")
	require.NoError(t, err)

	assert.Equal(t, "BANCO DO BRASIL SA", rec.RazaoSocial)
	assert.Equal(t, "ATIVA", rec.Situacao)
	assert.Equal(t, "1966-08-01", rec.DataAbertura)
	require.Len(t, rec.Socios, 1)
	assert.Equal(t, "TARCIANA", rec.Socios[0].Nome)
}

func TestBrasilAPICNPJNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "nao encontrado"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewBrasilAPICNPJ(srv.URL, time.Second).Resolve(context.Background(), "99999999999999")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCNPJWSResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cnpj/00000000000191", r.URL.Path)
		w.Write([]byte(`{
			"razao_social": "BANCO DO BRASIL SA",
			"capital_social": "120000000000.00",
			"socios": [{"nome": "TARCIANA", "qualificacao_socio": {"descricao": "Diretora"}}],
			"estabelecimento": {
				"nome_fantasia": "BANCO DO BRASIL",
				"situacao_cadastral": "Ativa",
				"data_inicio_atividade": "1966-08-01",
				"atividade_principal": {"descricao": "Bancos comerciais"},
				"ddd1": "61",
				"telefone1": "34939002",
				"cidade": {"nome": "Brasilia"},
				"estado": {"sigla": "DF"}
			}
		}`))
	}))
	defer srv.Close()

	rec, err := NewCNPJWS(srv.URL, time.Second).Resolve(context.Background(), "00000000000191")
	require.NoError(t, err)

	assert.Equal(t, "BANCO DO BRASIL SA", rec.RazaoSocial)
	assert.Equal(t, "Ativa", rec.Situacao)
	assert.Equal(t, "6134939002", rec.Telefone)
	assert.Equal(t, "Brasilia", rec.Endereco.Cidade)
	assert.Equal(t, "DF", rec.Endereco.UF)
	require.Len(t, rec.Socios, 1)
	assert.Equal(t, "Diretora", rec.Socios[0].Qualificacao)
}

func TestGetJSONMalformedBodyIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := NewReceitaWS(srv.URL, time.Second).Resolve(context.Background(), "00000000000191")
	require.Error(t, err)
	assert.Equal(t, CategoryParse, CategoryOf(err))
}

package lookup

import (
	"log/slog"

	"consulta/internal/lookup/metrics"
	"consulta/internal/platform/config"
	"consulta/internal/registry/pipeline"
	"consulta/internal/registry/providers"
	"consulta/internal/registry/records"
)

// NewFromConfig assembles the default provider chains and the service
// around them. Chain order is resolution priority.
func NewFromConfig(cfg config.Config, logger *slog.Logger, m *metrics.Metrics) (*Service, error) {
	timeout := cfg.ProviderTimeout()
	dns := providers.NewDNSClient(cfg.Endpoints.DNS, timeout)

	cnpjChain := []providers.Client[records.CNPJ]{
		providers.NewReceitaWS(cfg.Endpoints.ReceitaWS, timeout),
		providers.NewBrasilAPICNPJ(cfg.Endpoints.BrasilAPI, timeout),
		providers.NewCNPJWS(cfg.Endpoints.CNPJWS, timeout),
	}
	cepChain := []providers.Client[records.CEP]{
		providers.NewViaCEP(cfg.Endpoints.ViaCEP, timeout),
		providers.NewBrasilAPICEP(cfg.Endpoints.BrasilAPI, timeout),
		providers.NewOpenCEP(cfg.Endpoints.OpenCEP, timeout),
	}
	emailChain := []providers.Client[records.Email]{providers.NewMXProber(dns)}
	domainChain := []providers.Client[records.Domain]{providers.NewDomainResolver(dns)}

	pipelines := Pipelines{
		CNPJ: pipeline.New(cnpjChain,
			pipeline.WithLogger[records.CNPJ](logger),
			pipeline.WithObserver[records.CNPJ](m.ObserveProvider),
			pipeline.WithAttemptTimeout[records.CNPJ](timeout)),
		CEP: pipeline.New(cepChain,
			pipeline.WithLogger[records.CEP](logger),
			pipeline.WithObserver[records.CEP](m.ObserveProvider),
			pipeline.WithAttemptTimeout[records.CEP](timeout)),
		Email: pipeline.New(emailChain,
			pipeline.WithLogger[records.Email](logger),
			pipeline.WithObserver[records.Email](m.ObserveProvider),
			pipeline.WithAttemptTimeout[records.Email](timeout)),
		Domain: pipeline.New(domainChain,
			pipeline.WithLogger[records.Domain](logger),
			pipeline.WithObserver[records.Domain](m.ObserveProvider),
			pipeline.WithAttemptTimeout[records.Domain](timeout)),
	}

	return New(pipelines, WithLogger(logger), WithMetrics(m), WithCooldown(cfg.Cooldown()))
}

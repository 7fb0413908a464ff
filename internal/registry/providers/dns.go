package providers

import (
	"context"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
	"time"

	"consulta/internal/registry/records"
)

// GoogleDNSBaseURL is the default DNS-over-HTTPS JSON endpoint.
const GoogleDNSBaseURL = "https://dns.google"

const dnsStatusNXDomain = 3

// DNSClient queries a DNS-over-HTTPS JSON endpoint. It backs both the domain
// resolver and the email MX prober.
type DNSClient struct {
	httpSource
}

func NewDNSClient(baseURL string, timeout time.Duration) *DNSClient {
	if baseURL == "" {
		baseURL = GoogleDNSBaseURL
	}
	return &DNSClient{newHTTPSource("dns-google", baseURL, timeout, 100*time.Millisecond)}
}

type dohResponse struct {
	Status int `json:"Status"`
	Answer []struct {
		Data string `json:"data"`
	} `json:"Answer"`
}

// Query resolves one record type for a name. NXDOMAIN returns a not-found
// error; an empty answer section is a valid empty result.
func (c *DNSClient) Query(ctx context.Context, name, recordType string) ([]string, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("type", recordType)

	var resp dohResponse
	if err := c.getJSON(ctx, c.baseURL+"/resolve?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Status == dnsStatusNXDomain {
		return nil, NewError(CategoryNotFound, c.name, "domain does not exist", nil)
	}

	answers := make([]string, 0, len(resp.Answer))
	for _, a := range resp.Answer {
		answers = append(answers, a.Data)
	}
	return answers, nil
}

// DomainResolver builds the canonical domain record from A, MX and NS
// lookups. The A lookup decides success; MX and NS are best effort.
type DomainResolver struct {
	dns *DNSClient
}

func NewDomainResolver(dns *DNSClient) *DomainResolver {
	return &DomainResolver{dns: dns}
}

func (r *DomainResolver) Name() string { return r.dns.name }

func (r *DomainResolver) Resolve(ctx context.Context, domain string) (records.Domain, error) {
	domain = normalizeBRDomain(domain)

	a, err := r.dns.Query(ctx, domain, "A")
	if err != nil {
		return records.Domain{}, err
	}

	rec := records.Domain{
		Domain:    domain,
		A:         a,
		Online:    len(a) > 0,
		CheckedAt: time.Now(),
	}
	if mx, err := r.dns.Query(ctx, domain, "MX"); err == nil {
		rec.MX = mx
	}
	if ns, err := r.dns.Query(ctx, domain, "NS"); err == nil {
		rec.NS = ns
	}
	return rec, nil
}

// normalizeBRDomain appends the conventional .com.br suffix to bare names
// that carry no Brazilian TLD.
func normalizeBRDomain(domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	if !strings.HasSuffix(domain, ".br") {
		domain += ".com.br"
	}
	return domain
}

// MXProber resolves the canonical email record: address hashes plus an MX
// probe of the domain part to tell whether the mailbox can exist at all.
type MXProber struct {
	dns *DNSClient
}

func NewMXProber(dns *DNSClient) *MXProber {
	return &MXProber{dns: dns}
}

func (p *MXProber) Name() string { return "mx-prober" }

const maxMailServers = 3

func (p *MXProber) Resolve(ctx context.Context, address string) (records.Email, error) {
	address = strings.ToLower(strings.TrimSpace(address))
	domain := address
	if at := strings.LastIndexByte(address, '@'); at >= 0 {
		domain = address[at+1:]
	}

	mx, err := p.dns.Query(ctx, domain, "MX")
	if err != nil {
		if IsNotFound(err) {
			// The domain does not exist, so the address cannot either.
			return records.Email{}, NewError(CategoryNotFound, p.Name(), "mail domain does not exist", err)
		}
		return records.Email{}, err
	}

	sum1 := sha1.Sum([]byte(address))
	sum256 := sha256.Sum256([]byte(address))

	rec := records.Email{
		Email:     address,
		Domain:    domain,
		SHA1:      hex.EncodeToString(sum1[:]),
		SHA256:    hex.EncodeToString(sum256[:]),
		HasMX:     len(mx) > 0,
		CheckedAt: time.Now(),
	}
	if len(mx) > maxMailServers {
		mx = mx[:maxMailServers]
	}
	rec.MailServers = mx
	return rec, nil
}

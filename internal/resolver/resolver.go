package resolver

import (
	"context"
	"strings"
	"time"

	"github.com/miekg/dns"
)

const (
	// defaultServer is the DNS resolver used when none is configured
	defaultServer = "8.8.8.8:53"
	// defaultTimeout is the per-query timeout for DNS lookups
	defaultTimeout = 3 * time.Second
	// defaultDNSPort is appended to nameserver overrides given without a port
	defaultDNSPort = "53"
)

// Outcome classifies the result of a single DNS query. The distinction
// between NXDomain, NoRecord and QueryError is load-bearing: record checks
// treat all three as "not found", while the takeover heuristic reacts only
// to a definitive NXDomain.
type Outcome int

const (
	// OutcomeFound means the query returned at least one matching record
	OutcomeFound Outcome = iota
	// OutcomeNXDomain means the queried name definitively does not exist
	OutcomeNXDomain
	// OutcomeNoRecord means the name exists but carries no record of the requested type
	OutcomeNoRecord
	// OutcomeQueryError means the query itself failed (timeout, transport, malformed response)
	OutcomeQueryError
)

// String returns a short label for logging
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeNXDomain:
		return "nxdomain"
	case OutcomeNoRecord:
		return "no-record"
	default:
		return "query-error"
	}
}

// TXTResult holds the classified outcome of a TXT query
type TXTResult struct {
	// Outcome classifies the query result
	Outcome Outcome
	// Records holds one entry per TXT answer, with multi-segment
	// character-strings concatenated in segment order
	Records []string
}

// Client issues TXT and A queries against a configurable nameserver
type Client struct {
	client *dns.Client
	server string
}

// Option configures the Client
type Option func(*Client)

// WithServer overrides the nameserver used for lookups. A bare address
// without a port gets the standard DNS port appended.
func WithServer(server string) Option {
	return func(c *Client) {
		if server == "" {
			return
		}
		if !strings.Contains(server, ":") {
			server += ":" + defaultDNSPort
		}
		c.server = server
	}
}

// WithTimeout overrides the per-query timeout
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
	}
}

// New creates a resolver client
func New(opts ...Option) *Client {
	c := &Client{
		client: &dns.Client{
			Timeout: defaultTimeout,
		},
		server: defaultServer,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// QueryTXT resolves TXT records for name and classifies the outcome
func (c *Client) QueryTXT(ctx context.Context, name string) TXTResult {
	resp := c.exchange(ctx, name, dns.TypeTXT)
	if resp == nil {
		return TXTResult{Outcome: OutcomeQueryError}
	}

	if resp.Rcode == dns.RcodeNameError {
		return TXTResult{Outcome: OutcomeNXDomain}
	}

	if resp.Rcode != dns.RcodeSuccess {
		return TXTResult{Outcome: OutcomeQueryError}
	}

	var records []string

	for _, rr := range resp.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}

		records = append(records, strings.Join(txt.Txt, ""))
	}

	if len(records) == 0 {
		return TXTResult{Outcome: OutcomeNoRecord}
	}

	return TXTResult{Outcome: OutcomeFound, Records: records}
}

// QueryA resolves A records for name and classifies the outcome
func (c *Client) QueryA(ctx context.Context, name string) Outcome {
	resp := c.exchange(ctx, name, dns.TypeA)
	if resp == nil {
		return OutcomeQueryError
	}

	if resp.Rcode == dns.RcodeNameError {
		return OutcomeNXDomain
	}

	if resp.Rcode != dns.RcodeSuccess {
		return OutcomeQueryError
	}

	for _, rr := range resp.Answer {
		if _, ok := rr.(*dns.A); ok {
			return OutcomeFound
		}
	}

	return OutcomeNoRecord
}

// exchange performs a single query attempt, returning nil on any transport failure
func (c *Client) exchange(ctx context.Context, name string, qtype uint16) *dns.Msg {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	resp, _, err := c.client.ExchangeContext(ctx, msg, c.server)
	if err != nil {
		return nil
	}

	return resp
}

package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

// domainResolver is the slice of *net.Resolver the email check needs.
type domainResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

var (
	resolver      domainResolver = net.DefaultResolver
	lookupTimeout                = 3 * time.Second
)

// NormalizeEmail is the form addresses are stored and compared in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid accepts an address whose domain has an MX record or,
// failing that, resolves to an address. Slow DNS counts as invalid.
func IsEmailDomainValid(email string) bool {
	email = NormalizeEmail(email)

	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}
	if ips, err := resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}
	return false
}

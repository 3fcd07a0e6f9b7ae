package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClock(t *testing.T) {
	for _, ok := range []string{"00:00", "09:30", "23:59"} {
		assert.True(t, IsClock(ok), ok)
	}
	for _, bad := range []string{"", "9:30", "24:00", "12:60", "12-30", "12:30:00"} {
		assert.False(t, IsClock(bad), bad)
	}
}

func TestIsOpeningSpan(t *testing.T) {
	assert.True(t, IsOpeningSpan("09:00", "17:00"))
	assert.False(t, IsOpeningSpan("17:00", "09:00"))
	assert.False(t, IsOpeningSpan("09:00", "09:00"))
	assert.False(t, IsOpeningSpan("9", "17:00"))
}

type fakeResolver struct {
	mx      map[string]bool
	hosts   map[string]bool
	queried []string
}

func (f *fakeResolver) LookupMX(_ context.Context, name string) ([]*net.MX, error) {
	f.queried = append(f.queried, name)
	if f.mx[name] {
		return []*net.MX{{Host: "mx." + name, Pref: 10}}, nil
	}
	return nil, errors.New("no such host")
}

func (f *fakeResolver) LookupIPAddr(_ context.Context, host string) ([]net.IPAddr, error) {
	if f.hosts[host] {
		return []net.IPAddr{{IP: net.IPv4(192, 0, 2, 1)}}, nil
	}
	return nil, errors.New("no such host")
}

func withResolver(t *testing.T, r domainResolver) {
	prev := resolver
	resolver = r
	t.Cleanup(func() { resolver = prev })
}

func TestIsEmailDomainValid(t *testing.T) {
	fake := &fakeResolver{
		mx:    map[string]bool{"salon.example": true},
		hosts: map[string]bool{"a-record.example": true},
	}
	withResolver(t, fake)

	assert.True(t, IsEmailDomainValid(" Ana@Salon.Example "))
	assert.True(t, IsEmailDomainValid("bo@a-record.example"))
	assert.False(t, IsEmailDomainValid("cy@nowhere.example"))
	assert.Equal(t, []string{"salon.example", "a-record.example", "nowhere.example"}, fake.queried)
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	fake := &fakeResolver{}
	withResolver(t, fake)

	for _, bad := range []string{"no-at-sign", "trailing@", "@salon.example", ""} {
		assert.False(t, IsEmailDomainValid(bad), bad)
	}
	assert.Empty(t, fake.queried)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@salon.example", NormalizeEmail("  Ana@SALON.example\t"))
}

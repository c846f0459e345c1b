package requestcontext

import (
	"context"
	"net"

	"github.com/cockroachdb/errors"
	"github.com/durgadao/anjoli-custody/pkg/logger"
	"github.com/durgadao/anjoli-custody/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedProxiesIP lists the CIDR ranges of every proxy between the server and clients.
	// When set, the client ip is the last X-Forwarded-For entry outside these ranges.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`

	// TrustedHeader names a header holding the client ip (X-Real-IP, CF-Connecting-IP).
	// A valid ip in it takes precedence over everything else.
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// EnableRejectMalformedRequest answers 403 when the request came through proxies but no client ip can be trusted.
	EnableRejectMalformedRequest bool `mapstructure:"enable_reject_malformed_request"`
}

// GetClientIP returns the ip stored by [WithClientIP], or "".
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// WithClientIP resolves the client ip with X-Forwarded-For spoofing protection.
// It panics if a trusted proxy range is not a valid CIDR.
func WithClientIP(config WithClientIPConfig) Option {
	proxies, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		logger.Panic("Invalid trusted proxies", slogx.Error(err))
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		ip, err := resolveClientIP(c, config, proxies)
		if err != nil {
			logger.WarnContext(ctx, "Rejecting request with untrusted X-Forwarded-For",
				slogx.String("event", "requestcontext/ip_spoofing_detected"),
				slogx.String("remoteIP", c.IP()),
				slogx.Any("ips", c.IPs()),
			)
			return nil, err
		}
		return context.WithValue(ctx, clientIPKey{}, ip), nil
	}
}

func resolveClientIP(c *fiber.Ctx, config WithClientIPConfig, proxies []*net.IPNet) (string, error) {
	if config.TrustedHeader != "" {
		if ip := c.Get(config.TrustedHeader); net.ParseIP(ip) != nil {
			return ip, nil
		}
	}

	forwarded := c.IPs()
	if len(forwarded) == 0 {
		return c.IP(), nil
	}

	if len(proxies) > 0 {
		for i := len(forwarded) - 1; i >= 0; i-- {
			ip := net.ParseIP(forwarded[i])
			if ip != nil && !isTrusted(proxies, ip) {
				return forwarded[i], nil
			}
		}
		return forwarded[0], nil
	}

	if config.EnableRejectMalformedRequest {
		return "", &RejectError{Status: fiber.StatusForbidden, Message: "not allowed to access"}
	}
	return forwarded[0], nil
}

func isTrusted(proxies []*net.IPNet, ip net.IP) bool {
	return lo.SomeBy(proxies, func(n *net.IPNet) bool { return n.Contains(ip) })
}

func parseCIDRs(ranges []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, n, err := net.ParseCIDR(r)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse CIDR %q", r)
		}
		nets = append(nets, n)
	}
	return nets, nil
}

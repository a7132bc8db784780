// Package metadata records the caller's IP and User-Agent in the request context.
package metadata

import (
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
)

// MaxForwardedHeaderLength bounds X-Forwarded-For and X-Real-IP.
const MaxForwardedHeaderLength = 500

// Middleware trusts forwarding headers only from configured proxies.
type Middleware struct {
	trusted []netip.Prefix
}

// New parses CIDR prefixes; invalid entries are logged and skipped.
func New(trustedProxies []string, logger *slog.Logger) *Middleware {
	m := &Middleware{}
	for _, raw := range trustedProxies {
		prefix, err := netip.ParsePrefix(raw)
		if err != nil {
			logger.Warn("ignoring invalid trusted proxy", "value", raw, "error", err)
			continue
		}
		m.trusted = append(m.trusted, prefix)
	}
	return m
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), m.clientIP(r), r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) clientIP(r *http.Request) string {
	remote := remoteIP(r.RemoteAddr)
	if remote == "" {
		return "unknown"
	}
	if !m.isTrusted(remote) {
		return remote
	}

	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		forwarded = r.Header.Get("X-Real-IP")
	}
	if forwarded == "" || len(forwarded) > MaxForwardedHeaderLength {
		return remote
	}
	first, _, _ := strings.Cut(forwarded, ",")
	first = strings.TrimSpace(first)
	if _, err := netip.ParseAddr(first); err != nil {
		return remote
	}
	return first
}

func (m *Middleware) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	for _, prefix := range m.trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

func remoteIP(remoteAddr string) string {
	if remoteAddr == "" {
		return ""
	}
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return strings.Trim(remoteAddr, "[]")
	}
	return host
}

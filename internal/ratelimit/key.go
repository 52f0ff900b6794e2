package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// UnknownKey is the shared bucket for requests whose client address cannot
// be determined. Unidentifiable clients throttle each other here; that
// false-positive risk is accepted over letting them bypass the cap.
const UnknownKey = "unknown"

// ClientKey derives the rate-limit key for a request. Proxy-supplied
// headers are honored only when trustProxy is set, since anyone can forge
// X-Forwarded-For on a directly exposed listener. Otherwise the direct
// peer address is used, with UnknownKey as the last resort.
func ClientKey(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			// first hop is the originating client
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				return ip
			}
		}
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	if r.RemoteAddr != "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			return host
		}
		return r.RemoteAddr
	}

	return UnknownKey
}

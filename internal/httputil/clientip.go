// Package httputil holds small HTTP request helpers shared by the API.
package httputil

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP returns the originating client address for a request.
//
// By default it is the host part of RemoteAddr. With trustProxy set,
// the leftmost X-Forwarded-For entry, then X-Real-IP, take precedence;
// enable that only behind a reverse proxy that strips inbound copies of
// those headers, since clients can forge them otherwise.
func ClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := forwardedFor(r); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func forwardedFor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	return strings.TrimSpace(r.Header.Get("X-Real-IP"))
}

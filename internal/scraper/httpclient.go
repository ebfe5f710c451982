package scraper

import (
	"net"
	"net/http"
	"time"
)

const (
	maxErrorExcerpt  = 512
	maxResponseBytes = 16 << 20
)

// NewHTTPClient returns a client suited to a short-lived job talking to a few hosts
func NewHTTPClient(timeout time.Duration) *http.Client {
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: tr}
}

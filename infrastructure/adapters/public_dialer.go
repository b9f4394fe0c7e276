package adapters

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"seo-blog-generator/application/ports/outbound"
	"syscall"
	"time"
)

var ErrNonPublicAddress = errors.New("refusing to connect to a non-public address")

// NewPublicContentFetcher is a ContentFetcher for client-supplied URLs. It
// only connects to public unicast addresses. The check runs on the resolved
// address of every dial, redirects included, and no proxy is used.
func NewPublicContentFetcher(logger outbound.LoggerPort, timeout time.Duration) ContentFetcher {
	dialer := &net.Dialer{
		Timeout:   timeout,
		KeepAlive: 30 * time.Second,
		Control:   publicAddressOnly,
	}
	return &contentFetcher{
		logger: logger,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:                 nil,
				DialContext:           dialer.DialContext,
				ForceAttemptHTTP2:     true,
				MaxIdleConns:          20,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: time.Second,
			},
		},
	}
}

func publicAddressOnly(_ string, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNonPublicAddress, host)
	}
	if !isPublicAddr(addr) {
		return fmt.Errorf("%w: %s", ErrNonPublicAddress, addr)
	}
	return nil
}

var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

func isPublicAddr(addr netip.Addr) bool {
	addr = addr.Unmap()
	switch {
	case addr.IsLoopback(), addr.IsPrivate(), addr.IsUnspecified(),
		addr.IsLinkLocalUnicast(), addr.IsLinkLocalMulticast(),
		addr.IsInterfaceLocalMulticast(), addr.IsMulticast():
		return false
	case sharedAddressSpace.Contains(addr):
		return false
	}
	return true
}

package endpoint

import (
	"errors"
	"fmt"
	"net"
)

// ErrAllocate marks a failure to obtain a free loopback port. It is fatal
// to startup; callers classify it with errors.Is.
var ErrAllocate = errors.New("port allocation failed")

// Allocate binds a loopback listener on port 0, reads back the port the
// OS assigned, and releases the listener immediately so the backend can
// bind it. The release happens before the backend starts; a stolen port
// is accepted as a low-probability startup failure that shows up as a
// readiness timeout.
func Allocate() (Endpoint, error) {
	listener, err := net.Listen("tcp", net.JoinHostPort(Host, "0"))
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: bind %s: %w", ErrAllocate, Host, err)
	}

	addr, ok := listener.Addr().(*net.TCPAddr)
	if !ok {
		listener.Close()
		return Endpoint{}, fmt.Errorf("%w: unexpected listener address %T", ErrAllocate, listener.Addr())
	}
	port := addr.Port

	if err := listener.Close(); err != nil {
		return Endpoint{}, fmt.Errorf("%w: release listener: %w", ErrAllocate, err)
	}
	if port <= 0 || port > 65535 {
		return Endpoint{}, fmt.Errorf("%w: port %d out of range", ErrAllocate, port)
	}

	return New(uint16(port)), nil
}

package endpoint

import (
	"net"
	"strconv"
)

// Host is the fixed loopback address the backend binds.
const Host = "127.0.0.1"

// Endpoint identifies where the spawned backend accepts connections.
type Endpoint struct {
	Host string
	Port uint16
}

// New builds a loopback endpoint for the given port.
func New(port uint16) Endpoint {
	return Endpoint{Host: Host, Port: port}
}

// Addr renders the endpoint as host:port for dialing.
func (e Endpoint) Addr() string {
	return net.JoinHostPort(e.Host, strconv.Itoa(int(e.Port)))
}

// URL renders the endpoint as the HTTP base URL published to the UI.
func (e Endpoint) URL() string {
	return "http://" + e.Addr()
}

// Valid reports whether the endpoint carries a usable port.
func (e Endpoint) Valid() bool {
	return e.Host != "" && e.Port > 0
}

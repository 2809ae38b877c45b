// Where: internal/port/probe.go
// What: Port availability probe for the preflight check.
// Why: Warn early when a chosen dev port is already bound on this host.
package port

import (
	"fmt"
	"net"
)

// Available reports whether a TCP port can currently be bound on all
// interfaces. Binding to ":port" rather than loopback matches how the
// scaffolded dev servers listen.
func Available(port int) bool {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return false
	}
	_ = listener.Close()
	return true
}

package contest

import (
	"fmt"
	"strings"
)

// Host identifies a contest provider
type Host int

const (
	AtCoder Host = iota
	Codeforces
	Yukicoder
	Topcoder
)

var hostNames = [...]string{
	AtCoder:    "AtCoder",
	Codeforces: "Codeforces",
	Yukicoder:  "Yukicoder",
	Topcoder:   "Topcoder",
}

// Hosts returns every known host in display order.
// Hosts without an adapter are still listed; they simply never have contests.
func Hosts() []Host {
	return []Host{AtCoder, Codeforces, Yukicoder, Topcoder}
}

// String returns the display name of the host
func (h Host) String() string {
	if h < 0 || int(h) >= len(hostNames) {
		return fmt.Sprintf("Host(%d)", int(h))
	}
	return hostNames[h]
}

// ParseHost resolves a host name, ignoring case and surrounding whitespace
func ParseHost(name string) (Host, error) {
	name = strings.TrimSpace(name)
	for _, h := range Hosts() {
		if strings.EqualFold(h.String(), name) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown host: %q", name)
}

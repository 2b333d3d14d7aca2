package config

import (
	"strconv"
	"strings"

	"github.com/cleodb/godbc/diag"
	"github.com/cleodb/godbc/errors"
)

// DefaultPort is used when an address omits its port.
const DefaultPort uint16 = 10800

// EndPoint is one server address: a host, a base port and an optional
// range of extra ports to probe after it.
type EndPoint struct {
	Host  string
	Port  uint16
	Range uint16
}

func (e EndPoint) String() string {
	s := e.Host + ":" + strconv.Itoa(int(e.Port))
	if e.Range > 0 {
		s += ".." + strconv.Itoa(int(e.Port)+int(e.Range))
	}
	return s
}

// AddressesToString renders endpoints in the connection string form,
// comma separated.
func AddressesToString(endPoints []EndPoint) string {
	parts := make([]string, 0, len(endPoints))
	for _, ep := range endPoints {
		parts = append(parts, ep.String())
	}
	return strings.Join(parts, ",")
}

// ParseAddress splits a comma-separated address list. Unparseable entries
// are skipped with a diagnostic record rather than failing the whole
// list; empty entries are ignored silently.
func ParseAddress(value string, diagnostics *diag.Storage) []EndPoint {
	var out []EndPoint
	for _, addr := range strings.Split(value, ",") {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		ep, err := ParseSingleAddress(addr)
		if err != nil {
			if diagnostics != nil {
				diagnostics.AddStatusRecord(diag.StateOptionValueChanged,
					"Unable to parse address, ignoring: "+addr)
			}
			continue
		}
		out = append(out, ep)
	}
	return out
}

// ParseSingleAddress parses one host[:port[..last]] entry.
func ParseSingleAddress(value string) (EndPoint, error) {
	colons := strings.Count(value, ":")
	switch colons {
	case 0:
		if value == "" {
			return EndPoint{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).Path("address").Detail("empty address").Build()
		}
		return EndPoint{Host: value, Port: DefaultPort}, nil
	case 1:
		idx := strings.IndexByte(value, ':')
		host := value[:idx]
		if host == "" {
			return EndPoint{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).Path("address").Detail("empty host").Build()
		}
		port, rng, err := ParsePortRange(value[idx+1:])
		if err != nil {
			return EndPoint{}, err
		}
		return EndPoint{Host: host, Port: port, Range: rng}, nil
	default:
		return EndPoint{}, errors.New(errors.PhaseConfig, errors.KindInvalidInput).Path("address").
			Detail("too many colons in address: %s", value).Build()
	}
}

// ParsePortRange parses port or port..last; last must not precede port.
func ParsePortRange(value string) (port uint16, rng uint16, err error) {
	idx := strings.Index(value, "..")
	if idx < 0 {
		port, err = ParsePort(value)
		return port, 0, err
	}
	port, err = ParsePort(value[:idx])
	if err != nil {
		return 0, 0, err
	}
	last, err := ParsePort(value[idx+2:])
	if err != nil {
		return 0, 0, err
	}
	if last < port {
		return 0, 0, errors.New(errors.PhaseConfig, errors.KindInvalidInput).Path("port_range").
			Detail("port range is inverted: %s", value).Build()
	}
	return port, uint16(last - port), nil
}

// ParsePort parses a decimal TCP port, 1 to 65535.
func ParsePort(value string) (uint16, error) {
	value = strings.TrimSpace(value)
	if value == "" || len(value) > 5 {
		return 0, errors.New(errors.PhaseConfig, errors.KindInvalidInput).Path("port").Detail("invalid port: %s", value).Build()
	}
	n, err := strconv.ParseUint(value, 10, 16)
	if err != nil || n == 0 {
		return 0, errors.New(errors.PhaseConfig, errors.KindInvalidInput).Path("port").Detail("invalid port: %s", value).Build()
	}
	return uint16(n), nil
}

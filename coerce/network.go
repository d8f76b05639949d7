package coerce

import (
	"net"
	"strings"

	"github.com/asaskevich/govalidator"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
)

// addrRule inet and cidr. cidr refuses bits set to the right of the mask.
type addrRule struct {
	shapes
	network bool
}

func (r *addrRule) Coerce(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, wrongType("string", raw)
	}
	s = strings.TrimSpace(s)
	if !govalidator.IsIP(s) && !govalidator.IsCIDR(s) {
		return nil, Errorf(CodeBadFormat, "%q is not a valid IP address", s)
	}
	if !r.network || !strings.Contains(s, "/") {
		return s, nil
	}
	ip, n, err := net.ParseCIDR(s)
	if err != nil {
		return nil, Errorf(CodeBadFormat, "%q is not a valid network: %v", s, err)
	}
	if !ip.Equal(n.IP) {
		return nil, Errorf(CodeHostBitsSet, "invalid cidr value %q: value has bits set to right of mask", s)
	}
	return s, nil
}

// macRule macaddr (6 octets) and macaddr8 (8 octets), in any notation
// net.ParseMAC reads: colon, hyphen or dotted groups of four.
type macRule struct {
	shapes
	octets int
}

func (r *macRule) Coerce(raw interface{}) (interface{}, error) {
	s, ok := raw.(string)
	if !ok {
		return nil, wrongType("string", raw)
	}
	s = strings.TrimSpace(s)
	if hw, err := net.ParseMAC(s); err != nil || len(hw) != r.octets {
		return nil, Errorf(CodeBadFormat, "%q is not a valid %d-octet MAC address", s, r.octets)
	}
	return s, nil
}

func init() {
	RegisterRule(kind.Inet, func(*column.Descriptor) Rule {
		return &addrRule{shapes: shapes{in: []Shape{ShapeString}, out: ShapeString}}
	})
	RegisterRule(kind.Cidr, func(*column.Descriptor) Rule {
		return &addrRule{shapes: shapes{in: []Shape{ShapeString}, out: ShapeString}, network: true}
	})
	RegisterRule(kind.Macaddr, func(*column.Descriptor) Rule {
		return &macRule{shapes: shapes{in: []Shape{ShapeString}, out: ShapeString}, octets: 6}
	})
	RegisterRule(kind.Macaddr8, func(*column.Descriptor) Rule {
		return &macRule{shapes: shapes{in: []Shape{ShapeString}, out: ShapeString}, octets: 8}
	})
}

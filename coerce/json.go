package coerce

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/kind"
)

// jsonRule json and jsonb. Text must already be a JSON document; any
// other value is marshaled.
type jsonRule struct {
	shapes
}

func (r *jsonRule) Coerce(raw interface{}) (interface{}, error) {
	var doc []byte
	switch v := raw.(type) {
	case json.RawMessage:
		doc = v
	case []byte:
		doc = v
	case string:
		doc = []byte(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, Errorf(CodeWrongType, "expected a JSON-serializable value, received %T: %v", raw, err)
		}
		return json.RawMessage(b), nil
	}
	if !json.Valid(doc) {
		return nil, Errorf(CodeBadFormat, "invalid JSON document")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, doc); err != nil {
		return nil, Errorf(CodeBadFormat, "invalid JSON document: %v", err)
	}
	return json.RawMessage(buf.Bytes()), nil
}

// uuidRule uuid, normalized to lower-case canonical text.
type uuidRule struct {
	shapes
}

func (r *uuidRule) Coerce(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case uuid.UUID:
		return v.String(), nil
	case string:
		u, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return nil, Errorf(CodeBadFormat, "%q is not a valid uuid", v)
		}
		return u.String(), nil
	}
	return nil, wrongType("uuid string", raw)
}

func init() {
	for _, k := range []kind.Kind{kind.JSON, kind.JSONB} {
		RegisterRule(k, func(*column.Descriptor) Rule {
			return &jsonRule{shapes{in: []Shape{ShapeJSON}, out: ShapeRawJSON}}
		})
	}
	RegisterRule(kind.UUID, func(*column.Descriptor) Rule {
		return &uuidRule{shapes{in: []Shape{ShapeString}, out: ShapeString}}
	})
}

package kind

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse errors.
var (
	ErrUnknownType   = errors.New("unknown data type")
	ErrInvalidParams = errors.New("invalid type parameters")
)

var paramsRe = regexp.MustCompile(`\((.*)\)`)

// aliases maps alternative spellings onto kinds.
var aliases = map[string]Kind{
	"bool":                        Boolean,
	"int2":                        SmallInt,
	"int":                         Integer,
	"int4":                        Integer,
	"int8":                        BigInt,
	"serial4":                     Serial,
	"serial8":                     BigSerial,
	"float4":                      Real,
	"float8":                      DoublePrecision,
	"double":                      DoublePrecision,
	"decimal":                     Numeric,
	"char":                        Character,
	"bpchar":                      Character,
	"varchar":                     CharacterVarying,
	"timestamp without time zone": Timestamp,
	"timestamptz":                 TimestampTZ,
	"time without time zone":      Time,
	"timetz":                      TimeTZ,
	"varbit":                      BitVarying,
}

// Parse splits a type string such as "numeric(5,2)", "varchar(20)" or
// "timestamp(3) with time zone" into its kind and parameters.
func Parse(typ string) (Kind, []int, error) {
	s := strings.ToLower(strings.TrimSpace(typ))
	if strings.HasSuffix(s, "[]") {
		return "", nil, errors.Wrapf(ErrUnknownType, "array type %q", typ)
	}

	var params []int
	if loc := paramsRe.FindStringSubmatchIndex(s); loc != nil {
		var err error
		params, err = strToIntArray(strings.Split(s[loc[2]:loc[3]], ","))
		if err != nil {
			return "", nil, errors.Wrapf(ErrInvalidParams, "%q: %v", typ, err)
		}
		s = s[:loc[0]] + s[loc[1]:]
	}
	s = strings.Join(strings.Fields(s), " ")

	k := Kind(s)
	if alias, ok := aliases[s]; ok {
		k = alias
	}
	info, ok := Lookup(k)
	if !ok || k == Enum {
		return "", nil, errors.Wrapf(ErrUnknownType, "%q", typ)
	}

	switch info.Params {
	case ParamsNone:
		if len(params) > 0 {
			return "", nil, errors.Wrapf(ErrInvalidParams, "%s takes no parameters", k)
		}
	case ParamsLength:
		if len(params) > 1 || (len(params) == 1 && params[0] < 1) {
			return "", nil, errors.Wrapf(ErrInvalidParams, "%s length must be a single positive number", k)
		}
	case ParamsPrecisionScale:
		if len(params) > 2 {
			return "", nil, errors.Wrapf(ErrInvalidParams, "%s takes precision and scale", k)
		}
		if len(params) > 0 && params[0] < 1 {
			return "", nil, errors.Wrapf(ErrInvalidParams, "%s precision must be positive", k)
		}
		if len(params) == 2 && (params[1] < 0 || params[1] > params[0]) {
			return "", nil, errors.Wrapf(ErrInvalidParams, "%s scale must be between 0 and the precision", k)
		}
	case ParamsTimePrecision:
		if len(params) > 1 || (len(params) == 1 && (params[0] < 0 || params[0] > 6)) {
			return "", nil, errors.Wrapf(ErrInvalidParams, "%s precision must be between 0 and 6", k)
		}
	}
	return k, params, nil
}

func strToIntArray(str []string) ([]int, error) {
	var err error
	ints := make([]int, len(str))
	for i, strVal := range str {
		ints[i], err = strconv.Atoi(strings.TrimSpace(strVal))
		if err != nil {
			return nil, err
		}
	}

	return ints, nil
}

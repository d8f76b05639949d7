// Package kind holds the column data kinds and the capability table that
// decides which modifiers each kind accepts.
package kind

import (
	"strconv"
	"strings"
)

// Kind column data kind
type Kind string

// Data kinds. The value is the catalog spelling without type parameters.
const (
	Boolean          Kind = "boolean"
	SmallInt         Kind = "smallint"
	Integer          Kind = "integer"
	BigInt           Kind = "bigint"
	Serial           Kind = "serial"
	BigSerial        Kind = "bigserial"
	Real             Kind = "real"
	DoublePrecision  Kind = "double precision"
	Numeric          Kind = "numeric"
	Character        Kind = "character"
	CharacterVarying Kind = "character varying"
	Text             Kind = "text"
	Bytea            Kind = "bytea"
	Date             Kind = "date"
	Timestamp        Kind = "timestamp"
	TimestampTZ      Kind = "timestamp with time zone"
	Time             Kind = "time"
	TimeTZ           Kind = "time with time zone"
	Inet             Kind = "inet"
	Cidr             Kind = "cidr"
	Macaddr          Kind = "macaddr"
	Macaddr8         Kind = "macaddr8"
	Bit              Kind = "bit"
	BitVarying       Kind = "bit varying"
	TSVector         Kind = "tsvector"
	TSQuery          Kind = "tsquery"
	XML              Kind = "xml"
	JSON             Kind = "json"
	JSONB            Kind = "jsonb"
	UUID             Kind = "uuid"
	Enum             Kind = "enum"
)

// Family groups kinds that share literal canonicalization.
type Family int

const (
	FamilyText Family = iota
	FamilyBoolean
	FamilyInteger
	FamilyFloat
	FamilyNumeric
	FamilyBytes
	FamilyDate
	FamilyTimestamp
	FamilyJSON
	FamilyUUID
)

// Params type parameters a kind takes.
type Params int

const (
	ParamsNone Params = iota
	ParamsLength
	ParamsPrecisionScale
	ParamsTimePrecision
)

// Info capability record of a kind.
type Info struct {
	Kind            Kind
	Cast            string // cast used in canonical literals
	PgName          string // internal catalog name
	Family          Family
	Params          Params
	Defaultable     bool // default(raw) is legal
	Identity        bool // generated ... as identity is legal
	ImplicitDefault bool // sequence-backed, always has a value
	ImplicitNotNull bool
	DefaultLength   int // length when none is given, 0 means unbounded

	prefix string // type name before the parameter list
	suffix string // type name after the parameter list
}

var infos = map[Kind]Info{
	Boolean:          {Cast: "boolean", PgName: "bool", Family: FamilyBoolean, Defaultable: true},
	SmallInt:         {Cast: "smallint", PgName: "int2", Family: FamilyInteger, Defaultable: true, Identity: true},
	Integer:          {Cast: "integer", PgName: "int4", Family: FamilyInteger, Defaultable: true, Identity: true},
	BigInt:           {Cast: "bigint", PgName: "int8", Family: FamilyInteger, Defaultable: true, Identity: true},
	Serial:           {Cast: "integer", PgName: "int4", Family: FamilyInteger, ImplicitDefault: true, ImplicitNotNull: true},
	BigSerial:        {Cast: "bigint", PgName: "int8", Family: FamilyInteger, ImplicitDefault: true, ImplicitNotNull: true},
	Real:             {Cast: "real", PgName: "float4", Family: FamilyFloat, Defaultable: true},
	DoublePrecision:  {Cast: "double precision", PgName: "float8", Family: FamilyFloat, Defaultable: true},
	Numeric:          {Cast: "numeric", PgName: "numeric", Family: FamilyNumeric, Params: ParamsPrecisionScale, Defaultable: true},
	Character:        {Cast: "bpchar", PgName: "bpchar", Params: ParamsLength, Defaultable: true, DefaultLength: 1},
	CharacterVarying: {Cast: "character varying", PgName: "varchar", Params: ParamsLength, Defaultable: true},
	Text:             {Cast: "text", PgName: "text", Defaultable: true},
	Bytea:            {Cast: "bytea", PgName: "bytea", Family: FamilyBytes, Defaultable: true},
	Date:             {Cast: "date", PgName: "date", Family: FamilyDate, Defaultable: true},
	Timestamp:        {Cast: "timestamp without time zone", PgName: "timestamp", Family: FamilyTimestamp, Params: ParamsTimePrecision, Defaultable: true},
	TimestampTZ:      {Cast: "timestamp with time zone", PgName: "timestamptz", Family: FamilyTimestamp, Params: ParamsTimePrecision, Defaultable: true, prefix: "timestamp", suffix: " with time zone"},
	Time:             {Cast: "time without time zone", PgName: "time", Params: ParamsTimePrecision, Defaultable: true},
	TimeTZ:           {Cast: "time with time zone", PgName: "timetz", Params: ParamsTimePrecision, Defaultable: true, prefix: "time", suffix: " with time zone"},
	Inet:             {Cast: "inet", PgName: "inet", Defaultable: true},
	Cidr:             {Cast: "cidr", PgName: "cidr", Defaultable: true},
	Macaddr:          {Cast: "macaddr", PgName: "macaddr", Defaultable: true},
	Macaddr8:         {Cast: "macaddr8", PgName: "macaddr8", Defaultable: true},
	Bit:              {Cast: `"bit"`, PgName: "bit", Params: ParamsLength, Defaultable: true, DefaultLength: 1},
	BitVarying:       {Cast: "bit varying", PgName: "varbit", Params: ParamsLength, Defaultable: true},
	TSVector:         {Cast: "tsvector", PgName: "tsvector", Defaultable: true},
	TSQuery:          {Cast: "tsquery", PgName: "tsquery", Defaultable: true},
	XML:              {Cast: "xml", PgName: "xml", Defaultable: true},
	JSON:             {Cast: "json", PgName: "json", Family: FamilyJSON, Defaultable: true},
	JSONB:            {Cast: "jsonb", PgName: "jsonb", Family: FamilyJSON, Defaultable: true},
	UUID:             {Cast: "uuid", PgName: "uuid", Family: FamilyUUID, Defaultable: true},
	Enum:             {Family: FamilyText, Defaultable: true},
}

func init() {
	for k, info := range infos {
		info.Kind = k
		if info.prefix == "" {
			info.prefix = string(k)
		}
		infos[k] = info
	}
}

// Lookup returns the capability record of k.
func Lookup(k Kind) (Info, bool) {
	info, ok := infos[k]
	return info, ok
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := infos[k]
	return ok
}

// Info returns the capability record of k, the zero Info for unknown kinds.
func (k Kind) Info() Info {
	return infos[k]
}

// IsIntegerFamily reports whether k stores whole numbers.
func (k Kind) IsIntegerFamily() bool {
	return infos[k].Family == FamilyInteger
}

// TypeName renders the data type with its parameters, e.g. numeric(5,2)
// or timestamp(3) with time zone. Parameters below zero are treated as unset.
func (i Info) TypeName(params ...int) string {
	set := make([]string, 0, len(params))
	for _, p := range params {
		if p < 0 {
			break
		}
		set = append(set, strconv.Itoa(p))
	}
	if len(set) == 0 {
		return i.prefix + i.suffix
	}
	return i.prefix + "(" + strings.Join(set, ",") + ")" + i.suffix
}

// Kinds returns every known kind.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(infos))
	for k := range infos {
		kinds = append(kinds, k)
	}
	return kinds
}

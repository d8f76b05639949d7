package validator

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/teamlint/pg-column/coerce"
	"github.com/teamlint/pg-column/column"
)

// ErrUnknownColumn a primary key names a column the table does not have.
var ErrUnknownColumn = errors.New("unknown column")

// Errors column errors of one record, sorted by column.
type Errors []*coerce.Error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// Table contracts of the columns of one table.
type Table struct {
	Name      string
	columns   []string
	contracts map[string]*Contract
}

// NewTable derives the contracts of every column of set. primaryKey lists
// the primary key members.
func NewTable(name string, set column.Set, primaryKey ...string) (*Table, error) {
	pk := make(map[string]bool, len(primaryKey))
	for _, c := range primaryKey {
		if _, ok := set[c]; !ok {
			return nil, errors.Wrapf(ErrUnknownColumn, "table %s: primary key column %s", name, c)
		}
		pk[c] = true
	}
	t := &Table{
		Name:      name,
		columns:   set.Names(),
		contracts: make(map[string]*Contract, len(set)),
	}
	for _, c := range t.columns {
		contract, err := Derive(set[c], pk[c])
		if err != nil {
			return nil, errors.Wrapf(err, "table %s: column %s", name, c)
		}
		t.contracts[c] = contract
	}
	return t, nil
}

// Columns returns the column names in sorted order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Contract returns the contract of a column.
func (t *Table) Contract(name string) (*Contract, bool) {
	c, ok := t.contracts[name]
	return c, ok
}

// Parse validates every column of record. A missing key is an absent
// value; keys that name no column are dropped. Either every column parses
// and the coerced record is returned, or Errors lists every failure.
// Absent columns are left out of the result.
func (t *Table) Parse(record map[string]interface{}) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(t.columns))
	var errs Errors
	for _, name := range t.columns {
		raw, ok := record[name]
		if !ok {
			raw = Absent
		}
		v, err := t.contracts[name].Parse(raw)
		if err != nil {
			errs = append(errs, columnError(name, err))
			continue
		}
		if v != Absent {
			out[name] = v
		}
	}
	if len(errs) > 0 {
		sort.SliceStable(errs, func(i, j int) bool { return errs[i].Column < errs[j].Column })
		return nil, errs
	}
	return out, nil
}

// ParseJSON decodes a JSON object and parses it. Numbers keep their text
// so that large integers survive.
func (t *Table) ParseJSON(data []byte) (map[string]interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var record map[string]interface{}
	if err := dec.Decode(&record); err != nil {
		return nil, errors.Wrapf(err, "table %s: decode record", t.Name)
	}
	return t.Parse(record)
}

func columnError(name string, err error) *coerce.Error {
	var e *coerce.Error
	if errors.As(err, &e) {
		return e.WithColumn(name)
	}
	return coerce.Errorf(coerce.CodeWrongType, "%v", err).WithColumn(name)
}

package config

import (
	"io"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/teamlint/pg-column/kind"
)

// Config for pg-column
type Config struct {
	Logger LoggerCfg           // 日志配置
	Tables map[string]TableCfg // 表结构, 表名 => 表配置
}

// LoggerCfg path of the logger config.
type LoggerCfg struct {
	Caller        bool
	Level         string
	HumanReadable bool
}

// TableCfg columns and primary key of one table.
//
// YAML config is read as YAML 1.1, so unquoted keys such as n, y, no, yes,
// off and on turn into "false" or "true". Quote such column and table
// names; Validate rejects the mangled ones.
type TableCfg struct {
	PrimaryKey []string
	Columns    map[string]ColumnCfg
}

// ColumnCfg one column: its type and modifiers.
type ColumnCfg struct {
	Type        string      `valid:"required,pgtype"` // 列类型, 如 numeric(5,2), 枚举为 enum
	NotNull     bool        // NOT NULL
	Default     interface{} // 默认值
	DefaultNull bool        // 默认值为 NULL
	DefaultExpr string      // 默认值表达式, 原样输出, 如 now()
	Identity    string      `valid:"in(always|by-default),optional"`
	RenameFrom  string      // 原列名
	Enum        string      // 枚举类型名
	Members     []string    // 枚举成员
}

// Identity modes accepted in configuration.
const (
	IdentityAlways    = "always"
	IdentityByDefault = "by-default"
)

func init() {
	govalidator.TagMap["pgtype"] = govalidator.Validator(func(str string) bool {
		if str == string(kind.Enum) {
			return true
		}
		_, _, err := kind.Parse(str)
		return err == nil
	})
}

// Validate config data.
func (c Config) Validate() error {
	if _, err := govalidator.ValidateStruct(c.Logger); err != nil {
		return errors.Wrap(err, "logger")
	}
	for name, t := range c.Tables {
		if err := checkName(name); err != nil {
			return errors.Wrap(err, "table")
		}
		if err := t.Validate(); err != nil {
			return errors.Wrapf(err, "table %s", name)
		}
	}
	return nil
}

// Validate table config.
func (t TableCfg) Validate() error {
	if len(t.Columns) == 0 {
		return errors.New("no columns")
	}
	for name, c := range t.Columns {
		if err := checkName(name); err != nil {
			return errors.Wrap(err, "column")
		}
		if err := c.Validate(); err != nil {
			return errors.Wrapf(err, "column %s", name)
		}
	}
	for _, pk := range t.PrimaryKey {
		if _, ok := t.Columns[pk]; !ok {
			return errors.Errorf("primary key column %s is not defined", pk)
		}
	}
	return nil
}

// checkName rejects the names a YAML 1.1 boolean key decodes to.
func checkName(name string) error {
	if name == "true" || name == "false" {
		return errors.Errorf("name %q looks like a YAML boolean key, quote it", name)
	}
	return nil
}

// Validate column config.
func (c ColumnCfg) Validate() error {
	if _, err := govalidator.ValidateStruct(c); err != nil {
		return err
	}
	if c.Type == string(kind.Enum) && c.Enum == "" {
		return errors.New("enum column requires an enum type name")
	}
	if c.Type != string(kind.Enum) && (c.Enum != "" || len(c.Members) > 0) {
		return errors.Errorf("enum members given for type %s", c.Type)
	}
	n := 0
	for _, set := range []bool{c.Default != nil, c.DefaultNull, c.DefaultExpr != ""} {
		if set {
			n++
		}
	}
	if n > 1 {
		return errors.New("default, defaultNull and defaultExpr are mutually exclusive")
	}
	return nil
}

// Load reads the config file at path. The format follows the extension.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "error reading config")
	}
	return decode(v)
}

// Read reads config of type typ (yaml, json, toml) from in.
func Read(in io.Reader, typ string) (*Config, error) {
	v := viper.New()
	v.SetConfigType(typ)
	if err := v.ReadConfig(in); err != nil {
		return nil, errors.Wrap(err, "error reading config")
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unable to decode into config struct")
	}
	return &cfg, nil
}

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/teamlint/pg-column/column"
	"github.com/teamlint/pg-column/config"
	"github.com/teamlint/pg-column/literal"
)

// go build -ldflags "-X main.version=1.0.1" main.go
var version = "0.0.1"

var (
	configFlag = &cli.StringFlag{
		Name:    "config",
		Value:   "config.yml",
		Aliases: []string{"c"},
		Usage:   "path to config file",
	}
	tableFlag = &cli.StringFlag{
		Name:     "table",
		Aliases:  []string{"t"},
		Usage:    "table `NAME`",
		Required: true,
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Value:   "json",
		Aliases: []string{"f"},
		Usage:   "output format: json or yaml",
	}
)

func main() {
	app := &cli.App{
		Name:    "pgcol",
		Usage:   "describe postgres columns and validate records against them",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:   "describe",
				Usage:  "print the column descriptors of a table",
				Flags:  []cli.Flag{configFlag, tableFlag, formatFlag},
				Action: describe,
			},
			{
				Name:      "validate",
				Usage:     "validate JSON records, one per line, from a file or stdin",
				ArgsUsage: "[file]",
				Flags:     []cli.Flag{configFlag, tableFlag},
				Action:    validate,
			},
			{
				Name:      "fingerprint",
				Usage:     "print the default fingerprint of a value",
				ArgsUsage: "<value>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "type", Usage: "column `TYPE`, e.g. numeric(5,2)", Required: true},
					&cli.BoolFlag{Name: "expr", Usage: "value is a raw SQL expression"},
				},
				Action: fingerprint,
			},
			{
				Name:  "diff",
				Usage: "compare the columns of a table across two config files",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "from", Usage: "old config `FILE`", Required: true},
					&cli.StringFlag{Name: "to", Usage: "new config `FILE`", Required: true},
					tableFlag,
					formatFlag,
				},
				Action: diff,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func describe(c *cli.Context) error {
	cfg, err := getConf(c.String("config"))
	if err != nil {
		return err
	}
	set, err := cfg.Set(c.String("table"))
	if err != nil {
		return err
	}
	logrus.WithField("table", c.String("table")).WithField("columns", len(set)).Infoln("describe")
	switch c.String("format") {
	case "yaml", "yml":
		return set.WriteYAML(c.App.Writer)
	case "json":
		return set.WriteJSON(c.App.Writer)
	}
	return errors.Errorf("unknown format %q", c.String("format"))
}

func validate(c *cli.Context) error {
	cfg, err := getConf(c.String("config"))
	if err != nil {
		return err
	}
	tbl, err := cfg.Validator(c.String("table"))
	if err != nil {
		return err
	}
	var in io.Reader = os.Stdin
	if path := c.Args().First(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	data, err := ioutil.ReadAll(in)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(c.App.Writer)
	failed := 0
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		out, err := tbl.ParseJSON(line)
		if err != nil {
			failed++
			logrus.WithField("table", tbl.Name).WithField("line", i+1).WithError(err).Errorln("invalid record")
			continue
		}
		if err := enc.Encode(out); err != nil {
			return err
		}
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d invalid records", failed), 1)
	}
	return nil
}

func fingerprint(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("expected exactly one value")
	}
	d, err := column.Parse(c.String("type"))
	if err != nil {
		return err
	}
	arg := c.Args().First()
	var raw interface{} = arg
	if c.Bool("expr") {
		raw = literal.Expr(arg)
	} else {
		dec := json.NewDecoder(bytes.NewReader([]byte(arg)))
		dec.UseNumber()
		var v interface{}
		if dec.Decode(&v) == nil && !dec.More() {
			raw = v
		}
	}
	if err := d.SetDefault(raw); err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, d.Default)
	return err
}

func diff(c *cli.Context) error {
	table := c.String("table")
	sets := make([]column.Set, 2)
	for i, path := range []string{c.String("from"), c.String("to")} {
		cfg, err := getConf(path)
		if err != nil {
			return err
		}
		set, err := cfg.Set(table)
		if errors.Is(err, config.ErrTableNotFound) {
			set = column.Set{}
		} else if err != nil {
			return err
		}
		sets[i] = set
	}
	changes := column.Diff(sets[0], sets[1])
	logrus.WithField("table", table).WithField("changes", len(changes)).Infoln("diff")
	switch c.String("format") {
	case "yaml", "yml":
		enc := yaml.NewEncoder(c.App.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(changes); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(changes)
	}
	return errors.Errorf("unknown format %q", c.String("format"))
}

// getConf load config from file.
func getConf(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config error")
	}
	initLogger(cfg.Logger)
	return cfg, nil
}

// initLogger init logrus preferences.
func initLogger(cfg config.LoggerCfg) {
	logrus.SetReportCaller(cfg.Caller)
	if !cfg.HumanReadable {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// Copyright (c) Facebook, Inc. and its affiliates. All Rights Reserved

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	vec "github.com/facebookincubator/go-vecval"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/urfave/cli/v2"
)

// setup loads the config, applies flag overrides and configures logging
func setup(c *cli.Context) (*session, config, error) {
	path, explicit := defaultConfigPath(), false
	if c.IsSet("config") {
		path, explicit = c.String("config"), true
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return nil, cfg, err
	}
	if c.IsSet("kind") {
		cfg.Kind = c.String("kind")
	}
	if c.IsSet("radix") {
		cfg.Radix = c.Int("radix")
	}
	if c.IsSet("verbose") {
		cfg.Verbosity = c.Int("verbose")
	}
	commonlog.Configure(cfg.Verbosity, nil)
	s, err := newSession(cfg)
	return s, cfg, err
}

// action adapts a session method taking exactly n positional arguments
func action(n int, run func(s *session, args []string) (string, error)) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != n {
			return fmt.Errorf("%s: expected %d arguments, got %q", c.Command.Name, n, c.Args().Slice())
		}
		s, _, err := setup(c)
		if err != nil {
			return err
		}
		out, err := run(s, c.Args().Slice())
		if err != nil {
			return fmt.Errorf("%s: %w", c.Command.Name, err)
		}
		fmt.Fprintln(c.App.Writer, out)
		return nil
	}
}

func newApp() *cli.App {
	inputFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:     "input",
			Aliases:  []string{"in", "i"},
			Usage:    "file containing a serialized vector",
			Required: true,
		}
	}
	return &cli.App{
		Name:  "vecval",
		Usage: "evaluate and serialize bitcode integer vectors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "TOML config file",
			},
			&cli.StringFlag{
				Name:    "kind",
				Aliases: []string{"k"},
				Usage:   "element kind: i1, i8, i16, i32 or i64",
			},
			&cli.IntFlag{
				Name:  "radix",
				Usage: "output radix, 10 or 16",
			},
			&cli.IntFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log verbosity",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "apply a lane-wise binary operation",
				ArgsUsage: "OP A B",
				Action: action(3, func(s *session, a []string) (string, error) {
					return s.eval(a[0], a[1], a[2])
				}),
			},
			{
				Name:      "cmp",
				Usage:     "compare two vectors lane by lane",
				ArgsUsage: "PRED A B",
				Action: action(3, func(s *session, a []string) (string, error) {
					return s.compare(a[0], a[1], a[2])
				}),
			},
			{
				Name:      "insert",
				Usage:     "replace one lane of a vector",
				ArgsUsage: "V ELEMENT INDEX",
				Action: action(3, func(s *session, a []string) (string, error) {
					return s.insert(a[0], a[1], a[2])
				}),
			},
			{
				Name:      "read",
				Usage:     "read one lane through the foreign access protocol",
				ArgsUsage: "V INDEX",
				Action: action(2, func(s *session, a []string) (string, error) {
					return s.read(a[0], a[1])
				}),
			},
			{
				Name:      "size",
				Usage:     "report the size through the foreign access protocol",
				ArgsUsage: "V",
				Action: action(1, func(s *session, a []string) (string, error) {
					return s.size(a[0])
				}),
			},
			{
				Name:      "hash",
				Usage:     "print the 64 bit hash of a vector",
				ArgsUsage: "V",
				Action: action(1, func(s *session, a []string) (string, error) {
					v, err := s.parse(a[0])
					if err != nil {
						return "", err
					}
					return fmt.Sprintf("%#016x", vec.HashValue(v)), nil
				}),
			},
			{
				Name:      "encode",
				Usage:     "serialize a vector to a file",
				ArgsUsage: "V",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"out", "o"},
						Value:   "vec.bin",
						Usage:   "name of the file to write the vector to",
					},
					&cli.StringFlag{
						Name:  "format",
						Value: "bin",
						Usage: "bin (bit packed) or cbor",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("encode: expected one vector, got %q", c.Args().Slice())
					}
					output := c.String("output")
					if _, err := os.Stat(output); !os.IsNotExist(err) {
						return fmt.Errorf("refusing to over-write existing file: %s", output)
					}
					s, _, err := setup(c)
					if err != nil {
						return err
					}
					v, err := s.parse(c.Args().First())
					if err != nil {
						return err
					}
					o, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("error opening %s: %s", output, err)
					}
					defer o.Close()
					n, err := encode(o, v, c.String("format"))
					if err != nil {
						return fmt.Errorf("error writing vector: %w", err)
					}
					s.log.Infof("wrote %d bytes to %s", n, output)
					return nil
				},
			},
			{
				Name:  "decode",
				Usage: "read a serialized vector and print it",
				Flags: []cli.Flag{
					inputFlag(),
					&cli.StringFlag{
						Name:  "format",
						Value: "bin",
						Usage: "bin (bit packed) or cbor",
					},
				},
				Action: func(c *cli.Context) error {
					s, _, err := setup(c)
					if err != nil {
						return err
					}
					v, err := decodeFile(c.String("input"), c.String("format"))
					if err != nil {
						return fmt.Errorf("decode: can't read input file: %w", err)
					}
					fmt.Fprintln(c.App.Writer, s.format(v))
					return nil
				},
			},
			{
				Name:  "describe",
				Usage: "read the header from a serialized vector and describe it",
				Flags: []cli.Flag{inputFlag()},
				Action: func(c *cli.Context) error {
					h, err := vec.ReadHeaderFromPath(c.String("input"))
					if err != nil {
						return fmt.Errorf("describe: can't read input file: %w", err)
					}
					fmt.Fprintln(c.App.Writer, describe(h))
					return nil
				},
			},
			{
				Name:  "repl",
				Usage: "evaluate vector instructions interactively",
				Action: func(c *cli.Context) error {
					s, cfg, err := setup(c)
					if err != nil {
						return err
					}
					return runRepl(s, cfg.historyPath(), c.App.Writer, c.App.ErrWriter)
				},
			},
		},
	}
}

func encode(w io.Writer, v vec.Value, format string) (int64, error) {
	switch strings.ToLower(format) {
	case "bin":
		return vec.WriteValue(w, v)
	case "cbor":
		data, err := vec.MarshalValue(v)
		if err != nil {
			return 0, err
		}
		n, err := w.Write(data)
		return int64(n), err
	}
	return 0, fmt.Errorf("unknown format %q", format)
}

func decodeFile(path, format string) (vec.Value, error) {
	switch strings.ToLower(format) {
	case "bin":
		return vec.ReadVectorFromPath(path)
	case "cbor":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return vec.UnmarshalValue(data)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func describe(h vec.Header) string {
	what := "integer"
	if h.Boolean {
		what = "boolean"
	}
	return fmt.Sprintf("vector version %d\n%s - %d lanes of %s", h.Version, what, h.Length, h.Kind())
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

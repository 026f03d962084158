// Command secrandom reads cryptographically secure random bytes from the
// operating system and prints them raw or as typed integer views.
package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/secrandom/secrandom"
)

func main() {
	app := &cli.App{
		Name:  "secrandom",
		Usage: "read cryptographically secure random bytes from the operating system",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "device",
				Usage: "override the entropy device `PATH`",
			},
			&cli.StringFlag{
				Name:  "mandatory",
				Usage: "force the named `BACKEND` to be tried first",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			logrus.SetLevel(logrus.WarnLevel)
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			bytesCommand,
			dumpCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "secrandom: %v\n", err)
		os.Exit(1)
	}
}

var bytesCommand = &cli.Command{
	Name:  "bytes",
	Usage: "refill once and print the raw bytes",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "num",
			Aliases: []string{"n"},
			Value:   32,
			Usage:   "number of bytes to read",
		},
		&cli.BoolFlag{
			Name:  "base64",
			Usage: "encode as base64 instead of hex",
		},
	},
	Action: runBytes,
}

func runBytes(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if _, err := s.Refill(c.Int("num")); err != nil {
		return errors.Wrap(err, "refill")
	}
	data, err := s.Bytes(0, 0)
	if err != nil {
		return errors.Wrap(err, "bytes")
	}

	if c.Bool("base64") {
		fmt.Println(base64.StdEncoding.EncodeToString(data))
	} else {
		fmt.Println(hex.EncodeToString(data))
	}
	return nil
}

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "refill once and print a typed view, one element per line",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "num",
			Aliases: []string{"n"},
			Value:   32,
			Usage:   "number of bytes to read",
		},
		&cli.IntFlag{
			Name:  "width",
			Value: 8,
			Usage: "element width in bits (8, 16 or 32)",
		},
		&cli.IntFlag{
			Name:  "count",
			Usage: "number of elements, 0 for all",
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "1-based element offset, 0 for the start",
		},
	},
	Action: runDump,
}

func runDump(c *cli.Context) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if _, err := s.Refill(c.Int("num")); err != nil {
		return errors.Wrap(err, "refill")
	}

	count := c.Int("count")
	offset := c.Int("offset")
	switch c.Int("width") {
	case 8:
		vals, err := s.U8(count, offset)
		if err != nil {
			return errors.Wrap(err, "u8")
		}
		for _, v := range vals {
			fmt.Println(v)
		}
	case 16:
		vals, err := s.U16(count, offset)
		if err != nil {
			return errors.Wrap(err, "u16")
		}
		for _, v := range vals {
			fmt.Println(v)
		}
	case 32:
		vals, err := s.U32(count, offset)
		if err != nil {
			return errors.Wrap(err, "u32")
		}
		for _, v := range vals {
			fmt.Println(v)
		}
	default:
		return errors.Errorf("unsupported width %d: must be 8, 16 or 32", c.Int("width"))
	}
	return nil
}

func openSession(c *cli.Context) (*secrandom.Session, error) {
	var opts []secrandom.Option
	if path := c.String("device"); path != "" {
		opts = append(opts, secrandom.WithDevicePath(path))
	}
	if name := c.String("mandatory"); name != "" {
		opts = append(opts, secrandom.WithMandatory(name))
	}
	s, err := secrandom.Open(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "open session")
	}
	return s, nil
}

// Command yams encodes and decodes standard Base64.
//
// Usage:
//
//    yams [-c config.yaml] [-d] [-w width] [-strict] [-o output] [file]
//
// With no file, or when file is -, yams reads standard input.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ericlagergren/yams/base64"
	"github.com/ericlagergren/yams/internal/config"
	"github.com/ericlagergren/yams/mapfile"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("yams", flag.ContinueOnError)
	configFile := fs.String("c", "", "config file (yaml)")
	decode := fs.Bool("d", false, "decode instead of encode")
	wrap := fs.Int("w", -1, "wrap encoded lines after `width` characters, 0 disables (default from config)")
	strict := fs.Bool("strict", false, "reject encodings with non-zero padding bits")
	output := fs.String("o", "", "write to `file` instead of standard output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return errors.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *wrap >= 0 {
		cfg.Wrap = *wrap
	}
	if *strict {
		cfg.Strict = true
	}

	logger, err := cfg.Logger.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	name := fs.Arg(0)
	src, err := readInput(name, stdin)
	if err != nil {
		logger.Error("unable to read input",
			zap.String("input", name),
			zap.Error(err),
		)
		return err
	}
	logger.Debug("loaded input",
		zap.String("input", name),
		zap.Int("size", len(src)),
	)

	enc := base64.StdEncoding
	if cfg.Strict {
		enc = enc.Strict()
	}

	var out []byte
	if *decode {
		out, err = decodeInput(enc, src)
		if err != nil {
			logDecodeError(logger, name, err)
			return err
		}
	} else {
		out, err = encodeInput(enc, src, cfg.Wrap, cfg.Separator)
		if err != nil {
			return err
		}
	}

	if err := writeOutput(*output, out, stdout); err != nil {
		logger.Error("unable to write output",
			zap.String("output", *output),
			zap.Error(err),
		)
		return err
	}
	logger.Info("done",
		zap.Bool("decode", *decode),
		zap.Int("input_size", len(src)),
		zap.Int("output_size", len(out)),
	)
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "unable to read standard input")
		}
		return b, nil
	}
	return mapfile.Load(name)
}

func writeOutput(name string, out []byte, stdout io.Writer) error {
	if name == "" || name == "-" {
		_, err := stdout.Write(out)
		return errors.Wrap(err, "unable to write standard output")
	}
	return errors.Wrapf(os.WriteFile(name, out, 0o644), "unable to write %q", name)
}

func encodeInput(enc *base64.Encoding, src []byte, wrap int, sep string) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	var buf bytes.Buffer
	buf.Grow(enc.EncodedLen(len(src)) + len(sep))
	if err := enc.EncodeWrapped(&buf, src, wrap, sep); err != nil {
		return nil, errors.Wrap(err, "unable to encode")
	}
	buf.WriteString(sep)
	return buf.Bytes(), nil
}

func decodeInput(enc *base64.Encoding, src []byte) ([]byte, error) {
	out := make([]byte, enc.DecodedLen(len(src)))
	n, err := enc.Decode(out, src)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode")
	}
	return out[:n], nil
}

func logDecodeError(logger *zap.Logger, name string, err error) {
	var ice base64.InvalidCharacterError
	if errors.As(err, &ice) {
		logger.Error("invalid character",
			zap.String("input", name),
			zap.Uint8("char", ice.Char),
			zap.Int("offset", ice.Offset),
		)
		return
	}
	logger.Error("invalid base64",
		zap.String("input", name),
		zap.Error(err),
	)
}

// Command ccbordump renders a CBOR document as an annotated hex dump
// or, with --diag, as RFC 8949 §8 diagnostic notation.
package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/detcbor/ccbor"
)

// CLI defines the ccbordump command-line interface.
//
// We deliberately keep it minimal:
//   - input: a file path, or "-" for stdin
//   - hex: treat input as hex text instead of raw bytes
//   - diag: print RFC 8949 diagnostic notation instead of an annotated dump
//   - known-tags: a JSON file of {"tag-number": "name"} overriding the
//     dump renderer's default tag names
type CLI struct {
	Input     string `arg:"" optional:"" default:"-" help:"Input file (CBOR bytes), or - for stdin"`
	Hex       bool   `help:"Input is hex-encoded text rather than raw binary"`
	Diag      bool   `help:"Print RFC 8949 diagnostic notation instead of an annotated hex dump"`
	KnownTags string `help:"JSON file mapping tag numbers to names, for dump annotations"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("ccbordump"),
		kong.Description("Inspect canonical CBOR documents: annotated hex dump or diagnostic notation."),
	)

	if err := run(&cli); err != nil {
		ctx.FatalIfErrorf(err)
	}
}

func run(cli *CLI) error {
	data, err := readInput(cli.Input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if cli.Hex {
		s := strings.TrimSpace(string(data))
		data, err = hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("decode hex: %w", err)
		}
	}

	if cli.Diag {
		v, err := ccbor.Decode(data)
		if err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fmt.Println(v.String())
		return nil
	}

	knownTags, err := loadKnownTags(cli.KnownTags)
	if err != nil {
		return fmt.Errorf("load known tags: %w", err)
	}

	out, err := ccbor.Dump(data, knownTags)
	if out != "" {
		fmt.Print(out)
	}
	if err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func loadKnownTags(path string) (map[uint64]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var byName map[string]string
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil, err
	}
	out := make(map[uint64]string, len(byName))
	for k, v := range byName {
		n, err := strconv.ParseUint(k, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("tag key %q: %w", k, err)
		}
		out[n] = v
	}
	return out, nil
}

// Command derdump prints the structural tag/length tree of a DER
// encoded file, independent of any schema, for quick inspection of
// unfamiliar or malformed input.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	schema "github.com/asn1der/schema"
)

func main() {
	hexInput := flag.Bool("hex", false, "treat the input file as ASCII hex instead of raw binary")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: derdump [-hex] <file>")
		os.Exit(2)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "derdump:", err)
		os.Exit(1)
	}

	data := raw
	if *hexInput {
		decoded, err := hex.DecodeString(trimHexWhitespace(string(raw)))
		if err != nil {
			fmt.Fprintln(os.Stderr, "derdump: decoding hex input:", err)
			os.Exit(1)
		}
		data = decoded
	}

	if err := schema.Dump(os.Stdout, data); err != nil {
		fmt.Fprintln(os.Stderr, "derdump:", err)
		os.Exit(1)
	}
}

func trimHexWhitespace(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\r', ':':
			continue
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

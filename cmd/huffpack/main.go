// Command huffpack compresses and decompresses files with static Huffman
// coding.
//
//	huffpack encode <input> -o <output> [-v]
//	huffpack decode <input> -o <output>
//
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/chronos-tachyon/huffpack"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "decode":
		err = runDecode(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		err = usageError{fmt.Errorf("unknown command %q", os.Args[1])}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "huffpack: %v\n", err)
		if isUsageError(err) {
			usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, ""+
		"usage: huffpack encode <input> -o <output> [-v]\n"+
		"       huffpack decode <input> -o <output>\n")
}

func runEncode(args []string) error {
	input, output, verbose, err := parseArgs(args, true)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	encoded, err := huffpack.Encode(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", input, err)
	}

	if verbose {
		dumpCodes(data)
	}

	if err := os.WriteFile(output, encoded, 0o644); err != nil {
		return err
	}

	ratio := 100 * float64(len(encoded)) / float64(len(data))
	fmt.Printf("encoded %s (%d bytes) -> %s (%d bytes, %.1f%% of original)\n",
		input, len(data), output, len(encoded), ratio)
	return nil
}

func runDecode(args []string) error {
	input, output, _, err := parseArgs(args, false)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	decoded, err := huffpack.Decode(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	if err := os.WriteFile(output, decoded, 0o644); err != nil {
		return err
	}

	fmt.Printf("decoded %s (%d bytes) -> %s (%d bytes)\n",
		input, len(data), output, len(decoded))
	return nil
}

// dumpCodes rebuilds the code table for data and writes it to stderr.
func dumpCodes(data []byte) {
	freqs := huffpack.CountFrequencies(data)

	var tree huffpack.Tree
	if err := tree.Init(&freqs); err != nil {
		return
	}

	var enc huffpack.Encoder
	enc.Init(&tree)
	_, _ = enc.Dump(os.Stderr)
}

// usageError marks failures in argument parsing, so main can print the
// usage text for those and only those.
type usageError struct {
	err error
}

func (u usageError) Error() string { return u.err.Error() }
func (u usageError) Unwrap() error { return u.err }

func isUsageError(err error) bool {
	var u usageError
	return errors.As(err, &u)
}

// parseArgs scans args by hand: the subcommand contract puts -o after the
// input path, which the flag package's flags-before-positionals rule cannot
// express.
func parseArgs(args []string, allowVerbose bool) (input, output string, verbose bool, err error) {
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "-o":
			i++
			if i == len(args) {
				err = usageError{errors.New("-o needs an output path")}
				return
			}
			output = args[i]
		case "-v":
			if !allowVerbose {
				err = usageError{fmt.Errorf("unknown flag %q", arg)}
				return
			}
			verbose = true
		default:
			if strings.HasPrefix(arg, "-") {
				err = usageError{fmt.Errorf("unknown flag %q", arg)}
				return
			}
			if input != "" {
				err = usageError{fmt.Errorf("unexpected argument %q", arg)}
				return
			}
			input = arg
		}
	}

	if input == "" {
		err = usageError{errors.New("missing input path")}
		return
	}
	if output == "" {
		err = usageError{errors.New("missing -o <output>")}
		return
	}
	return
}

// toon - TOON codec CLI tool
//
// Converts between JSON and TOON (Token-Oriented Object Notation), and
// reports the token savings of the TOON form. Reads stdin when no file
// is given.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	toon "github.com/toon-format/toon-go"
)

var (
	flagDelimiter    string
	flagIndent       int
	flagLengthMarker bool
	flagLenient      bool
	flagOut          string
)

func main() {
	root := &cobra.Command{
		Use:           "toon",
		Short:         "Convert between JSON and TOON",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode JSON as TOON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEncode,
	}
	encodeCmd.Flags().StringVarP(&flagDelimiter, "delimiter", "d", ",", `value delimiter: "," "|" or "tab"`)
	encodeCmd.Flags().IntVar(&flagIndent, "indent", 2, "spaces per nesting level")
	encodeCmd.Flags().BoolVar(&flagLengthMarker, "length-marker", false, "prefix array lengths with '#'")
	encodeCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (default stdout)")

	decodeCmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode TOON to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDecode,
	}
	decodeCmd.Flags().BoolVar(&flagLenient, "lenient", false, "tolerate count and indentation irregularities")
	decodeCmd.Flags().IntVar(&flagIndent, "indent", 2, "spaces per nesting level")
	decodeCmd.Flags().StringVarP(&flagOut, "out", "o", "", "output file (default stdout)")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Check that input is valid TOON (strict mode)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runValidate,
	}
	validateCmd.Flags().IntVar(&flagIndent, "indent", 2, "spaces per nesting level")

	statsCmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Report TOON size savings over minified JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runStats,
	}
	statsCmd.Flags().StringVarP(&flagDelimiter, "delimiter", "d", ",", `value delimiter: "," "|" or "tab"`)

	root.AddCommand(encodeCmd, decodeCmd, validateCmd, statsCmd)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "toon:", err)
		os.Exit(1)
	}
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func writeOutput(data []byte) error {
	if flagOut != "" {
		return os.WriteFile(flagOut, data, 0o644)
	}
	_, err := os.Stdout.Write(data)
	return err
}

func parseDelimiter(s string) (toon.Delimiter, error) {
	switch s {
	case ",", "comma":
		return toon.DelimComma, nil
	case "|", "pipe":
		return toon.DelimPipe, nil
	case "\t", "tab":
		return toon.DelimTab, nil
	default:
		return 0, fmt.Errorf("unknown delimiter %q", s)
	}
}

func encodeOptions() (toon.EncodeOptions, error) {
	delim, err := parseDelimiter(flagDelimiter)
	if err != nil {
		return toon.EncodeOptions{}, err
	}
	opts := toon.DefaultEncodeOptions()
	opts.Indent = flagIndent
	opts.Delimiter = delim
	opts.LengthMarker = flagLengthMarker
	return opts, nil
}

func decodeOptions() toon.DecodeOptions {
	opts := toon.DefaultDecodeOptions()
	opts.Indent = flagIndent
	opts.Strict = !flagLenient
	return opts
}

func runEncode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	opts, err := encodeOptions()
	if err != nil {
		return err
	}
	out, err := toon.FromJSONText(data, opts)
	if err != nil {
		return err
	}
	return writeOutput([]byte(out + "\n"))
}

func runDecode(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	input := strings.ReplaceAll(string(data), "\r\n", "\n")
	out, err := toon.ToJSONText(input, decodeOptions())
	if err != nil {
		return err
	}
	return writeOutput(append(out, '\n'))
}

func runValidate(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	input := strings.ReplaceAll(string(data), "\r\n", "\n")
	if _, err := toon.DecodeWithOptions(input, decodeOptions()); err != nil {
		return err
	}
	fmt.Println("valid")
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}
	opts, err := encodeOptions()
	if err != nil {
		return err
	}
	v, err := toon.ParseJSON(data)
	if err != nil {
		return err
	}
	s, err := toon.CompareSizes(v, opts)
	if err != nil {
		return err
	}
	fmt.Printf("json:  %6d bytes  ~%d tokens\n", s.JSONBytes, s.JSONTokens)
	fmt.Printf("toon:  %6d bytes  ~%d tokens\n", s.TOONBytes, s.TOONTokens)
	fmt.Printf("saved: %.1f%% bytes, %.1f%% tokens\n", s.BytesSavedPct(), s.TokensSavedPct())
	return nil
}

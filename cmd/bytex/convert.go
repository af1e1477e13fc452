package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hengadev/bytex"
	"github.com/hengadev/bytex/internal/serialization"
)

func newConvertCmd(a *app) *cobra.Command {
	var (
		from  string
		to    string
		asHex bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a document between JSON, YAML, TOML and CBOR",
		Long: `Read a document from stdin in one format and write it in another.

CBOR is binary; with --hex, CBOR input is read as hex text and CBOR output
is written as hex text in the configured hex mode. The fixed-width binary
layout is not self-describing and cannot be converted without a Go type.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := parseConvertFormat("--from", from)
			if err != nil {
				return err
			}
			dst, err := parseConvertFormat("--to", to)
			if err != nil {
				return err
			}

			input, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			output, err := convert(input, src, dst, asHex, a.cfg.HexMode)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(output); err != nil {
				return err
			}

			a.logger.Debug("document converted",
				"from", src.String(),
				"to", dst.String(),
				"in_bytes", len(input),
				"out_bytes", len(output),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "json", "input format: json, yaml, toml or cbor")
	cmd.Flags().StringVar(&to, "to", "yaml", "output format: json, yaml, toml or cbor")
	cmd.Flags().BoolVar(&asHex, "hex", false, "read and write CBOR as hex text")
	return cmd
}

func parseConvertFormat(flag, value string) (serialization.Format, error) {
	f, err := serialization.ParseFormat(value)
	if err != nil {
		return "", fmt.Errorf("invalid %s value: %w", flag, err)
	}
	return f, nil
}

// convert decodes input into a generic document and re-encodes it. Text
// output always ends with a newline.
func convert(input []byte, src, dst serialization.Format, asHex bool, mode bytex.HexMode) ([]byte, error) {
	if asHex && !src.IsText() {
		decoded, err := bytex.DecodeHex(bytes.TrimSpace(input))
		if err != nil {
			return nil, fmt.Errorf("decode %s hex input: %w", src, err)
		}
		input = decoded
	}

	var doc any
	if err := src.CreateSerializer().Deserialize(input, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}

	output, err := dst.CreateSerializer().Serialize(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", dst, err)
	}

	if asHex && !dst.IsText() {
		return []byte(bytex.EncodeHex(output, mode) + "\n"), nil
	}
	if dst.IsText() && !bytes.HasSuffix(output, []byte("\n")) {
		output = append(output, '\n')
	}
	return output, nil
}

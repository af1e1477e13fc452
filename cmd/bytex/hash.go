package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hengadev/bytex"
)

func newHashCmd(a *app) *cobra.Command {
	var (
		alg     string
		encoded bool
	)

	cmd := &cobra.Command{
		Use:   "hash [file...]",
		Short: "Print the digest of stdin or of each file",
		Long: `Print the digest of stdin, or one line per file in the form
"<digest>  <file>". The digest is rendered in the configured hex mode.

With --encoded the input is hashed as a bytex byte string, that is its
little-endian u64 length followed by the bytes, matching bytex.Hash on a
[]byte value.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := a.cfg.Digest
			if alg != "" {
				var err error
				if d, err = bytex.ParseDigest(alg); err != nil {
					return fmt.Errorf("invalid --alg value: %w", err)
				}
			}

			if len(args) == 0 {
				sum, err := digestReader(d, cmd.InOrStdin(), encoded)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), bytex.EncodeHex(sum, a.cfg.HexMode))
				return nil
			}

			for _, path := range args {
				sum, err := digestFile(d, path, encoded)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", bytex.EncodeHex(sum, a.cfg.HexMode), path)
				a.logger.Debug("file hashed", "path", path, "digest", d.String())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&alg, "alg", "", fmt.Sprintf("digest algorithm, one of %v (default from config)", bytex.Digests()))
	cmd.Flags().BoolVar(&encoded, "encoded", false, "hash the length-prefixed binary encoding of the input")
	return cmd
}

func digestFile(d bytex.Digest, path string, encoded bool) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return digestReader(d, f, encoded)
}

func digestReader(d bytex.Digest, r io.Reader, encoded bool) ([]byte, error) {
	if encoded {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		return bytex.Hash(d, data)
	}

	h, err := d.New()
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return h.Sum(nil), nil
}

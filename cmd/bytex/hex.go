package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hengadev/bytex"
)

const readChunk = 32 * 1024

func newHexCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Render bytes as hex text and back",
	}
	cmd.AddCommand(newHexEncodeCmd(a), newHexDecodeCmd(a))
	return cmd
}

func newHexEncodeCmd(a *app) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Read bytes from stdin and write hex text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := a.cfg.HexMode
			if mode != "" {
				var err error
				if m, err = bytex.ParseHexMode(mode); err != nil {
					return fmt.Errorf("invalid --mode value: %w", err)
				}
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			n, err := encodeHexStream(out, cmd.InOrStdin(), m)
			if err != nil {
				return err
			}
			if err := out.WriteByte('\n'); err != nil {
				return err
			}
			a.logger.Debug("hex encoded", "bytes", n, "mode", m.String())
			return out.Flush()
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "lower, upper, lower0x or upper0x (default from config)")
	return cmd
}

func newHexDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Read hex text from stdin and write the bytes",
		Long: `Read hex text from stdin and write the decoded bytes to stdout.
A leading 0x is accepted, letter case is ignored, and whitespace such as
line breaks between digits is skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := bytex.DecodeHexFrom(spaceSkipper{r: cmd.InOrStdin()})
			if err != nil {
				return fmt.Errorf("decode hex: %w", err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			a.logger.Debug("hex decoded", "bytes", len(data))
			return nil
		},
	}
}

// encodeHexStream renders r chunk by chunk so large inputs are never held
// in memory. The prefix, if any, is written once.
func encodeHexStream(w io.Writer, r io.Reader, mode bytex.HexMode) (int64, error) {
	buf := make([]byte, readChunk)
	chunkMode := mode
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if err := bytex.EncodeHexTo(w, buf[:n], chunkMode); err != nil {
				return total, err
			}
			chunkMode = withoutPrefix(mode)
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read input: %w", err)
		}
	}
	if total == 0 && mode.Has0x() {
		return 0, bytex.EncodeHexTo(w, []byte(nil), mode)
	}
	return total, nil
}

func withoutPrefix(mode bytex.HexMode) bytex.HexMode {
	if mode.IsUpper() {
		return bytex.HexUpper
	}
	return bytex.HexLower
}

// spaceSkipper drops ASCII whitespace so wrapped hex dumps decode.
type spaceSkipper struct {
	r io.Reader
}

func (s spaceSkipper) Read(p []byte) (int, error) {
	for {
		n, err := s.r.Read(p)
		kept := 0
		for _, c := range p[:n] {
			switch c {
			case ' ', '\t', '\n', '\r', '\v', '\f':
			default:
				p[kept] = c
				kept++
			}
		}
		if kept > 0 || err != nil || n == 0 {
			return kept, err
		}
	}
}

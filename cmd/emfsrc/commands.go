package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/provide-io/emfsrc/pkg"
	"github.com/provide-io/emfsrc/pkg/codec"
	"github.com/provide-io/emfsrc/pkg/emf/gdi"
	"github.com/provide-io/emfsrc/pkg/emf/metafile"
	"github.com/provide-io/emfsrc/pkg/utils/permissions"
)

func (c *cli) options() pkg.Options {
	return pkg.Options{
		Logger:        c.logger,
		Codec:         c.codecChain,
		BitmapDir:     c.bitmapDir,
		HandleArray:   c.handleArray,
		DeviceContext: c.deviceCtx,
		Strict:        c.strict,
	}
}

func newDecodeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Write the GDI calls that replay a metafile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDecode(cmd, args[0])
		},
	}

	cmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output file (stdout when empty)")
	cmd.Flags().StringVar(&c.outputMode, "output-mode", "", "Permissions of the output file and extracted bitmaps (e.g. 0644)")
	cmd.Flags().StringVar(&c.bitmapDir, "extract-bitmaps", "", "Directory to write embedded bitmaps to as PNG")
	cmd.Flags().StringVar(&c.handleArray, "handle-array", "", "Identifier of the handle table array")
	cmd.Flags().StringVar(&c.deviceCtx, "dc", "", "Identifier of the device context")
	cmd.Flags().BoolVar(&c.strict, "strict", false, "Fail when a record cannot be decoded or EOF is missing")
	return cmd
}

func (c *cli) runDecode(cmd *cobra.Command, path string) error {
	opts := c.options()

	perm, err := permissions.ParseOctalString(c.outputMode)
	if err != nil {
		return err
	}
	if c.outputMode != "" {
		opts.BitmapPerm = perm
	}

	var out io.Writer = cmd.OutOrStdout()
	var file *os.File
	if c.outputPath != "" {
		file, err = os.OpenFile(c.outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, os.FileMode(perm))
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer file.Close()
		out = file
	}

	bw := bufio.NewWriter(out)
	sum, err := pkg.DecodeFile(cmd.Context(), path, bw, opts)
	if flushErr := bw.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return err
	}
	if file != nil {
		if err := file.Close(); err != nil {
			return fmt.Errorf("closing output: %w", err)
		}
	}

	c.logger.Debug("📝 Decode finished",
		"path", path,
		"output", c.outputPath,
		"mode", permissions.FormatOctal(perm),
		"records", sum.Records,
		"failures", sum.Failures)
	return nil
}

func newRecordsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records FILE",
		Short: "List the records of a metafile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := pkg.Open(args[0], c.options())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "# codec: %s, %d bytes\n", codec.ChainString(r.Codecs()), len(r.Data()))
			fmt.Fprintf(w, "%6s  %-10s  %-28s  %s\n", "seq", "offset", "kind", "size")

			seq := 0
			return r.Enumerate(cmd.Context(), func(rec metafile.Record) (bool, error) {
				seq++
				fmt.Fprintf(w, "%6d  0x%08x  %-28s  %d\n", seq, rec.Offset, rec.Type, rec.Size)
				return c.recordsLimit == 0 || seq < c.recordsLimit, nil
			})
		},
	}

	cmd.Flags().IntVarP(&c.recordsLimit, "limit", "n", 0, "Stop after this many records")
	return cmd
}

func newVerifyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check record framing and header counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := pkg.VerifyFileWithLogger(cmd.Context(), args[0], c.options(), c.logger)
			if report != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d records, %d bytes, %d handles\n",
					args[0], report.Records, report.Bytes, report.Header.Handles)
				for _, p := range report.Problems {
					fmt.Fprintf(cmd.OutOrStdout(), "  problem: %s\n", p)
				}
			}
			return err
		},
	}
}

func newConstantCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "constant [DOMAIN VALUE]",
		Short: "Decode a value in a constant domain; lists the domains without arguments",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, d := range gdi.Domains() {
					fmt.Fprintln(w, d)
				}
				return nil
			}

			domain, err := gdi.ParseDomain(args[0])
			if err != nil {
				return err
			}
			v, err := strconv.ParseUint(args[1], 0, 32)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}
			c.logger.Trace("🔎 Decoding constant", "domain", domain, "value", v)
			fmt.Fprintln(w, gdi.Decode(domain, uint32(v)))
			return nil
		},
	}
}

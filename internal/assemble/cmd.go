package assemble

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jjtimmons/stitch/config"
	"github.com/jjtimmons/stitch/internal/frag"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a logger that writes to stderr, at debug level
// if verbose and info otherwise
func NewLogger(verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// SequenceCmd takes a cobra command (with its flags) and assembles the
// fragments in the input FASTA file
func SequenceCmd(cmd *cobra.Command, args []string) error {
	conf, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	in, err := inputPath(cmd, args)
	if err != nil {
		return err
	}

	frags, err := frag.ReadFile(in)
	if err != nil {
		return err
	}

	result, err := Assemble(contextOf(cmd), frags, conf, logger.With(zap.String("in", in)))
	if err != nil {
		return fmt.Errorf("failed to assemble the fragments in %s: %w", in, err)
	}

	return output(cmd, func(w io.Writer) error {
		return Write(w, result, conf.Format, conf.LineWidth)
	})
}

// OverlapsCmd takes a cobra command and writes a table of the confirmed
// overlaps between the fragments in the input FASTA file
func OverlapsCmd(cmd *cobra.Command, args []string) error {
	conf, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Sync()

	in, err := inputPath(cmd, args)
	if err != nil {
		return err
	}

	frags, err := frag.ReadFile(in)
	if err != nil {
		return err
	}

	edges, err := Overlaps(contextOf(cmd), frags, conf, logger.With(zap.String("in", in)))
	if err != nil {
		return fmt.Errorf("failed to find overlaps in %s: %w", in, err)
	}

	return output(cmd, func(w io.Writer) error {
		return WriteEdges(w, edges)
	})
}

// contextOf returns the command's context, which is nil unless it was executed
func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// setup parses settings and builds the logger
func setup() (*config.Config, *zap.Logger, error) {
	conf, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	logger, err := NewLogger(conf.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return conf, logger, nil
}

// inputPath is the "in" flag or, without it, the first argument
func inputPath(cmd *cobra.Command, args []string) (string, error) {
	in, err := cmd.Flags().GetString("in")
	if err == nil && in != "" {
		return in, nil
	}
	if len(args) > 0 {
		return args[0], nil
	}

	cmd.Help()
	return "", fmt.Errorf("no input FASTA file: pass one with --in or as an argument")
}

// output calls write with the "out" file if set, stdout otherwise
func output(cmd *cobra.Command, write func(w io.Writer) error) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		return write(cmd.OutOrStdout())
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

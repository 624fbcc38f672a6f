package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polycipher/alphabet"
	"github.com/katalvlaran/polycipher/internal/config"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgPath   string
	lang      string
	logLevel  string
	logFormat string
	inPath    string
	outPath   string

	cfg config.Config
	log *slog.Logger
	reg *alphabet.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{reg: alphabet.Default()}

	root := &cobra.Command{
		Use:   "polycipher",
		Short: "Classical shift and Vigenère ciphers with crib-based key recovery",
		Long: `polycipher encrypts and decrypts text with Caesar and Vigenère ciphers over
alphabets that include a separator symbol, and attacks Vigenère ciphertext
with frequency analysis, crib dragging and key-length voting.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVarP(&a.lang, "lang", "l", "", "alphabet language (default from config: english)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "", "log format: text, json")
	pf.StringVarP(&a.inPath, "in", "i", "", "read input from file instead of args/stdin")
	pf.StringVarP(&a.outPath, "out", "o", "", "write output to file instead of stdout")

	root.AddCommand(
		a.languagesCmd(),
		a.caesarCmd(),
		a.vigenereCmd("encrypt", false),
		a.vigenereCmd("decrypt", true),
		a.freqCmd(),
		a.cribCmd(),
		a.recoverCmd(),
	)

	return root
}

// setup resolves configuration and builds the logger. Flags set on the
// command line win over config and environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = a.lang
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.log.Debug("configuration resolved", "config", a.cfgPath, "lang", cfg.Language)

	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// resolveAlphabet resolves the configured language for commands that cannot pass
// text through unchanged.
func (a *app) resolveAlphabet() (*alphabet.Alphabet, error) {
	return a.reg.Resolve(a.cfg.Language)
}

// readInput returns the positional args joined by spaces, else the --in
// file, else stdin.
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if a.inPath != "" {
		data, err := os.ReadFile(a.inPath)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}

		return string(data), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return string(data), nil
}

// writeOutput writes s to --out byte for byte, or to stdout ending it with a
// newline.
func (a *app) writeOutput(cmd *cobra.Command, s string) error {
	if a.outPath != "" {
		if err := os.WriteFile(a.outPath, []byte(s), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		a.log.Info("output written", "path", a.outPath, "bytes", len(s))

		return nil
	}
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	_, err := io.WriteString(cmd.OutOrStdout(), s)

	return err
}

package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polycipher/cipher"
)

func (a *app) languagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported alphabet languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.writeOutput(cmd, strings.Join(a.reg.Languages(), "\n"))
		},
	}
}

func (a *app) caesarCmd() *cobra.Command {
	var (
		shift   int
		decrypt bool
	)
	cmd := &cobra.Command{
		Use:   "caesar [text]",
		Short: "Shift every alphabet symbol by a fixed amount",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			var res cipher.Result
			if decrypt {
				res = cipher.CaesarDecrypt(a.reg, a.cfg.Language, text, shift)
			} else {
				res = cipher.CaesarEncrypt(a.reg, a.cfg.Language, text, shift)
			}
			a.report(res)

			return a.writeOutput(cmd, res.Text)
		},
	}
	cmd.Flags().IntVarP(&shift, "shift", "s", 3, "shift amount (any integer)")
	cmd.Flags().BoolVarP(&decrypt, "decrypt", "d", false, "shift backwards")

	return cmd
}

func (a *app) vigenereCmd(name string, decrypt bool) *cobra.Command {
	var key string
	short := "Encrypt text with a repeating Vigenère key"
	if decrypt {
		short = "Decrypt Vigenère ciphertext with a known key"
	}
	cmd := &cobra.Command{
		Use:   name + " [text]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			var res cipher.Result
			if decrypt {
				res = cipher.VigenereDecrypt(a.reg, a.cfg.Language, text, key)
			} else {
				res = cipher.VigenereEncrypt(a.reg, a.cfg.Language, text, key)
			}
			a.report(res)

			return a.writeOutput(cmd, res.Text)
		},
	}
	cmd.Flags().StringVarP(&key, "key", "k", "", "key; runes outside the alphabet are dropped")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

// report logs pass-through results; the text itself is still written.
func (a *app) report(res cipher.Result) {
	switch res.Status {
	case cipher.Applied:
		a.log.Debug("cipher applied", "lang", a.cfg.Language, "runes", len([]rune(res.Text)))
	case cipher.UnsupportedLanguage:
		a.log.Warn("unsupported language, text passed through unchanged",
			"lang", a.cfg.Language, "supported", a.reg.Languages())
	case cipher.EmptyKey:
		a.log.Warn("key has no alphabet symbols, text passed through unchanged", "lang", a.cfg.Language)
	}
}

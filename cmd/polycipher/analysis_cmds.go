package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polycipher/cipher"
	"github.com/katalvlaran/polycipher/internal/config"
	"github.com/katalvlaran/polycipher/crib"
	"github.com/katalvlaran/polycipher/frequency"
	"github.com/katalvlaran/polycipher/recovery"
)

const rule = "======================================================================"

func (a *app) freqCmd() *cobra.Command {
	var (
		exclude bool
		width   int
	)
	cmd := &cobra.Command{
		Use:   "freq [text]",
		Short: "Print a symbol frequency bar chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("exclude-separator") {
				a.cfg.Frequency.ExcludeSeparator = exclude
			}
			if cmd.Flags().Changed("width") {
				a.cfg.Frequency.BarWidth = width
			}

			tbl, err := frequency.AnalyzeLanguage(a.reg, a.cfg.Language, text,
				frequency.WithExcludeSeparator(a.cfg.Frequency.ExcludeSeparator))
			if err != nil {
				a.log.Warn("frequency analysis skipped", "lang", a.cfg.Language, "err", err)
			}

			title := fmt.Sprintf("Character Frequency Analysis - %s", strings.ToUpper(a.cfg.Language))
			var sb strings.Builder
			err = frequency.BarChart{Width: a.cfg.Frequency.BarWidth}.Render(&sb, title, tbl)
			if errors.Is(err, frequency.ErrNoSymbols) {
				return a.writeOutput(cmd, "No characters to plot.")
			}
			if err != nil {
				return err
			}

			return a.writeOutput(cmd, sb.String())
		},
	}
	cmd.Flags().BoolVarP(&exclude, "exclude-separator", "x", false, "leave the separator out of the table")
	cmd.Flags().IntVar(&width, "width", frequency.DefaultBarWidth, "length of the longest bar")

	return cmd
}

func (a *app) cribCmd() *cobra.Command {
	var (
		word string
		top  int
	)
	cmd := &cobra.Command{
		Use:   "crib [ciphertext]",
		Short: "Drag a known plaintext word across Vigenère ciphertext",
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := a.resolveAlphabet()
			if err != nil {
				return err
			}
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			text = strings.TrimRight(text, "\r\n")

			var sb strings.Builder
			fmt.Fprintf(&sb, "\nVigenere Crib Search Analysis\n%s\n", rule)
			fmt.Fprintf(&sb, "Crib: '%s'\nCiphertext length: %d\nLanguage: %s\n%s\n",
				word, len([]rune(text)), alpha.Language(), rule)

			matches := crib.Search(alpha, text, word)
			if len(matches) == 0 {
				sb.WriteString("No matches found for the crib.\n")

				return a.writeOutput(cmd, sb.String())
			}
			stats := crib.Analyze(matches)
			a.log.Debug("crib search done", "matches", len(matches), "fragments", len(stats))

			fmt.Fprintf(&sb, "\nTotal possible positions: %d\n", len(matches))
			fmt.Fprintf(&sb, "\nUnique key fragments found: %d\n%s\n", len(stats), rule)
			fmt.Fprintf(&sb, "%-20s %-10s %s\n%s\n", "Key Fragment", "Count", "Positions", strings.Repeat("-", len(rule)))
			shown := stats
			if top > 0 && len(shown) > top {
				shown = shown[:top]
			}
			for _, s := range shown {
				fmt.Fprintf(&sb, "%-20s %-10d %s\n", s.Fragment, s.Count, positions(s.Positions))
			}
			sb.WriteString(rule + "\n")
			fmt.Fprintf(&sb, "\nMost frequent key fragment: '%s' (appears %d times)\n", stats[0].Fragment, stats[0].Count)

			return a.writeOutput(cmd, sb.String())
		},
	}
	cmd.Flags().StringVarP(&word, "crib", "c", "", "known or guessed plaintext fragment")
	cmd.Flags().IntVarP(&top, "top", "n", 10, "fragments to list; 0 lists all")
	_ = cmd.MarkFlagRequired("crib")

	return cmd
}

// positions lists up to five positions, then the total.
func positions(ps []int) string {
	const shown = 5
	parts := make([]string, 0, shown)
	for i, p := range ps {
		if i == shown {
			break
		}
		parts = append(parts, fmt.Sprint(p))
	}
	out := strings.Join(parts, ", ")
	if len(ps) > shown {
		out += fmt.Sprintf(", ... (%d total)", len(ps))
	}

	return out
}

func (a *app) recoverCmd() *cobra.Command {
	var (
		cribs, words        string
		minLen, maxLen, top int
		sample, preview     int
	)
	cmd := &cobra.Command{
		Use:   "recover [ciphertext]",
		Short: "Recover a Vigenère key by crib voting over candidate key lengths",
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := a.resolveAlphabet()
			if err != nil {
				return err
			}
			text, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}

			rc := &a.cfg.Recovery
			f := cmd.Flags()
			if f.Changed("cribs") {
				rc.Cribs = config.SplitList(cribs)
			}
			if f.Changed("words") {
				rc.Words = config.SplitList(words)
			}
			if f.Changed("min") {
				rc.MinKeyLength = minLen
			}
			if f.Changed("max") {
				rc.MaxKeyLength = maxLen
			}
			if f.Changed("top") {
				rc.Top = top
			}
			if f.Changed("sample") {
				rc.SampleSize = sample
			}

			a.log.Info("recovering key", "lang", alpha.Language(), "runes", len([]rune(text)),
				"cribs", len(rc.Cribs), "min", rc.MinKeyLength, "max", rc.MaxKeyLength)

			cands, err := recovery.Recover(cmd.Context(), alpha, text, rc.Cribs, a.cfg.RecoveryOptions()...)
			if err != nil {
				return err
			}

			clean := recovery.Clean(alpha, text)
			var sb strings.Builder
			for _, c := range cands {
				plain := []rune(cipher.DecryptText(alpha, clean, c.Key))
				if len(plain) > preview {
					plain = plain[:preview]
				}
				fmt.Fprintf(&sb, "\nscore=%d  len=%d  key='%s'\nsample: %s\n", c.Score, c.Length, c.Key, string(plain))
			}

			return a.writeOutput(cmd, sb.String())
		},
	}
	f := cmd.Flags()
	f.StringVar(&cribs, "cribs", "", "comma-separated cribs (default from config)")
	f.StringVar(&words, "words", "", "comma-separated scoring words (default from config)")
	f.IntVar(&minLen, "min", recovery.DefaultMinKeyLen, "shortest key length tried")
	f.IntVar(&maxLen, "max", recovery.DefaultMaxKeyLen, "longest key length tried")
	f.IntVarP(&top, "top", "n", recovery.DefaultTopN, "candidates to print; 0 prints all")
	f.IntVar(&sample, "sample", recovery.DefaultSampleSize, "ciphertext prefix scored per candidate")
	f.IntVar(&preview, "preview", 400, "decrypted runes printed per candidate")

	return cmd
}

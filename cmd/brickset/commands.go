package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"brickset/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		tag      string
		pieces   int
		letter   string
		headings bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print every query of the standard report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := report.Options{
				Tag:            a.cfg.Report.Tag,
				PieceThreshold: a.cfg.Report.PieceThreshold,
				Letter:         a.cfg.Report.LetterRune(),
				Headings:       headings,
			}
			flags := cmd.Flags()
			if flags.Changed("tag") {
				opts.Tag = tag
			}
			if flags.Changed("pieces") {
				opts.PieceThreshold = pieces
			}
			if flags.Changed("letter") {
				r, err := requireLetter(letter)
				if err != nil {
					return err
				}
				opts.Letter = r
			}

			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), repo, opts)
		},
	}

	cmd.Flags().StringVar(&tag, "tag", "", "tag to count (default from config)")
	cmd.Flags().IntVar(&pieces, "pieces", 0, "piece threshold (default from config)")
	cmd.Flags().StringVar(&letter, "letter", "", "first letter of names (default from config)")
	cmd.Flags().BoolVar(&headings, "headings", false, "print a heading before each section")
	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "List every set in load order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			return report.Sets(cmd.OutOrStdout(), repo.All(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func newCountTagCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count-tag TAG",
		Short: "Count sets carrying a tag (case-sensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), repo.CountByTag(args[0]))
			return err
		},
	}
}

func newCountNamedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count-named",
		Short: "Count sets with a non-empty name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), repo.CountWithName())
			return err
		},
	}
}

func newThemesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List distinct themes in reverse order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			for _, theme := range repo.ThemesDescending() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), theme); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newBiggerThanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bigger-than PIECES",
		Short: "List names of sets with more than PIECES pieces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			threshold, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid piece count %q: %w", args[0], err)
			}
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			return report.Lines(cmd.OutOrStdout(), repo.NamesAbovePieces(threshold))
		},
	}
}

func newMaxPiecesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "max-pieces",
		Short: "Print the largest piece count (0 for an empty catalog)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), repo.MaxPieces())
			return err
		},
	}
}

func newStartingWithCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "starting-with LETTER",
		Short: "List names starting with LETTER (case-sensitive)",
		Long:  "List names starting with LETTER (case-sensitive).\nFails if a set with an empty name is reached.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			letter, err := requireLetter(args[0])
			if err != nil {
				return err
			}
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			for name, err := range repo.NamesStartingWith(letter) {
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the loaded source, set count and content fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := a.open(cmd)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "source:      %s\nsets:        %d\nfingerprint: %s\n",
				repo.Source(), repo.Len(), repo.Fingerprint())
			return err
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.cfg.YAML()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

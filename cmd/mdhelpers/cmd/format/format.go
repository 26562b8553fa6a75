// Package format implements the single-value formatting commands:
// ordinalize, user-link and beautify.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/mdhelpers/internal/appcontext"
	"github.com/agentstation/mdhelpers/pkg/errors"
)

// NewOrdinalizeCommand creates the ordinalize command.
func NewOrdinalizeCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "ordinalize <number>...",
		GroupID: "format",
		Short:   "Print English ordinals",
		Args:    cobra.MinimumNArgs(1),
		Example: `  mdhelpers ordinalize 1 2 3 11 21   # 1st 2nd 3rd 11th 21st
  mdhelpers ordinalize -- -1          # negative numbers follow --`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Helpers()
			if err != nil {
				return err
			}

			numbers := make([]int, 0, len(args))
			for _, arg := range args {
				n, err := strconv.Atoi(strings.TrimSpace(arg))
				if err != nil {
					return errors.NewInvalidArgumentError("ordinalize", "number", arg, "an integer")
				}
				numbers = append(numbers, n)
			}

			out := cmd.OutOrStdout()
			for _, n := range numbers {
				if _, err := fmt.Fprintln(out, h.Ordinalize(n)); err != nil {
					return errors.WrapIO("write", "stdout", err)
				}
			}
			return nil
		},
	}
}

// NewUserLinkCommand creates the user-link command.
func NewUserLinkCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:     "user-link <username>...",
		GroupID: "format",
		Short:   "Print markdown links to GitHub profiles",
		Aliases: []string{"userlink"},
		Args:    cobra.MinimumNArgs(1),
		Example: `  mdhelpers user-link octocat   # [@octocat](https://github.com/octocat)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Helpers()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, user := range args {
				if _, err := fmt.Fprintln(out, h.UserLink(user)); err != nil {
					return errors.WrapIO("write", "stdout", err)
				}
			}
			return nil
		},
	}
}

// NewBeautifyCommand creates the beautify command.
func NewBeautifyCommand(app appcontext.Interface) *cobra.Command {
	var truncate bool

	cmd := &cobra.Command{
		Use:     "beautify [text]",
		GroupID: "format",
		Short:   "Join multi-line descriptions with commas",
		Long: `Beautify replaces every newline in the text with ", ".

Arguments are joined with spaces. Without arguments the text is read from
stdin, minus its final line break.`,
		Example: `  printf 'fast\nsmall' | mdhelpers beautify   # fast, small
  mdhelpers beautify --truncate "$(cat long.txt)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.Helpers()
			if err != nil {
				return err
			}

			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			result := h.BeautifyDescription(text)
			if truncate {
				result = h.TruncateDescription(text)
			}
			app.Logger().Debug().
				Int("in", len(text)).
				Int("out", len(result)).
				Bool("truncate", truncate).
				Msg("Beautified description")

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), result); err != nil {
				return errors.WrapIO("write", "stdout", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&truncate, "truncate", "t", false, "also truncate to the configured limit")
	return cmd
}

func readText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", errors.WrapIO("read", "stdin", err)
	}
	text := strings.TrimSuffix(string(raw), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

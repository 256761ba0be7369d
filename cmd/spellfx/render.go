package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/orchestrators/effects"
	"github.com/KirkDiggler/rpg-spellfx/internal/repositories/spells"
)

// Output formats
const (
	outputText = "text"
	outputJSON = "json"
)

func validateOutput(output string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("output", output, []string{outputText, outputJSON}, vb)
	return vb.Build()
}

func (a *app) renderCmd() *cobra.Command {
	var (
		file         string
		format       string
		resolveLinks bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Format the effects of a spell document",
		Long: `Render reads a spell document as JSON or YAML and prints its formatted effects.
Use --file - to read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readSpell(cmd.InOrStdin(), file, spell.Format(format))
			if err != nil {
				return err
			}

			var linked map[string]*spell.Config
			if resolveLinks {
				repo, cleanup, err := a.openLibrary(ctx)
				if err != nil {
					return err
				}
				defer cleanup()

				linked, err = resolveLinked(ctx, repo, cfg)
				if err != nil {
					return err
				}
			}

			return a.render(ctx, cmd.OutOrStdout(), cfg, linked)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Spell document path, or - for stdin")
	cmd.Flags().StringVar(&format, "format", "", "Document format: json or yaml (detected when empty)")
	cmd.Flags().BoolVar(&resolveLinks, "resolve-links", false, "Look up linked spells in the spell library")

	return cmd
}

// render formats a spell and writes it in the selected output format
func (a *app) render(ctx context.Context, w io.Writer, cfg *spell.Config, linked map[string]*spell.Config) error {
	svc, err := a.effectsService()
	if err != nil {
		return err
	}

	out, err := svc.FormatSpell(ctx, &effects.FormatSpellInput{
		Spell:        cfg,
		LinkedSpells: linked,
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Rendered spell",
		"spell_id", cfg.ID,
		"name", cfg.Name,
		"effects", len(out.Effects))

	return writeEffects(w, a.output, out)
}

func writeEffects(w io.Writer, output string, out *effects.FormatSpellOutput) error {
	if output == outputJSON {
		return writeJSON(w, out)
	}

	for _, e := range out.Effects {
		if _, err := fmt.Fprintln(w, effectLine(e)); err != nil {
			return errors.Wrap(err, "failed to write output")
		}
	}
	return nil
}

// effectLine renders a record as "Name - Description: Mechanics"
func effectLine(e spell.FormattedEffect) string {
	var b strings.Builder
	b.WriteString(e.Name)
	if e.Description != "" {
		b.WriteString(" - ")
		b.WriteString(e.Description)
	}
	if e.MechanicsText != "" {
		b.WriteString(": ")
		b.WriteString(e.MechanicsText)
	}
	return b.String()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to encode output")
	}
	return nil
}

// readSpell decodes a spell document from path, or from stdin when path
// is "-"
func readSpell(stdin io.Reader, path string, format spell.Format) (*spell.Config, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" || path == "" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304
	}
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "spell file %s not found", path)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to read %s", path)
	}

	return spell.Decode(data, format)
}

// resolveLinked loads the spells referenced by cfg's procs and form
// mechanics. Missing spells are left out.
func resolveLinked(ctx context.Context, repo spells.Repository, cfg *spell.Config) (map[string]*spell.Config, error) {
	ids := spell.LinkedSpellIDs(cfg)
	if len(ids) == 0 {
		return nil, nil
	}

	out, err := repo.GetMany(ctx, spells.GetManyInput{IDs: ids})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve linked spells")
	}

	if len(out.Spells) < len(ids) {
		slog.WarnContext(ctx, "Some linked spells are missing from the library",
			"spell_id", cfg.ID,
			"linked", len(ids),
			"found", len(out.Spells))
	}
	return out.Spells, nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/repositories/spells"
)

type libraryEntry struct {
	ID       string        `json:"id"`
	Name     string        `json:"name,omitempty"`
	StoredAt time.Time     `json:"storedAt"`
	Spell    *spell.Config `json:"spell,omitempty"`
}

func (a *app) libraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage the Redis spell library",
		Long: `Library commands store spell documents in Redis and render them by ID.
Connection settings come from SPELLFX_REDIS_* variables.`,
	}

	cmd.AddCommand(a.libraryPutCmd())
	cmd.AddCommand(a.libraryGetCmd())
	cmd.AddCommand(a.libraryListCmd())
	cmd.AddCommand(a.libraryDeleteCmd())
	cmd.AddCommand(a.libraryRenderCmd())
	cmd.AddCommand(a.libraryCheckCmd())

	return cmd
}

func (a *app) libraryPutCmd() *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "put",
		Short: "Store a spell document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := readSpell(cmd.InOrStdin(), file, spell.Format(format))
			if err != nil {
				return err
			}

			repo, cleanup, err := a.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := repo.Put(ctx, spells.PutInput{Spell: cfg})
			if err != nil {
				return err
			}

			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), entryFor(out.Record, false))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out.Record.Spell.ID)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Spell document path, or - for stdin")
	cmd.Flags().StringVar(&format, "format", "", "Document format: json or yaml (detected when empty)")

	return cmd
}

func (a *app) libraryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print a stored spell document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := a.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := repo.Get(ctx, spells.GetInput{ID: args[0]})
			if err != nil {
				return err
			}

			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), entryFor(out.Record, true))
			}
			return writeJSON(cmd.OutOrStdout(), out.Record.Spell)
		},
	}
}

func (a *app) libraryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored spells",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := a.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := repo.List(ctx, spells.ListInput{})
			if err != nil {
				return err
			}

			if a.output == outputJSON {
				entries := make([]libraryEntry, 0, len(out.Records))
				for _, r := range out.Records {
					entries = append(entries, entryFor(r, false))
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			}

			w := cmd.OutOrStdout()
			for _, r := range out.Records {
				if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Spell.ID, r.Spell.Name, r.StoredAt.Format(time.RFC3339)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (a *app) libraryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stored spell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := a.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := repo.Delete(ctx, spells.DeleteInput{ID: args[0]}); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return err
		},
	}
}

func (a *app) libraryRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <id>",
		Short: "Format the effects of a stored spell",
		Long:  `Render loads a spell from the library, resolves the spells its procs and forms link to, and prints its formatted effects.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := a.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := repo.Get(ctx, spells.GetInput{ID: args[0]})
			if err != nil {
				return err
			}

			linked, err := resolveLinked(ctx, repo, out.Record.Spell)
			if err != nil {
				return err
			}

			return a.render(ctx, cmd.OutOrStdout(), out.Record.Spell, linked)
		},
	}
}

func (a *app) libraryCheckCmd() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Find corrupt records and index drift",
		Long: `Check scans every stored spell key, reports records that fail to decode and
index entries that have drifted from the stored keys. --repair deletes the corrupt
records and rebuilds the index.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			repo, cleanup, err := a.openLibrary(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := repo.Check(ctx, spells.CheckInput{Repair: repair})
			if err != nil {
				return err
			}

			if a.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "checked %d spells\n", out.Checked)
			for _, id := range out.Corrupt {
				fmt.Fprintf(w, "corrupt\t%s\n", id)
			}
			for _, id := range out.Unindexed {
				fmt.Fprintf(w, "unindexed\t%s\n", id)
			}
			for _, id := range out.Orphaned {
				fmt.Fprintf(w, "orphaned\t%s\n", id)
			}
			if out.Repaired {
				fmt.Fprintln(w, "repaired")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "Delete corrupt records and rebuild the index")

	return cmd
}

func entryFor(r *spells.Record, withSpell bool) libraryEntry {
	e := libraryEntry{
		ID:       r.Spell.ID,
		Name:     r.Spell.Name,
		StoredAt: r.StoredAt,
	}
	if withSpell {
		e.Spell = r.Spell
	}
	return e
}

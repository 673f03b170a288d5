package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"namesake/internal/catalog"
	"namesake/internal/logging"
	"namesake/internal/name"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the reference name catalog",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogAddCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogRemoveCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import entries from a JSON file (use - for stdin)",
		Long: `Import entries from a JSON array such as

  [{"kind": "group", "name": {"english": "Apink", "non_eng": "에이핑크",
    "versions": [{"english": "A Pink"}]}}]

Entries whose kind, English and native names already exist are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "catalog")

			var src io.Reader
			if args[0] == "-" {
				src = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open import file: %w", err)
				}
				defer f.Close()
				src = f
			}

			var stats catalog.ImportStats
			err = ctx.withLockedCatalog(cmd.Context(), func(store *catalog.Store) error {
				var importErr error
				stats, importErr = store.Import(cmd.Context(), src)
				return importErr
			})
			if err != nil {
				if errors.Is(err, catalog.ErrLocked) {
					logging.WarnWithContext(logger, "catalog import blocked", "catalog_locked",
						logging.String(logging.FieldErrorHint, "wait for the other import to finish or raise catalog.lock_timeout"),
						logging.Error(err),
					)
				}
				return err
			}

			logger.Info("catalog import complete",
				logging.String(logging.FieldEventType, "catalog_import"),
				logging.Int("added", stats.Added),
				logging.Int("skipped", stats.Skipped),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%d skipped)\n", stats.Added, stats.Skipped)
			return nil
		},
	}
}

func newCatalogAddCommand(ctx *commandContext) *cobra.Command {
	var (
		kindRaw     string
		english     string
		nonEng      string
		romanized   string
		translation string
		versions    []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a single entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := catalog.ParseKind(kindRaw)
			if err != nil {
				return err
			}
			var versionNames []*name.Name
			for _, raw := range versions {
				if v := name.Parse(raw); !v.IsZero() {
					versionNames = append(versionNames, v)
				}
			}
			n := name.New(strings.TrimSpace(english), strings.TrimSpace(nonEng),
				name.WithRomanized(strings.TrimSpace(romanized)),
				name.WithLitTranslation(strings.TrimSpace(translation)),
				name.WithVersions(versionNames...),
			)

			var entry catalog.Entry
			err = ctx.withLockedCatalog(cmd.Context(), func(store *catalog.Store) error {
				var addErr error
				entry, addErr = store.Add(cmd.Context(), kind, n)
				return addErr
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s as %s\n", entry.Kind, entry.Name, entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&kindRaw, "kind", string(catalog.KindArtist), "Entry kind (artist, group, album, track)")
	cmd.Flags().StringVar(&english, "english", "", "English name")
	cmd.Flags().StringVar(&nonEng, "non-eng", "", "Native-script name")
	cmd.Flags().StringVar(&romanized, "romanized", "", "Romanization of the native name")
	cmd.Flags().StringVar(&translation, "translation", "", "Literal English translation")
	cmd.Flags().StringArrayVar(&versions, "version", nil, "Alternate name, repeatable; accepts \"Native (Latin)\"")
	return cmd
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var kindRaw string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind catalog.Kind
			if strings.TrimSpace(kindRaw) != "" {
				parsed, err := catalog.ParseKind(kindRaw)
				if err != nil {
					return err
				}
				kind = parsed
			}

			var entries []catalog.Entry
			if err := ctx.withCatalog(func(store *catalog.Store) error {
				var listErr error
				entries, listErr = store.List(cmd.Context(), kind)
				return listErr
			}); err != nil {
				return err
			}

			if jsonOutput {
				if entries == nil {
					entries = []catalog.Entry{}
				}
				return writeJSON(cmd, entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Catalog is empty")
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.ID,
					string(e.Kind),
					e.Name.EnglishOrTranslation(),
					e.Name.NonEng,
					strconv.Itoa(len(e.Name.Versions)),
					e.AddedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Kind", "English", "Native", "Versions", "Added"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
				shouldColorize(out),
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindRaw, "kind", "", "Only list entries of this kind")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func newCatalogRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an entry by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if err := ctx.withLockedCatalog(cmd.Context(), func(store *catalog.Store) error {
				return store.Remove(cmd.Context(), id)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
			return nil
		},
	}
}

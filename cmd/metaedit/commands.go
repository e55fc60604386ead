package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jwebster45206/balatro-meta/pkg/catalog"
	"github.com/jwebster45206/balatro-meta/pkg/compress"
	"github.com/jwebster45206/balatro-meta/pkg/luatable"
	"github.com/jwebster45206/balatro-meta/pkg/meta"
)

func newDumpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <save>",
		Short: "Print the inflated document text of a save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.editor.ReadText(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newPackCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pack <text-file> <save>",
		Short: "Deflate a document text file into a save",
		Long:  "Deflate a document text file into a save. The text must be a table literal; it is not otherwise checked.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			text := strings.TrimRight(string(raw), "\r\n")
			if _, err := luatable.Parse(text); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			data, err := compress.CompressLevel(text, app.cfg.CompressionLevel)
			if err != nil {
				return err
			}
			id, err := app.editor.WriteFile(cmd.Context(), args[1], data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", args[1], len(data))
			if id != uuid.Nil {
				fmt.Fprintf(cmd.OutOrStdout(), "backup %s\n", id)
			}
			return nil
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	var (
		category string
		prefix   string
		modded   bool
	)

	cmd := &cobra.Command{
		Use:   "list <save>",
		Short: "List items and their state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open(args[0])
			if err != nil {
				return err
			}

			var names []string
			switch {
			case modded:
				names = s.Meta.Modded()
			case category != "":
				c, err := catalog.ParseCategory(category)
				if err != nil {
					return err
				}
				names = s.Meta.CategoryNames(c)
			default:
				names = s.Meta.Names(prefix)
			}
			if prefix != "" && (modded || category != "") {
				names = filterPrefix(names, prefix)
			}

			st := newStyles(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st.header.Render(
				st.name.Render("ITEM")+st.label.Render("NAME")+
					st.on.Render("ALERTED")+st.on.Render("DISCOVERED")+st.on.Render("UNLOCKED")))

			moddedCount := 0
			for _, name := range names {
				it, _ := s.Meta.Item(name)
				label := catalog.DisplayName(name)
				if !catalog.Contains(name) {
					moddedCount++
					label = st.modded.Render(label + " *")
				}
				fmt.Fprintln(out, st.name.Render(name)+st.label.Render(label)+
					st.flag(it.CanAlert(), it.Alerted)+
					st.flag(it.CanDiscover(), it.Discovered)+
					st.flag(it.CanUnlock(), it.Unlocked))
			}
			fmt.Fprintln(out, st.dim.Render(fmt.Sprintf("%d items, %d modded", len(names), moddedCount)))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only items in this category ("+categoryList()+")")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only items whose key starts with this prefix")
	cmd.Flags().BoolVar(&modded, "modded", false, "Only items the catalog does not know")
	return cmd
}

func newUnlockCmd(app *App) *cobra.Command {
	var (
		prefix   string
		category string
		all      bool
		out      string
	)

	cmd := &cobra.Command{
		Use:   "unlock <save>",
		Short: "Unlock, discover and alert every matching item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if prefix == "" && category == "" && !all {
				return errors.New("one of --prefix, --category or --all is required")
			}

			s, err := app.open(args[0])
			if err != nil {
				return err
			}

			var n int
			if category != "" {
				c, err := catalog.ParseCategory(category)
				if err != nil {
					return err
				}
				n = meta.UnlockCategory(s.Meta, c)
			} else {
				n = meta.UnlockAll(s.Meta, prefix)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "unlocked %d items, %d changed\n", n, len(s.Changes()))
			if out != "" {
				s.Path = out
			}
			return app.save(cmd, s)
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix to unlock, e.g. j_ or v_")
	cmd.Flags().StringVar(&category, "category", "", "Category to unlock ("+categoryList()+")")
	cmd.Flags().BoolVar(&all, "all", false, "Unlock every item")
	cmd.Flags().StringVar(&out, "out", "", "Write to this path instead of overwriting the save")
	cmd.MarkFlagsMutuallyExclusive("prefix", "category", "all")
	return cmd
}

func newSetCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "set <save> <item> <axis>=<bool>...",
		Short: "Set alerted, discovered or unlocked on one item",
		Example: strings.TrimSpace(`
  metaedit set meta.jkr j_blueprint unlocked=true discovered=true
`),
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.open(args[0])
			if err != nil {
				return err
			}

			name := args[1]
			it, ok := s.Meta.Item(name)
			if !ok {
				return fmt.Errorf("no item %q in %s", name, args[0])
			}

			for _, assignment := range args[2:] {
				axis, v, err := parseAssignment(assignment)
				if err != nil {
					return err
				}
				if !it.Set(axis, v) {
					return fmt.Errorf("%s does not apply to %s", axis, name)
				}
			}

			if !s.Dirty() {
				fmt.Fprintln(cmd.OutOrStdout(), "no changes")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, it)
			if out != "" {
				s.Path = out
			}
			return app.save(cmd, s)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write to this path instead of overwriting the save")
	return cmd
}

func parseAssignment(s string) (meta.Axis, bool, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return 0, false, fmt.Errorf("expected <axis>=<bool>, got %q", s)
	}
	axis, err := meta.ParseAxis(key)
	if err != nil {
		return 0, false, err
	}
	v, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return 0, false, fmt.Errorf("invalid value for %s: %q", axis, value)
	}
	return axis, v, nil
}

func newDefaultsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "defaults <out>",
		Short: "Write the meta save of a fresh profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.save(cmd, app.editor.NewSession(args[0]))
		},
	}
}

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with the built-in item catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "derive <save>",
		Short: "Print catalog rows derived from a reference save",
		Long:  "Print catalog rows derived from a reference save, normally a fresh profile. Items from known mods are skipped.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := app.editor.ReadText(args[0])
			if err != nil {
				return err
			}
			root, err := luatable.Parse(text)
			if err != nil {
				return err
			}
			alerted, discovered, unlocked, err := meta.Decode(root)
			if err != nil {
				return err
			}
			rows := catalog.Derive(alerted, discovered, unlocked)
			_, err = fmt.Fprint(cmd.OutOrStdout(), catalog.FormatRows(rows))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <item>",
		Short: "Show the catalog row for one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("%q is not in the catalog", args[0])
			}
			c, _ := catalog.CategoryOf(e.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n  alerted: %s\n  discovered: %s\n  unlocked: %s\n",
				e.Name, catalog.DisplayName(e.Name), c, e.Alerted, e.Discovered, e.Unlocked)
			return nil
		},
	})

	return cmd
}

func filterPrefix(names []string, prefix string) []string {
	out := names[:0]
	for _, n := range names {
		if strings.HasPrefix(n, prefix) {
			out = append(out, n)
		}
	}
	return out
}

func categoryList() string {
	cats := catalog.Categories()
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, "|")
}

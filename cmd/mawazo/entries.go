package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/PabloGalante/mawazo/internal/app/journal"
	"github.com/PabloGalante/mawazo/internal/domain"
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "Read and write journal entries",
}

var (
	listSearch string
	listMood   string
	listSort   string
	listLimit  int

	addMoods      []string
	addDetectMood bool
)

var entriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		q := journal.Query{
			Search: listSearch,
			Sort:   journal.ParseSortBy(listSort),
			Limit:  listLimit,
		}
		if listMood != "" {
			m, ok := domain.ParseMood(listMood)
			if !ok {
				return fmt.Errorf("unknown mood %q (want one of: %s)", listMood, domain.MoodList())
			}
			q.Mood = m
		}

		return withApp(cmd.Context(), func(a *app) error {
			list, err := a.journal.ListEntries(cmd.Context(), q)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), list)
			return nil
		})
	},
}

var entriesAddCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add an entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := strings.Join(args, " ")

		return withApp(cmd.Context(), func(a *app) error {
			in := domain.NewEntry{Content: content}
			for _, m := range addMoods {
				in.Moods = append(in.Moods, domain.Mood(m))
			}
			if len(in.Moods) == 0 && addDetectMood {
				in.Moods = a.gateway.AnalyzeMood(cmd.Context(), content)
			}

			e, err := a.journal.SaveEntry(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d words)\n", e.ID, e.WordCount)
			return nil
		})
	},
}

var entriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			if err := a.journal.DeleteEntry(cmd.Context(), domain.JournalEntryID(args[0])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		})
	},
}

func init() {
	entriesListCmd.Flags().StringVarP(&listSearch, "search", "q", "", "Filter by content")
	entriesListCmd.Flags().StringVar(&listMood, "mood", "", "Filter by mood")
	entriesListCmd.Flags().StringVar(&listSort, "sort", "date", "Sort by date, words or mood")
	entriesListCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Maximum number of entries")

	entriesAddCmd.Flags().StringSliceVarP(&addMoods, "mood", "m", nil, "Mood tags")
	entriesAddCmd.Flags().BoolVar(&addDetectMood, "detect-mood", false, "Ask the AI for moods when none are given")

	entriesCmd.AddCommand(entriesListCmd, entriesAddCmd, entriesDeleteCmd)
	rootCmd.AddCommand(entriesCmd)
}

func printEntries(w io.Writer, list []*domain.JournalEntry) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No entries found.")
		return
	}
	for _, e := range list {
		line := fmt.Sprintf("%s  %s  %d words", e.ID, e.Timestamp.Local().Format(time.DateTime), e.WordCount)
		if len(e.Moods) > 0 {
			moods := make([]string, len(e.Moods))
			for i, m := range e.Moods {
				moods[i] = string(m)
			}
			line += fmt.Sprintf("  [%s]", strings.Join(moods, ", "))
		}
		fmt.Fprintln(w, line)
		fmt.Fprintf(w, "    %s\n", firstLine(e.Content))
	}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

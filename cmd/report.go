package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mededu/internal/report"
	"github.com/abhisek/mededu/internal/study"
	"github.com/abhisek/mededu/internal/ui/theme"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show study time, notes and quiz scores per topic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		doc, err := st.Load(cmd.Context())
		if err != nil {
			return err
		}

		out := theme.Writer(cmd.OutOrStdout())
		rows, err := report.Dashboard(doc)
		if errors.Is(err, study.ErrNoTopics) {
			fmt.Fprintln(out, theme.Fail.Render("❌ No topics yet. Add a topic first."))
			return nil
		}
		if err != nil {
			return err
		}
		return report.Render(out, rows)
	},
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest the topic with the least study time",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		doc, err := st.Load(cmd.Context())
		if err != nil {
			return err
		}

		out := theme.Writer(cmd.OutOrStdout())
		topic, err := report.SuggestRevision(doc)
		if errors.Is(err, study.ErrNoTopics) {
			fmt.Fprintln(out, theme.Fail.Render("❌ No topics yet."))
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "📌 Suggested revision topic: %s\n", theme.Highlight.Render(topic.Name))
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mededu/internal/model"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the profile and all topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Fprintln(cmd.OutOrStdout(), "This erases every topic, note, session and quiz. Re-run with --yes to confirm.")
			return nil
		}

		st, _, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.Save(cmd.Context(), model.NewDocument()); err != nil {
			return fmt.Errorf("reset document: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "🧹 All study data erased.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm erasing all data")
}

package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sugarshield/sugarshield/internal/daemon"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List logged intake events, newest first",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	events, err := d.Tracker.History()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("No intake events logged yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tCATEGORY\tXP")
	for _, e := range events {
		fmt.Fprintf(w, "%s\t%s\t+%d\n",
			e.OccurredAt.Format("2006-01-02 15:04"),
			e.Category,
			e.XPAwarded,
		)
	}
	return w.Flush()
}

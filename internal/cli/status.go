package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/sugarshield/sugarshield/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show streak, level, and today's metrics",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	s, err := d.Tracker.Summary(time.Now())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Streak:\t%d day(s)\n", s.Streak.Count)
	fmt.Fprintf(w, "Level:\t%d\n", s.Level)
	fmt.Fprintf(w, "Total XP:\t%d\n", s.TotalXP)
	fmt.Fprintf(w, "Progress:\t%d%% to next level\n", s.ProgressPercent)
	if s.TodayLogged {
		fmt.Fprintf(w, "Today:\tlogged\n")
	} else {
		fmt.Fprintf(w, "Today:\tnot logged yet\n")
	}
	fmt.Fprintf(w, "Steps:\t%d\n", s.Daily.Steps)
	fmt.Fprintf(w, "Sleep:\t%.1f h\n", s.Daily.SleepHours)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%s\n", s.Quote)
	return nil
}

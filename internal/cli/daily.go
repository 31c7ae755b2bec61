package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sugarshield/sugarshield/internal/daemon"
)

func init() {
	dailyCmd.Flags().IntVar(&dailySteps, "steps", -1, "Steps walked today")
	dailyCmd.Flags().Float64Var(&dailySleep, "sleep", -1, "Hours slept last night")
	rootCmd.AddCommand(dailyCmd)
}

var (
	dailySteps int
	dailySleep float64
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show or update today's steps and sleep",
	RunE:  runDaily,
}

func runDaily(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	now := time.Now()

	var steps *int
	var sleep *float64
	if cmd.Flags().Changed("steps") {
		steps = &dailySteps
	}
	if cmd.Flags().Changed("sleep") {
		sleep = &dailySleep
	}

	if steps != nil || sleep != nil {
		m, err := d.Tracker.SetDaily(now, steps, sleep)
		if err != nil {
			return err
		}
		fmt.Printf("Updated: %d steps, %.1f h sleep\n", m.Steps, m.SleepHours)
		return nil
	}

	m, err := d.Tracker.Daily(now)
	if err != nil {
		return err
	}
	fmt.Printf("Today: %d steps, %.1f h sleep\n", m.Steps, m.SleepHours)
	return nil
}

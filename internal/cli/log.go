package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/sugarshield/sugarshield/internal/daemon"
	"github.com/sugarshield/sugarshield/internal/domain"
)

func init() {
	rootCmd.AddCommand(logCmd)
}

var logCmd = &cobra.Command{
	Use:   "log CATEGORY",
	Short: "Log a sugar intake event",
	Long: `Log one sugar intake event and run the insight engine.
Categories: ` + strings.Join(categoryNames(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: runLog,
}

func categoryNames() []string {
	cats := domain.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}

func runLog(cmd *cobra.Command, args []string) error {
	category, err := domain.ParseIntakeCategory(args[0])
	if err != nil {
		return err
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	result, err := d.Tracker.LogIntake(category, time.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Logged %s (+%d XP)\n", category, result.Event.XPAwarded)
	if result.WasReset {
		fmt.Println("Streak reset — starting fresh at day 1.")
	} else {
		fmt.Printf("Streak: %d day(s)\n", result.Streak.Count)
	}
	if result.Milestone.Reached {
		fmt.Printf("%s (+%d bonus XP)\n", result.Milestone.Message, result.Milestone.BonusXP)
	}
	if result.LeveledUp {
		fmt.Printf("Level up! You are now level %d.\n", result.Level)
	}
	fmt.Printf("Total XP: %d (level %d, %d%% to next)\n",
		result.TotalXP, result.Level, result.ProgressPercent)
	fmt.Printf("\n%s\n  → %s\n  (%s)\n",
		result.Recommendation.Insight,
		result.Recommendation.Action,
		result.Recommendation.Reason,
	)
	if result.PromptSignup {
		fmt.Println("\nEnjoying SugarShield? Run `sugarshield subscribe` to save your progress.")
	}
	return nil
}

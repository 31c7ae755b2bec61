package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/sugarshield/sugarshield/internal/daemon"
)

func init() {
	rootCmd.AddCommand(quoteCmd)
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a motivational quote",
	RunE:  runQuote,
}

func runQuote(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	q, err := d.Tracker.Quote(time.Now())
	if err != nil {
		return err
	}
	fmt.Println(q)
	return nil
}

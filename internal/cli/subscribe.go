package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sugarshield/sugarshield/internal/daemon"
)

func init() {
	subscribeCmd.Flags().BoolVar(&subscribeOff, "off", false, "Clear the subscription flag")
	rootCmd.AddCommand(subscribeCmd)
}

var subscribeOff bool

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Mark this install as subscribed",
	RunE:  runSubscribe,
}

func runSubscribe(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Tracker.SetSubscribed(!subscribeOff); err != nil {
		return err
	}
	if subscribeOff {
		fmt.Println("Subscription cleared.")
	} else {
		fmt.Println("Subscribed. Your progress stays on this machine.")
	}
	return nil
}

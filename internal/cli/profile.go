package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sugarshield/sugarshield/internal/daemon"
	"github.com/sugarshield/sugarshield/internal/domain"
)

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male, female, other)")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

var (
	profileAge    int
	profileHeight float64
	profileWeight float64
	profileGender string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the stored profile",
	RunE:  runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the profile (age, height, weight, gender)",
	RunE:  runProfileSet,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	p, err := d.Tracker.Profile()
	if err != nil {
		return err
	}
	if p == nil {
		fmt.Println("No profile yet. Run `sugarshield profile set` first.")
		return nil
	}

	fmt.Printf("Age:    %d\n", p.Age)
	fmt.Printf("Height: %.1f cm\n", p.HeightCm)
	fmt.Printf("Weight: %.1f kg\n", p.WeightKg)
	fmt.Printf("Gender: %s\n", p.Gender)
	if p.BMI > 0 {
		fmt.Printf("BMI:    %.1f\n", p.BMI)
	}
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	p, err := d.Tracker.UpdateProfile(domain.Profile{
		Age:      profileAge,
		HeightCm: profileHeight,
		WeightKg: profileWeight,
		Gender:   domain.Gender(profileGender),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Profile saved. BMI: %.1f\n", p.BMI)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sammy-mbugua/portfolio/internal/application/usecase/seed"
)

//nolint:gochecknoglobals // Cobra boilerplate
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Replace all portfolio content with the sample data set",
	Long: `Deletes the profile, education, experience, skills, projects and social links,
then loads the bundled sample data. Contact messages and users are kept.`,
	RunE: runPortfolio,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolio(cmd *cobra.Command, _ []string) error {
	env, err := openEnvironment()
	if err != nil {
		return err
	}
	defer env.Close()

	sum, err := env.seeder.SeedPortfolio(cmd.Context(), seed.SampleData)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "portfolio seeded:")
	fmt.Fprintf(out, "  education:    %d\n", sum.Education)
	fmt.Fprintf(out, "  experience:   %d (%d achievements)\n", sum.Experience, sum.Achievements)
	fmt.Fprintf(out, "  skills:       %d in %d categories\n", sum.Skills, sum.Categories)
	fmt.Fprintf(out, "  projects:     %d\n", sum.Projects)
	fmt.Fprintf(out, "  social links: %d\n", sum.SocialLinks)
	return nil
}

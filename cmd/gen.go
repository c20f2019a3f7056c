package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hikaru-dev/soroban/internal/config"
	"github.com/hikaru-dev/soroban/internal/problemgen"
	"github.com/hikaru-dev/soroban/internal/skills"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate practice problems for the configured skill set",
	RunE: func(cmd *cobra.Command, args []string) error {
		envCfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		cfg, err := resolveConfig(cmd, envCfg)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		terms, _ := cmd.Flags().GetInt("terms")
		verbose, _ := cmd.Flags().GetBool("trace")

		allowed := skills.NewSet()
		for _, dotted := range cfg.Session.PracticingSkills {
			if id, ok := skills.Parse(dotted); ok {
				allowed.Enable(id)
			}
		}

		constraints := problemgen.Constraints{
			NumberRange: cfg.Session.NumberRange,
			MinTerms:    terms,
			MaxTerms:    terms,
		}

		gen := problemgen.New(resolveRand(cmd, envCfg))
		for i := 0; i < count; i++ {
			p, diag := gen.GenerateWithDiagnostics(constraints, allowed, nil, nil)
			if p == nil {
				fmt.Printf("infeasible after %d attempts (sum: %d, skills: %d, complexity: %d)\n",
					diag.Attempts, diag.SumFailures, diag.SkillMismatches, diag.ComplexityFailures)
				continue
			}
			fmt.Printf("%s = %d\n", formatTerms(p.Terms), p.Answer)
			if verbose {
				for _, step := range p.Trace {
					names := make([]string, 0, len(step.Skills))
					for _, id := range step.Skills {
						names = append(names, id.String())
					}
					fmt.Printf("  %3d %+3d -> %3d  cost=%d  %s\n",
						step.Before, step.Term, step.After, step.Cost, strings.Join(names, ", "))
				}
			}
		}
		return nil
	},
}

func init() {
	genCmd.Flags().Int("count", 5, "Number of problems to generate")
	genCmd.Flags().Int("terms", 4, "Terms per problem")
	genCmd.Flags().Bool("trace", false, "Print the per-step skill trace")
}

func formatTerms(terms []int) string {
	var b strings.Builder
	for i, t := range terms {
		switch {
		case i == 0:
			fmt.Fprintf(&b, "%d", t)
		case t < 0:
			fmt.Fprintf(&b, " - %d", -t)
		default:
			fmt.Fprintf(&b, " + %d", t)
		}
	}
	return b.String()
}

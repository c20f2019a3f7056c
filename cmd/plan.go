package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hikaru-dev/soroban/internal/comfort"
	"github.com/hikaru-dev/soroban/internal/config"
	"github.com/hikaru-dev/soroban/internal/session"
	"github.com/hikaru-dev/soroban/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build and print a three-part session plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		envCfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		cfg, err := resolveConfig(cmd, envCfg)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, envCfg)
		if err != nil {
			return err
		}

		modeFlag, _ := cmd.Flags().GetString("mode")
		mode, err := parseMode(modeFlag)
		if err != nil {
			return err
		}

		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := session.NewService(st.Events(), st.PlanSnapshots(), cfg, resolveRand(cmd, envCfg))
		p, err := svc.BuildPlan(cmd.Context(), mode)
		if err != nil {
			return fmt.Errorf("build plan: %w", err)
		}

		fmt.Printf("plan %s (%s)\n", p.ID, mode)
		for i, part := range p.Parts {
			fmt.Printf("part %d: %s\n", i+1, part.Type)
			for j, slot := range part.Slots {
				if slot.Problem == nil {
					fmt.Printf("  %2d. [%s] (unfilled)\n", j+1, slot.Purpose)
					continue
				}
				fmt.Printf("  %2d. [%s] %s = %d\n",
					j+1, slot.Purpose, formatTerms(slot.Problem.Terms), slot.Problem.Answer)
			}
		}
		return nil
	},
}

func init() {
	planCmd.Flags().String("mode", string(comfort.ModeProgression), "Session mode: remediation, progression, or maintenance")
}

func parseMode(s string) (comfort.Mode, error) {
	switch comfort.Mode(s) {
	case comfort.ModeRemediation, comfort.ModeProgression, comfort.ModeMaintenance:
		return comfort.Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

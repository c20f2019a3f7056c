package cmd

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hikaru-dev/soroban/internal/config"
	"github.com/hikaru-dev/soroban/internal/session"
	"github.com/hikaru-dev/soroban/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-skill mastery and readiness from the event log",
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

		st, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer st.Close()

		svc := session.NewService(st.Events(), st.PlanSnapshots(), cfg, resolveRand(cmd, envCfg))
		reports, err := svc.Report(cmd.Context())
		if err != nil {
			return fmt.Errorf("assess skills: %w", err)
		}
		sort.Slice(reports, func(i, j int) bool {
			return reports[i].SkillID.String() < reports[j].SkillID.String()
		})

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SKILL\tP(KNOWN)\tCONF\tOPP\tCLASS\tSOLID")
		for _, r := range reports {
			fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%d\t%s\t%s\n",
				r.SkillID, r.BKT.PKnown, r.BKT.Confidence, r.BKT.Opportunities,
				r.BKT.Classification, solidMark(r.Readiness.IsSolid))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if verbose, _ := cmd.Flags().GetBool("dimensions"); verbose {
			fmt.Println()
			for _, r := range reports {
				d := r.Readiness
				fmt.Printf("%s: mastery=%v volume=%v speed=%v consistency=%v\n",
					r.SkillID, d.Mastery.Met, d.Volume.Met, d.Speed.Met, d.Consistency.Met)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Bool("dimensions", false, "Print the four readiness dimensions per skill")
}

func solidMark(solid bool) string {
	if solid {
		return "yes"
	}
	return "no"
}

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/hikaru-dev/soroban/internal/config"
	"github.com/hikaru-dev/soroban/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "soroban",
	Short: "Adaptive soroban practice engine",
	Long:  "Soroban — adaptive mental arithmetic practice: BKT mastery tracking, readiness gating, and constraint-based problem generation.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SOROBAN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to JSON tunables file (overrides SOROBAN_CONFIG env var)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Problem generator seed; 0 uses the clock (overrides SOROBAN_SEED)")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SOROBAN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, envCfg config.Env) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if envCfg.DBPath != "" {
		return envCfg.DBPath, store.EnsureDir(envCfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveConfig loads tunables from --config / SOROBAN_CONFIG, or defaults.
func resolveConfig(cmd *cobra.Command, envCfg config.Env) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = envCfg.ConfigPath
	}
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveRand builds the generator RNG from --seed / SOROBAN_SEED.
func resolveRand(cmd *cobra.Command, envCfg config.Env) *rand.Rand {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = envCfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

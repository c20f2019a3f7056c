package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hikaru-dev/soroban/internal/bkt"
	"github.com/hikaru-dev/soroban/internal/plan"
	"github.com/hikaru-dev/soroban/internal/skills"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_PracticingSkillsParse(t *testing.T) {
	for _, dotted := range Default().Session.PracticingSkills {
		_, ok := skills.Parse(dotted)
		require.True(t, ok, "default practicing skill %q does not parse", dotted)
	}
}

func TestParse_EmptyObjectKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`{}`))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParse_PartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"bkt": {"params": {"pSlip": 0.2}},
		"session": {"slotsPerPart": 7}
	}`))
	require.NoError(t, err)
	require.Equal(t, 0.2, cfg.BKT.Params.PSlip)
	require.Equal(t, 7, cfg.Session.SlotsPerPart)
	// Untouched fields keep their defaults.
	require.Equal(t, Default().BKT.Params.PGuess, cfg.BKT.Params.PGuess)
	require.Equal(t, Default().Readiness, cfg.Readiness)
}

func TestParse_PerSkillOverride(t *testing.T) {
	cfg, err := Parse([]byte(`{
		"bkt": {"perSkill": {"tenComplements.9=10-1": {"pGuess": 0.1}}}
	}`))
	require.NoError(t, err)
	require.Contains(t, cfg.BKT.PerSkill, "tenComplements.9=10-1")
	require.Equal(t, 0.1, cfg.BKT.PerSkill["tenComplements.9=10-1"].PGuess)
}

func TestParse_SchemaRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"unknown top-level key", `{"bogus": true}`},
		{"pSlip too high", `{"bkt": {"params": {"pSlip": 0.6}}}`},
		{"negative slots", `{"session": {"slotsPerPart": -1}}`},
		{"bad purpose", `{"session": {"purposeMix": ["warmup"]}}`},
		{"bad skill id", `{"session": {"practicingSkills": ["noDotHere"]}}`},
		{"epoch cap too high", `{"session": {"retryEpochCap": 3}}`},
		{"not json", `{`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.raw))
			require.Error(t, err)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"session": {"slotsPerPart": 3}}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Session.SlotsPerPart)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestValidate_CrossFieldInvariants(t *testing.T) {
	cfg := Default()
	cfg.Session.RetryEpochCap = plan.MaxRetryEpochs + 1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Session.NumberRange.Min = 5
	cfg.Session.NumberRange.Max = 2
	require.Error(t, cfg.Validate())

	cfg = Default()
	bad := bkt.DefaultParams()
	bad.PSlip = 0.6
	cfg.BKT.PerSkill = map[string]bkt.Params{"basic.directAddition": bad}
	require.Error(t, cfg.Validate())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("SOROBAN_DB", "/tmp/test.db")
	t.Setenv("SOROBAN_SEED", "42")

	e, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, "/tmp/test.db", e.DBPath)
	require.Equal(t, int64(42), e.Seed)
	require.Empty(t, e.ConfigPath)
}

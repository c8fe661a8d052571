package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local user", cfg.Actor)
	assert.Equal(t, []string{"saturday", "sunday"}, cfg.Calendar.WeekdayHolidays)
	assert.True(t, cfg.Calendar.ObserveFixed)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
actor: rin
calendar:
  weekday_holidays: [sunday]
  fixed_holidays: ["2026-01-01"]
  observe_fixed: false
logging:
  level: DEBUG
collaborators:
  - id: u-1
    name: Rin
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "gantt.yaml"), []byte(content), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "rin", cfg.Actor)
	assert.Equal(t, []string{"sunday"}, cfg.Calendar.WeekdayHolidays)
	assert.False(t, cfg.Calendar.ObserveFixed)
	assert.Equal(t, "DEBUG", cfg.Logging.Level)

	dir := cfg.Directory()
	a, ok := dir.Lookup("Rin")
	require.True(t, ok)
	assert.Equal(t, "u-1", a.ID)
}

func TestConfigPolicy(t *testing.T) {
	cfg := &Config{
		Calendar: CalendarConfig{
			WeekdayHolidays: []string{"Saturday", "sunday"},
			FixedHolidays:   []string{"2026-05-01"},
			ObserveFixed:    true,
		},
	}

	policy, err := cfg.Policy()
	require.NoError(t, err)

	assert.True(t, policy.WeekdayHolidays[time.Saturday])
	assert.True(t, policy.WeekdayHolidays[time.Sunday])
	assert.False(t, policy.WeekdayHolidays[time.Monday])
	assert.True(t, policy.FixedHolidays["2026-05-01"])
}

func TestConfigPolicyRejectsBadInput(t *testing.T) {
	_, err := (&Config{Calendar: CalendarConfig{WeekdayHolidays: []string{"caturday"}}}).Policy()
	assert.Error(t, err)

	_, err = (&Config{Calendar: CalendarConfig{FixedHolidays: []string{"May Day"}}}).Policy()
	assert.Error(t, err)
}

// TestConfigPolicyRejectsAllHolidayWeek: a gantt.yaml flagging all seven
// weekdays would leave the end-date walk with nothing to consume, so the
// config is refused up front.
func TestConfigPolicyRejectsAllHolidayWeek(t *testing.T) {
	cfg := &Config{Calendar: CalendarConfig{WeekdayHolidays: []string{
		"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
	}}}

	_, err := cfg.Policy()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one workday")
}

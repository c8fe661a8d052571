package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/driftboard/gantt"
)

// Config is the host configuration, read from gantt.yaml in the workspace
// when present, with sensible defaults otherwise.
type Config struct {
	// Actor is the name stamped on history entries created from this CLI.
	Actor         string               `mapstructure:"actor"`
	Calendar      CalendarConfig       `mapstructure:"calendar"`
	Logging       LoggingConfig        `mapstructure:"logging"`
	Collaborators []CollaboratorConfig `mapstructure:"collaborators"`
}

// CalendarConfig holds the holiday policy.
type CalendarConfig struct {
	// WeekdayHolidays lists recurring weekly holidays by name ("saturday", ...).
	WeekdayHolidays []string `mapstructure:"weekday_holidays"`
	// FixedHolidays lists specific dates as YYYY-MM-DD strings.
	FixedHolidays []string `mapstructure:"fixed_holidays"`
	// ObserveFixed toggles whether the fixed dates are observed at all.
	ObserveFixed bool `mapstructure:"observe_fixed"`
}

// LoggingConfig controls host-side logging.
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR.
	Level string `mapstructure:"level"`
}

// CollaboratorConfig is a known team member for AI assignee resolution.
type CollaboratorConfig struct {
	ID     string `mapstructure:"id"`
	Name   string `mapstructure:"name"`
	Avatar string `mapstructure:"avatar"`
}

// LoadConfig reads gantt.yaml from the workspace directory. A missing config
// file is not an error; defaults apply.
func LoadConfig(workspaceDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("gantt")
	v.SetConfigType("yaml")
	v.AddConfigPath(workspaceDir)

	v.SetDefault("actor", "local user")
	v.SetDefault("calendar.weekday_holidays", []string{"saturday", "sunday"})
	v.SetDefault("calendar.observe_fixed", true)
	v.SetDefault("logging.level", "INFO")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Policy builds the engine calendar policy from the config.
func (c *Config) Policy() (*gantt.CalendarPolicy, error) {
	var weekdays []time.Weekday
	for _, name := range c.Calendar.WeekdayHolidays {
		wd, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in calendar.weekday_holidays", name)
		}
		weekdays = append(weekdays, wd)
	}
	policy := gantt.NewCalendarPolicy(weekdays...)
	if !policy.HasWorkday() {
		return nil, fmt.Errorf("calendar.weekday_holidays flags every weekday; at least one workday is required")
	}
	policy.ObserveFixed = c.Calendar.ObserveFixed
	for _, day := range c.Calendar.FixedHolidays {
		if _, err := gantt.ParseDay(day); err != nil {
			return nil, fmt.Errorf("bad date in calendar.fixed_holidays: %w", err)
		}
		policy.AddFixedHoliday(day)
	}
	return policy, nil
}

// Directory builds the assignee-resolution directory from the configured
// collaborators.
func (c *Config) Directory() gantt.CollaboratorMap {
	m := make(gantt.CollaboratorMap, len(c.Collaborators))
	for _, collab := range c.Collaborators {
		m[collab.Name] = gantt.Assignee{ID: collab.ID, Name: collab.Name, Avatar: collab.Avatar}
	}
	return m
}

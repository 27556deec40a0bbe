// Package main provides the CLI entrypoint for tuiclock.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/verte-zerg/tuiclock/internal/app"
	"github.com/verte-zerg/tuiclock/internal/clockface"
	"github.com/verte-zerg/tuiclock/internal/config"
	"github.com/verte-zerg/tuiclock/internal/logging"
	"github.com/verte-zerg/tuiclock/internal/model"
	"github.com/verte-zerg/tuiclock/internal/sound"
	"github.com/verte-zerg/tuiclock/internal/store"
	"github.com/verte-zerg/tuiclock/internal/tui"
)

const (
	defaultHours       = 0
	defaultMinutes     = 25
	defaultSeconds     = 0
	defaultAlarmHour   = 7
	defaultAlarmMinute = 0
	defaultVolume      = 0.8
	defaultLogLevel    = "info"
	defaultLogFormat   = "console"
)

var (
	runHours       int
	runMinutes     int
	runSeconds     int
	runAlarmHour   int
	runAlarmMinute int
	runLocale      string
	runTimeLayout  string
	runDateLayout  string
	runSound       bool
	runVolume      float64
	runLogLevel    string
	runLogFormat   string
	runJournal     bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuiclock",
		Short:         "Pomodoro, stopwatch, clock and alarms in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runClockCmd,
	}

	flags := rootCmd.Flags()
	flags.IntVar(&runHours, "hours", defaultHours, "initial countdown hours (0-23)")
	flags.IntVar(&runMinutes, "minutes", defaultMinutes, "initial countdown minutes (0-59)")
	flags.IntVar(&runSeconds, "seconds", defaultSeconds, "initial countdown seconds (0-59)")
	flags.IntVar(&runAlarmHour, "alarm-hour", defaultAlarmHour, "hour pre-filled for new alarms (0-23)")
	flags.IntVar(&runAlarmMinute, "alarm-minute", defaultAlarmMinute, "minute pre-filled for new alarms (0-59)")
	flags.StringVar(&runLocale, "locale", clockface.DefaultLocale, "clock locale (BCP 47 tag)")
	flags.StringVar(&runTimeLayout, "time-layout", clockface.DefaultTimeLayout, "clock time layout (Go reference time)")
	flags.StringVar(&runDateLayout, "date-layout", "", "clock date layout (default depends on locale)")
	flags.BoolVar(&runSound, "sound", true, "play a tone while an alarm fires")
	flags.Float64Var(&runVolume, "volume", defaultVolume, "alarm volume (0-1)")
	flags.StringVar(&runLogLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	flags.StringVar(&runLogFormat, "log-format", defaultLogFormat, "log format: console or json")
	flags.BoolVar(&runJournal, "journal", false, "record alarm and countdown events to the journal")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLocalesCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runClockCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, err := logging.New(runLogLevel, runLogFormat, config.DefaultLogPath())
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()
	logger.Debug("config loaded", zap.String("path", config.DefaultConfigPath()))

	var audio sound.Audio = sound.Mute{}
	if cfg.SoundEnabled {
		player := sound.NewPlayer(cfg.Volume)
		defer player.Stop()
		audio = player
	}

	opts := app.Options{
		Notifier: sound.NewAlerter(audio, logger),
		Logger:   logger,
	}
	if cfg.Journal {
		st, err := store.Open(config.DefaultJournalPath())
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logger.Error("failed to close journal", zap.Error(cerr))
			}
		}()
		opts.Journal = st
	}

	ctrl, err := app.New(cfg, opts)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	logger.Info("starting",
		zap.Stringer("countdown", cfg.Countdown),
		zap.String("locale", cfg.Locale),
		zap.Bool("sound", cfg.SoundEnabled),
		zap.Bool("journal", cfg.Journal),
	)
	program := tea.NewProgram(tui.NewModel(ctrl), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	logger.Info("stopped")
	return nil
}

// resolveConfig layers the config file under the command-line flags: a value
// from the file applies only when its flag was not given.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	applyIntConfig(cmd, "hours", &runHours, fileCfg.Countdown.Hours)
	applyIntConfig(cmd, "minutes", &runMinutes, fileCfg.Countdown.Minutes)
	applyIntConfig(cmd, "seconds", &runSeconds, fileCfg.Countdown.Seconds)
	applyIntConfig(cmd, "alarm-hour", &runAlarmHour, fileCfg.Alarm.Hour)
	applyIntConfig(cmd, "alarm-minute", &runAlarmMinute, fileCfg.Alarm.Minute)
	applyStringConfig(cmd, "locale", &runLocale, fileCfg.Clock.Locale)
	applyStringConfig(cmd, "time-layout", &runTimeLayout, fileCfg.Clock.TimeLayout)
	applyStringConfig(cmd, "date-layout", &runDateLayout, fileCfg.Clock.DateLayout)
	applyBoolConfig(cmd, "sound", &runSound, fileCfg.Sound.Enabled)
	applyFloatConfig(cmd, "volume", &runVolume, fileCfg.Sound.Volume)
	applyStringConfig(cmd, "log-level", &runLogLevel, fileCfg.Log.Level)
	applyStringConfig(cmd, "log-format", &runLogFormat, fileCfg.Log.Format)
	applyBoolConfig(cmd, "journal", &runJournal, fileCfg.Journal.Enabled)

	return model.Config{
		Countdown:    model.Duration{Hours: runHours, Minutes: runMinutes, Seconds: runSeconds},
		AlarmHour:    runAlarmHour,
		AlarmMinute:  runAlarmMinute,
		Locale:       runLocale,
		TimeLayout:   runTimeLayout,
		DateLayout:   runDateLayout,
		SoundEnabled: runSound,
		Volume:       runVolume,
		Journal:      runJournal,
	}
}

func validateConfig(cfg model.Config) error {
	d := cfg.Countdown
	if d.Hours < 0 || d.Hours > model.FieldHours.Max() {
		return fmt.Errorf("--hours must be between 0 and %d", model.FieldHours.Max())
	}
	if d.Minutes < 0 || d.Minutes > model.FieldMinutes.Max() {
		return fmt.Errorf("--minutes must be between 0 and %d", model.FieldMinutes.Max())
	}
	if d.Seconds < 0 || d.Seconds > model.FieldSeconds.Max() {
		return fmt.Errorf("--seconds must be between 0 and %d", model.FieldSeconds.Max())
	}
	if cfg.AlarmHour < 0 || cfg.AlarmHour > 23 {
		return fmt.Errorf("--alarm-hour must be between 0 and 23")
	}
	if cfg.AlarmMinute < 0 || cfg.AlarmMinute > 59 {
		return fmt.Errorf("--alarm-minute must be between 0 and 59")
	}
	if cfg.Volume < 0 || cfg.Volume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	if strings.TrimSpace(cfg.TimeLayout) == "" {
		return fmt.Errorf("--time-layout must not be empty")
	}
	if _, err := clockface.ParseLocale(cfg.Locale); err != nil {
		return fmt.Errorf("--locale: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List clock locales",
		Args:  cobra.NoArgs,
		RunE:  runLocalesCmd,
	}
}

func runLocalesCmd(cmd *cobra.Command, _ []string) error {
	for _, locale := range clockface.SupportedLocales() {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), locale); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuiclock configuration
# Uncomment a value to enable it. CLI flags override config values.

[countdown]
# hours = %d              # Initial Pomodoro hours (0-23)
# minutes = %d           # Initial Pomodoro minutes (0-59)
# seconds = %d            # Initial Pomodoro seconds (0-59)

[alarm]
# hour = %d               # Hour pre-filled for new alarms (0-23)
# minute = %d             # Minute pre-filled for new alarms (0-59)

[clock]
# locale = %q       # BCP 47 tag, see "tuiclock locales"
# time-layout = %q # Go reference-time layout
# date-layout = ""        # Empty picks the locale default

[sound]
# enabled = true          # Play a tone while an alarm fires
# volume = %.1f           # 0 mutes, 1 is full volume

[log]
# level = %q          # debug, info, warn or error
# format = %q      # console or json

[journal]
# enabled = false         # Record alarm and countdown events
`,
		defaultHours,
		defaultMinutes,
		defaultSeconds,
		defaultAlarmHour,
		defaultAlarmMinute,
		clockface.DefaultLocale,
		clockface.DefaultTimeLayout,
		defaultVolume,
		defaultLogLevel,
		defaultLogFormat,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/shineyview/internal/config"
	"github.com/example/shineyview/internal/notify"
	"github.com/example/shineyview/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs            *flag.FlagSet
	program       string
	notifier      *notify.Notifier
	config        *config.Config
	captureAlerts bool
	saveAlerts    bool
	copyAlerts    bool
	deleteAlerts  bool
	restoreAlerts bool
	themeName     string
	activeTheme   *theme.Theme
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:       program,
		notifier:      r.notifier,
		config:        r.config,
		captureAlerts: r.captureAlerts,
		saveAlerts:    r.saveAlerts,
		copyAlerts:    r.copyAlerts,
		deleteAlerts:  r.deleteAlerts,
		restoreAlerts: r.restoreAlerts,
		themeName:     r.themeName,
		activeTheme:   r.activeTheme,
	}
}

func newRoot() *root {
	prefs := notify.LoadPreferences()
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}

	r := &root{
		fs:       flag.NewFlagSet("shineyview", flag.ExitOnError),
		program:  "shineyview",
		notifier: notify.New(prefs),
		config:   cfg,
	}
	r.fs.BoolVar(&r.captureAlerts, "notify-capture", cfg.Notify.Capture, "show a desktop notification after grabbing the screen")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", cfg.Notify.Save, "show a desktop notification after saving an image")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", cfg.Notify.Copy, "show a desktop notification after copying to the clipboard")
	r.fs.BoolVar(&r.deleteAlerts, "notify-delete", cfg.Notify.Delete, "show a desktop notification after moving an image to the trash")
	r.fs.BoolVar(&r.restoreAlerts, "notify-restore", cfg.Notify.Restore, "show a desktop notification after restoring a deleted image")
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (dark, light, or one defined in the config)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventCapture, r.captureAlerts)
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		r.notifier.Enable(notify.EventDelete, r.deleteAlerts)
		r.notifier.Enable(notify.EventRestore, r.restoreAlerts)
	}

	// Theme precedence: CLI flag > environment > config file > default.
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("SHINEYVIEW_THEME")
	}
	if themeName == "" {
		themeName = r.config.Theme
	}
	if cfgTheme, ok := r.config.Themes[themeName]; ok {
		r.activeTheme = cfgTheme
	} else {
		t, err := theme.NewLoader().Load(themeName)
		if err != nil {
			if themeName != "" && themeName != "default" {
				fmt.Fprintf(os.Stderr, "warning: failed to load theme %q: %v. using default.\n", themeName, err)
			}
			t = theme.Default()
		}
		r.activeTheme = t
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "view":
		cmd, err = parseViewCmd(subArgs, r.subcommand(cmdName))
	case "grab":
		cmd, err = parseGrabCmd(subArgs, r.subcommand(cmdName))
	case "edit":
		cmd, err = parseEditCmd(subArgs, r.subcommand(cmdName))
	case "list":
		cmd, err = parseListCmd(subArgs, r.subcommand(cmdName))
	case "delete":
		cmd, err = parseDeleteCmd(subArgs, r.subcommand(cmdName))
	case "restore":
		cmd, err = parseRestoreCmd(subArgs, r.subcommand(cmdName))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand(cmdName))
	case "interactive":
		// The REPL redispatches through the root, so it keeps it whole.
		cmd, err = parseInteractiveCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

package config

import (
	"flag"
	"io"
	"strings"
)

// Parse loads the environment, applies CLI args on top, and validates the result.
// flag.ErrHelp is returned untouched when -h/--help is requested.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg, err := Load()
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	BindFlags(fs, &cfg)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BindFlags registers CLI flags backed by cfg. Current values of cfg become flag defaults.
// Go's flag package accepts both -name and --name.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output file path for the JSON database")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "shorthand for --output")
	fs.IntVar(&cfg.DelayMS, "delay", cfg.DelayMS, "delay between requests in milliseconds")
	fs.IntVar(&cfg.DelayMS, "d", cfg.DelayMS, "shorthand for --delay")
	fs.IntVar(&cfg.StartYear, "start-year", cfg.StartYear, "first season start year")
	fs.IntVar(&cfg.EndYear, "end-year", cfg.EndYear, "last season start year (inclusive)")
	fs.BoolVar(&cfg.IncludeGames, "include-games", cfg.IncludeGames, "also scan boxscores for players missing from rosters")
	fs.IntVar(&cfg.GameLimit, "game-limit", cfg.GameLimit, "games per team and season to scan when --include-games is set")
	fs.Var((*listValue)(&cfg.Teams), "teams", "comma-separated current team codes to collect (default all)")
	fs.StringVar(&cfg.Provider, "provider", cfg.Provider, "data provider: nhle or fixture")
}

// listValue is a comma-separated flag.Value.
type listValue []string

func (l *listValue) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *listValue) Set(raw string) error {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}

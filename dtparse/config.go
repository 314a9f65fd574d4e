package main

import (
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/araddon/dtparse"
)

// fileConfig is the optional TOML file. Command line flags override it.
//
//	timezone = "America/Denver"
//	dayfirst = true
//	weekday = "nearest"
//
//	[tzinfos]
//	BRST = "America/Sao_Paulo"
type fileConfig struct {
	Timezone  string            `toml:"timezone"`
	DayFirst  bool              `toml:"dayfirst"`
	YearFirst bool              `toml:"yearfirst"`
	Fuzzy     bool              `toml:"fuzzy"`
	IgnoreTZ  bool              `toml:"ignoretz"`
	Weekday   string            `toml:"weekday"`
	Default   string            `toml:"default"`
	TZInfos   map[string]string `toml:"tzinfos"`
}

// loadConfig reads path; an empty path gives the zero config.
func loadConfig(path string) (*fileConfig, error) {
	cfg := &fileConfig{}
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	for _, key := range md.Undecoded() {
		logWarn().Str("key", key.String()).Str("file", path).Msg("unknown config key")
	}
	return cfg, nil
}

// options turns the config into parser options. The timezone is not among
// them; it picks an extra output row instead.
func (c *fileConfig) options() ([]dtparse.ParserOption, error) {
	opts := []dtparse.ParserOption{
		dtparse.DayFirst(c.DayFirst),
		dtparse.YearFirst(c.YearFirst),
		dtparse.IgnoreTZ(c.IgnoreTZ),
	}
	if c.Fuzzy {
		opts = append(opts, dtparse.FuzzyWithTokens(true))
	}

	dir, err := parseDirection(c.Weekday)
	if err != nil {
		return nil, err
	}
	opts = append(opts, dtparse.WeekdaySearch(dir))

	if len(c.TZInfos) > 0 {
		tzinfos := make(map[string]*time.Location, len(c.TZInfos))
		for name, zone := range c.TZInfos {
			loc, err := time.LoadLocation(zone)
			if err != nil {
				return nil, errors.Wrapf(err, "tzinfos %s", name)
			}
			tzinfos[name] = loc
		}
		opts = append(opts, dtparse.TZInfos(tzinfos))
	}

	if c.Default != "" {
		def, err := dtparse.ParseAny(c.Default)
		if err != nil {
			return nil, errors.Wrap(err, "default")
		}
		opts = append(opts, dtparse.Default(def))
	}
	return opts, nil
}

func parseDirection(s string) (dtparse.WeekdayDirection, error) {
	switch strings.ToLower(s) {
	case "", "forward":
		return dtparse.WeekdayForward, nil
	case "backward":
		return dtparse.WeekdayBackward, nil
	case "nearest":
		return dtparse.WeekdayNearest, nil
	}
	return 0, errors.Errorf("weekday search %q: want forward, backward or nearest", s)
}

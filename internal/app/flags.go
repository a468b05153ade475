package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"life-ca/pkg/sims/life"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Size       int
	IntervalMs int
	Seed       int64
	Paused     bool
	Overrides  KVList

	CellPx   int
	HUDWidth int
}

// NewConfig returns a Config populated with the engine defaults.
func NewConfig() *Config {
	def := life.DefaultConfig()
	return &Config{
		Size:       def.Size,
		IntervalMs: def.IntervalMs,
		Seed:       def.Seed,
		Paused:     !def.Running,
		CellPx:     28,
		HUDWidth:   220,
	}
}

// Bind attaches the simulation flags to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid side length (5-20)")
	fs.IntVar(&c.IntervalMs, "interval", c.IntervalMs, "milliseconds between generations (50-300)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.Var(&c.Overrides, "set", "engine parameter override in key=value form (repeatable)")
}

// BindGUI attaches the window layout flags to the provided FlagSet.
func (c *Config) BindGUI(fs *flag.FlagSet) {
	fs.IntVar(&c.CellPx, "cell", c.CellPx, "cell size in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels (0 hides it)")
}

// LifeConfig resolves the flags into an engine configuration. Values given
// with -set win over the dedicated flags.
func (c *Config) LifeConfig() life.Config {
	kv := map[string]string{
		"size":        strconv.Itoa(c.Size),
		"interval_ms": strconv.Itoa(c.IntervalMs),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"running":     strconv.FormatBool(!c.Paused),
	}
	for k, v := range c.Overrides.Map() {
		kv[k] = v
	}
	return life.FromMap(kv)
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set validates and appends a key=value pair.
func (l *KVList) Set(value string) error {
	key, _, ok := strings.Cut(value, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later pairs win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, _ := strings.Cut(kv, "=")
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m
}

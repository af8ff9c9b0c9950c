// Package config loads job configuration for a part/package build from an
// INI file, mirroring the shape of this codebase family's other
// LoadConfig(path) entry points: defaults first, then file, then
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Config holds one getPackages job's settings, read from the
// [packages] section of an INI file.
type Config struct {
	// MinPackageSize is the KB threshold for shared packages.
	MinPackageSize int64
	// MinPackageSizeForUnshared is the KB threshold for unshared
	// packages; zero means "use MinPackageSize".
	MinPackageSizeForUnshared int64

	// Parts is the ordered list of part names, as they appeared in the
	// [packages.parts] section.
	Parts []string
	// PartIncludes maps part name to its entry class list.
	PartIncludes map[string][]string

	// Collapse lists parts to collapse, in order; the part at position k
	// is folded into its k-th highest-priority package.
	Collapse []string
	// BootPart names the part auto-added to the collapse list, if not
	// already present.
	BootPart string

	// SmartExclude is globally excluded from every part's dependency
	// closure.
	SmartExclude []string

	// Variants is an opaque build-flag bag propagated unchanged to the
	// resolver and compiler.
	Variants map[string]string

	// ManifestPath points at the class manifest consumed by package
	// manifest.
	ManifestPath string

	// CachePath is the bbolt run-cache file used by package store.
	CachePath string
}

// LoadConfig reads job configuration from path. After the file is
// parsed, the environment variables PARTBUILDER_MIN_PACKAGE,
// PARTBUILDER_MIN_PACKAGE_UNSHARED, PARTBUILDER_INIT and
// PARTBUILDER_CACHE override the matching [packages] keys; no other
// key has an environment override.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		PartIncludes: make(map[string][]string),
		Variants:     make(map[string]string),
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	sec := f.Section("packages")
	cfg.MinPackageSize = sec.Key("min-package").MustInt64(0)
	cfg.MinPackageSizeForUnshared = sec.Key("min-package-unshared").MustInt64(0)
	cfg.BootPart = sec.Key("init").String()
	cfg.Collapse = splitCSV(sec.Key("collapse").String())
	cfg.SmartExclude = splitCSV(sec.Key("smart-exclude").String())
	cfg.ManifestPath = sec.Key("manifest").String()
	cfg.CachePath = sec.Key("cache").String()

	partsSec, err := f.GetSection("packages.parts")
	if err == nil {
		for _, key := range partsSec.Keys() {
			name := key.Name()
			cfg.Parts = append(cfg.Parts, name)
			cfg.PartIncludes[name] = splitCSV(key.String())
		}
	}

	if variantsSec, err := f.GetSection("packages.variants"); err == nil {
		for _, key := range variantsSec.Keys() {
			cfg.Variants[key.Name()] = key.String()
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v, ok := os.LookupEnv("PARTBUILDER_MIN_PACKAGE"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MinPackageSize = n
		}
	}
	if v, ok := os.LookupEnv("PARTBUILDER_MIN_PACKAGE_UNSHARED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MinPackageSizeForUnshared = n
		}
	}
	if v, ok := os.LookupEnv("PARTBUILDER_INIT"); ok {
		cfg.BootPart = v
	}
	if v, ok := os.LookupEnv("PARTBUILDER_CACHE"); ok {
		cfg.CachePath = v
	}
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	fields := strings.Split(s, ",")
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"partbuilder/config"
	"partbuilder/log"
	"partbuilder/manifest"
	"partbuilder/partpkg"
)

// runJob loads cfg and its manifest, wires the reference resolver and
// compiler, and runs one getPackages pass.
func runJob(configPath string) (partpkg.Result, *config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return partpkg.Result{}, nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.ManifestPath == "" {
		return partpkg.Result{}, nil, fmt.Errorf("config %s has no [packages] manifest key", configPath)
	}
	mf, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return partpkg.Result{}, nil, fmt.Errorf("loading manifest: %w", err)
	}

	jobName := strings.TrimSuffix(filepath.Base(configPath), filepath.Ext(configPath))
	console := log.NewIndentingConsole(log.WithPrefix(log.StdoutLogger{}, jobName))
	builder := partpkg.NewBuilder(manifest.NewResolver(mf), manifest.NewCompiler(mf), console)

	result, err := builder.GetPackages(cfg.Parts, cfg.PartIncludes, mf.ClassIDs(), partpkg.Options{
		SmartExclude:              cfg.SmartExclude,
		CollapseParts:             cfg.Collapse,
		BootPart:                  cfg.BootPart,
		MinPackageSize:            cfg.MinPackageSize,
		MinPackageSizeForUnshared: cfg.MinPackageSizeForUnshared,
		Variants:                  cfg.Variants,
	})
	if err != nil {
		return partpkg.Result{}, cfg, fmt.Errorf("building packages: %w", err)
	}

	return result, cfg, nil
}

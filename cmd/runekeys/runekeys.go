package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Alia5/runekeys/internal/config"
	"github.com/Alia5/runekeys/internal/configpaths"
	"github.com/Alia5/runekeys/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

func main() {

	userCfg := findUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli config.CLI
	ctx := kong.Parse(&cli,
		kong.Name("runekeys"),
		kong.Description("System-wide runic keyboard remapper"),
		kong.UsageOnError(),
		// Load configuration from JSON/YAML/TOML in priority order; flags/env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	rawLogger, rawFile := openRaw(cli.Log, logger)
	if rawFile != nil {
		closeFiles = append(closeFiles, rawFile)
	}
	defer func() {
		_ = rawLogger.Close()
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()

	ctx.Bind(logger)
	ctx.BindTo(rawLogger, (*log.RawLogger)(nil))

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func openRaw(cfg log.Config, logger *slog.Logger) (log.RawLogger, io.Closer) {
	switch {
	case cfg.RawFile != "":
		f, err := os.OpenFile(cfg.RawFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			logger.Error("failed to open raw log file", "file", cfg.RawFile, "error", err)
			return log.NewRaw(nil), nil
		}
		return log.NewRaw(f), f
	case cfg.Level == "trace":
		return log.NewRaw(os.Stdout), nil
	default:
		return log.NewRaw(nil), nil
	}
}

func findUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if v := os.Getenv("RUNEKEYS_CONFIG"); v != "" {
		return v
	}
	return ""
}

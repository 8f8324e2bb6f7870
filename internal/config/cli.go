// Package config declares the command line surface parsed by kong.
package config

import (
	"github.com/Alia5/runekeys/internal/cmd"
	"github.com/Alia5/runekeys/internal/log"
)

// CLI is the root of the kong command tree.
type CLI struct {
	Config string     `help:"Configuration file (JSON, YAML or TOML) providing flag values" placeholder:"PATH" env:"RUNEKEYS_CONFIG"`
	Log    log.Config `embed:"" prefix:"log."`

	Run      cmd.Run           `cmd:"" default:"withargs" help:"Start the system-wide keyboard remapper (default)"`
	Table    cmd.Table         `cmd:"" help:"Print the character table"`
	Translit cmd.Translit      `cmd:"" help:"Show what typing a text would produce while mapping is enabled"`
	ConfigC  cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}

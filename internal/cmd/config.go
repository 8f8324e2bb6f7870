package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/Alia5/runekeys/internal/configpaths"
	"github.com/Alia5/runekeys/internal/log"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file holding every flag default.
type ConfigInit struct {
	Format string `help:"Output format" enum:"json,yaml,toml" default:"json"`
	Output string `help:"Destination file path (defaults to runekeys.<ext> in the current directory)"`
	Force  bool   `help:"Overwrite if the file already exists"`
}

// Run generates a configuration template via reflection of the flag structs and tags.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	dest := c.Output
	if dest == "" {
		dest = configpaths.AppName + "." + configpaths.Ext(format)
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := Template(format)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

// Template renders the defaults of the run flags and the log flags in the
// given format. Keys follow the names the kong configuration loaders resolve.
func Template(format string) ([]byte, error) {
	root := buildMapFromStruct(reflect.TypeOf(Run{}))
	root["log"] = buildMapFromStruct(reflect.TypeOf(log.Config{}))

	switch normalizeFormat(format) {
	case "json":
		return json.MarshalIndent(root, "", "  ")
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// snakeCase turns a Go field name into the key the loaders match a flag
// against, e.g. ToggleKey -> toggle_key.
func snakeCase(s string) string {
	var b strings.Builder
	r := []rune(s)
	for i, c := range r {
		if unicode.IsUpper(c) {
			if i > 0 && (unicode.IsLower(r[i-1]) || (i+1 < len(r) && unicode.IsLower(r[i+1]))) {
				b.WriteByte('_')
			}
			c = unicode.ToLower(c)
		}
		b.WriteRune(c)
	}
	return b.String()
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("arg"); ok {
			continue
		}
		if _, ok := f.Tag.Lookup("cmd"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok {
			prefix := f.Tag.Get("prefix")
			name := strings.TrimSuffix(prefix, ".")
			sub := buildMapFromStruct(f.Type)
			if name != "" {
				out[name] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		key := snakeCase(f.Name)
		if n := f.Tag.Get("name"); n != "" {
			key = strings.ReplaceAll(n, "-", "_")
		}
		val := defaultValueForField(f.Type, f.Tag.Get("default"))
		if val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		if def == "" {
			return false
		}
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if def == "" {
			return 0
		}
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}

// Package config handles configuration loading for the hinglish command from
// a YAML file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables understood by Load. Every field of Config may also
// be set as HINGLISH_<YAML_KEY>, e.g. HINGLISH_LOG_LEVEL=debug.
const (
	EnvPrefix     = "HINGLISH"
	EnvConfigFile = "HINGLISH_CONFIG_FILE"
	DefaultFile   = "hinglish.yaml"
)

// Conversion modes.
const (
	ModeAuto  = "auto"
	ModeHindi = "hindi" // Roman to Devanagari
	ModeRoman = "roman" // Devanagari to Roman
)

// Word list directions, used as prefix of a word list reference.
const (
	DirectionRoman      = "roman"      // list maps Roman words to Devanagari
	DirectionDevanagari = "devanagari" // list maps Devanagari words to Roman
)

// Config is the configuration of the hinglish command.
type Config struct {
	Mode      string   `yaml:"mode"`
	Words     []string `yaml:"words"` // word list references, see ParseWordList
	Workers   int      `yaml:"workers"`
	CacheSize int      `yaml:"cache_size"`
	LogLevel  string   `yaml:"log_level"`
}

// WordList is a parsed word list reference.
type WordList struct {
	Direction string
	Path      string
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Mode:     ModeAuto,
		LogLevel: "warn",
	}
}

// Load reads the configuration file at path. An empty path selects the file
// named by HINGLISH_CONFIG_FILE, or else DefaultFile if it exists. Values
// from the environment override values from the file.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		if path = os.Getenv(EnvConfigFile); path != "" {
			explicit = true
		} else {
			path = DefaultFile
		}
	}
	config := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// no config file, stay with defaults
	default:
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	overrideStructFromEnv(config, EnvPrefix)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the mode and all word list references.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeAuto, ModeHindi, ModeRoman:
	default:
		return fmt.Errorf("invalid mode %q, expected auto, hindi or roman", c.Mode)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid number of workers: %d", c.Workers)
	}
	for _, ref := range c.Words {
		if _, err := ParseWordList(ref); err != nil {
			return err
		}
	}
	return nil
}

// WordLists returns the parsed word list references. Call Validate first.
func (c *Config) WordLists() []WordList {
	lists := make([]WordList, 0, len(c.Words))
	for _, ref := range c.Words {
		if list, err := ParseWordList(ref); err == nil {
			lists = append(lists, list)
		}
	}
	return lists
}

// ParseWordList parses a word list reference of the form "roman:path" or
// "devanagari:path". A reference without prefix is a Roman word list.
func ParseWordList(ref string) (WordList, error) {
	direction, path, found := strings.Cut(ref, ":")
	if !found {
		direction, path = DirectionRoman, ref
	}
	switch direction {
	case DirectionRoman, DirectionDevanagari:
	default:
		return WordList{}, fmt.Errorf("invalid word list %q: unknown direction %q", ref, direction)
	}
	if path == "" {
		return WordList{}, fmt.Errorf("invalid word list %q: missing path", ref)
	}
	return WordList{Direction: direction, Path: path}, nil
}

// overrideStructFromEnv overrides struct fields with environment variables
// named prefix_YAMLKEY.
func overrideStructFromEnv(v any, prefix string) {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return
	}
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		yamlTag := typ.Field(i).Tag.Get("yaml")
		if !field.CanSet() || yamlTag == "" || yamlTag == "-" {
			continue
		}
		envKey := prefix + "_" + strings.ToUpper(strings.ReplaceAll(yamlTag, "-", "_"))
		envVal := os.Getenv(envKey)
		if envVal == "" {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			field.SetString(envVal)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if intVal, err := strconv.ParseInt(envVal, 10, 64); err == nil {
				field.SetInt(intVal)
			}
		case reflect.Bool:
			if boolVal, err := strconv.ParseBool(envVal); err == nil {
				field.SetBool(boolVal)
			}
		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				field.Set(reflect.ValueOf(strings.Split(envVal, ",")))
			}
		}
	}
}

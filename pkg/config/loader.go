package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/devmk/pkg/errors"
	"github.com/arthur-debert/devmk/pkg/logging"
	"github.com/arthur-debert/devmk/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "DEVMK_"

// LoadOptions controls how a description is assembled
type LoadOptions struct {
	// Path of the description file; empty searches the working directory
	Path string

	// Overrides are applied last, keyed by koanf path (e.g. "output_dir")
	Overrides map[string]interface{}

	// SkipUserConfig disables the user-level config layer
	SkipUserConfig bool
}

// Load reads the description at path with every layer enabled
func Load(path string) (*Description, error) {
	return LoadWithOptions(LoadOptions{Path: path})
}

// LoadWithOptions assembles a description:
//  1. embedded defaults
//  2. user config ($XDG_CONFIG_HOME/devmk/config.toml) if present
//  3. the description file
//  4. DEVMK_* environment variables
//  5. opts.Overrides
func LoadWithOptions(opts LoadOptions) (*Description, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	if !opts.SkipUserConfig {
		userPath := paths.UserConfigPath()
		if _, err := os.Stat(userPath); err == nil {
			if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath).
					WithDetail("path", userPath)
			}
			logger.Debug().Str("path", userPath).Msg("Loaded user config")
		}
	}

	path := opts.Path
	if path == "" {
		found, err := paths.FindDescription(".")
		if err != nil {
			return nil, err
		}
		path = found
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "description file %s not readable", path).
			WithDetail("path", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse description %s", path).
			WithDetail("path", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	desc, err := unmarshal(k)
	if err != nil {
		return nil, err
	}

	desc.baseDir = filepath.Dir(path)
	desc.ProprietaryDir = desc.expandPlaceholders(desc.ProprietaryDir)
	desc.Output.Modules = desc.expandPlaceholders(desc.Output.Modules)
	desc.Output.Product = desc.expandPlaceholders(desc.Output.Product)
	desc.Output.Board = desc.expandPlaceholders(desc.Output.Board)

	logger.Info().
		Str("path", path).
		Str("device", desc.Device).
		Str("vendor", desc.Vendor).
		Msg("Loaded description")

	return desc, nil
}

// envKey maps DEVMK_PRODUCT__FINGERPRINT to product.fingerprint
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported description format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func unmarshal(k *koanf.Koanf) (*Description, error) {
	var desc Description
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &desc,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &desc, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode description")
	}
	return &desc, nil
}

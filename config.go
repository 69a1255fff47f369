package fakedata

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/go-arrower/fakedata/dataset"
	"github.com/go-arrower/fakedata/output"
	"github.com/go-arrower/fakedata/provider"
	"github.com/go-arrower/fakedata/storage"
)

// EnvPrefix is the prefix of all environment variables, e.g. FAKEDATA_ROWS.
const EnvPrefix = "FAKEDATA"

// Config is the configuration of one generation run.
// It is intended to be mapped by viper.
type Config struct {
	Rows   int           `mapstructure:"rows"   validate:"gte=0"`
	Locale string        `mapstructure:"locale" validate:"required"`
	Format output.Format `mapstructure:"format" validate:"required,oneof=csv json yaml"`
	Schema []string      `mapstructure:"schema" validate:"min=1"`
	// Output is the destination path. Empty means a generated file name.
	Output string `mapstructure:"output"`
	// Seed is nil, if no seed was given explicitly.
	Seed    *int64 `mapstructure:"seed"`
	Verbose bool   `mapstructure:"verbose"`

	S3 storage.S3Config `mapstructure:"s3"`
}

// Validate checks the Config for values no run can work with.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: invalid configuration: %w", ErrConfigLoadFailed, err)
	}

	return nil
}

// DefaultViper returns a new viper instance with all default values
// from Config set. Environment variables with EnvPrefix overwrite the defaults.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetDefault("rows", 100) //nolint:mnd // default number of rows
	vip.SetDefault("locale", string(provider.PtBR))
	vip.SetDefault("format", string(output.CSV))
	vip.SetDefault("schema", []string(dataset.DefaultSchema()))
	vip.SetDefault("output", "")
	vip.SetDefault("verbose", false)

	vip.SetDefault("s3.region", "")
	vip.SetDefault("s3.endpoint", "")
	vip.SetDefault("s3.access_key_id", "")
	vip.SetDefault("s3.secret_access_key", "")
	vip.SetDefault("s3.force_path_style", false)

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()
	// seed has no default, so it has to be bound explicitly to be seen by Unmarshal.
	_ = vip.BindEnv("seed")

	return &Viper{Viper: vip}
}

var ErrConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// It overwrites Unmarshal, so that the custom types of Config are decoded
// and the developer does not have to think about it when using DefaultViper.
type Viper struct {
	*viper.Viper
}

// ReadConfigFile reads the YAML config file at path.
func (vip *Viper) ReadConfigFile(path string) error {
	vip.SetConfigFile(path)

	if err := vip.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: could not read config file: %w", ErrConfigLoadFailed, err)
	}

	return nil
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append([]viper.DecoderConfigOption{viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		allowedFormatHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	))}, opts...)

	err := vip.Viper.Unmarshal(rawVal, opts...)
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %w", ErrConfigLoadFailed, err)
	}

	if config, ok := rawVal.(*Config); ok && !vip.IsSet("seed") {
		config.Seed = nil
	}

	return nil
}

// Load unmarshals and validates the Config.
func (vip *Viper) Load() (Config, error) {
	var config Config

	if err := vip.Unmarshal(&config); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// LoadEnvFiles loads environment variables from the given .env files,
// without overwriting variables that are already set. Missing files are skipped.
func LoadEnvFiles(paths ...string) error {
	for _, path := range paths {
		err := godotenv.Load(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: could not load env file %s: %w", ErrConfigLoadFailed, path, err)
		}
	}

	return nil
}

func allowedFormatHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(output.Format("")) {
			return data, nil
		}

		name, ok := data.(string)
		if !ok {
			return data, fmt.Errorf("%w: format must be a string", output.ErrUnsupportedFormat)
		}

		format, err := output.ParseFormat(name)
		if err != nil {
			return data, err //nolint:wrapcheck // the error lists the allowed values
		}

		return string(format), nil
	}
}

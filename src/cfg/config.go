package cfg

import (
	"io/fs"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Blackdeer1524/chainhash/src/hashtable"
)

const EnvPrefix = "CHAINHASH"

type Config struct {
	Environment Environment `default:"dev"`

	// Capacity is the requested table capacity; the table has Capacity² slots.
	Capacity int `default:"4"`
	Workers  int `default:"4"`
}

// LoadConfig reads variables prefixed with CHAINHASH_ from the environment.
// Variables from the .env file at path are added first without overriding
// the ones already set. An empty path means ./.env, which may be missing.
func LoadConfig(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, errors.Wrapf(err, "load %s", path)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	var c Config
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "process env")
	}

	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "validate config")
	}

	return c, nil
}

func (c Config) Validate() error {
	if err := c.Environment.Validate(); err != nil {
		return err
	}

	if c.Capacity < 1 || c.Capacity > hashtable.MaxRequestedCapacity {
		return errors.Errorf(
			"capacity must be in 1..%d, got %d",
			hashtable.MaxRequestedCapacity,
			c.Capacity,
		)
	}

	if c.Workers < 1 {
		return errors.Errorf("workers must be positive, got %d", c.Workers)
	}

	return nil
}

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"

	DefaultEnv = EnvDev
)

type Environment string

func (e Environment) Validate() error {
	if e != EnvDev && e != EnvProd {
		return errors.New("environment must be either dev or prod")
	}

	return nil
}

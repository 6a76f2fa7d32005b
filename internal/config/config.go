package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math/rand/v2"
	"os"

	"trumphand/internal/shared"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the simulation and server settings.
type Config struct {
	Rounds   int    `env:"ROUNDS"`
	HandSize int    `env:"HAND_SIZE"`
	Addr     string `env:"ADDR"`
	// Seed makes batches reproducible. Zero uses the process-wide source.
	Seed uint64 `env:"SEED"`
}

var keys = []string{"ROUNDS", "HAND_SIZE", "ADDR", "SEED"}

func defaults() map[string]string {
	return map[string]string{
		"ROUNDS":    "30",
		"HAND_SIZE": "6",
		"ADDR":      ":8080",
		"SEED":      "0",
	}
}

// Load reads defaults, then the given dotenv files, then the process
// environment, each layer overriding the previous one. Missing files are skipped.
func Load(files ...string) (Config, error) {
	values := defaults()

	for _, file := range files {
		fileValues, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("failed to read %s: %w", file, err)
		}
		for _, key := range keys {
			if v, ok := fileValues[key]; ok {
				values[key] = v
			}
		}
		log.Printf("Loaded config from %s", file)
	}

	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	return Decode(values)
}

// Decode converts a flat string map into a validated Config.
func Decode(values map[string]string) (Config, error) {
	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &cfg,
		TagName:          "env",
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(values); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the ranges the simulation depends on.
func (c Config) Validate() error {
	if c.Rounds < 1 {
		return fmt.Errorf("%w: ROUNDS must be positive, got %d", ErrInvalidConfig, c.Rounds)
	}
	if c.HandSize < 1 || c.HandSize > shared.DeckSize {
		return fmt.Errorf("%w: HAND_SIZE must be between 1 and %d, got %d", ErrInvalidConfig, shared.DeckSize, c.HandSize)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: ADDR is empty", ErrInvalidConfig)
	}
	return nil
}

// DeckFactory returns a constructor for fresh decks. With a seed every
// deck of the returned factory draws from one shared PCG source.
func (c Config) DeckFactory() func() *shared.Deck {
	if c.Seed == 0 {
		return shared.NewDeck
	}
	r := rand.New(rand.NewPCG(c.Seed, c.Seed))
	return func() *shared.Deck {
		return shared.NewDeckWithShuffler(r)
	}
}

package env

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load variables from the given files into the process environment.
// Variables already set in the environment win over the file.
func LoadEnv(filenames ...string) {
	if err := godotenv.Load(filenames...); err != nil {
		log.Printf("No env file loaded, using process environment: %v", err)
	}
}

func GetString(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	return val
}

// Parser reads numeric variables and remembers every set value that could not be parsed.
type Parser struct {
	errs []error
}

func (p *Parser) Int(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	valAsInt, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a valid integer", key, val))
		return fallback
	}

	return valAsInt
}

func (p *Parser) Float(key string, fallback float64) float64 {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	valAsFloat, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("%s: %q is not a valid number", key, val))
		return fallback
	}

	return valAsFloat
}

// Err joins all parse failures, nil when every value was valid or unset.
func (p *Parser) Err() error {
	return errors.Join(p.errs...)
}

// Comma separated list, empty items are dropped
func GetStrings(key string, fallback []string) []string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

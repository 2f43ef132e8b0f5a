// Package config turns command-line arguments and environment variables into
// validated game settings.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/robalobadob/unscramble/internal/daily"
	"github.com/robalobadob/unscramble/internal/letters"
	"github.com/robalobadob/unscramble/internal/words"
)

// Process exit statuses.
const (
	ExitOK             = 0
	ExitUsage          = 1
	ExitDictionary     = 2
	ExitInvalidLetters = 3
	ExitTooFewLetters  = 5
	ExitLenMin         = 8
	ExitNoWords        = 12
	ExitTooManyLetters = 14
)

// Limits and defaults.
const (
	DefaultLenMin = 3
	LenMinLower   = 2
	LenMinUpper   = 6
	MaxLetters    = 12
	DefaultSalt   = "local_dev_salt"
	DefaultLevel  = "warn"
)

// Usage is printed for any malformed command line.
const Usage = "Usage: unscramble [--dict dictfile] [--lett letters] [--len-min numchars]"

// Error is a startup failure with its exit status.
type Error struct {
	Code int
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// ExitCode returns the exit status carried by err, or ExitUsage for other errors.
func ExitCode(err error) int {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ExitUsage
}

// DictionaryError reports a dictionary file that could not be read.
func DictionaryError(path string) *Error {
	return &Error{
		Code: ExitDictionary,
		Msg:  fmt.Sprintf("unscramble: dictionary file named %q cannot be opened", path),
	}
}

func usageError() *Error { return &Error{Code: ExitUsage, Msg: Usage} }

// LookupFunc reads an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Config holds validated settings for one run.
type Config struct {
	DictPath  string // "" means the built-in list
	Letters   string // "" means generate a pool
	LenMin    int
	Daily     bool   // generated pools follow the date
	DailySalt string // salt for the daily seed
	LogLevel  string
}

// Parse validates args (without the program name) and fills in defaults
// from env.
//
// Checks run in this order: argument shape, --len-min range, --lett.
// The dictionary is not opened here.
func Parse(args []string, env LookupFunc) (*Config, error) {
	if len(args)%2 != 0 || len(args) > 6 {
		return nil, usageError()
	}

	cfg := &Config{LenMin: DefaultLenMin}
	var haveDict, haveLett, haveMin bool
	for i := 0; i < len(args); i += 2 {
		opt, val := args[i], args[i+1]
		switch opt {
		case "--dict":
			if haveDict {
				return nil, usageError()
			}
			cfg.DictPath, haveDict = val, true
		case "--lett":
			if haveLett {
				return nil, usageError()
			}
			cfg.Letters, haveLett = val, true
		case "--len-min":
			if haveMin {
				return nil, usageError()
			}
			n, err := parseCount(val)
			if err != nil {
				return nil, usageError()
			}
			cfg.LenMin, haveMin = n, true
		default:
			return nil, usageError()
		}
	}

	if cfg.LenMin < LenMinLower || cfg.LenMin > LenMinUpper {
		return nil, &Error{
			Code: ExitLenMin,
			Msg:  fmt.Sprintf("unscramble: minimum length must be between %d and %d", LenMinLower, LenMinUpper),
		}
	}
	if haveLett {
		if err := checkLetters(cfg.Letters, cfg.LenMin); err != nil {
			return nil, err
		}
	}

	if !haveDict {
		cfg.DictPath = getEnv(env, "UNSCRAMBLE_DICT", "")
	}
	cfg.Daily = getEnvBool(env, "UNSCRAMBLE_DAILY", false)
	cfg.DailySalt = getEnv(env, "DAILY_SALT", DefaultSalt)
	cfg.LogLevel = getEnv(env, "LOG_LEVEL", DefaultLevel)
	return cfg, nil
}

// parseCount accepts a non-negative decimal integer.
func parseCount(s string) (int, error) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return strconv.Atoi(s)
}

func checkLetters(lett string, lenMin int) error {
	switch {
	case len(lett) > MaxLetters:
		return &Error{
			Code: ExitTooManyLetters,
			Msg:  fmt.Sprintf("unscramble: too many letters - no more than %d expected", MaxLetters),
		}
	case len(lett) < lenMin:
		return &Error{
			Code: ExitTooFewLetters,
			Msg:  fmt.Sprintf("unscramble: too few letters for the given minimum length (%d)", lenMin),
		}
	case !words.IsAlpha(words.Upper(lett)):
		return &Error{Code: ExitInvalidLetters, Msg: "unscramble: invalid letter set"}
	}
	return nil
}

// ResolveLetters returns the letter pool for the game and where it came from:
// "args", "daily" or "random".
func (c *Config) ResolveLetters(now time.Time) (pool, source string) {
	switch {
	case c.Letters != "":
		return c.Letters, "args"
	case c.Daily:
		return letters.Draw(letters.DefaultCount, letters.NewRand(daily.Seed(now, c.DailySalt))), "daily"
	default:
		return letters.Draw(letters.DefaultCount, letters.NewRand(letters.RandomSeed())), "random"
	}
}

// getEnv returns an environment variable or a default value.
func getEnv(env LookupFunc, key, def string) string {
	if v, ok := env(key); ok && v != "" {
		return v
	}
	return def
}

// getEnvBool returns an environment variable as a bool or a default value.
func getEnvBool(env LookupFunc, key string, def bool) bool {
	if v, ok := env(key); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

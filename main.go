package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/unscramble/internal/config"
	"github.com/robalobadob/unscramble/internal/console"
	"github.com/robalobadob/unscramble/internal/game"
	"github.com/robalobadob/unscramble/internal/words"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.LookupEnv, os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit status.
func run(args []string, env config.LookupFunc, in io.Reader, out, errOut io.Writer) int {
	cfg, err := config.Parse(args, env)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return config.ExitCode(err)
	}
	setupLogging(cfg.LogLevel, errOut)

	dict, err := loadDictionary(cfg.DictPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DictPath).Msg("failed to load dictionary")
		fmt.Fprintln(errOut, config.DictionaryError(cfg.DictPath))
		return config.ExitDictionary
	}

	letters, source := cfg.ResolveLetters(time.Now())
	s := game.NewSession(dict, game.NewParams(letters, cfg.LenMin))
	log.Info().
		Str("session", s.ID).
		Str("letters", s.Params.Pool).
		Str("source", source).
		Int("lenMin", s.Params.LenMin).
		Msg("game started")

	if err := console.Run(s, letters, in, out); err != nil {
		log.Error().Err(err).Str("session", s.ID).Msg("console")
	}

	if s.Outcome() == game.OutcomeWon {
		return config.ExitOK
	}
	return config.ExitNoWords
}

func loadDictionary(path string) (*words.Dictionary, error) {
	if path == "" {
		return words.Builtin()
	}
	return words.Load(path)
}

func setupLogging(level string, w io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
}

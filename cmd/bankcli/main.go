package main

import (
	"os"

	"github.com/jmfrancisco/bankacct"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	limit := bankacct.DefaultWithdrawLimit
	if cfgfl, err := os.Open("config.yml"); err == nil {
		var cfg bankacct.Config
		err = yaml.NewDecoder(cfgfl).Decode(&cfg)
		cfgfl.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("error decoding config file")
		}
		if cfg.Limits.MaxWithdrawal != "" {
			limit, err = decimal.NewFromString(cfg.Limits.MaxWithdrawal)
			if err != nil {
				logger.Fatal().Err(err).Msg("error parsing withdrawal limit")
			}
		}
		if cfg.Log.Level != "" {
			lvl, err := zerolog.ParseLevel(cfg.Log.Level)
			if err != nil {
				logger.Fatal().Err(err).Msg("error parsing log level")
			}
			zerolog.SetGlobalLevel(lvl)
		}
	}

	sess := &bankacct.Session{
		In:    os.Stdin,
		Out:   os.Stdout,
		Log:   &logger,
		Limit: limit,
	}
	if err := sess.Run(); err != nil {
		bankacct.WriteSessionError(os.Stderr, err)
	}
}

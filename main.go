package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/chorpler/boxes/lexer"
	"github.com/chorpler/boxes/util"
	"github.com/rs/zerolog/log"
	"gopkg.in/urfave/cli.v1"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

var (
	configDirFlag = cli.StringFlag{
		Name:  "config",
		Value: ".",
		Usage: "directory holding the " + util.ConfigName + ".env file",
	}

	encodingFlag = cli.StringFlag{
		Name:  "encoding",
		Usage: "IANA name of the source text encoding, overrides SOURCE_ENCODING",
	}

	jsonFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "print the token streams as JSON",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "boxlex"
	app.Usage = "dump the token streams of boxes config files"
	app.ArgsUsage = "FILE..."
	app.Flags = []cli.Flag{configDirFlag, encodingFlag, jsonFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		var fe *lexer.FatalError
		if errors.As(err, &fe) {
			log.Fatal().Err(fe.Err).Str("op", fe.Op).Str("file", fe.Path).Msg("cannot load config file")
		}
		log.Fatal().Err(err).Msg("boxlex failed")
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return cli.NewExitError("no config files given", 2)
	}

	// reading boxlex.env, if there is one
	config, err := util.LoadConfig(ctx.String(configDirFlag.Name))
	if err != nil {
		return err
	}

	if enc := ctx.String(encodingFlag.Name); enc != "" {
		config.SourceEncoding = enc
	}

	log.Logger = util.NewLogger(config.Environment, os.Stderr)

	opts := config.LexerOptions()
	opts.Logger = &log.Logger

	// catching interrupt signals, so that a long run over many files stops early
	sigCtx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	results, err := lexFiles(sigCtx, []string(ctx.Args()), opts)
	if err != nil {
		return err
	}

	if ctx.Bool(jsonFlag.Name) {
		return writeJSON(os.Stdout, results)
	}
	return writeText(os.Stdout, results)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cloudcarver/text2image/pkg/config"
	"github.com/cloudcarver/text2image/pkg/logger"
	"github.com/cloudcarver/text2image/pkg/processor"
	"github.com/cloudcarver/text2image/pkg/utils"
	"github.com/cloudcarver/text2image/wire"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var log = logger.NewLogAgent("main")

func main() {
	app := &cli.App{
		Name:   "text2image",
		Usage:  "Text-to-image worker that registers itself with engines and runs inference tasks",
		Action: runServe,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Announce the service to the configured engines and serve tasks",
				Action: runServe,
			},
			{
				Name:  "descriptor",
				Usage: "Print the service descriptor sent to the engines",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format, yaml or json",
						Value: "yaml",
					},
				},
				Action: runDescriptor,
			},
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(c *cli.Context) error {
					fmt.Fprintln(c.App.Writer, utils.CurrentVersion)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	app, err := wire.InitializeApplication()
	if err != nil {
		return errors.Wrap(err, "failed to initialize application")
	}

	log.Info("starting text2image", zap.String("version", utils.CurrentVersion), zap.String("url", app.GetDescriptor().URL()))
	if err := app.Start(); err != nil {
		log.Error("exit with error", zap.Error(err))
	}
	app.Close()

	log.Info("bye.")
	return nil
}

func runDescriptor(c *cli.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	d, err := processor.NewDescriptor(cfg)
	if err != nil {
		return err
	}

	var raw []byte
	switch c.String("format") {
	case "yaml":
		raw, err = yaml.Marshal(d.Model())
	case "json":
		raw, err = json.MarshalIndent(d.Model(), "", "  ")
		raw = append(raw, '\n')
	default:
		return errors.Errorf("unknown format %q, expecting yaml or json", c.String("format"))
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode descriptor")
	}
	_, err = c.App.Writer.Write(raw)
	return err
}

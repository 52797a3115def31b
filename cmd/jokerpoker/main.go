package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Advise   AdviseCmd        `cmd:"" help:"Score every hold of a dealt hand and pick the best"`
	Classify ClassifyCmd      `cmd:"" help:"Classify a five-card hand"`
	Count    CountCmd         `cmd:"" help:"Count draw outcomes with the closed-form counter"`
	Simulate SimulateCmd      `cmd:"" help:"Deal random hands and report the advisor's expected return"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jokerpoker"),
		kong.Description("Hold advisor for joker draw poker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

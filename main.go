package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/gastos-bot/cmd/batch"
	"fjacquet/gastos-bot/cmd/categories"
	"fjacquet/gastos-bot/cmd/classify"
	"fjacquet/gastos-bot/cmd/methods"
	"fjacquet/gastos-bot/cmd/parse"
	"fjacquet/gastos-bot/cmd/root"
)

func init() {
	root.Init()
	root.Register(
		parse.Cmd,
		classify.Cmd,
		batch.Cmd,
		categories.Cmd,
		methods.Cmd,
	)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := root.Cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Package main provides the certgen command, which renders workshop
// certificates from a PDF template and a list of survey responses.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gogpu/certgen"
	certgencmd "github.com/gogpu/certgen/internal/cmd/certgen"
)

func main() {
	cfg, err := certgencmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := certgencmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		exitf("%s\nError: %v", certgen.UserMessage(err), err)
	}
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

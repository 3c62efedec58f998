package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/linux-nfs/rpcctl/internal/command"
	"github.com/linux-nfs/rpcctl/internal/config"
	"github.com/linux-nfs/rpcctl/internal/log"
	"github.com/linux-nfs/rpcctl/internal/procmounts"
	"github.com/linux-nfs/rpcctl/internal/sunrpc"
	"github.com/linux-nfs/rpcctl/internal/version"
)

func main() {
	cmd := &cli.Command{
		Name:      "rpcctl",
		Usage:     "Inspect and control the kernel's SunRPC subsystem through sysfs",
		ArgsUsage: "[command [args...]]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Configuration file path",
				Value:   config.DefaultConfigPath,
			},
			&cli.StringFlag{
				Name:    "mount-table",
				Aliases: []string{"m"},
				Usage:   "Mount-table file scanned for the sysfs mount",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"V"},
				Usage:   "Print version information",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(command.ExitCode(err))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	// Handle version flag
	if cmd.Bool("version") {
		fmt.Println(version.String())
		return nil
	}

	// Setup logging
	log.Setup(cmd.Bool("verbose"))

	// Load config file
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Merge CLI flags (CLI takes precedence)
	cfg.Merge(cmd.String("mount-table"), cmd.Bool("verbose"))

	// Apply defaults
	cfg.ApplyDefaults()

	// Validate config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log.Setup(cfg.Verbose)

	return dispatch(ctx, cfg, cmd.Args().Slice(), os.Stdout)
}

// dispatch runs the whole invocation pipeline: resolve the sysfs mount,
// validate the sunrpc directory, then hand the remaining arguments to the
// command registry. Any failure short-circuits before the next step.
func dispatch(ctx context.Context, cfg *config.Config, args []string, out io.Writer) error {
	mounts, err := procmounts.ParseFile(cfg.MountTable)
	if err != nil {
		return fmt.Errorf("read mount table: %w", err)
	}

	mountPoint, err := procmounts.FindByType(mounts, sunrpc.FilesystemType)
	if err != nil {
		return err
	}
	log.Debug("resolved sysfs mount", "path", mountPoint)

	handle, err := sunrpc.Locate(mountPoint)
	if err != nil {
		return err
	}
	log.Debug("located sunrpc directory", "path", handle.Path())

	return newRegistry().Dispatch(ctx, handle, args, out)
}

// newRegistry registers every command. Adding a command means adding its
// constructor here and nothing else.
func newRegistry() *command.Registry {
	r := command.NewRegistry("rpcctl")
	r.Register(command.NewClientCommand())
	r.Register(command.NewSwitchCommand())
	r.Register(command.NewXprtCommand())
	return r
}

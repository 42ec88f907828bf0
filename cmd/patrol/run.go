package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"patrol/internal/grid"
	"patrol/internal/patrol"
)

func runVisited(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}
	n, err := patrol.CountVisited(g)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}

func runLoops(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}
	res, err := patrol.NewSearcher(cfg.WorkerCount(), logger).Search(cmd.Context(), g)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Loops)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	g, err := grid.Load(args[0])
	if err != nil {
		return err
	}
	var marks []grid.Point
	if markLoops {
		res, err := patrol.NewSearcher(cfg.WorkerCount(), logger).Search(cmd.Context(), g)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		marks = res.Positions
	}
	p := patrol.New(g)
	if p.Run() == patrol.Looped {
		logger.Warn("guard is stuck in a loop", slog.String("guard", p.Guard().String()))
	}
	return patrol.Render(cmd.OutOrStdout(), p.Grid(), nil, marks)
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aromatt/llstack"
)

const nodesFlag = "nodes"

// NewReleaseCommand returns the command that builds a long chain and releases it.
func NewReleaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Push many values onto a stack and release them",
		Long: `Push --nodes integers onto a stack, then clear it. Nodes are released one
at a time, so arbitrarily long chains can be released.`,
		RunE: release,
		Args: cobra.NoArgs,
	}

	flags := cmd.Flags()
	flags.Int(nodesFlag, 100_000, "number of values to push")
	MustBindPFlag(nodesFlag, flags.Lookup(nodesFlag))

	return cmd
}

func release(cmd *cobra.Command, _ []string) error {
	n, err := cast.ToIntE(viper.Get(nodesFlag))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", nodesFlag, err)
	}
	if n < 0 {
		return fmt.Errorf("--%s must not be negative, got %d", nodesFlag, n)
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	s := llstack.New[int]()
	start := time.Now()
	for i := 0; i < n; i++ {
		s.Push(i)
	}
	pushed := time.Since(start)
	log.Info("pushed", zap.Int("nodes", n), zap.Duration("elapsed", pushed))

	depth := s.Len()

	start = time.Now()
	s.Clear()
	cleared := time.Since(start)
	log.Info("released", zap.Int("nodes", depth), zap.Duration("elapsed", cleared))

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "released %d nodes, empty=%t\n", depth, s.Empty())
	return err
}

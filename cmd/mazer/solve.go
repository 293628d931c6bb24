package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mazerlab/mazer/maze"
	"github.com/mazerlab/mazer/mazetxt"
	"github.com/mazerlab/mazer/solve"
)

var solveCmd = &cobra.Command{
	Use:   "solve <maze-file>",
	Short: "Solve a maze file",
	Long: `Solve reads a maze file and prints its solution(s).

By default one solution is searched with the bidirectional engine, which also
guarantees the path is a shortest one. --mode all switches to enumerating
every simple solution, which only the DFS engine supports; --algo dfs forces
DFS for single solutions too.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().String("mode", "one", "how many solutions to search for (one, all)")
	solveCmd.Flags().String("algo", "auto", "search engine (auto, dfs, bidi)")
	solveCmd.Flags().Duration("timeout", 0, "abort the search after this duration (0 = no limit)")

	_ = viper.BindPFlag("solve.mode", solveCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("solve.algo", solveCmd.Flags().Lookup("algo"))
	_ = viper.BindPFlag("solve.timeout", solveCmd.Flags().Lookup("timeout"))
}

func runSolve(cmd *cobra.Command, args []string) error {
	mode, err := parseMode(viper.GetString("solve.mode"))
	if err != nil {
		return err
	}

	m, err := mazetxt.ParseFile(args[0])
	if err != nil {
		return err
	}
	slog.Info("maze loaded",
		"file", args[0],
		"vertices", m.VertexCount(),
		"edges", m.EdgeCount())

	solver, name, err := pickSolver(m, mode, viper.GetString("solve.algo"))
	if err != nil {
		return err
	}
	slog.Info("solving", "mode", mode.String(), "algorithm", name)

	ctx := cmd.Context()
	if timeout := viper.GetDuration("solve.timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	started := time.Now()
	paths, err := solver.Solve(ctx)
	elapsed := time.Since(started)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		fmt.Println("The maze has no solution")
	}
	for i, p := range paths {
		fmt.Printf("Solution %d (%d edges): %s\n", i+1, p.Len(), p)
	}
	slog.Info("done", "solutions", len(paths), "elapsed", elapsed)

	return nil
}

func parseMode(s string) (solve.Mode, error) {
	switch s {
	case "one":
		return solve.FindOne, nil
	case "all":
		return solve.FindAll, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want one or all)", s)
	}
}

// pickSolver applies the driver's selection rule: bidirectional search is the
// fastest way to one solution and also yields a shortest path, while DFS is
// the only engine that can enumerate all solutions.
func pickSolver(m *maze.Maze, mode solve.Mode, algo string) (solve.Solver, string, error) {
	switch algo {
	case "auto":
		if mode == solve.FindOne {
			return solve.NewBidirectional(m, mode), "bidirectional", nil
		}

		return solve.NewDFS(m, mode), "dfs", nil
	case "dfs":
		return solve.NewDFS(m, mode), "dfs", nil
	case "bidi":
		return solve.NewBidirectional(m, mode), "bidirectional", nil
	default:
		return nil, "", fmt.Errorf("unknown algorithm %q (want auto, dfs, or bidi)", algo)
	}
}

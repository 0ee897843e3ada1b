package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/storage"
)

var (
	flagScoresLimit  int
	flagInteractive  bool
	flagScoresRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best times for a board",
	Long: `Display the fastest wins and overall stats for the configured board.

Examples:
  mines scores
  mines scores --rows 16 --columns 30 --mines 99
  mines scores --recent
  mines scores -i`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse all boards in the scoreboard TUI")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "List the latest games on every board")
	addBoardFlags(scoresCmd)
}

func runScores(cmd *cobra.Command, _ []string) {
	boardCfg, err := loadBoardConfig(cmd)
	exitOnError("loading config", err)

	store, err := storage.Open(flagDBPath)
	exitOnError("opening results database", err)
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	if flagScoresRecent {
		printRecent(store)
		return
	}

	board := storage.BoardSize{
		Rows:    boardCfg.Board.Rows,
		Columns: boardCfg.Board.Columns,
		Mines:   boardCfg.Board.Mines,
	}

	results, err := store.BestTimes(board, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}

	fmt.Printf("Best Times - %s\n", board)
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'mines play --rows %d --columns %d --mines %d' to set the first time!\n",
			board.Rows, board.Columns, board.Mines)
	} else {
		fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
		fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")
		for i, r := range results {
			fmt.Printf("  %-4d  %-8s  %s\n", i+1, minesweeper.FormatClock(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.Stats(board)
	if err == nil && stats.Played > 0 {
		fmt.Println()
		fmt.Printf("Played: %d  Won: %d (%.0f%%)\n", stats.Played, stats.Won, stats.WinRate()*100)
	}
}

// printRecent lists the latest games across all boards.
func printRecent(store *storage.Store) {
	results, err := store.RecentResults(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		return
	}
	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-6s  %-8s  %-8s  %s\n", "Board", "Result", "Time", "Revealed", "Date")
	for _, r := range results {
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-10s  %-6s  %-8s  %-8d  %s\n",
			r.Board, outcome, minesweeper.FormatClock(r.Duration), r.SafeRevealed, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeengine"
	"github.com/SeamusWaldron/cubeengine/internal/analysis"
	"github.com/SeamusWaldron/cubeengine/internal/render"
	"github.com/SeamusWaldron/cubeengine/internal/session"
)

var (
	newDim        int
	newNotes      string
	scrambleCount int
	fixedLayers   bool
	quarterTurns  bool
	undoTo        int
	plainOutput   bool
	listLimit     int
	historyStats  bool
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a solved cube and make it active",
	Example: `  cube new
  cube new --dim 5 --notes "big cube practice"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			dim := newDim
			if dim == 0 {
				dim = a.cfg.Cube.Dim
			}
			st, err := a.svc.Create(dim, newNotes)
			if err != nil {
				return err
			}
			if err := a.activate(st.ID); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created session: %s (%dx%dx%d)\n", st.ID, dim, dim, dim)
			printState(out, st)
			return nil
		})
	},
}

var rotateCmd = &cobra.Command{
	Use:   "rotate <moves>",
	Short: "Apply comma-separated moves",
	Long: `Apply moves to the active cube.

Each move is <layers><face><turns>: layer digits count inward from the face
(default 1), turns are clockwise quarter turns seen from outside the face
(default 1). The whole list is checked before anything is applied.`,
	Example: `  cube rotate R,U,R3,U3
  cube rotate "2U2, 123F"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(a *app, id string) (*session.Result, error) {
			return a.svc.Rotate(id, strings.Join(args, ","))
		})
	},
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Apply random moves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(a *app, id string) (*session.Result, error) {
			n := scrambleCount
			if n < 0 {
				n = a.cfg.Cube.ScrambleLength
			}
			return a.svc.Scramble(id, n,
				cubeengine.WithRandomLayers(!fixedLayers),
				cubeengine.WithRandomTurns(!quarterTurns),
			)
		})
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Revert the last move, or revert to a history index",
	Example: `  cube undo
  cube undo --to 0    # back to solved`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(a *app, id string) (*session.Result, error) {
			if undoTo >= 0 {
				return a.svc.RevertTo(id, undoTo)
			}
			return a.svc.Undo(id)
		})
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Run the first-layer daisy step",
	Long: `Turn the yellow center up and lift every white edge off the bottom face.
Only 1x1x1 and 3x3x3 cubes are supported. The later layers are left as they are.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return mutate(cmd, func(a *app, id string) (*session.Result, error) {
			return a.svc.Solve(id)
		})
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active cube",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			id, err := a.activeID()
			if err != nil {
				return err
			}
			st, err := a.svc.Get(id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session: %s (%dx%dx%d)\n", st.ID, st.Dim, st.Dim, st.Dim)
			if st.Notes != "" {
				fmt.Fprintf(out, "Notes: %s\n", st.Notes)
			}
			printState(out, st)
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List applied moves and phase changes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			id, err := a.activeID()
			if err != nil {
				return err
			}
			st, err := a.svc.Get(id)
			if err != nil {
				return err
			}
			events, err := a.svc.Phases(id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(st.History) == 0 {
				fmt.Fprintln(out, "No moves")
			}
			for i, m := range st.History {
				fmt.Fprintf(out, "%4d  %s\n", i, m)
			}
			if len(events) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Phases:")
				for _, e := range events {
					fmt.Fprintf(out, "  after %d moves: %s\n", e.MoveIndex, e.Phase)
				}
			}
			if historyStats {
				printStats(out, analysis.Summarize(st.Cube().History()))
			}
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(a *app) error {
			sessions, err := a.svc.List(listLimit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(sessions) == 0 {
				fmt.Fprintln(out, "No sessions")
				return nil
			}

			active := a.state.ActiveID()
			fmt.Fprintf(out, "  %-36s  %-5s  %-20s  %s\n", "ID", "DIM", "UPDATED", "NOTES")
			for _, s := range sessions {
				marker := " "
				if s.SessionID == active {
					marker = "*"
				}
				notes := ""
				if s.Notes != nil {
					notes = *s.Notes
				}
				fmt.Fprintf(out, "%s %-36s  %-5s  %-20s  %s\n",
					marker, s.SessionID, strconv.Itoa(s.Dim), s.UpdatedAt.Local().Format("2006-01-02 15:04:05"), notes)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(newCmd, rotateCmd, scrambleCmd, undoCmd, solveCmd, showCmd, historyCmd, listCmd)

	newCmd.Flags().IntVarP(&newDim, "dim", "n", 0, "Cube dimension (default: cube.dim from config)")
	newCmd.Flags().StringVar(&newNotes, "notes", "", "Notes for this session")

	scrambleCmd.Flags().IntVarP(&scrambleCount, "count", "c", -1, "Number of moves (default: cube.scramble_length from config)")
	scrambleCmd.Flags().BoolVar(&fixedLayers, "outer", false, "Only turn outer layers")
	scrambleCmd.Flags().BoolVar(&quarterTurns, "quarter", false, "Only use single quarter turns")

	undoCmd.Flags().IntVar(&undoTo, "to", -1, "Keep only the first N history moves")

	for _, c := range []*cobra.Command{newCmd, rotateCmd, scrambleCmd, undoCmd, solveCmd, showCmd} {
		c.Flags().BoolVar(&plainOutput, "plain", false, "Print letters instead of colored blocks")
	}

	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Also print move statistics")

	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of sessions to display")
}

// mutate runs a session operation on the active cube and prints the result.
func mutate(cmd *cobra.Command, fn func(a *app, id string) (*session.Result, error)) error {
	return withApp(func(a *app) error {
		id, err := a.activeID()
		if err != nil {
			return err
		}
		res, err := fn(a, id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(res.Applied) > 0 {
			fmt.Fprintf(out, "Applied: %s\n", strings.Join(res.Applied, ","))
		}
		printState(out, res.State)
		return nil
	})
}

func printState(out io.Writer, st *session.State) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, render.Net{Plain: plainOutput, Labels: !plainOutput}.Render(st.Cube()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Moves: %d  Phase: %s  Solved: %t\n", len(st.History), st.Cube().DetectPhase().DisplayName(), st.Solved)
}

func printStats(out io.Writer, s *analysis.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Statistics:")
	fmt.Fprintf(out, "  Moves:         %d\n", s.TotalMoves)
	fmt.Fprintf(out, "  Simplified:    %d (%.0f%%)\n", s.SimplifiedMoves, s.Efficiency*100)
	fmt.Fprintf(out, "  Quarter turns: %d\n", s.QuarterTurns)
	if s.Profile.MostUsedFace != "" {
		fmt.Fprintf(out, "  Most used:     %s (%d)\n", s.Profile.MostUsedFace, s.Profile.FaceCounts[s.Profile.MostUsedFace])
	}

	ns := make([]int, 0, len(s.NGrams.TopNGrams))
	for n := range s.NGrams.TopNGrams {
		ns = append(ns, n)
	}
	sort.Ints(ns)
	for _, n := range ns {
		for _, ng := range s.NGrams.TopNGrams[n] {
			fmt.Fprintf(out, "  Repeated x%d:   %s\n", ng.Count, strings.Join(ng.Sequence, ","))
		}
	}
}

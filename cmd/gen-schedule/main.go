// Command gen-schedule emits a synthetic version-2 schedule document,
// suitable for uploading to a running importer.
package main

import (
	"flag"
	"os"

	"github.com/okian/arena/internal/schedgen"
)

func main() {
	defaults := schedgen.DefaultConfig()

	var (
		teams      = flag.Int("teams", defaults.Teams, "Number of teams in the roster")
		tables     = flag.Int("tables", defaults.Tables, "Number of robot-game tables")
		rooms      = flag.Int("rooms", defaults.Rooms, "Number of judging rooms")
		practice   = flag.Int("practice", defaults.PracticeRounds, "Number of practice rounds")
		ranking    = flag.Int("ranking", defaults.RankingRounds, "Number of ranking rounds")
		matchStart = flag.String("match-start", defaults.MatchStart, "First match slot, HH:MM")
		judgeStart = flag.String("judging-start", defaults.JudgingStart, "First judging slot, HH:MM")
		matchGap   = flag.Int("match-gap", defaults.MatchGapMinutes, "Minutes between match slots")
		judgeGap   = flag.Int("judging-gap", defaults.JudgingGapMinutes, "Minutes between judging slots")
		outputFile = flag.String("output", "", "Output file (default: stdout)")
	)
	flag.Parse()

	cfg := &schedgen.Config{
		Teams:             *teams,
		Tables:            *tables,
		Rooms:             *rooms,
		PracticeRounds:    *practice,
		RankingRounds:     *ranking,
		MatchStart:        *matchStart,
		JudgingStart:      *judgeStart,
		MatchGapMinutes:   *matchGap,
		JudgingGapMinutes: *judgeGap,
	}

	doc, err := schedgen.Generate(cfg)
	if err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}

	if *outputFile == "" {
		os.Stdout.WriteString(doc)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(doc), 0o644); err != nil {
		os.Stderr.WriteString("write failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

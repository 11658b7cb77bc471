// Package schedgen produces synthetic version-2 schedule documents.
//
// The generator exists for demos and load checks: it emits a document
// the importer accepts, with a round-robin assignment of teams to
// tables and judging rooms. It is the inverse of the parser only in
// shape, not a byte-exact re-encoder.
package schedgen

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SchemaVersion is the version stamped into generated documents.
const SchemaVersion = 2

const blockMarker = "Block Format"

// baseTeamNumber keeps generated team numbers out of the single digits
// so documents look like real exports.
const baseTeamNumber = 100

// Config controls the shape of a generated schedule.
type Config struct {
	Teams  int
	Tables int
	Rooms  int

	PracticeRounds int
	RankingRounds  int

	// MatchStart / JudgingStart are HH:MM times on the event day.
	MatchStart   string
	JudgingStart string

	// Minutes between consecutive match rows and judging slots.
	MatchGapMinutes   int
	JudgingGapMinutes int
}

// DefaultConfig returns a small but realistic tournament.
func DefaultConfig() *Config {
	return &Config{
		Teams:             12,
		Tables:            4,
		Rooms:             3,
		PracticeRounds:    1,
		RankingRounds:     3,
		MatchStart:        "09:00",
		JudgingStart:      "10:00",
		MatchGapMinutes:   10,
		JudgingGapMinutes: 25,
	}
}

func (c *Config) validate() error {
	switch {
	case c.Teams <= 0:
		return fmt.Errorf("%w: teams", ErrBadConfig)
	case c.Tables <= 0:
		return fmt.Errorf("%w: tables", ErrBadConfig)
	case c.Rooms <= 0:
		return fmt.Errorf("%w: rooms", ErrBadConfig)
	case c.PracticeRounds < 0 || c.RankingRounds < 0:
		return fmt.Errorf("%w: rounds", ErrBadConfig)
	case c.MatchGapMinutes <= 0 || c.JudgingGapMinutes <= 0:
		return fmt.Errorf("%w: gaps", ErrBadConfig)
	}
	if _, err := parseClock(c.MatchStart); err != nil {
		return err
	}
	if _, err := parseClock(c.JudgingStart); err != nil {
		return err
	}
	return nil
}

// Generate renders a complete document for cfg.
func Generate(cfg *Config) (string, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.validate(); err != nil {
		return "", err
	}

	teams := teamNumbers(cfg.Teams)

	var sb strings.Builder
	w := csv.NewWriter(&sb)

	write := func(cells ...string) {
		_ = w.Write(cells)
	}

	write("Schedule Export", strconv.Itoa(SchemaVersion))

	// Block 1: roster.
	write(blockMarker, "1")
	write("Number", "Name", "Institution", "City")
	for _, number := range teams {
		suffix := uuid.NewString()[:8]
		write(strconv.Itoa(number),
			"Team "+suffix,
			"Institute "+suffix,
			"City "+suffix)
	}

	// Block 4: practice matches (also declares the tables).
	writeMatchBlock(write, "4", "Practice Matches", cfg, teams, cfg.PracticeRounds, cfg.MatchStart, 0)

	// Block 2: ranking matches, continuing the clock after practice.
	practiceRows := rowsPerRound(cfg.Teams, cfg.Tables) * cfg.PracticeRounds
	writeMatchBlock(write, "2", "Ranking Matches", cfg, teams, cfg.RankingRounds, cfg.MatchStart, practiceRows)

	// Block 3: judging sessions (also declares the rooms).
	writeJudgingBlock(write, cfg, teams)

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// TableNames returns the generated table names, in canonical order.
func TableNames(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = "Table " + string(rune('A'+i%26))
		if i >= 26 {
			names[i] += strconv.Itoa(i / 26)
		}
	}
	return names
}

// RoomNames returns the generated judging room names.
func RoomNames(count int) []string {
	names := make([]string, count)
	for i := range names {
		names[i] = "Room " + strconv.Itoa(i+1)
	}
	return names
}

func teamNumbers(count int) []int {
	numbers := make([]int, count)
	for i := range numbers {
		numbers[i] = baseTeamNumber + i
	}
	return numbers
}

func rowsPerRound(teams, tables int) int {
	return (teams + tables - 1) / tables
}

func writeMatchBlock(write func(...string), id, title string, cfg *Config, teams []int, rounds int, start string, rowOffset int) {
	write(blockMarker, id)
	write(title, "")
	write("", "")
	write("", "")
	write("", "")

	names := TableNames(cfg.Tables)
	write(append([]string{"Match"}, names...)...)

	clock, _ := parseClock(start)
	clock += rowOffset * cfg.MatchGapMinutes

	rows := rowsPerRound(cfg.Teams, cfg.Tables)
	matchNo := rowOffset + 1
	for round := 1; round <= rounds; round++ {
		for row := 0; row < rows; row++ {
			cells := []string{
				strconv.Itoa(matchNo),
				strconv.Itoa(round),
				formatClock(clock),
				"", // spare column before assignments
			}
			for t := 0; t < cfg.Tables; t++ {
				if idx := row*cfg.Tables + t; idx < cfg.Teams {
					cells = append(cells, strconv.Itoa(teams[idx]))
				} else {
					cells = append(cells, "")
				}
			}
			write(cells...)
			matchNo++
			clock += cfg.MatchGapMinutes
		}
	}
}

func writeJudgingBlock(write func(...string), cfg *Config, teams []int) {
	write(blockMarker, "3")
	write("Judging Sessions", "")
	write("", "")
	write("", "")
	write("", "")

	names := RoomNames(cfg.Rooms)
	write(append([]string{"Session"}, names...)...)

	clock, _ := parseClock(cfg.JudgingStart)
	rows := (cfg.Teams + cfg.Rooms - 1) / cfg.Rooms
	for row := 0; row < rows; row++ {
		cells := []string{
			strconv.Itoa(row + 1),
			formatClock(clock),
			"", // spare column before assignments
		}
		for r := 0; r < cfg.Rooms; r++ {
			idx := row*cfg.Rooms + r
			if idx < cfg.Teams {
				cells = append(cells, strconv.Itoa(teams[idx]))
			} else {
				cells = append(cells, "")
			}
		}
		write(cells...)
		clock += cfg.JudgingGapMinutes
	}
}

// parseClock converts HH:MM into minutes since midnight.
func parseClock(raw string) (int, error) {
	hh, mm, ok := strings.Cut(raw, ":")
	if !ok {
		return 0, fmt.Errorf("%w: time %q", ErrBadConfig, raw)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q", ErrBadConfig, raw)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: time %q", ErrBadConfig, raw)
	}
	return hour*60 + minute, nil
}

func formatClock(minutes int) string {
	minutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

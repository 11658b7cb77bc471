package schedule

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/types"
)

// Column layout of match rows: number, round, time, then one cell per
// table starting at matchDataOffset.
const (
	matchNumberCol  = 0
	matchRoundCol   = 1
	matchTimeCol    = 2
	matchDataOffset = 4
)

// parseMatches derives one match per data row of a match block. The
// block's own resource header fixes the table order; each table is
// resolved by name against the persisted tables, so reordering between
// export and import stays correct. A header name missing from the
// persisted set fails the whole derivation.
func parseMatches(
	lines [][]string,
	stage types.Stage,
	event model.Event,
	teams []model.Team,
	tables []model.Table,
) ([]model.Match, error) {
	names := resourceNames(lines)
	if names == nil {
		return nil, nil
	}
	lines = lines[resourceHeaderRows+1:]

	tableByName := make(map[string]model.Table, len(tables))
	for _, t := range tables {
		tableByName[t.Name] = t
	}
	teamByNumber := teamIndex(teams)

	matches := make([]model.Match, 0, len(lines))
	for _, line := range lines {
		number, _ := strconv.Atoi(cell(line, matchNumberCol))
		round, _ := strconv.Atoi(cell(line, matchRoundCol))
		at, err := scheduledAt(event, cell(line, matchTimeCol))
		if err != nil {
			return nil, err
		}

		match := model.Match{
			EventID:       event.ID,
			Stage:         stage,
			Round:         round,
			Number:        number,
			ScheduledTime: at,
			Status:        types.StatusNotStarted,
			Participants:  make([]model.Participant, 0, len(names)),
		}

		for i, name := range names {
			table, ok := tableByName[name]
			if !ok {
				return nil, unresolved("table", name)
			}
			match.Participants = append(match.Participants, model.Participant{
				TableID:   table.ID,
				TableName: table.Name,
				TeamID:    teamRef(teamByNumber, cell(line, matchDataOffset+i)),
				Ready:     false,
				Present:   types.PresenceNoShow,
			})
		}

		matches = append(matches, match)
	}
	return matches, nil
}

// testMatch builds the single synthetic test match every event gets,
// independent of the document's content: no number, no time, no
// participants.
func testMatch(event model.Event) model.Match {
	return model.Match{
		EventID: event.ID,
		Stage:   types.StageTest,
		Round:   0,
		Status:  types.StatusNotStarted,
	}
}

// teamIndex builds the number -> team lookup used by both derivers.
func teamIndex(teams []model.Team) map[int]model.Team {
	byNumber := make(map[int]model.Team, len(teams))
	for _, t := range teams {
		byNumber[t.Number] = t
	}
	return byNumber
}

// teamRef resolves an assignment cell to a persisted team identifier.
// Blank cells mean the slot is unused; unknown or unparseable numbers
// also resolve to no team, matching the exporter's leniency about
// assignment cells.
func teamRef(byNumber map[int]model.Team, raw string) *uuid.UUID {
	if raw == "" {
		return nil
	}
	number, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	team, ok := byNumber[number]
	if !ok {
		return nil
	}
	id := team.ID
	return &id
}

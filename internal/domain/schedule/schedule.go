package schedule

import (
	"strconv"

	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/types"
)

// Entities is the pass-1 output: primary entities with no foreign
// references, ready for bulk insertion.
type Entities struct {
	Teams  []model.Team
	Tables []model.Table
	Rooms  []model.Room
}

// Schedule is the pass-2 output: secondary entities whose references
// are store-assigned identifiers taken from the persisted inputs.
type Schedule struct {
	Matches  []model.Match
	Sessions []model.JudgingSession
}

// ParseEntities decodes the document and extracts teams, tables and
// rooms. It is the first pass of an import: the results carry no
// identifiers yet and must be persisted before schedule derivation.
func ParseEntities(event model.Event, doc string) (Entities, error) {
	blocks, err := decode(doc)
	if err != nil {
		return Entities{}, err
	}

	return Entities{
		Teams:  parseTeams(blocks.lines(teamsBlock), event),
		Tables: parseTables(blocks.lines(practiceMatchesBlock), event),
		Rooms:  parseRooms(blocks.lines(judgingSessionsBlock), event),
	}, nil
}

// ParseSchedule decodes the document a second time and derives matches
// and judging sessions against the persisted, identifier-bearing
// primary entities. Ranking and practice matches are combined and the
// synthetic test match appended last.
func ParseSchedule(
	event model.Event,
	teams []model.Team,
	tables []model.Table,
	rooms []model.Room,
	doc string,
) (Schedule, error) {
	blocks, err := decode(doc)
	if err != nil {
		return Schedule{}, err
	}

	practice, err := parseMatches(blocks.lines(practiceMatchesBlock), types.StagePractice, event, teams, tables)
	if err != nil {
		return Schedule{}, err
	}
	ranking, err := parseMatches(blocks.lines(rankingMatchesBlock), types.StageRanking, event, teams, tables)
	if err != nil {
		return Schedule{}, err
	}
	matches := append(practice, ranking...)
	matches = append(matches, testMatch(event))

	sessions, err := parseSessions(blocks.lines(judgingSessionsBlock), event, teams, rooms)
	if err != nil {
		return Schedule{}, err
	}

	return Schedule{Matches: matches, Sessions: sessions}, nil
}

// decode runs the shared front half of both passes: read the rows,
// enforce the supported version, segment the remainder into blocks.
// The version gate fires before any block is touched.
func decode(doc string) (blockSet, error) {
	rows, err := readDocument(doc)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, unsupportedVersion(0)
	}
	version, err := strconv.Atoi(cell(rows[0], 1))
	if err != nil || version != SupportedVersion {
		return nil, unsupportedVersion(version)
	}
	return segmentBlocks(rows[1:]), nil
}

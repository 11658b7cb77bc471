package schedule

import (
	"strconv"
	"strings"

	"github.com/okian/arena/internal/domain/model"
)

// Leading rows to discard per block before data starts.
const (
	teamHeaderRows     = 1
	resourceHeaderRows = 4
)

// parseTeams extracts teams from the roster block: one row per team
// after a single column-header row. Rows are taken as-is; duplicates in
// the document become duplicate teams and are rejected later by the
// store's uniqueness check.
func parseTeams(lines [][]string, event model.Event) []model.Team {
	if len(lines) < teamHeaderRows {
		return nil
	}
	lines = lines[teamHeaderRows:]

	teams := make([]model.Team, 0, len(lines))
	for _, line := range lines {
		number, _ := strconv.Atoi(cell(line, 0))
		teams = append(teams, model.Team{
			EventID: event.ID,
			Number:  number,
			Name:    cell(line, 1),
			Affiliation: model.Affiliation{
				Institution: cell(line, 2),
				City:        cell(line, 3),
			},
			Registered: false,
		})
	}
	return teams
}

// resourceNames pulls the ordered resource names out of a match or
// judging block: after the four preamble rows the next row carries the
// names from column 1 onward. Blank cells are dropped, order is kept;
// this left-to-right order is the canonical one every match's
// participant sequence follows.
func resourceNames(lines [][]string) []string {
	if len(lines) <= resourceHeaderRows {
		return nil
	}
	header := lines[resourceHeaderRows]
	if len(header) <= 1 {
		return nil
	}
	names := make([]string, 0, len(header)-1)
	for _, name := range header[1:] {
		if n := strings.TrimSpace(name); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// parseTables extracts the robot-game tables from the practice-match
// block's resource header.
func parseTables(lines [][]string, event model.Event) []model.Table {
	names := resourceNames(lines)
	tables := make([]model.Table, 0, len(names))
	for _, name := range names {
		tables = append(tables, model.Table{EventID: event.ID, Name: name})
	}
	return tables
}

// parseRooms extracts the judging rooms from the judging block's
// resource header.
func parseRooms(lines [][]string, event model.Event) []model.Room {
	names := resourceNames(lines)
	rooms := make([]model.Room, 0, len(names))
	for _, name := range names {
		rooms = append(rooms, model.Room{EventID: event.ID, Name: name})
	}
	return rooms
}

package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/types"
)

// Column layout of judging rows: session number, time, then one cell
// per room starting at sessionDataOffset.
const (
	sessionNumberCol  = 0
	sessionTimeCol    = 1
	sessionDataOffset = 3
)

// parseSessions derives one judging session per (data row, room name)
// pair. Empty assignment cells still produce a session with no team so
// every room is covered at every time slot.
func parseSessions(
	lines [][]string,
	event model.Event,
	teams []model.Team,
	rooms []model.Room,
) ([]model.JudgingSession, error) {
	names := resourceNames(lines)
	if names == nil {
		return nil, nil
	}
	lines = lines[resourceHeaderRows+1:]

	roomByName := make(map[string]model.Room, len(rooms))
	for _, r := range rooms {
		roomByName[r.Name] = r
	}
	teamByNumber := teamIndex(teams)

	sessions := make([]model.JudgingSession, 0, len(lines)*len(names))
	for _, line := range lines {
		number, _ := strconv.Atoi(cell(line, sessionNumberCol))
		at, err := scheduledAt(event, cell(line, sessionTimeCol))
		if err != nil {
			return nil, err
		}

		for i, name := range names {
			room, ok := roomByName[name]
			if !ok {
				return nil, unresolved("room", name)
			}
			sessions = append(sessions, model.JudgingSession{
				EventID:       event.ID,
				Number:        number,
				RoomID:        room.ID,
				TeamID:        teamRef(teamByNumber, cell(line, sessionDataOffset+i)),
				ScheduledTime: at,
				Status:        types.StatusNotStarted,
			})
		}
	}
	return sessions, nil
}

// scheduledAt places an HH:MM cell on the event's start date, seconds
// and nanoseconds zeroed. Schedules are single-day; the document never
// carries dates of its own.
func scheduledAt(event model.Event, raw string) (time.Time, error) {
	hh, mm, ok := strings.Cut(raw, ":")
	if !ok {
		return time.Time{}, malformed(fmt.Errorf("bad time cell %q", raw))
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		return time.Time{}, malformed(fmt.Errorf("bad time cell %q", raw))
	}
	minute, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		return time.Time{}, malformed(fmt.Errorf("bad time cell %q", raw))
	}
	start := event.StartDate
	return time.Date(start.Year(), start.Month(), start.Day(), hour, minute, 0, 0, start.Location()), nil
}

package schedgen_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/schedule"
	"github.com/okian/arena/internal/schedgen"
)

func genEvent() model.Event {
	return model.Event{
		ID:        uuid.New(),
		Name:      "Generated Open",
		StartDate: time.Date(2026, time.May, 9, 0, 0, 0, 0, time.UTC),
	}
}

func withIDs(e schedule.Entities) ([]model.Team, []model.Table, []model.Room) {
	teams := make([]model.Team, len(e.Teams))
	copy(teams, e.Teams)
	for i := range teams {
		teams[i].ID = uuid.New()
	}
	tables := make([]model.Table, len(e.Tables))
	copy(tables, e.Tables)
	for i := range tables {
		tables[i].ID = uuid.New()
	}
	rooms := make([]model.Room, len(e.Rooms))
	copy(rooms, e.Rooms)
	for i := range rooms {
		rooms[i].ID = uuid.New()
	}
	return teams, tables, rooms
}

func TestGenerate(t *testing.T) {
	Convey("Given the default generator configuration", t, func() {
		cfg := schedgen.DefaultConfig()
		event := genEvent()

		Convey("When generating a document", func() {
			doc, err := schedgen.Generate(cfg)
			So(err, ShouldBeNil)
			So(doc, ShouldNotBeEmpty)

			Convey("Then the importer accepts it end to end", func() {
				entities, err := schedule.ParseEntities(event, doc)
				So(err, ShouldBeNil)
				So(entities.Teams, ShouldHaveLength, cfg.Teams)
				So(entities.Tables, ShouldHaveLength, cfg.Tables)
				So(entities.Rooms, ShouldHaveLength, cfg.Rooms)

				teams, tables, rooms := withIDs(entities)
				sched, err := schedule.ParseSchedule(event, teams, tables, rooms, doc)
				So(err, ShouldBeNil)

				rows := (cfg.Teams + cfg.Tables - 1) / cfg.Tables
				rounds := cfg.PracticeRounds + cfg.RankingRounds
				So(sched.Matches, ShouldHaveLength, rows*rounds+1)

				judgingRows := (cfg.Teams + cfg.Rooms - 1) / cfg.Rooms
				So(sched.Sessions, ShouldHaveLength, judgingRows*cfg.Rooms)
			})

			Convey("Then every team appears in each ranking round", func() {
				entities, err := schedule.ParseEntities(event, doc)
				So(err, ShouldBeNil)
				teams, tables, rooms := withIDs(entities)
				sched, err := schedule.ParseSchedule(event, teams, tables, rooms, doc)
				So(err, ShouldBeNil)

				seen := map[uuid.UUID]int{}
				for _, m := range sched.Matches {
					for _, p := range m.Participants {
						if p.TeamID != nil {
							seen[*p.TeamID]++
						}
					}
				}
				for _, team := range teams {
					So(seen[team.ID], ShouldEqual, cfg.PracticeRounds+cfg.RankingRounds)
				}
			})
		})

		Convey("When generating with a nil configuration", func() {
			doc, err := schedgen.Generate(nil)
			So(err, ShouldBeNil)
			So(doc, ShouldNotBeEmpty)
		})
	})

	Convey("Given broken configurations", t, func() {
		Convey("Then zero teams are rejected", func() {
			cfg := schedgen.DefaultConfig()
			cfg.Teams = 0
			_, err := schedgen.Generate(cfg)
			So(err, ShouldWrap, schedgen.ErrBadConfig)
		})

		Convey("Then a malformed start time is rejected", func() {
			cfg := schedgen.DefaultConfig()
			cfg.MatchStart = "morning"
			_, err := schedgen.Generate(cfg)
			So(err, ShouldWrap, schedgen.ErrBadConfig)
		})

		Convey("Then a zero slot gap is rejected", func() {
			cfg := schedgen.DefaultConfig()
			cfg.JudgingGapMinutes = 0
			_, err := schedgen.Generate(cfg)
			So(err, ShouldWrap, schedgen.ErrBadConfig)
		})
	})
}

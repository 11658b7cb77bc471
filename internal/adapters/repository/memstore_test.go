package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/smartystreets/goconvey/convey"

	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/domain/model"
	"github.com/okian/arena/internal/domain/types"
)

func TestMemStoreEvents(t *testing.T) {
	Convey("Given an empty store", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()

		Convey("When creating an event", func() {
			event, err := store.CreateEvent(ctx, model.Event{
				Name:      "Springfield Regional",
				StartDate: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC),
			})

			Convey("Then the stored copy carries an identifier", func() {
				So(err, ShouldBeNil)
				So(event.ID, ShouldNotResemble, uuid.UUID{})
			})

			Convey("Then the event can be fetched back", func() {
				got, err := store.Event(ctx, event.ID)
				So(err, ShouldBeNil)
				So(got, ShouldResemble, event)
			})
		})

		Convey("When fetching an unknown event", func() {
			_, err := store.Event(ctx, uuid.New())
			So(err, ShouldWrap, repository.ErrNotFound)
		})
	})
}

func TestMemStorePrimaryEntities(t *testing.T) {
	Convey("Given a store with one event", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		event, err := store.CreateEvent(ctx, model.Event{Name: "Regional"})
		So(err, ShouldBeNil)

		Convey("When inserting teams", func() {
			err := store.InsertTeams(ctx, []model.Team{
				{EventID: event.ID, Number: 12, Name: "RoboCats"},
				{EventID: event.ID, Number: 25, Name: "Gear Geese"},
			})
			So(err, ShouldBeNil)

			Convey("Then each team got an identifier and order is kept", func() {
				teams, err := store.Teams(ctx, event.ID)
				So(err, ShouldBeNil)
				So(teams, ShouldHaveLength, 2)
				So(teams[0].ID, ShouldNotResemble, uuid.UUID{})
				So(teams[0].Number, ShouldEqual, 12)
				So(teams[1].Number, ShouldEqual, 25)
			})

			Convey("Then a duplicate team number is rejected", func() {
				err := store.InsertTeams(ctx, []model.Team{{EventID: event.ID, Number: 12}})
				So(err, ShouldWrap, repository.ErrDuplicate)
			})

			Convey("Then mutating a read slice does not touch the store", func() {
				teams, _ := store.Teams(ctx, event.ID)
				teams[0].Name = "clobbered"
				again, _ := store.Teams(ctx, event.ID)
				So(again[0].Name, ShouldEqual, "RoboCats")
			})
		})

		Convey("When inserting a batch with an internal duplicate", func() {
			err := store.InsertTables(ctx, []model.Table{
				{EventID: event.ID, Name: "Table A"},
				{EventID: event.ID, Name: "Table A"},
			})

			Convey("Then nothing from the batch is persisted", func() {
				So(err, ShouldWrap, repository.ErrDuplicate)
				tables, err := store.Tables(ctx, event.ID)
				So(err, ShouldBeNil)
				So(tables, ShouldBeEmpty)
			})
		})

		Convey("When inserting tables and rooms", func() {
			So(store.InsertTables(ctx, []model.Table{
				{EventID: event.ID, Name: "Table A"},
				{EventID: event.ID, Name: "Table B"},
			}), ShouldBeNil)
			So(store.InsertRooms(ctx, []model.Room{
				{EventID: event.ID, Name: "Room Alpha"},
			}), ShouldBeNil)

			Convey("Then tables come back in canonical (insertion) order", func() {
				tables, err := store.Tables(ctx, event.ID)
				So(err, ShouldBeNil)
				So(tables[0].Name, ShouldEqual, "Table A")
				So(tables[1].Name, ShouldEqual, "Table B")
			})

			Convey("Then rooms are scoped to their event", func() {
				other, err := store.CreateEvent(ctx, model.Event{Name: "Other"})
				So(err, ShouldBeNil)
				rooms, err := store.Rooms(ctx, other.ID)
				So(err, ShouldBeNil)
				So(rooms, ShouldBeEmpty)
			})
		})

		Convey("When inserting for an unknown event", func() {
			err := store.InsertTeams(ctx, []model.Team{{EventID: uuid.New(), Number: 1}})
			So(err, ShouldWrap, repository.ErrNotFound)
		})
	})
}

func TestMemStoreSecondaryEntities(t *testing.T) {
	Convey("Given a store with persisted primary entities", t, func() {
		ctx := context.Background()
		store := repository.NewMemStore()
		event, err := store.CreateEvent(ctx, model.Event{Name: "Regional"})
		So(err, ShouldBeNil)
		So(store.InsertTables(ctx, []model.Table{{EventID: event.ID, Name: "Table A"}}), ShouldBeNil)
		tables, err := store.Tables(ctx, event.ID)
		So(err, ShouldBeNil)

		Convey("When inserting matches with participants", func() {
			match := model.Match{
				EventID: event.ID,
				Stage:   types.StagePractice,
				Round:   1,
				Number:  1,
				Status:  types.StatusNotStarted,
				Participants: []model.Participant{
					{TableID: tables[0].ID, TableName: "Table A", Present: types.PresenceNoShow},
				},
			}
			So(store.InsertMatches(ctx, []model.Match{match}), ShouldBeNil)

			Convey("Then the match is read back with an identifier", func() {
				got, err := store.Matches(ctx, event.ID)
				So(err, ShouldBeNil)
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldNotResemble, uuid.UUID{})
				So(got[0].Participants, ShouldHaveLength, 1)
			})

			Convey("Then participant slices are copied on read", func() {
				got, _ := store.Matches(ctx, event.ID)
				got[0].Participants[0].TableName = "clobbered"
				again, _ := store.Matches(ctx, event.ID)
				So(again[0].Participants[0].TableName, ShouldEqual, "Table A")
			})
		})

		Convey("When inserting sessions", func() {
			So(store.InsertSessions(ctx, []model.JudgingSession{
				{EventID: event.ID, Number: 1, Status: types.StatusNotStarted},
				{EventID: event.ID, Number: 2, Status: types.StatusNotStarted},
			}), ShouldBeNil)

			sessions, err := store.Sessions(ctx, event.ID)
			So(err, ShouldBeNil)
			So(sessions, ShouldHaveLength, 2)
			So(sessions[0].Number, ShouldEqual, 1)
		})
	})
}

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/arena/internal/adapters/http/api"
	repository "github.com/okian/arena/internal/adapters/repository"
	"github.com/okian/arena/internal/app"
	"github.com/okian/arena/internal/domain/model"
)

func scheduleDocument() string {
	lines := []string{
		`Schedule Export,2,`,
		`Block Format,1,`,
		`Number,Name,Institution,City`,
		`12,RoboCats,Lincoln High,Springfield`,
		`Block Format,4,`,
		`Practice Matches,,`,
		`,,`,
		`,,`,
		`,,`,
		`Match,Table A,`,
		`1,1,09:00,,12`,
		`Block Format,3,`,
		`Judging Sessions,,`,
		`,,`,
		`,,`,
		`,,`,
		`Session,Room Alpha,`,
		`1,10:00,,12`,
	}
	return strings.Join(lines, "\n")
}

func newTestServer() *httptest.Server {
	svc := app.New(app.WithStore(repository.NewMemStore()))
	mux := http.NewServeMux()
	api.NewServer(svc).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func createEvent(ts *httptest.Server) (model.Event, int) {
	body := `{"name":"Springfield Regional","start_date":"2026-03-14T00:00:00Z"}`
	resp, err := http.Post(ts.URL+"/events", "application/json", strings.NewReader(body))
	So(err, ShouldBeNil)
	defer resp.Body.Close()
	var event model.Event
	_ = json.NewDecoder(resp.Body).Decode(&event)
	return event, resp.StatusCode
}

func TestEventEndpoints(t *testing.T) {
	Convey("Given a running API server", t, func() {
		ts := newTestServer()
		defer ts.Close()

		Convey("When creating an event", func() {
			event, status := createEvent(ts)

			Convey("Then the event is returned with an identifier", func() {
				So(status, ShouldEqual, http.StatusCreated)
				So(event.Name, ShouldEqual, "Springfield Regional")
				So(event.ID.String(), ShouldNotEqual, "00000000-0000-0000-0000-000000000000")
			})

			Convey("Then it can be fetched back", func() {
				resp, err := http.Get(ts.URL + "/events/" + event.ID.String())
				So(err, ShouldBeNil)
				defer resp.Body.Close()
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When creating an event with a bad body", func() {
			resp, err := http.Post(ts.URL+"/events", "application/json", strings.NewReader(`{"name":""}`))
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When fetching an unknown event", func() {
			resp, err := http.Get(ts.URL + "/events/6d2e1f14-8b32-4f8e-b9a5-0e6a0a1c2d3e")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When fetching with a malformed event id", func() {
			resp, err := http.Get(ts.URL + "/events/not-a-uuid")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestImportEndpoint(t *testing.T) {
	Convey("Given a server with one event", t, func() {
		ts := newTestServer()
		defer ts.Close()
		event, _ := createEvent(ts)
		importURL := ts.URL + "/events/" + event.ID.String() + "/schedule"

		Convey("When uploading a well-formed document", func() {
			resp, err := http.Post(importURL, "text/csv", strings.NewReader(scheduleDocument()))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the import succeeds with a summary", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusCreated)
				var summary app.ImportSummary
				So(json.NewDecoder(resp.Body).Decode(&summary), ShouldBeNil)
				So(summary.Teams, ShouldEqual, 1)
				So(summary.Tables, ShouldEqual, 1)
				So(summary.Rooms, ShouldEqual, 1)
				So(summary.Matches, ShouldEqual, 2) // practice + test
				So(summary.Sessions, ShouldEqual, 1)
			})

			Convey("Then the derived entities are readable", func() {
				for resource, want := range map[string]int{
					"teams": 1, "tables": 1, "rooms": 1, "matches": 2, "sessions": 1,
				} {
					resp, err := http.Get(ts.URL + "/events/" + event.ID.String() + "/" + resource)
					So(err, ShouldBeNil)
					var list []json.RawMessage
					So(json.NewDecoder(resp.Body).Decode(&list), ShouldBeNil)
					resp.Body.Close()
					So(list, ShouldHaveLength, want)
				}
			})

			Convey("Then a second upload is rejected", func() {
				resp, err := http.Post(importURL, "text/csv", strings.NewReader(scheduleDocument()))
				So(err, ShouldBeNil)
				defer resp.Body.Close()
				So(resp.StatusCode, ShouldEqual, http.StatusConflict)
			})
		})

		Convey("When uploading a wrong-version document", func() {
			doc := strings.Replace(scheduleDocument(), "Schedule Export,2,", "Schedule Export,1,", 1)
			resp, err := http.Post(importURL, "text/csv", strings.NewReader(doc))
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
			var body struct {
				Code string `json:"code"`
			}
			So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
			So(body.Code, ShouldEqual, "unsupported_version")
		})

		Convey("When uploading an empty body", func() {
			resp, err := http.Post(importURL, "text/csv", strings.NewReader(""))
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When listing an unknown resource", func() {
			resp, err := http.Get(ts.URL + "/events/" + event.ID.String() + "/trophies")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

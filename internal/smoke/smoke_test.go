package smoke

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/medalboard/internal/adapters/http/api"
	"github.com/okian/medalboard/internal/adapters/repository"
	service "github.com/okian/medalboard/internal/app"
	"github.com/okian/medalboard/internal/domain/dashboard"
	"github.com/okian/medalboard/internal/domain/facets"
	"github.com/okian/medalboard/internal/domain/selection"
	"github.com/okian/medalboard/internal/domain/types"
	"github.com/okian/medalboard/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const dataset = `Year,City,Sport,Discipline,Athlete,Country,Gender,Event,Medal
1896,Athens,Aquatics,Swimming,"A, One",GRE,Men,100M Freestyle,Gold
1900,Paris,Aquatics,Swimming,"B, Two",GBR,Women,100M Freestyle,Silver
1900,Paris,Aquatics,Water Polo,"C, Three",FRA,Men,Water Polo,Bronze
1904,St Louis,Athletics,Athletics,"D, Four",USA,Men,Marathon,Gold
1904,St Louis,Athletics,Athletics,"E, Five",USA,Men,Marathon,Silver
1904,St Louis,Athletics,Athletics,"F, Six",XXX,Women,Marathon,Bronze
1908,London,Athletics,Athletics,"G, Seven",GBR,Women,Long Jump,Gold
1908,London,Fencing,Fencing,"H, Eight",FRA,Men,Sabre,Gold
1912,Stockholm,Fencing,Fencing,"I, Nine",,Men,Sabre,Silver
1912,Stockholm,Fencing,Fencing,"J, Ten",ITA,Women,Foil,Bronze
`

// newStack starts a dataset host and a medalboard API in front of it.
func newStack() (*httptest.Server, func()) {
	data := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(dataset))
	}))

	store := repository.NewDatasetStore(repository.NewURLSource(data.URL, repository.WithTimeout(5*time.Second)))
	svc := service.New(service.WithStore(store), service.WithTopCountries(3))
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	So(svc.Start(ctx), ShouldBeNil)

	mux := http.NewServeMux()
	api.NewServer(svc, svc).Register(ctx, mux)
	srv := httptest.NewServer(api.RequestID(mux))

	return srv, func() {
		srv.Close()
		svc.Stop()
		data.Close()
	}
}

func testConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		Selections: 40,
		Workers:    4,
		Timeout:    5 * time.Second,
		Seed:       7,
	}
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	Convey("Given a running medalboard", t, func() {
		srv, stop := newStack()
		defer stop()

		Convey("A smoke run verifies every selection", func() {
			stats, err := Run(ctx, testConfig(srv.URL))
			So(err, ShouldBeNil)
			So(stats.Selections, ShouldEqual, 40)
			So(stats.Verified, ShouldEqual, 40)
			So(stats.Violations, ShouldEqual, 0)
			So(stats.Failed, ShouldEqual, 0)
			So(stats.Duration, ShouldBeGreaterThan, 0)
		})

		Convey("The catalog lists sports and their events without All", func() {
			catalog, err := loadCatalog(ctx, NewClient(srv.URL, *testConfig(srv.URL)), 2)
			So(err, ShouldBeNil)
			So(catalog.Years, ShouldResemble, facets.Bounds{Min: 1896, Max: 1912})
			So(catalog.Sports, ShouldResemble, []string{"Aquatics", "Athletics", "Fencing"})
			So(catalog.Events["Fencing"], ShouldResemble, []string{"Foil", "Sabre"})
		})

		Convey("Unparseable criteria are rejected", func() {
			So(checkRejection(ctx, NewClient(srv.URL, *testConfig(srv.URL))), ShouldBeNil)
		})
	})

	Convey("Given a server that is down", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		Convey("Run fails the health check", func() {
			_, err := Run(ctx, testConfig(srv.URL))
			So(errors.Is(err, ErrUnhealthy), ShouldBeTrue)
		})
	})

	Convey("Given a server that miscounts medals", t, func() {
		mux := http.NewServeMux()
		reply := func(path string, v any) {
			mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(v)
			})
		}
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {})
		reply("/stats", map[string]any{"topCountries": 10})
		reply("/api/options", facets.Options{
			Years:    facets.Bounds{Min: 1900, Max: 1904},
			YearStep: 4,
			Sports:   []string{selection.All},
		})
		reply("/api/selection", dashboard.Artifacts{
			Criteria:    selection.Criteria{YearMin: 1900, YearMax: 1904},
			Rows:        2,
			DatasetRows: 2,
			Tally:       []types.CountryTally{{Country: "USA", Gold: 1, Silver: 1, Total: 3}},
		})
		reply("/api/records", types.Page[struct{}]{Total: 2})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("Run reports the violations", func() {
			cfg := testConfig(srv.URL)
			cfg.Selections = 5
			stats, err := Run(ctx, cfg)
			So(errors.Is(err, ErrViolation), ShouldBeTrue)
			So(stats.Verified, ShouldEqual, 0)
			// every selection plus the accepted bad gender
			So(stats.Violations, ShouldEqual, 6)
		})
	})
}

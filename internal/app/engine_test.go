package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/skinsight/engine/internal/adapters/analysis"
	"github.com/skinsight/engine/internal/app"
	"github.com/skinsight/engine/internal/domain/model"
	"github.com/skinsight/engine/internal/domain/selector"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeAnalyzer counts calls and serves a canned report or error.
type fakeAnalyzer struct {
	calls  int
	report model.BarrierReport
	err    error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, _ analysis.Request) (*model.BarrierReport, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	r := f.report
	return &r, nil
}

func TestBarrierReport(t *testing.T) {
	Convey("Given an engine backed by a fake analyzer", t, func() {
		ctx := context.Background()
		backend := &fakeAnalyzer{report: model.BarrierReport{Score: 64, Status: "strained"}}
		engine := app.New(app.WithAnalyzer(backend))

		products := []string{"p2", "p1"}
		settings := map[string]any{"skinType": "oily", "allergies": []string{"fragrance"}}
		req := analysis.Request{IngredientsList: []string{"aqua"}, ProductType: "serum"}

		Convey("When the same product set is analyzed twice", func() {
			first, err := engine.BarrierReport(ctx, products, settings, req)
			So(err, ShouldBeNil)
			So(first.Score, ShouldEqual, 64)

			second, err := engine.BarrierReport(ctx, []string{"p1", "p2"}, settings, req)
			So(err, ShouldBeNil)
			So(second.Score, ShouldEqual, 64)

			Convey("Then the backend is called exactly once", func() {
				So(backend.calls, ShouldEqual, 1)
			})
		})

		Convey("When the settings content changes", func() {
			_, err := engine.BarrierReport(ctx, products, settings, req)
			So(err, ShouldBeNil)

			altered := map[string]any{"skinType": "dry", "allergies": []string{"fragrance"}}
			_, err = engine.BarrierReport(ctx, products, altered, req)
			So(err, ShouldBeNil)

			Convey("Then the backend is called again", func() {
				So(backend.calls, ShouldEqual, 2)
			})
		})

		Convey("When the backend fails", func() {
			failing := &fakeAnalyzer{err: errors.New("502 from upstream")}
			engine := app.New(app.WithAnalyzer(failing))

			_, err := engine.BarrierReport(ctx, products, settings, req)
			So(err, ShouldNotBeNil)

			Convey("Then the failure is not cached and the next call retries", func() {
				failing.err = nil
				failing.report = model.BarrierReport{Score: 80}

				report, err := engine.BarrierReport(ctx, products, settings, req)
				So(err, ShouldBeNil)
				So(report.Score, ShouldEqual, 80)
				So(failing.calls, ShouldEqual, 2)
			})
		})

		Convey("When the cached report ages past its TTL", func() {
			now := time.Unix(1_700_000_000, 0)
			engine := app.New(
				app.WithAnalyzer(backend),
				app.WithReportCacheTTL(24*time.Hour),
				app.WithClock(func() time.Time { return now }),
			)

			_, err := engine.BarrierReport(ctx, products, settings, req)
			So(err, ShouldBeNil)
			now = now.Add(25 * time.Hour)

			_, err = engine.BarrierReport(ctx, products, settings, req)
			So(err, ShouldBeNil)

			Convey("Then the backend is consulted again", func() {
				So(backend.calls, ShouldEqual, 2)
			})
		})

		Convey("When no analyzer is configured", func() {
			engine := app.New()
			_, err := engine.BarrierReport(ctx, products, settings, req)
			So(errors.Is(err, app.ErrNoAnalyzer), ShouldBeTrue)
		})
	})
}

func TestDashboard(t *testing.T) {
	Convey("Given an engine and one cycle of signals", t, func() {
		ctx := context.Background()
		engine := app.New()

		coach := []model.Insight{
			{ID: "c1", Severity: model.SeverityCritical, Source: model.SourceCoach},
			{ID: "c2", Severity: model.SeverityInfo, Source: model.SourceCoach},
			{ID: selector.NightPrepID, Severity: model.SeverityInfo, Source: model.SourceCoach},
		}
		weather := []model.Insight{
			{ID: "w0", Severity: model.SeverityWarning, Source: model.SourceWeather},
			{ID: "w1", Severity: model.SeverityCritical, Source: model.SourceWeather},
		}

		Convey("When weather is healthy", func() {
			sel := engine.Dashboard(ctx, app.DashboardInput{
				Coach:        coach,
				Weather:      weather,
				WeatherState: model.WeatherOK,
			})

			Convey("Then weather leads and the carousel is pinned and sorted", func() {
				So(sel.State, ShouldEqual, selector.StateWeatherHero)
				So(sel.Hero.ID, ShouldEqual, "w0")
				So(len(sel.Carousel), ShouldEqual, 4)
				So(sel.Carousel[0].ID, ShouldEqual, selector.NightPrepID)
				So(sel.Carousel[1].ID, ShouldEqual, "w1")
				So(sel.Carousel[2].ID, ShouldEqual, "c1")
				So(sel.Carousel[3].ID, ShouldEqual, "c2")
			})

			Convey("Then the selection becomes the latest feed", func() {
				latest, ok := engine.LatestDashboard()
				So(ok, ShouldBeTrue)
				So(latest.Hero.ID, ShouldEqual, "w0")
			})
		})

		Convey("When a dismissed id covers the would-be hero", func() {
			sel := engine.Dashboard(ctx, app.DashboardInput{
				Coach:        coach,
				WeatherState: model.WeatherOK,
				DismissedIDs: map[string]struct{}{"c1": {}},
			})

			Convey("Then the dismissed insight appears nowhere", func() {
				So(sel.Hero.ID, ShouldNotEqual, "c1")
				for _, in := range sel.Carousel {
					So(in.ID, ShouldNotEqual, "c1")
				}
			})
		})

		Convey("When there are no signals at all", func() {
			sel := engine.Dashboard(ctx, app.DashboardInput{WeatherState: model.WeatherOK})
			So(sel.State, ShouldEqual, selector.StateAllClear)
			So(sel.Hero, ShouldBeNil)
		})

		Convey("When no dashboard has been built yet", func() {
			fresh := app.New()
			_, ok := fresh.LatestDashboard()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestMatch(t *testing.T) {
	Convey("Given an engine", t, func() {
		engine := app.New()

		Convey("Then match delegates to the scorer", func() {
			result := engine.Match(context.Background(),
				&model.UserAttributeProfile{SkinType: "oily", ScalpType: "dry", Conditions: []string{"acne"}},
				&model.UserAttributeProfile{SkinType: "oily", ScalpType: "normal", Conditions: []string{"acne", "eczema"}},
			)
			So(result.Score, ShouldEqual, 75)
			So(result.Label, ShouldEqual, "good match")
		})

		Convey("Then a missing profile yields the unknown result", func() {
			result := engine.Match(context.Background(), nil, nil)
			So(result.Score, ShouldEqual, 0)
			So(result.Label, ShouldEqual, "unknown")
		})
	})
}

// Package render draws dashboard artifacts as an ECharts HTML page.
package render

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/okian/medalboard/internal/domain/dashboard"
)

// DefaultAssetsHost serves the echarts javascript bundles.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

const (
	pageTitle     = "EDA Modern Olympic Games"
	chartWidth    = "1000px"
	tallyHeight   = "400px"
	mapHeight     = "500px"
	trendHeight   = "300px"
	sportsHeight  = "900px"
	markerSymbols = 6
)

// Medal colours of the stacked tally bars.
var medalColors = map[string]string{
	"Gold":   "gold",
	"Silver": "silver",
	"Bronze": "brown",
}

var viridis = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// Renderer builds dashboard pages.
type Renderer struct {
	assetsHost string
	title      string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetsHost serves the echarts bundles from host.
func WithAssetsHost(host string) Option {
	return func(r *Renderer) {
		if host != "" {
			r.assetsHost = host
		}
	}
}

// WithTitle sets the HTML page title.
func WithTitle(title string) Option {
	return func(r *Renderer) {
		if title != "" {
			r.title = title
		}
	}
}

// New creates a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{assetsHost: DefaultAssetsHost, title: pageTitle}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Page writes every chart of a into w as one HTML document.
func (r *Renderer) Page(a dashboard.Artifacts, w io.Writer) error {
	page := components.NewPage()
	page.SetPageTitle(r.title)
	page.SetAssetsHost(r.assetsHost)
	page.AddCharts(
		r.TallyBar(a),
		r.MedalMap(a),
		r.ParticipationLine(a),
		r.SportBar(a),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}

func (r *Renderer) init(height string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle:  r.title,
		Width:      chartWidth,
		Height:     height,
		AssetsHost: r.assetsHost,
	})
}

// TallyBar is the stacked gold, silver and bronze bar of the top countries.
func (r *Renderer) TallyBar(a dashboard.Artifacts) *charts.Bar {
	countries := make([]string, len(a.Tally))
	series := map[string][]opts.BarData{}
	for i, t := range a.Tally {
		countries[i] = t.Country
		series["Gold"] = append(series["Gold"], opts.BarData{Value: t.Gold})
		series["Silver"] = append(series["Silver"], opts.BarData{Value: t.Silver})
		series["Bronze"] = append(series["Bronze"], opts.BarData{Value: t.Bronze})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		r.init(tallyHeight),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Top %d of your selection", len(a.Tally)),
			Subtitle: fmt.Sprintf("%d of %d records, %d-%d", a.Rows, a.DatasetRows, a.Criteria.YearMin, a.Criteria.YearMax),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Medals"}),
	)
	bar.SetXAxis(countries)
	for _, medal := range []string{"Gold", "Silver", "Bronze"} {
		bar.AddSeries(medal, series[medal],
			charts.WithBarChartOpts(opts.BarChart{Stack: "medals"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: medalColors[medal]}),
		)
	}
	return bar
}

// MedalMap places one scatter point per located country on a world map.
func (r *Renderer) MedalMap(a dashboard.Artifacts) *charts.Geo {
	data := make([]opts.GeoData, len(a.Markers))
	maxCount := 1
	for i, m := range a.Markers {
		data[i] = opts.GeoData{Name: m.Label, Value: []float64{m.Lon, m.Lat, float64(m.Count)}}
		maxCount = max(maxCount, m.Count)
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		r.init(mapHeight),
		charts.WithTitleOpts(opts.Title{
			Title:    "Map of the winners of your selection",
			Subtitle: skippedSubtitle(a.SkippedCountries),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithGeoComponentOpts(opts.GeoComponent{Map: "world"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: []string{"#fde725", "#ff7f0e", "#d62728"}},
		}),
	)
	geo.AddSeries("medals", types.ChartScatter, data,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "#d62728"}),
	)
	return geo
}

// ParticipationLine is the orange participation-by-year trend.
func (r *Renderer) ParticipationLine(a dashboard.Artifacts) *charts.Line {
	years := make([]int, len(a.Participation))
	points := make([]opts.LineData, len(a.Participation))
	for i, p := range a.Participation {
		years[i] = p.Year
		points[i] = opts.LineData{Value: p.Count}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		r.init(trendHeight),
		charts.WithTitleOpts(opts.Title{Title: "Athlete Participation Over the Years", Subtitle: scopeSubtitle(a.OverviewScope)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Year"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Number of Athletes"}),
	)
	line.SetXAxis(years).AddSeries("Athletes", points,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true), SymbolSize: markerSymbols}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "orange"}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: "orange"}),
	)
	return line
}

// SportBar is the horizontal event count per sport, largest on top.
func (r *Renderer) SportBar(a dashboard.Artifacts) *charts.Bar {
	n := len(a.Sports)
	names := make([]string, n)
	data := make([]opts.BarData, n)
	maxCount := 1
	// Category axes start at the bottom; reverse so the largest bar is drawn last.
	for i, s := range a.Sports {
		names[n-1-i] = s.Key
		data[n-1-i] = opts.BarData{Value: s.Count}
		maxCount = max(maxCount, s.Count)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		r.init(sportsHeight),
		charts.WithTitleOpts(opts.Title{Title: "Events Distribution by Sport", Subtitle: scopeSubtitle(a.OverviewScope)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: viridis},
		}),
	)
	bar.SetXAxis(names).AddSeries("Event Count", data)
	bar.XYReversal()
	return bar
}

func skippedSubtitle(skipped []string) string {
	if len(skipped) == 0 {
		return ""
	}
	return fmt.Sprintf("%d countries without coordinates", len(skipped))
}

func scopeSubtitle(scope string) string {
	if scope == dashboard.ScopeSelection {
		return "your selection"
	}
	return "all editions"
}

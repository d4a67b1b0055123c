package project

import (
	"fmt"
	"maps"
	"slices"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DataSeries plots one column pair of a dataset.
type DataSeries struct {
	DatasetID   string  `mapstructure:"datasetId"`
	XColumn     string  `mapstructure:"xColumn"`
	YColumn     string  `mapstructure:"yColumn"`
	Label       string  `mapstructure:"label"`
	Color       string  `mapstructure:"color"`
	LineStyle   string  `mapstructure:"lineStyle"`
	MarkerStyle string  `mapstructure:"markerStyle"`
	LineWidth   float64 `mapstructure:"lineWidth"`
	MarkerSize  float64 `mapstructure:"markerSize"`
	Visible     bool    `mapstructure:"visible"`
}

// NewDataSeries returns a series with default styling.
// An empty label becomes "<datasetID>:<yColumn>".
func NewDataSeries(datasetID, xColumn, yColumn, label string) DataSeries {
	if label == "" {
		label = datasetID + ":" + yColumn
	}
	return DataSeries{
		DatasetID:   datasetID,
		XColumn:     xColumn,
		YColumn:     yColumn,
		Label:       label,
		Color:       "#1f77b4",
		LineStyle:   "solid",
		MarkerStyle: "circle",
		LineWidth:   2.0,
		MarkerSize:  6.0,
		Visible:     true,
	}
}

func (s DataSeries) dict() map[string]any {
	return map[string]any{
		"datasetId":   s.DatasetID,
		"xColumn":     s.XColumn,
		"yColumn":     s.YColumn,
		"label":       s.Label,
		"color":       s.Color,
		"lineStyle":   s.LineStyle,
		"markerStyle": s.MarkerStyle,
		"lineWidth":   s.LineWidth,
		"markerSize":  s.MarkerSize,
		"visible":     s.Visible,
	}
}

// FitData is a fitted curve drawn over a series.
type FitData struct {
	SourceDatasetID string         `mapstructure:"sourceDatasetId"`
	SourceXColumn   string         `mapstructure:"sourceXColumn"`
	SourceYColumn   string         `mapstructure:"sourceYColumn"`
	FitType         string         `mapstructure:"fitType"`
	XData           []float64      `mapstructure:"xData"`
	YData           []float64      `mapstructure:"yData"`
	Label           string         `mapstructure:"label"`
	Color           string         `mapstructure:"color"`
	LineStyle       string         `mapstructure:"lineStyle"`
	LineWidth       float64        `mapstructure:"lineWidth"`
	Visible         bool           `mapstructure:"visible"`
	FitParams       map[string]any `mapstructure:"fitParams"`
	FitStats        map[string]any `mapstructure:"fitStats"`
}

// NewFitData returns a fit with default styling.
func NewFitData(datasetID, xColumn, yColumn, fitType string, x, y []float64) FitData {
	return FitData{
		SourceDatasetID: datasetID,
		SourceXColumn:   xColumn,
		SourceYColumn:   yColumn,
		FitType:         fitType,
		XData:           slices.Clone(x),
		YData:           slices.Clone(y),
		Label:           fmt.Sprintf("%s Fit for %s:%s", titleWord(fitType), datasetID, yColumn),
		Color:           "#ff7f0e",
		LineStyle:       "dashed",
		LineWidth:       2.0,
		Visible:         true,
		FitParams:       map[string]any{},
		FitStats:        map[string]any{},
	}
}

func (f FitData) dict() map[string]any {
	return map[string]any{
		"sourceDatasetId": f.SourceDatasetID,
		"sourceXColumn":   f.SourceXColumn,
		"sourceYColumn":   f.SourceYColumn,
		"fitType":         f.FitType,
		"xData":           floatsToAny(f.XData),
		"yData":           floatsToAny(f.YData),
		"label":           f.Label,
		"color":           f.Color,
		"lineStyle":       f.LineStyle,
		"lineWidth":       f.LineWidth,
		"visible":         f.Visible,
		"fitParams":       copyMap(f.FitParams),
		"fitStats":        copyMap(f.FitStats),
	}
}

// Chart is a visualization over one or more datasets.
type Chart struct {
	Base
	chartType string
	series    []DataSeries
	fits      []FitData
	config    map[string]any
	style     map[string]any
}

// NewChart creates a chart with the default configuration.
func NewChart(id, name, chartType string) *Chart {
	if chartType == "" {
		chartType = "line"
	}
	c := &Chart{
		Base:      newBase(id, name),
		chartType: chartType,
	}
	c.config, c.style = defaultChartSettings(name)
	return c
}

func defaultChartSettings(title string) (config, style map[string]any) {
	config = map[string]any{
		"title":          title,
		"xLabel":         "",
		"yLabel":         "",
		"showLegend":     true,
		"showGrid":       true,
		"legendPosition": "upper right",
		"gridStyle":      "solid",
		"gridAlpha":      0.3,
	}
	style = map[string]any{
		"figureSize":      []any{10.0, 6.0},
		"backgroundColor": "#ffffff",
		"fontSize":        12.0,
		"fontFamily":      "Arial",
		"dpi":             100.0,
	}
	return config, style
}

// Kind implements Item.
func (c *Chart) Kind() Kind { return KindChart }

// SetName renames the chart and keeps the configured title in sync.
func (c *Chart) SetName(name string) {
	c.config["title"] = name
	c.Base.SetName(name)
}

// ChartType returns the chart type (line, scatter, bar, ...).
func (c *Chart) ChartType() string { return c.chartType }

// SetChartType changes the chart type.
func (c *Chart) SetChartType(t string) {
	c.chartType = t
	c.Touch()
}

// Series returns a copy of the data series.
func (c *Chart) Series() []DataSeries {
	return slices.Clone(c.series)
}

// AddSeries appends a series.
func (c *Chart) AddSeries(s DataSeries) {
	c.series = append(c.series, s)
	c.Touch()
}

// RemoveSeries removes the series at index.
func (c *Chart) RemoveSeries(index int) bool {
	if index < 0 || index >= len(c.series) {
		return false
	}
	c.series = slices.Delete(c.series, index, index+1)
	c.Touch()
	return true
}

// DatasetIDs returns the distinct dataset ids referenced by the series, in
// first-use order.
func (c *Chart) DatasetIDs() []string {
	var ids []string
	for _, s := range c.series {
		if !slices.Contains(ids, s.DatasetID) {
			ids = append(ids, s.DatasetID)
		}
	}
	return ids
}

// Fits returns a copy of the fitted curves.
func (c *Chart) Fits() []FitData {
	return slices.Clone(c.fits)
}

// AddFit appends a fitted curve.
func (c *Chart) AddFit(f FitData) {
	c.fits = append(c.fits, f)
	c.Touch()
}

// RemoveFit removes the fit at index.
func (c *Chart) RemoveFit(index int) bool {
	if index < 0 || index >= len(c.fits) {
		return false
	}
	c.fits = slices.Delete(c.fits, index, index+1)
	c.Touch()
	return true
}

// ClearFits removes every fitted curve.
func (c *Chart) ClearFits() {
	c.fits = nil
	c.Touch()
}

// Config returns a copy of the chart configuration.
func (c *Chart) Config() map[string]any { return copyMap(c.config) }

// Style returns a copy of the chart style.
func (c *Chart) Style() map[string]any { return copyMap(c.style) }

// UpdateConfig merges updates into the configuration.
func (c *Chart) UpdateConfig(updates map[string]any) {
	maps.Copy(c.config, updates)
	c.Touch()
}

// UpdateStyle merges updates into the style.
func (c *Chart) UpdateStyle(updates map[string]any) {
	maps.Copy(c.style, updates)
	c.Touch()
}

// ToDict implements Item.
func (c *Chart) ToDict() Dict {
	d := c.dict(KindChart)
	series := make([]any, len(c.series))
	for i, s := range c.series {
		series[i] = s.dict()
	}
	fits := make([]any, len(c.fits))
	for i, f := range c.fits {
		fits[i] = f.dict()
	}
	d["chartType"] = c.chartType
	d["dataSeries"] = series
	d["fitData"] = fits
	d["config"] = copyMap(c.config)
	d["style"] = copyMap(c.style)
	return d
}

// ChartFromDict decodes a chart with its series and fits.
func ChartFromDict(d Dict) (*Chart, error) {
	c := &Chart{
		Base:      baseFromDict(d, ""),
		chartType: d.String("chartType", "line"),
	}
	c.config, c.style = defaultChartSettings(c.name)
	if cfg := d.Map("config"); len(cfg) > 0 {
		c.config = copyMap(cfg)
	}
	if st := d.Map("style"); len(st) > 0 {
		c.style = copyMap(st)
	}

	for i, raw := range d.List("dataSeries") {
		s := NewDataSeries("", "", "", "")
		if err := decodeInto(raw, &s); err != nil {
			return nil, fmt.Errorf("chart %s: data series %d: %w", c.id, i, err)
		}
		c.series = append(c.series, s)
	}
	for i, raw := range d.List("fitData") {
		f := NewFitData("", "", "", "", nil, nil)
		if err := decodeInto(raw, &f); err != nil {
			return nil, fmt.Errorf("chart %s: fit %d: %w", c.id, i, err)
		}
		c.fits = append(c.fits, f)
	}
	return c, nil
}

func decodeInto(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(toDict(raw)))
}

func floatsToAny(fs []float64) []any {
	out := make([]any, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

func titleWord(s string) string {
	return cases.Title(language.English).String(s)
}

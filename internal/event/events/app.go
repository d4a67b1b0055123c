package events

import "github.com/dshills/plotdoc/internal/event/topic"

// Application topics.
const (
	AppClosing topic.Topic = "app.closing"
)

// UI topics.
const (
	UITabChanged             topic.Topic = "ui.tab_changed"
	UITabCreated             topic.Topic = "ui.tab_created"
	UITabClosed              topic.Topic = "ui.tab_closed"
	UITabTitleChanged        topic.Topic = "ui.tab_title_changed"
	UIPanelVisibilityChanged topic.Topic = "ui.panel_visibility_changed"
	UISidebarPanelSelected   topic.Topic = "ui.sidebar_panel_selected"
)

// Analysis topics. A completed analysis adds a derived column.
const (
	AnalysisStarted       topic.Topic = "analysis.started"
	AnalysisCompleted     topic.Topic = "analysis.completed"
	AnalysisFailed        topic.Topic = "analysis.failed"
	AnalysisColumnAdded   topic.Topic = "analysis.column_added"
	AnalysisConfigChanged topic.Topic = "analysis.config_changed"
)

// Curve fitting topics.
const (
	FitStarted   topic.Topic = "fit.started"
	FitCompleted topic.Topic = "fit.completed"
	FitApplied   topic.Topic = "fit.applied"
	FitFailed    topic.Topic = "fit.failed"
)

// Chart presentation topics.
const (
	ChartUpdated          topic.Topic = "chart.updated"
	ChartStyleChanged     topic.Topic = "chart.style_changed"
	ChartDataUpdated      topic.Topic = "chart.data_updated"
	ChartSelected         topic.Topic = "chart.selected"
	ChartPreviewRequested topic.Topic = "chart.preview_requested"
)

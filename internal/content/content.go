// Package content holds the static copy of the landing page.
package content

// DemoURL is where both call-to-action buttons lead.
const DemoURL = "https://ai-driven-renewable-energy-forecasting-for-smart-grid-manage.streamlit.app/"

// Metric is one entry of the metrics strip and the feature grid.
type Metric struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Accuracy    string `json:"accuracy"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// CallToAction is a button that opens its URL in a new browsing context.
type CallToAction struct {
	Label   string `json:"label"`
	URL     string `json:"url"`
	Primary bool   `json:"primary"`
}

// Content is everything on the page that never changes at runtime.
type Content struct {
	Brand    string         `json:"brand"`
	Headline string         `json:"headline"`
	Blurb    string         `json:"blurb"`
	Metrics  []Metric       `json:"metrics"`
	Actions  []CallToAction `json:"actions"`
	Footer   string         `json:"footer"`
	Org      string         `json:"org"`
}

// Default returns the landing page copy with both buttons pointing at demoURL.
// An empty demoURL means DemoURL.
func Default(demoURL string) Content {
	if demoURL == "" {
		demoURL = DemoURL
	}
	return Content{
		Brand:    "EcoVolt",
		Headline: "Predict Tomorrow's Energy Today",
		Blurb: "EcoVolt delivers comprehensive energy forecasting powered by advanced AI. " +
			"Transform your grid operations with real-time predictions for wind, solar, and demand patterns.",
		Metrics: []Metric{
			{
				Key:         "wind",
				Label:       "Wind Prediction",
				Accuracy:    "82%",
				Color:       "#60a5fa",
				Icon:        "🌬",
				Description: "Advanced wind power forecasting based on weather predictions",
			},
			{
				Key:         "solar",
				Label:       "Solar Prediction",
				Accuracy:    "97%",
				Color:       "#facc15",
				Icon:        "☀",
				Description: "Precise solar generation predictions with weather analysis",
			},
			{
				Key:         "demand",
				Label:       "Demand Prediction",
				Accuracy:    "94%",
				Color:       "#c084fc",
				Icon:        "⚡",
				Description: "Accurate demand forecasting for better planning",
			},
			{
				Key:         "grid",
				Label:       "Grid Optimization",
				Accuracy:    "Grid",
				Color:       "#34d399",
				Icon:        "▦",
				Description: "AI-powered grid balancing and optimization",
			},
		},
		Actions: []CallToAction{
			{Label: "Start Forecasting", URL: demoURL, Primary: true},
			{Label: "View Demo", URL: demoURL},
		},
		Footer: "Made by Krishnaveni N,Dhivyasreenidhi D,Kruthika S",
		Org:    "KCE",
	}
}

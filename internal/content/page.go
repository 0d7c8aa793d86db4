package content

import (
	"bytes"
	"html/template"
	"io"

	"ecovolt/internal/chart"
	"ecovolt/internal/model"
)

// PageData feeds the landing page template.
type PageData struct {
	Content
	Toggles   []chart.View
	Active    chart.View
	Samples   model.Series
	WSPath    string
	ChartPath string
}

// NewPageData builds the page for a freshly mounted view. series is drawn
// before the live socket delivers its first update.
func NewPageData(c Content, series model.Series, wsPath, chartPath string) PageData {
	toggles := make([]chart.View, 0, len(chart.Selections))
	for _, sel := range chart.Selections {
		toggles = append(toggles, chart.ViewFor(sel))
	}
	return PageData{
		Content:   c,
		Toggles:   toggles,
		Active:    chart.ViewFor(chart.Default),
		Samples:   series,
		WSPath:    wsPath,
		ChartPath: chartPath,
	}
}

// RenderPage writes the landing page.
func RenderPage(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Brand}} · {{.Headline}}</title>
    <style>
      :root {
        --bg: #0f172a;
        --panel: rgba(30, 41, 59, 0.5);
        --text: #ffffff;
        --muted: #94a3b8;
        --copy: #cbd5e1;
        --accent: #3b82f6;
        --accent-hover: #2563eb;
        --button: #334155;
        --sans: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial;
      }
      * { box-sizing: border-box; }
      body { margin: 0; min-height: 100vh; display: flex; flex-direction: column; font-family: var(--sans); color: var(--text); background: var(--bg); }
      .container { max-width: 1200px; margin: 0 auto; padding: 48px 16px; flex-grow: 1; width: 100%; }
      .strip { display: flex; justify-content: center; margin-bottom: 32px; }
      .strip-inner { background: var(--panel); border-radius: 999px; padding: 8px 24px; display: flex; flex-wrap: wrap; gap: 32px; justify-content: center; }
      .strip-item { display: flex; align-items: center; gap: 8px; font-size: 14px; }
      .hero { display: grid; grid-template-columns: repeat(auto-fit, minmax(420px, 1fr)); gap: 48px; align-items: center; }
      h1 { font-size: 60px; margin: 0 0 24px; background: linear-gradient(to right, #60a5fa, #34d399, #facc15); -webkit-background-clip: text; background-clip: text; color: transparent; }
      .blurb { font-size: 20px; color: var(--copy); }
      .actions { display: flex; gap: 16px; margin-top: 24px; }
      .cta { padding: 12px 24px; border-radius: 8px; color: var(--text); text-decoration: none; background: #1e293b; }
      .cta:hover { background: var(--button); }
      .cta.primary { background: var(--accent); }
      .cta.primary:hover { background: var(--accent-hover); }
      .panel { background: var(--panel); border-radius: 16px; padding: 24px; }
      .panel-head { display: flex; justify-content: space-between; align-items: center; margin-bottom: 16px; }
      .panel-title { font-size: 14px; color: var(--muted); }
      .toggle { display: flex; gap: 8px; }
      .toggle button { padding: 4px 12px; border-radius: 8px; border: 0; font-size: 14px; color: var(--text); background: var(--button); cursor: pointer; }
      .toggle button.active { background: var(--accent); }
      .chart { height: 320px; }
      .chart svg, .chart img { width: 100%; height: 100%; }
      .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 32px; margin-top: 96px; }
      .card { background: var(--panel); border-radius: 12px; padding: 24px; }
      .card .icon { font-size: 32px; margin-bottom: 16px; }
      .card h3 { font-size: 20px; margin: 0 0 8px; }
      .card p { color: var(--muted); margin: 0; }
      footer { text-align: center; padding: 24px; color: var(--muted); }
      .heart { color: #ef4444; }
    </style>
  </head>
  <body>
    <div class="container">
      <div class="strip">
        <div class="strip-inner">
          {{range .Metrics}}<span class="strip-item"><span style="color: {{.Color}}">{{.Icon}}</span>{{.Accuracy}}</span>
          {{end}}
        </div>
      </div>

      <div class="hero">
        <div>
          <h1>{{.Headline}}</h1>
          <p class="blurb">{{.Blurb}}</p>
          <div class="actions">
            {{range .Actions}}<a class="cta{{if .Primary}} primary{{end}}" href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.Label}}{{if .Primary}} →{{end}}</a>
            {{end}}
          </div>
        </div>

        <div class="panel">
          <div class="panel-head">
            <div class="panel-title">Live Prediction Demo</div>
            <div class="toggle">
              {{$active := .Active.Selection}}{{range .Toggles}}<button type="button" data-selection="{{.Selection}}"{{if eq .Selection $active}} class="active"{{end}}>{{.Label}}</button>
              {{end}}
            </div>
          </div>
          <div class="chart">
            <svg id="live-chart" viewBox="0 0 640 320" preserveAspectRatio="none">
              <g id="grid"></g>
              <polyline id="line-value" fill="none" stroke-width="3"></polyline>
              <polyline id="line-forecast" fill="none" stroke-width="2" stroke-dasharray="5 5"></polyline>
            </svg>
            <noscript><img src="{{.ChartPath}}?selection={{.Active.Selection}}" alt="{{.Active.Label}} forecast chart" /></noscript>
          </div>
        </div>
      </div>

      <div class="grid">
        {{range .Metrics}}<div class="card">
          <div class="icon" style="color: {{.Color}}">{{.Icon}}</div>
          <h3>{{.Label}}</h3>
          <p>{{.Description}}</p>
        </div>
        {{end}}
      </div>
    </div>

    <footer>
      <p>{{.Footer}}<span class="heart">❤</span> at {{.Org}}</p>
    </footer>

    <script>
      (function () {
        const W = 640, H = 320;
        let view = {{.Active}};
        let samples = {{.Samples}} || [];

        const valueLine = document.getElementById("line-value");
        const forecastLine = document.getElementById("line-forecast");
        const grid = document.getElementById("grid");
        const buttons = document.querySelectorAll(".toggle button");

        function points(field) {
          const [min, max] = view.domain;
          const n = samples.length;
          return samples.map(function (s, i) {
            const x = n > 1 ? (i / (n - 1)) * W : 0;
            const y = H - ((s[field] - min) / (max - min)) * H;
            return x.toFixed(1) + "," + y.toFixed(1);
          }).join(" ");
        }

        function drawGrid() {
          let out = "";
          for (let i = 1; i < 5; i++) {
            const y = (H / 5) * i;
            out += '<line x1="0" x2="' + W + '" y1="' + y + '" y2="' + y + '" stroke="#374151" stroke-dasharray="3 3" />';
          }
          grid.innerHTML = out;
        }

        function draw() {
          valueLine.setAttribute("stroke", view.color);
          forecastLine.setAttribute("stroke", view.color);
          valueLine.setAttribute("points", points(view.value_field));
          forecastLine.setAttribute("points", points(view.forecast_field));
          buttons.forEach(function (b) {
            b.classList.toggle("active", b.dataset.selection === view.selection);
          });
        }

        drawGrid();
        draw();

        const proto = location.protocol === "https:" ? "wss://" : "ws://";
        const initial = view.selection;
        let ws = null;
        let retry = 500;
        let leaving = false;

        function connect() {
          ws = new WebSocket(proto + location.host + {{.WSPath}});

          ws.onopen = function () {
            retry = 500;
            // A fresh view starts on the default selection; restore ours.
            if (view.selection !== initial) {
              ws.send(JSON.stringify({ type: "chart:select", payload: { selection: view.selection } }));
            }
          };

          ws.onmessage = function (ev) {
            const msg = JSON.parse(ev.data);
            switch (msg.type) {
              case "series:update":
                samples = msg.payload.samples;
                draw();
                break;
              case "chart:view":
                view = msg.payload;
                draw();
                break;
            }
          };

          ws.onclose = function () {
            if (leaving) {
              return;
            }
            setTimeout(connect, retry);
            retry = Math.min(retry * 2, 10000);
          };
        }

        connect();

        buttons.forEach(function (b) {
          b.addEventListener("click", function () {
            if (ws.readyState === WebSocket.OPEN) {
              ws.send(JSON.stringify({ type: "chart:select", payload: { selection: b.dataset.selection } }));
            }
          });
        });

        window.addEventListener("beforeunload", function () {
          leaving = true;
          ws.close();
        });
      })();
    </script>
  </body>
</html>
`))

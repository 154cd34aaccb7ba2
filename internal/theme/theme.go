// Package theme holds the palette shared by the terminal and HTML surfaces.
package theme

import "fmt"

// TMDB palette
const (
	Primary = "#01B4E4" // TMDB light blue
	Dark    = "#0D253F" // TMDB dark blue
	Cream   = "#F5F5F1"
	Accent  = "#564D4D"
	Dim     = "#8A8A8A"
	Empty   = "#B00020"
	Error   = "#FF0000"
)

// CSS is the stylesheet of the HTML page.
func CSS() string {
	return fmt.Sprintf(`
body{font-family:system-ui,sans-serif;background:%[2]s;color:%[3]s;margin:0;padding:16px}
h1{color:%[1]s}
.tabs button{background:none;border:0;color:%[4]s;padding:8px 14px;cursor:pointer}
.tabs button[aria-selected="true"]{color:%[3]s;background:%[1]s;font-weight:bold}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(180px,1fr));gap:12px}
.trend-card .poster{width:100%%}
.subtext{color:%[4]s;font-size:.9em}
.cardDetails{color:%[2]s;background:%[1]s;padding:0 6px}
.empty{color:%[5]s}
`, Primary, Dark, Cream, Dim, Empty)
}

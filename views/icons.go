package views

import "github.com/eringen/sitegen"

const svgOpen = `<svg class="icon" xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var iconPaths = map[sitegen.Icon]string{
	sitegen.IconBookOpen:   `<path d="M2 3h6a4 4 0 0 1 4 4v14a3 3 0 0 0-3-3H2z"/><path d="M22 3h-6a4 4 0 0 0-4 4v14a3 3 0 0 1 3-3h7z"/>`,
	sitegen.IconUsers:      `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	sitegen.IconTrendingUp: `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	sitegen.IconTarget:     `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
}

// IconSVG returns the inline SVG for icon. Unknown values draw a book.
func IconSVG(icon sitegen.Icon) string {
	body, ok := iconPaths[icon]
	if !ok {
		body = iconPaths[sitegen.IconBookOpen]
	}
	return svgOpen + body + `</svg>`
}

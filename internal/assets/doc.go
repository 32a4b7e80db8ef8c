// Package assets holds the HTML page and stylesheet the browser renderer
// loads an SVG into.
//
// # Layout
//
//	styles/page.css         # inlined into the page
//	templates/page.html     # html/template source
//
// The page template lays out a single <img id="svg"> filling a body of the
// canvas size with object-fit: contain on a transparent background, so the
// screenshot carries only the drawing and the padding stays transparent
// until the converter composes it onto the background colour.
//
// # Security
//
// The SVG is only ever passed as a base64 data URL.
package assets

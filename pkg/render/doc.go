// Package render provides visualization rendering for dependency graphs.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). [ErrConverterMissing] is
// returned when the tool is not installed.
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the resolved dependency graph as a
// Graphviz diagram, one rank per install stage.
//
// [nodelink]: github.com/matzehuels/aurorder/pkg/render/nodelink
package render

package application

import "ecdhprobe/domain/rendering"

// RenderSurface is the drawing collaborator. Both calls are fire-and-forget:
// the probe ignores draw failures and repaints from scratch on the next
// redraw instead of patching incrementally.
type RenderSurface interface {
	FillRegion(box rendering.Box)
	PostText(box rendering.Box, text string, style rendering.Style)
}

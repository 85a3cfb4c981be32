package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform and clip state.
	Save()

	// SaveLayer pushes the current state and starts a new offscreen layer.
	// Drawing until the matching Restore() lands in the layer, which is then
	// composited onto the parent with the paint's alpha (nil paint = opaque).
	// Blend modes such as BlendModeDstOut only affect the layer, which is how
	// holes can be erased from one layer without touching what lies beneath.
	SaveLayer(bounds Rect, paint *Paint)

	// Restore pops the most recent transform and clip state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRect restricts future drawing to the given rectangle.
	ClipRect(rect Rect)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect RRect, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// Size returns the size of the canvas in pixels.
	Size() Size
}

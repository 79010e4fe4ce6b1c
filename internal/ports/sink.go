package ports

// Window is an opaque handle returned by a RenderSink. The core never
// inspects it; it only passes it back to the sink that produced it.
type Window any

// PreviewLayout carries layout hints for a preview window.
type PreviewLayout struct {
	// Row and Col offset the window from its anchor point.
	Row int
	Col int

	// Height limits the window height. Zero means fit the content.
	Height int

	// Width limits the window width. Zero means the width of the longest
	// line.
	Width int

	// Highlight names an optional highlight group for the window body.
	Highlight string
}

// RenderSink accepts pre-rendered text lines plus layout hints and displays
// them. It is the boundary to the host surface: the core hands it finished
// content and never reaches past the returned handle.
type RenderSink interface {
	// Open displays lines in a new window and returns its handle.
	Open(lines []string, layout PreviewLayout) (Window, error)

	// Close dismisses a window previously returned by Open.
	Close(w Window) error
}

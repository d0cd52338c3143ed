package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"meshview/pkg/mesh"
	"meshview/pkg/viewer"
)

// meshWidget displays the mesh and feeds pointer input into the drag
// controller. Rendering goes through the software ImageSink; the
// resulting image is presented as a fyne canvas object.
type meshWidget struct {
	widget.BaseWidget

	mesh       *mesh.Mesh
	controller *viewer.DragController
	projection viewer.Projection
	mode       viewer.Mode
	fitMargin  float64
	zoom       float64

	sink  *viewer.ImageSink
	image *canvas.Image
}

func newMeshWidget(m *mesh.Mesh, mode viewer.Mode, sensitivity, fitMargin float64) *meshWidget {
	w := &meshWidget{
		mesh:       m,
		controller: viewer.NewDragController(sensitivity),
		mode:       mode,
		fitMargin:  fitMargin,
		zoom:       1,
		sink:       viewer.NewImageSink(1, 1),
	}
	w.image = canvas.NewImageFromImage(w.sink.Image())
	w.image.FillMode = canvas.ImageFillStretch
	w.image.ScaleMode = canvas.ImageScaleFastest
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer creates the renderer for the widget
func (w *meshWidget) CreateRenderer() fyne.WidgetRenderer {
	return &meshWidgetRenderer{widget: w}
}

// setMesh swaps in a reloaded mesh and redraws
func (w *meshWidget) setMesh(m *mesh.Mesh) {
	w.mesh = m
	w.refit()
	w.redraw()
}

// toggleMode switches between wireframe and filled rendering
func (w *meshWidget) toggleMode() {
	w.mode = w.mode.Toggle()
	w.redraw()
}

// resetView returns to zero rotation and default zoom
func (w *meshWidget) resetView() {
	w.controller.Reset()
	w.zoom = 1
	w.refit()
	w.redraw()
}

// resize adapts the backing image and projection to a new widget size
func (w *meshWidget) resize(size fyne.Size) {
	width, height := int(size.Width), int(size.Height)
	if width < 1 || height < 1 {
		return
	}
	if cw, ch := w.sink.Size(); cw != width || ch != height {
		w.sink = viewer.NewImageSink(width, height)
		w.image.Image = w.sink.Image()
	}
	w.refit()
	w.redraw()
}

// refit recomputes the projection for the current mesh, size and zoom
func (w *meshWidget) refit() {
	width, height := w.sink.Size()
	w.projection = viewer.FitProjection(
		w.mesh.MaxRadius(),
		float64(width), float64(height),
		w.fitMargin*w.zoom,
	)
}

// redraw runs the pipeline for the current state and refreshes the canvas
func (w *meshWidget) redraw() {
	frame := viewer.BuildFrame(w.mesh, w.controller.Rotation(), w.projection, w.mode)
	_ = w.sink.RenderFrame(frame)
	w.image.Refresh()
}

// MouseDown starts a drag session
func (w *meshWidget) MouseDown(*desktop.MouseEvent) {
	w.controller.Press()
}

// MouseUp ends a drag session
func (w *meshWidget) MouseUp(*desktop.MouseEvent) {
	w.controller.Release()
}

// Dragged handles mouse drag events for rotation
func (w *meshWidget) Dragged(event *fyne.DragEvent) {
	// Drag events can arrive without a preceding MouseDown on some
	// drivers; make sure the controller is in the dragging state
	if !w.controller.Dragging() {
		w.controller.Press()
	}
	w.controller.Move(float64(event.Dragged.DX), float64(event.Dragged.DY))
	w.redraw()
}

// DragEnd handles the end of a drag event
func (w *meshWidget) DragEnd() {
	w.controller.Release()
}

// Scrolled handles scroll events for zooming
func (w *meshWidget) Scrolled(event *fyne.ScrollEvent) {
	factor := 1.0 + float64(event.Scrolled.DY)*0.001
	if factor < 0.1 {
		factor = 0.1
	}
	w.zoom *= factor
	w.refit()
	w.redraw()
}

// meshWidgetRenderer implements fyne.WidgetRenderer
type meshWidgetRenderer struct {
	widget *meshWidget
}

func (r *meshWidgetRenderer) Layout(size fyne.Size) {
	r.widget.image.Resize(size)
	r.widget.resize(size)
}

func (r *meshWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *meshWidgetRenderer) Refresh() {
	canvas.Refresh(r.widget.image)
}

func (r *meshWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.image}
}

func (r *meshWidgetRenderer) Destroy() {}

package tess

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"
)

// RenderOptions configures [Mesh.Render]. Nil fields select the defaults.
type RenderOptions struct {
	Background color.Color
	Fill       color.Color
	Edge       color.Color
	// EdgeWidth is the stroke width of edges in pixels. Zero selects 1.
	EdgeWidth float64
	// Padding is the margin around the mesh in pixels.
	Padding int
}

var defaultRenderOptions = RenderOptions{
	Background: color.White,
	Fill:       color.RGBA{0xcc, 0xdd, 0xee, 0xff},
	Edge:       color.RGBA{0x22, 0x33, 0x44, 0xff},
	EdgeWidth:  1,
	Padding:    8,
}

func (o *RenderOptions) withDefaults() RenderOptions {
	out := defaultRenderOptions
	if o == nil {
		return out
	}
	if o.Background != nil {
		out.Background = o.Background
	}
	if o.Fill != nil {
		out.Fill = o.Fill
	}
	if o.Edge != nil {
		out.Edge = o.Edge
	}
	if o.EdgeWidth > 0 {
		out.EdgeWidth = o.EdgeWidth
	}
	if o.Padding > 0 {
		out.Padding = o.Padding
	}
	return out
}

// Render draws the faces and edges of m into a new width×height image. The
// mesh is scaled uniformly to fit the image minus padding, with y pointing up.
func (m *Mesh) Render(width, height int, opts *RenderOptions) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tess: invalid image size %d×%d", width, height)
	}
	o := opts.withDefaults()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(o.Background), image.Point{}, draw.Src)

	var pts []Point
	for _, v := range m.Vertices() {
		pts = append(pts, m.vertices[v].coords)
	}
	bounds, ok := BoundingRect(pts)
	if !ok {
		return img, nil
	}

	pad := float64(o.Padding)
	avail := Vec(float64(width)-2*pad, float64(height)-2*pad)
	scale := 1.0
	if w, h := bounds.Width(), bounds.Height(); w > 0 || h > 0 {
		scale = min(avail.X/max(w, 1e-300), avail.Y/max(h, 1e-300))
	}
	center := bounds.Center()
	toPixel := func(p Point) (float32, float32) {
		x := float64(width)/2 + (p.X-center.X)*scale
		y := float64(height)/2 - (p.Y-center.Y)*scale
		return float32(x), float32(y)
	}

	fill := vector.NewRasterizer(width, height)
	for _, f := range m.order {
		corners, err := m.FaceCoords(f)
		if err != nil {
			return nil, err
		}
		for i, p := range corners {
			x, y := toPixel(p)
			if i == 0 {
				fill.MoveTo(x, y)
			} else {
				fill.LineTo(x, y)
			}
		}
		fill.ClosePath()
	}
	fill.Draw(img, img.Bounds(), image.NewUniform(o.Fill), image.Point{})

	// Edges are drawn as thin quads. All quads are wound the same way so
	// that overlapping ones don't cancel out.
	stroke := vector.NewRasterizer(width, height)
	half := o.EdgeWidth / 2
	for _, f := range m.order {
		e := m.faces[f].edge
		for range m.faces[f].arity {
			he := m.edges[e]
			if he.opposite == NoEdge || e < he.opposite {
				p0x, p0y := toPixel(m.vertices[he.origin].coords)
				p1x, p1y := toPixel(m.vertices[m.edges[he.next].origin].coords)
				strokeSegment(stroke, Pt(float64(p0x), float64(p0y)), Pt(float64(p1x), float64(p1y)), half)
			}
			e = he.next
		}
	}
	stroke.Draw(img, img.Bounds(), image.NewUniform(o.Edge), image.Point{})
	return img, nil
}

func strokeSegment(z *vector.Rasterizer, p0, p1 Point, half float64) {
	d := p1.Sub(p0)
	if d.Hypot2() == 0 {
		return
	}
	n := d.Normalize().Perp().Mul(half)
	quad := [4]Point{p0.Translate(n), p1.Translate(n), p1.Translate(n.Mul(-1)), p0.Translate(n.Mul(-1))}
	if PolygonArea(quad[:]) < 0 {
		quad[1], quad[3] = quad[3], quad[1]
	}
	z.MoveTo(float32(quad[0].X), float32(quad[0].Y))
	for _, q := range quad[1:] {
		z.LineTo(float32(q.X), float32(q.Y))
	}
	z.ClosePath()
}

// EncodePNG writes img to w in PNG format.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

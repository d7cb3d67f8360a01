package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"go-landing/internal/field"
	"go-landing/internal/utils"
)

// maxQuadsPerBatch keeps vertex indices within uint16.
const maxQuadsPerBatch = 16000

// FieldRenderer draws the point cloud as small quads in a few batched
// DrawTriangles calls. Vertex buffers are reused between frames.
type FieldRenderer struct {
	proj      Projector
	pointSize float64
	fillImg   *ebiten.Image
	vs        []ebiten.Vertex
	is        []uint16
}

// NewFieldRenderer creates a renderer for the given projection.
func NewFieldRenderer(proj Projector, pointSize float64) *FieldRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &FieldRenderer{
		proj:      proj,
		pointSize: pointSize,
		fillImg:   fillImg,
		vs:        make([]ebiten.Vertex, 0, 4*maxQuadsPerBatch),
		is:        make([]uint16, 0, 6*maxQuadsPerBatch),
	}
}

// Draw renders the cloud rotated by the animator's current orientation.
func (r *FieldRenderer) Draw(screen *ebiten.Image, a *field.Animator, tint color.RGBA) {
	cloud := a.Cloud()
	o := a.Orientation()

	r.vs = r.vs[:0]
	r.is = r.is[:0]
	for i := 0; i < cloud.Len(); i++ {
		x, y, f, ok := r.proj.Project(field.Rotate(cloud.At(i), o))
		if !ok {
			continue
		}
		alpha := utils.Clamp((f-0.7)/0.7, 0.12, 1)
		r.appendQuad(x, y, r.pointSize*f/2, tint, alpha)

		if len(r.vs) == 4*maxQuadsPerBatch {
			r.flush(screen)
		}
	}
	r.flush(screen)
}

func (r *FieldRenderer) appendQuad(x, y, half float64, c color.RGBA, alpha float64) {
	cr, cg, cb, ca := premultiplied(c, alpha)
	base := uint16(len(r.vs))
	x0, y0 := float32(x-half), float32(y-half)
	x1, y1 := float32(x+half), float32(y+half)
	r.vs = append(r.vs,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: 1, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	)
	r.is = append(r.is, base, base+1, base+2, base+1, base+3, base+2)
}

func (r *FieldRenderer) flush(screen *ebiten.Image) {
	if len(r.vs) == 0 {
		return
	}
	screen.DrawTriangles(r.vs, r.is, r.fillImg, nil)
	r.vs = r.vs[:0]
	r.is = r.is[:0]
}

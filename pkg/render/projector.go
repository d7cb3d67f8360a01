package render

import "go-landing/internal/field"

// Projector maps field space onto the screen with a pinhole camera looking
// down -Z from Distance units away.
type Projector struct {
	CX, CY   float64 // screen center, px
	Scale    float64 // px per field unit at the sphere center
	Distance float64 // camera distance to the sphere center
}

// nearPlane clips points that would land behind or too close to the camera.
const nearPlane = 0.1

// Project returns screen coordinates and the perspective factor (1 at the
// sphere center, larger when closer). ok is false for clipped points.
func (p Projector) Project(v field.Vec3) (x, y, f float64, ok bool) {
	z := p.Distance - v.Z
	if z < nearPlane {
		return 0, 0, 0, false
	}
	f = p.Distance / z
	return p.CX + v.X*p.Scale*f, p.CY - v.Y*p.Scale*f, f, true
}

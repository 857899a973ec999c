package geometry

import (
	"github.com/chewxy/math32"
)

// OrbitVertexStride is the number of float32 components per orbit-circle
// vertex: position(3) only.
const OrbitVertexStride = 3

// GenerateOrbitCircle builds a unit circle polyline in the X-Z plane (Y = 0)
// with segmentCount+1 points. The first point is duplicated at the end so the
// result can be drawn directly as a closed line strip.
//
// Parameters:
//   - segmentCount: number of circle segments (must be >= 3)
//
// Returns:
//   - []float32: position data, OrbitVertexStride floats per vertex
func GenerateOrbitCircle(segmentCount int) []float32 {
	step := 2 * math32.Pi / float32(segmentCount)

	vertices := make([]float32, 0, (segmentCount+1)*OrbitVertexStride)
	for i := 0; i <= segmentCount; i++ {
		angle := float32(i%segmentCount) * step
		vertices = append(vertices, math32.Cos(angle), 0, math32.Sin(angle))
	}
	return vertices
}

// Package geometry provides procedural mesh generators for the visualizer.
// All generators are pure functions: the same inputs always produce identical
// output and no shared state is touched, so they are safe to call from any
// goroutine at any time.
package geometry

import (
	"github.com/chewxy/math32"
)

// VertexStride is the number of float32 components per vertex:
// position(3) + normal(3) + uv(2), interleaved.
const VertexStride = 8

// GenerateSphere builds a UV-sphere mesh centered at the origin by sweeping
// the stack (latitude) angle from +90° to -90° and the sector (longitude)
// angle from 0° to 360°. Vertices are interleaved position/normal/uv; the
// normal of a point equals its unit-radius position.
//
// The index buffer triangulates each stack-by-sector quad into two triangles,
// skipping the degenerate triangle at each pole: the first stack has no
// triangle connecting to a previous row and the last stack has no triangle
// connecting to a next row.
//
// Parameters:
//   - sectorCount: number of longitude subdivisions (must be >= 3)
//   - stackCount: number of latitude subdivisions (must be >= 2)
//   - radius: sphere radius (must be > 0)
//
// Returns:
//   - []float32: interleaved vertex data, VertexStride floats per vertex
//   - []uint32: triangle list indices
func GenerateSphere(sectorCount, stackCount int, radius float32) ([]float32, []uint32) {
	lengthInv := 1.0 / radius
	sectorStep := 2 * math32.Pi / float32(sectorCount)
	stackStep := math32.Pi / float32(stackCount)

	vertices := make([]float32, 0, (stackCount+1)*(sectorCount+1)*VertexStride)
	for i := 0; i <= stackCount; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		xy := radius * math32.Cos(stackAngle)
		z := radius * math32.Sin(stackAngle)

		for j := 0; j <= sectorCount; j++ {
			sectorAngle := float32(j) * sectorStep
			x := xy * math32.Cos(sectorAngle)
			y := xy * math32.Sin(sectorAngle)

			vertices = append(vertices,
				x, y, z,
				x*lengthInv, y*lengthInv, z*lengthInv,
				float32(j)/float32(sectorCount), float32(i)/float32(stackCount),
			)
		}
	}

	indices := make([]uint32, 0, stackCount*sectorCount*6)
	for i := 0; i < stackCount; i++ {
		k1 := uint32(i * (sectorCount + 1))
		k2 := k1 + uint32(sectorCount) + 1
		for j := 0; j < sectorCount; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				indices = append(indices, k1, k2, k1+1)
			}
			if i != stackCount-1 {
				indices = append(indices, k1+1, k2, k2+1)
			}
		}
	}

	return vertices, indices
}

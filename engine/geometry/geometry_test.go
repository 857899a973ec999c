package geometry

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSphereCounts(t *testing.T) {
	sectors, stacks := 36, 18
	vertices, indices := GenerateSphere(sectors, stacks, 1)

	wantVertices := (stacks + 1) * (sectors + 1) * VertexStride
	assert.Len(t, vertices, wantVertices)

	// Each stack/sector quad contributes two triangles except at the poles,
	// where one of the two degenerates and is skipped.
	wantIndices := sectors * 6 * (stacks - 1)
	assert.Len(t, indices, wantIndices)
}

func TestGenerateSphereIndicesInRange(t *testing.T) {
	vertices, indices := GenerateSphere(12, 6, 1)
	vertexCount := uint32(len(vertices) / VertexStride)

	for _, idx := range indices {
		require.Less(t, idx, vertexCount)
	}
}

func TestGenerateSpherePositionsOnRadius(t *testing.T) {
	const radius = 2.5
	vertices, _ := GenerateSphere(16, 8, radius)

	for i := 0; i < len(vertices); i += VertexStride {
		x, y, z := vertices[i], vertices[i+1], vertices[i+2]
		dist := math32.Sqrt(x*x + y*y + z*z)
		assert.InDelta(t, radius, dist, 1e-4)
	}
}

func TestGenerateSphereNormals(t *testing.T) {
	const radius = 3.0
	vertices, _ := GenerateSphere(16, 8, radius)

	for i := 0; i < len(vertices); i += VertexStride {
		nx, ny, nz := vertices[i+3], vertices[i+4], vertices[i+5]
		length := math32.Sqrt(nx*nx + ny*ny + nz*nz)
		assert.InDelta(t, 1, length, 1e-4)

		// The normal is the unit-scaled position.
		assert.InDelta(t, vertices[i]/radius, nx, 1e-5)
		assert.InDelta(t, vertices[i+1]/radius, ny, 1e-5)
		assert.InDelta(t, vertices[i+2]/radius, nz, 1e-5)
	}
}

func TestGenerateSphereUVRange(t *testing.T) {
	vertices, _ := GenerateSphere(8, 4, 1)

	for i := 0; i < len(vertices); i += VertexStride {
		u, v := vertices[i+6], vertices[i+7]
		assert.GreaterOrEqual(t, u, float32(0))
		assert.LessOrEqual(t, u, float32(1))
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestGenerateSphereDeterministic(t *testing.T) {
	v1, i1 := GenerateSphere(36, 18, 1)
	v2, i2 := GenerateSphere(36, 18, 1)
	assert.Equal(t, v1, v2)
	assert.Equal(t, i1, i2)
}

func TestGenerateOrbitCircleCount(t *testing.T) {
	segments := 100
	vertices := GenerateOrbitCircle(segments)
	assert.Len(t, vertices, (segments+1)*OrbitVertexStride)
}

func TestGenerateOrbitCircleClosure(t *testing.T) {
	vertices := GenerateOrbitCircle(64)
	n := len(vertices)

	// The final point repeats the first bit-for-bit so the strip closes
	// without a seam.
	assert.Equal(t, vertices[0], vertices[n-3])
	assert.Equal(t, vertices[1], vertices[n-2])
	assert.Equal(t, vertices[2], vertices[n-1])
}

func TestGenerateOrbitCircleShape(t *testing.T) {
	vertices := GenerateOrbitCircle(32)

	// Starts at (1, 0, 0) and stays on the unit circle in the X-Z plane.
	assert.InDelta(t, 1, vertices[0], 1e-6)
	assert.InDelta(t, 0, vertices[1], 1e-6)
	assert.InDelta(t, 0, vertices[2], 1e-6)

	for i := 0; i < len(vertices); i += OrbitVertexStride {
		x, y, z := vertices[i], vertices[i+1], vertices[i+2]
		assert.Equal(t, float32(0), y)
		assert.InDelta(t, 1, math32.Sqrt(x*x+z*z), 1e-4)
	}
}

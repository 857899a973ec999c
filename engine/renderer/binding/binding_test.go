package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResourceSet(t *testing.T) {
	set := NewResourceSet("earth-mesh")

	assert.Equal(t, "earth-mesh", set.Label())
	assert.Nil(t, set.BindGroup())
	assert.Nil(t, set.VertexBuffer())
	assert.Nil(t, set.IndexBuffer())
	assert.Zero(t, set.IndexCount())
	assert.Zero(t, set.VertexCount())
}

func TestResourceSetCounts(t *testing.T) {
	set := NewResourceSet("orbit")

	set.SetIndexCount(3672)
	set.SetVertexCount(101)
	assert.Equal(t, 3672, set.IndexCount())
	assert.Equal(t, 101, set.VertexCount())
}

func TestResourceSetBufferLookupMiss(t *testing.T) {
	set := NewResourceSet("empty")

	assert.Nil(t, set.Buffer(0))
	assert.Nil(t, set.TextureView(1))
	assert.Nil(t, set.Sampler(2))
}

func TestResourceSetReleaseIdempotent(t *testing.T) {
	set := NewResourceSet("released")
	set.Release()
	set.Release()

	assert.Nil(t, set.BindGroup())
}

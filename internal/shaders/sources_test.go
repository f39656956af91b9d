package shaders

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSources(t *testing.T) {
	paths := []string{
		WorldVertexPath,
		WorldFragmentPath,
		ParticleVertexPath,
		ParticleFragmentPath,
		ConeVertexPath,
		ColorFragmentPath,
		DistanceFragmentPath,
		DistanceColorFragmentPath,
	}
	for _, p := range paths {
		src, err := Source(p)
		require.NoError(t, err, p)
		assert.True(t, strings.HasPrefix(src, "#version 410 core"), p)
		assert.Contains(t, src, "void main()", p)
	}
}

func TestUniformNames(t *testing.T) {
	assert.Contains(t, ParticleVertex, "uniform float currentTime;")
	assert.Contains(t, ParticleVertex, "uniform mat4 viewProjection;")
	assert.Contains(t, ConeVertex, "uniform vec2 positionOffset;")
	assert.Contains(t, ColorFragment, "uniform vec3 coneColor;")
	assert.Contains(t, WorldVertex, "uniform mat4 model;")
}

func TestMissingSource(t *testing.T) {
	_, err := Source("nope.glsl")
	assert.Error(t, err)
}

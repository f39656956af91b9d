package shaders

import (
	"embed"
	"fmt"
)

//go:embed *.glsl
var files embed.FS

// Source returns the GLSL text embedded under path.
func Source(path string) (string, error) {
	data, err := files.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("shader source %q: %w", path, err)
	}
	return string(data), nil
}

func mustSource(path string) string {
	src, err := Source(path)
	if err != nil {
		panic(err)
	}
	return src
}

var (
	WorldVertex           = mustSource(WorldVertexPath)
	WorldFragment         = mustSource(WorldFragmentPath)
	ParticleVertex        = mustSource(ParticleVertexPath)
	ParticleFragment      = mustSource(ParticleFragmentPath)
	ConeVertex            = mustSource(ConeVertexPath)
	ColorFragment         = mustSource(ColorFragmentPath)
	DistanceFragment      = mustSource(DistanceFragmentPath)
	DistanceColorFragment = mustSource(DistanceColorFragmentPath)
)

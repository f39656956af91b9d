package shaders

const WorldVertexPath = "world.vert.glsl"
const WorldFragmentPath = "world.frag.glsl"
const ParticleVertexPath = "particle.vert.glsl"
const ParticleFragmentPath = "particle.frag.glsl"
const ConeVertexPath = "cone.vert.glsl"
const ColorFragmentPath = "color.frag.glsl"
const DistanceFragmentPath = "distance.frag.glsl"
const DistanceColorFragmentPath = "distance_color.frag.glsl"

package render

import "linmath"

// Triangle is one renderable face: three positions with matching texture
// coordinates.
type Triangle struct {
	P  [3]linmath.Vec3
	UV [3]linmath.Vec2
}

// Mesh is a triangle soup in model space.
type Mesh []Triangle

// Cube returns a unit cube centered at the origin, two triangles per face,
// each face mapped to the full [0,1]² texture square.
func Cube() Mesh {
	quads := [][4]linmath.Vec3{
		// +z
		{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}},
		// -z
		{{X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}},
		// +x
		{{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}},
		// -x
		{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}},
		// +y
		{{X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}},
		// -y
		{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}},
	}

	uv := [4]linmath.Vec2{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}

	mesh := make(Mesh, 0, len(quads)*2)
	for _, q := range quads {
		mesh = append(mesh,
			Triangle{
				P:  [3]linmath.Vec3{q[0], q[1], q[2]},
				UV: [3]linmath.Vec2{uv[0], uv[1], uv[2]},
			},
			Triangle{
				P:  [3]linmath.Vec3{q[0], q[2], q[3]},
				UV: [3]linmath.Vec2{uv[0], uv[2], uv[3]},
			},
		)
	}
	return mesh
}

// Transform applies a rotation followed by the view matrix to every vertex.
func (m Mesh) Transform(orientation linmath.Quat, view linmath.Mat3) Mesh {
	out := make(Mesh, len(m))
	for i, tri := range m {
		out[i].UV = tri.UV
		for k, p := range tri.P {
			out[i].P[k] = view.MulVec3(orientation.RotateVec3(p))
		}
	}
	return out
}

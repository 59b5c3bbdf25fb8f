package paint

import (
	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

// TextureID identifies a texture that a mesh samples from.
// The zero value is managed texture 0: the font atlas.
type TextureID struct {
	user bool
	id   uint64
}

// ManagedTextureID refers to a texture allocated by the paint-owned
// texture manager. Id 0 is the font atlas.
func ManagedTextureID(id uint64) TextureID {
	return TextureID{id: id}
}

// UserTextureID refers to a texture owned by the application.
func UserTextureID(id uint64) TextureID {
	return TextureID{user: true, id: id}
}

// IsUser reports whether the id refers to an application-owned texture.
func (t TextureID) IsUser() bool { return t.user }

// Raw returns the numeric id within its namespace.
func (t TextureID) Raw() uint64 { return t.id }

// WhiteUV is the texture coordinate of a white pixel in the font atlas.
// Vertices of untextured geometry point here.
var WhiteUV = geom.Pos2{X: 0, Y: 0}

// Vertex is one corner of a textured, colored triangle.
// The layout matches what GPU vertex buffers expect.
type Vertex struct {
	// Pos is the position in logical points.
	Pos geom.Pos2
	// UV is the normalized texture coordinate in [0, 1].
	UV geom.Pos2
	// Color is premultiplied linear-blending sRGBA.
	Color color.Color32
}

// ColoredVertex makes a vertex that samples the white atlas pixel.
func ColoredVertex(pos geom.Pos2, c color.Color32) Vertex {
	return Vertex{Pos: pos, UV: WhiteUV, Color: c}
}

// Mesh is a triangle list: the output of tessellation, ready for upload.
type Mesh struct {
	// Indices into Vertices, three per triangle.
	Indices []uint32
	Vertices []Vertex
	// Texture sampled by all triangles in this mesh.
	Texture TextureID
}

// Clear empties the mesh, keeping allocated capacity.
func (m *Mesh) Clear() {
	m.Indices = m.Indices[:0]
	m.Vertices = m.Vertices[:0]
}

// IsEmpty reports whether the mesh has no triangles.
func (m *Mesh) IsEmpty() bool {
	return len(m.Indices) == 0 && len(m.Vertices) == 0
}

// IsValid reports whether the index count is a multiple of three and
// every index refers to an existing vertex.
func (m *Mesh) IsValid() bool {
	if len(m.Indices)%3 != 0 {
		return false
	}
	n := uint32(len(m.Vertices))
	for _, i := range m.Indices {
		if i >= n {
			return false
		}
	}
	return true
}

// CalcBounds returns the bounding rectangle of all vertex positions.
func (m *Mesh) CalcBounds() geom.Rect {
	b := geom.RectNothing
	for _, v := range m.Vertices {
		b = b.ExtendWith(v.Pos)
	}
	return b
}

// BytesUsed returns the approximate heap footprint of the mesh.
func (m *Mesh) BytesUsed() int {
	const vertexSize = 20
	const indexSize = 4
	return len(m.Vertices)*vertexSize + len(m.Indices)*indexSize
}

// Reserve grows capacity for the given number of extra triangles and
// vertices.
func (m *Mesh) Reserve(triangles, vertices int) {
	m.Indices = growCap(m.Indices, 3*triangles)
	m.Vertices = growCap(m.Vertices, vertices)
}

// Append moves all triangles of other into m. The meshes must use the
// same texture, unless m is still empty.
func (m *Mesh) Append(other Mesh) {
	if m.IsEmpty() {
		*m = other
		return
	}
	m.AppendRef(&other)
}

// AppendRef appends the triangles of other without consuming it.
func (m *Mesh) AppendRef(other *Mesh) {
	if m.Texture != other.Texture && !m.IsEmpty() {
		Logger().Warn("appending meshes with different textures",
			"dst", m.Texture.id, "src", other.Texture.id)
	}
	offset := uint32(len(m.Vertices))
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, offset+i)
	}
	m.Vertices = append(m.Vertices, other.Vertices...)
	if m.Texture == (TextureID{}) {
		m.Texture = other.Texture
	}
}

// AddTriangle appends one triangle by vertex indices.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddColoredRect appends an axis-aligned rectangle of a single color,
// sampling the white atlas pixel.
func (m *Mesh) AddColoredRect(r geom.Rect, c color.Color32) {
	m.AddRectWithUV(r, geom.RectFromMinMax(WhiteUV, WhiteUV), c)
}

// AddRectWithUV appends an axis-aligned rectangle with the given
// texture coordinates.
func (m *Mesh) AddRectWithUV(r, uv geom.Rect, c color.Color32) {
	idx := uint32(len(m.Vertices))
	m.AddTriangle(idx+0, idx+1, idx+2)
	m.AddTriangle(idx+2, idx+1, idx+3)
	m.Vertices = append(m.Vertices,
		Vertex{Pos: r.LeftTop(), UV: uv.LeftTop(), Color: c},
		Vertex{Pos: r.RightTop(), UV: uv.RightTop(), Color: c},
		Vertex{Pos: r.LeftBottom(), UV: uv.LeftBottom(), Color: c},
		Vertex{Pos: r.RightBottom(), UV: uv.RightBottom(), Color: c},
	)
}

// Translate moves all vertices by delta.
func (m *Mesh) Translate(delta geom.Vec2) {
	for i := range m.Vertices {
		m.Vertices[i].Pos = m.Vertices[i].Pos.Add(delta)
	}
}

// Rotate rotates all vertices around origin.
func (m *Mesh) Rotate(rot geom.Rot2, origin geom.Pos2) {
	for i := range m.Vertices {
		v := m.Vertices[i].Pos.Sub(origin)
		m.Vertices[i].Pos = origin.Add(rot.MulVec(v))
	}
}

// Split16 splits the mesh into meshes with at most 2^16 vertices each,
// for renderers limited to 16-bit indices. A mesh already within the
// limit is returned as-is.
func (m *Mesh) Split16() []Mesh {
	const maxSize = 1 << 16
	if len(m.Vertices) < maxSize {
		return []Mesh{*m}
	}
	if !m.IsValid() {
		Logger().Warn("splitting an invalid mesh", "vertices", len(m.Vertices))
	}

	var out []Mesh
	indices := m.Indices
	for len(indices) > 0 {
		minIdx, maxIdx := indices[0], indices[0]
		cut := len(indices)
		for i := 0; i+2 < len(indices); i += 3 {
			lo, hi := minIdx, maxIdx
			for _, x := range indices[i : i+3] {
				if x < lo {
					lo = x
				}
				if x > hi {
					hi = x
				}
			}
			if hi-lo < maxSize {
				minIdx, maxIdx = lo, hi
				continue
			}
			cut = i
			break
		}
		span := indices[:cut]
		indices = indices[cut:]

		sub := Mesh{
			Indices:  make([]uint32, len(span)),
			Vertices: m.Vertices[minIdx : maxIdx+1],
			Texture:  m.Texture,
		}
		for i, x := range span {
			sub.Indices[i] = x - minIdx
		}
		out = append(out, sub)
	}
	return out
}

func growCap[T any](s []T, extra int) []T {
	if cap(s)-len(s) >= extra {
		return s
	}
	out := make([]T, len(s), len(s)+extra)
	copy(out, s)
	return out
}

package paint

import (
	"testing"

	"github.com/gogpu/paint/color"
	"github.com/gogpu/paint/geom"
)

func TestMeshIsValid(t *testing.T) {
	var m Mesh
	if !m.IsValid() {
		t.Error("empty mesh should be valid")
	}

	m.Vertices = append(m.Vertices,
		ColoredVertex(geom.P2(0, 0), color.White),
		ColoredVertex(geom.P2(1, 0), color.White),
		ColoredVertex(geom.P2(0, 1), color.White),
	)
	m.AddTriangle(0, 1, 2)
	if !m.IsValid() {
		t.Error("one proper triangle should be valid")
	}

	m.Indices = append(m.Indices, 0, 1) // dangling pair
	if m.IsValid() {
		t.Error("index count not divisible by 3 should be invalid")
	}

	m.Indices = append(m.Indices, 7) // out of range
	if m.IsValid() {
		t.Error("index past the vertex count should be invalid")
	}
}

func TestMeshAddRectWithUV(t *testing.T) {
	var m Mesh
	r := geom.RectFromMinMax(geom.P2(10, 20), geom.P2(30, 40))
	uv := geom.RectFromMinMax(geom.P2(0, 0), geom.P2(1, 1))
	m.AddRectWithUV(r, uv, color.White)

	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("got %d vertices, %d indices; want 4 and 6",
			len(m.Vertices), len(m.Indices))
	}
	if !m.IsValid() {
		t.Error("rect mesh should be valid")
	}
	if got := m.CalcBounds(); got != r {
		t.Errorf("CalcBounds() = %v, want %v", got, r)
	}
}

func TestMeshAppend(t *testing.T) {
	var a, b Mesh
	a.AddColoredRect(geom.RectFromMinMax(geom.P2(0, 0), geom.P2(1, 1)), color.White)
	b.AddColoredRect(geom.RectFromMinMax(geom.P2(2, 2), geom.P2(3, 3)), color.White)

	a.Append(b)
	if len(a.Vertices) != 8 || len(a.Indices) != 12 {
		t.Fatalf("after append: %d vertices, %d indices", len(a.Vertices), len(a.Indices))
	}
	// Appended indices must be rebased past the existing vertices.
	for _, idx := range a.Indices[6:] {
		if idx < 4 {
			t.Fatalf("appended index %d not rebased", idx)
		}
	}
	if !a.IsValid() {
		t.Error("appended mesh should be valid")
	}
}

func TestMeshTranslate(t *testing.T) {
	var m Mesh
	m.AddColoredRect(geom.RectFromMinMax(geom.P2(0, 0), geom.P2(1, 1)), color.White)
	m.Translate(geom.V2(5, 7))

	want := geom.RectFromMinMax(geom.P2(5, 7), geom.P2(6, 8))
	if got := m.CalcBounds(); got != want {
		t.Errorf("bounds after translate = %v, want %v", got, want)
	}
}

func TestMeshSplit16(t *testing.T) {
	t.Run("small mesh untouched", func(t *testing.T) {
		var m Mesh
		m.AddColoredRect(geom.RectFromMinMax(geom.P2(0, 0), geom.P2(1, 1)), color.White)
		parts := m.Split16()
		if len(parts) != 1 || len(parts[0].Vertices) != 4 {
			t.Errorf("small mesh should come back as one part, got %d", len(parts))
		}
	})

	t.Run("large mesh splits valid", func(t *testing.T) {
		var m Mesh
		// Enough rects to exceed the 16-bit vertex range.
		for i := 0; i < (1<<16)/4+8; i++ {
			x := float32(i)
			m.AddColoredRect(geom.RectFromMinMax(geom.P2(x, 0), geom.P2(x+1, 1)), color.White)
		}
		parts := m.Split16()
		if len(parts) < 2 {
			t.Fatalf("mesh with %d vertices should split, got %d part(s)",
				len(m.Vertices), len(parts))
		}
		totalIndices := 0
		for i, part := range parts {
			if len(part.Vertices) > 1<<16 {
				t.Errorf("part %d has %d vertices, over the 16-bit limit", i, len(part.Vertices))
			}
			if !part.IsValid() {
				t.Errorf("part %d is invalid", i)
			}
			totalIndices += len(part.Indices)
		}
		if totalIndices != len(m.Indices) {
			t.Errorf("split dropped indices: %d != %d", totalIndices, len(m.Indices))
		}
	})
}

func TestMeshAppendRefTexture(t *testing.T) {
	var a, b Mesh
	b.Texture = UserTextureID(3)
	b.AddColoredRect(geom.RectFromMinMax(geom.P2(0, 0), geom.P2(1, 1)), color.White)

	a.AppendRef(&b)
	if a.Texture != b.Texture {
		t.Errorf("empty mesh should adopt texture %v, got %v", b.Texture, a.Texture)
	}
}

func TestTextureID(t *testing.T) {
	var zero TextureID
	if zero.IsUser() {
		t.Error("zero TextureID should be managed (the font atlas)")
	}
	if got := ManagedTextureID(5); got.IsUser() || got.Raw() != 5 {
		t.Errorf("ManagedTextureID(5) = %+v", got)
	}
	if got := UserTextureID(5); !got.IsUser() || got.Raw() != 5 {
		t.Errorf("UserTextureID(5) = %+v", got)
	}
	if ManagedTextureID(5) == UserTextureID(5) {
		t.Error("managed and user ids must not collide")
	}
}

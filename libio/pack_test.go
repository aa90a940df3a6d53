package libio_test

import (
	"bytes"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pierrec/lz4/v4"

	"opengl-sandbox/libio"
)

func testPack() *libio.MeshPack {
	return &libio.MeshPack{Meshes: []libio.MeshData{
		{
			Name: "quad",
			Positions: []mgl32.Vec3{
				{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0},
			},
			Normals: []mgl32.Vec3{
				{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1},
			},
			TexCoords: []mgl32.Vec2{
				{0, 0}, {1, 0}, {1, 1}, {0, 1},
			},
			Colors: []mgl32.Vec4{
				{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 1, 1},
			},
			Indices: []uint32{0, 1, 2, 0, 2, 3},
		},
		{
			Name:      "wedge",
			Positions: []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
			Colors:    []mgl32.Vec4{{1, 1, 0, 1}, {1, 1, 0, 1}, {1, 1, 0, 1}},
			Indices:   []uint32{0, 1, 2},
		},
	}}
}

func TestMeshPackRoundTrip(t *testing.T) {
	pack := testPack()
	buf := new(bytes.Buffer)
	if err := libio.EncodeMeshPack(buf, pack); err != nil {
		t.Fatal(err)
	}

	decoded, err := libio.DecodeMeshPack(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.Meshes) != len(pack.Meshes) {
		t.Fatalf("pack should hold %d meshes but held %d", len(pack.Meshes), len(decoded.Meshes))
	}

	for i, want := range pack.Meshes {
		got := decoded.Meshes[i]
		if got.Name != want.Name {
			t.Errorf("mesh %d name should be %q but was %q", i, want.Name, got.Name)
		}
		if len(got.Positions) != len(want.Positions) {
			t.Errorf("mesh %q should have %d positions but had %d", want.Name, len(want.Positions), len(got.Positions))
			continue
		}
		for j := range want.Positions {
			if got.Positions[j] != want.Positions[j] {
				t.Errorf("mesh %q position %d should be %v but was %v", want.Name, j, want.Positions[j], got.Positions[j])
			}
		}
		for j := range want.Indices {
			if got.Indices[j] != want.Indices[j] {
				t.Errorf("mesh %q index %d should be %v but was %v", want.Name, j, want.Indices[j], got.Indices[j])
			}
		}
		for j := range want.Colors {
			if got.Colors[j] != want.Colors[j] {
				t.Errorf("mesh %q color %d should be %v but was %v", want.Name, j, want.Colors[j], got.Colors[j])
			}
		}
	}
}

func TestMeshPackFind(t *testing.T) {
	pack := testPack()
	if mesh := pack.Find("wedge"); mesh == nil || mesh.Name != "wedge" {
		t.Errorf("Find should locate the wedge mesh, was %v", mesh)
	}
	if mesh := pack.Find("missing"); mesh != nil {
		t.Errorf("Find on an unknown name should be nil, was %v", mesh)
	}
}

func TestMeshPackRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("JUNKJUNKJUNKJUNK")
	if _, err := libio.DecodeMeshPack(buf); err == nil {
		t.Error("decoding junk should fail")
	}
}

// Counts in the pack body size allocations, so a corrupt pack must be
// rejected before its counts are trusted.
func TestMeshPackRejectsHugeCounts(t *testing.T) {
	maliciousPack := func(t *testing.T, build func(body *libio.BinaryWriter)) *bytes.Buffer {
		t.Helper()
		buf := new(bytes.Buffer)
		head := libio.NewBinaryWriter(buf)
		head.WriteBytes([]byte("MSHP"))
		head.WriteUInt32(1)
		lzw := lz4.NewWriter(buf)
		body := libio.NewBinaryWriter(lzw)
		build(body)
		if body.Err != nil {
			t.Fatal(body.Err)
		}
		if err := lzw.Close(); err != nil {
			t.Fatal(err)
		}
		return buf
	}

	hugeMeshCount := maliciousPack(t, func(body *libio.BinaryWriter) {
		body.WriteUInt32(0xffffffff)
	})
	if _, err := libio.DecodeMeshPack(hugeMeshCount); err == nil {
		t.Error("an absurd mesh count should be rejected")
	}

	hugeAttributeCount := maliciousPack(t, func(body *libio.BinaryWriter) {
		body.WriteUInt32(1)
		body.WriteString("bogus")
		body.WriteUInt32(0xffffffff)
	})
	if _, err := libio.DecodeMeshPack(hugeAttributeCount); err == nil {
		t.Error("an absurd attribute count should be rejected")
	}
}

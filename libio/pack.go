package libio

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pierrec/lz4/v4"
	"golang.org/x/exp/slices"
)

// Mesh pack format:
//
//	[4]byte magic "MSHP"
//	uint32  version
//	lz4 frame of the body:
//	  uint32 mesh count
//	  per mesh:
//	    string name (uint16 length prefix)
//	    uint32 position count, []mgl32.Vec3
//	    uint32 normal count,   []mgl32.Vec3
//	    uint32 texcoord count, []mgl32.Vec2
//	    uint32 color count,    []mgl32.Vec4
//	    uint32 index count,    []uint32
//
// All integers little endian.

var packMagic = [4]byte{'M', 'S', 'H', 'P'}

const packVersion = 1

// Decode limits. Counts come from untrusted input and size allocations, so
// they are checked before any make call.
const (
	maxPackMeshes   = 1 << 16
	maxMeshElements = 1 << 22
)

// MeshData is the CPU-side geometry of one named mesh. Attribute slices may
// be empty; positions and indices are required for drawing.
type MeshData struct {
	Name      string
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Colors    []mgl32.Vec4
	Indices   []uint32
}

// MeshPack is an ordered collection of named meshes.
type MeshPack struct {
	Meshes []MeshData
}

// Find returns the mesh with the given name, or nil.
func (p *MeshPack) Find(name string) *MeshData {
	i := slices.IndexFunc(p.Meshes, func(m MeshData) bool {
		return m.Name == name
	})
	if i == -1 {
		return nil
	}
	return &p.Meshes[i]
}

// EncodeMeshPack writes the pack to w with an lz4-compressed body.
func EncodeMeshPack(w io.Writer, pack *MeshPack) error {
	head := NewBinaryWriter(w)
	head.WriteBytes(packMagic[:])
	head.WriteUInt32(packVersion)
	if head.Err != nil {
		return fmt.Errorf("could not write mesh pack header: %w", head.Err)
	}

	lzw := lz4.NewWriter(w)
	body := NewBinaryWriter(lzw)
	body.WriteUInt32(uint32(len(pack.Meshes)))
	for i := range pack.Meshes {
		writeMesh(body, &pack.Meshes[i])
	}
	if body.Err != nil {
		return fmt.Errorf("could not write mesh pack body: %w", body.Err)
	}
	if err := lzw.Close(); err != nil {
		return fmt.Errorf("could not flush mesh pack: %w", err)
	}
	return nil
}

// DecodeMeshPack reads a pack written by EncodeMeshPack.
func DecodeMeshPack(r io.Reader) (*MeshPack, error) {
	head := NewBinaryReader(r)
	magic := make([]byte, 4)
	head.ReadRef(magic)
	var version int
	head.ReadUInt32(&version)
	if head.Err != nil {
		return nil, fmt.Errorf("could not read mesh pack header: %w", head.Err)
	}
	if string(magic) != string(packMagic[:]) {
		return nil, fmt.Errorf("not a mesh pack, magic was %q", magic)
	}
	if version != packVersion {
		return nil, fmt.Errorf("unsupported mesh pack version %d", version)
	}

	body := NewBinaryReader(lz4.NewReader(r))
	count, _ := readCount(body, maxPackMeshes, "mesh")
	if body.Err != nil {
		return nil, fmt.Errorf("could not read mesh pack body: %w", body.Err)
	}

	pack := &MeshPack{Meshes: make([]MeshData, count)}
	for i := range pack.Meshes {
		if !readMesh(body, &pack.Meshes[i]) {
			return nil, fmt.Errorf("could not read mesh %d of %d: %w", i, count, body.Err)
		}
	}
	return pack, nil
}

func writeMesh(bw *BinaryWriter, mesh *MeshData) {
	bw.WriteString(mesh.Name)
	bw.WriteUInt32(uint32(len(mesh.Positions)))
	bw.WriteRef(mesh.Positions)
	bw.WriteUInt32(uint32(len(mesh.Normals)))
	bw.WriteRef(mesh.Normals)
	bw.WriteUInt32(uint32(len(mesh.TexCoords)))
	bw.WriteRef(mesh.TexCoords)
	bw.WriteUInt32(uint32(len(mesh.Colors)))
	bw.WriteRef(mesh.Colors)
	bw.WriteUInt32(uint32(len(mesh.Indices)))
	bw.WriteRef(mesh.Indices)
}

func readMesh(br *BinaryReader, mesh *MeshData) (ok bool) {
	br.ReadString(&mesh.Name)

	count, _ := readCount(br, maxMeshElements, "position")
	mesh.Positions = make([]mgl32.Vec3, count)
	br.ReadRef(mesh.Positions)

	count, _ = readCount(br, maxMeshElements, "normal")
	mesh.Normals = make([]mgl32.Vec3, count)
	br.ReadRef(mesh.Normals)

	count, _ = readCount(br, maxMeshElements, "texcoord")
	mesh.TexCoords = make([]mgl32.Vec2, count)
	br.ReadRef(mesh.TexCoords)

	count, _ = readCount(br, maxMeshElements, "color")
	mesh.Colors = make([]mgl32.Vec4, count)
	br.ReadRef(mesh.Colors)

	count, _ = readCount(br, maxMeshElements, "index")
	mesh.Indices = make([]uint32, count)
	br.ReadRef(mesh.Indices)

	return br.Err == nil
}

// readCount reads a uint32 count and rejects values above limit before any
// allocation happens. Failures latch into br.Err.
func readCount(br *BinaryReader, limit int, what string) (int, bool) {
	var n int
	if !br.ReadUInt32(&n) {
		return 0, false
	}
	if n > limit {
		br.Err = fmt.Errorf("%s count %d exceeds limit %d", what, n, limit)
		return 0, false
	}
	return n, true
}

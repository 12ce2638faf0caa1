// Package stl loads ASCII and binary STL files into the same mesh the
// OBJ loader produces. Facets sharing a corner position share a vertex id,
// so the outline shows each triangle side once.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/philipparndt/objwire/pkg/obj"
)

const (
	headerSize = 80
	facetSize  = 50 // normal, three corners, attribute byte count
)

// Load reads an STL file. A file that cannot be opened yields an empty mesh
// and an error wrapping obj.ErrUnreadable.
func Load(path string) (*obj.Mesh, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return obj.NewMesh(), fmt.Errorf("%w: %w", obj.ErrUnreadable, err)
	}
	mesh, err := Parse(data)
	if err != nil {
		return mesh, fmt.Errorf("%w: %s: %w", obj.ErrUnreadable, path, err)
	}
	return mesh, nil
}

// Parse detects the format of data and decodes it
func Parse(data []byte) (*obj.Mesh, error) {
	if isBinary(data) {
		return parseBinary(data)
	}
	return parseASCII(bytes.NewReader(data))
}

// isBinary trusts the facet count of the binary header when it matches the
// size exactly. Binary files may start with "solid" too.
func isBinary(data []byte) bool {
	if len(data) < headerSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[headerSize:])
	if uint64(len(data)) == headerSize+4+uint64(count)*facetSize {
		return true
	}
	return !bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid"))
}

// welder assigns one vertex id per distinct position
type welder struct {
	build *obj.Builder
	ids   map[[3]float32]obj.VertexID
}

func newWelder() *welder {
	return &welder{
		build: obj.NewBuilder(),
		ids:   make(map[[3]float32]obj.VertexID),
	}
}

func (w *welder) vertex(p [3]float32) obj.VertexID {
	if id, ok := w.ids[p]; ok {
		return id
	}
	id := w.build.AddVertex(p[0], p[1], p[2])
	w.ids[p] = id
	return id
}

// facet drops triangles with a NaN or infinite corner
func (w *welder) facet(a, b, c [3]float32) {
	if !finite(a) || !finite(b) || !finite(c) {
		return
	}
	w.build.AddFace(w.vertex(a), w.vertex(b), w.vertex(c))
}

func finite(p [3]float32) bool {
	for _, v := range p {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// parseASCII parses an ASCII STL file. Facets without exactly three
// readable vertices are dropped.
func parseASCII(reader io.Reader) (*obj.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	w := newWelder()

	var name string
	var corners [][3]float32
	valid := true

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if name == "" && len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}

		case "facet":
			corners = corners[:0]
			valid = true

		case "vertex":
			p, ok := parsePoint(fields[1:])
			if !ok {
				valid = false
				continue
			}
			corners = append(corners, p)

		case "endfacet":
			if valid && len(corners) == 3 {
				w.facet(corners[0], corners[1], corners[2])
			}
			corners = corners[:0]
		}
	}

	mesh := w.build.Mesh()
	mesh.Name = name
	if err := scanner.Err(); err != nil {
		return mesh, fmt.Errorf("error reading ASCII STL: %w", err)
	}
	return mesh, nil
}

func parsePoint(args []string) ([3]float32, bool) {
	var p [3]float32
	if len(args) < 3 {
		return p, false
	}
	for i := range p {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return p, false
		}
		p[i] = float32(v)
	}
	return p, true
}

// parseBinary parses a binary STL file
func parseBinary(data []byte) (*obj.Mesh, error) {
	reader := bytes.NewReader(data)
	w := newWelder()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return w.build.Mesh(), fmt.Errorf("failed to read header: %w", err)
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return w.build.Mesh(), fmt.Errorf("failed to read triangle count: %w", err)
	}

	var facet struct {
		Normal    [3]float32
		Corners   [3][3]float32
		Attribute uint16
	}
	for i := uint32(0); i < triangleCount; i++ {
		if err := binary.Read(reader, binary.LittleEndian, &facet); err != nil {
			mesh := w.build.Mesh()
			return mesh, fmt.Errorf("failed to read triangle %d of %d: %w", i, triangleCount, err)
		}
		w.facet(facet.Corners[0], facet.Corners[1], facet.Corners[2])
	}

	mesh := w.build.Mesh()
	mesh.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))
	return mesh, nil
}

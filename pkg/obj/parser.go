package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrUnreadable is returned when a geometry or material file cannot be read
var ErrUnreadable = errors.New("file unreadable")

const maxLineLength = 16 * 1024 * 1024

// Load reads a geometry file and returns its mesh.
// If the file cannot be opened the returned mesh is empty, never nil.
func Load(path string) (*Mesh, *Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return NewMesh(), &Report{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer file.Close()

	mesh, report, err := Parse(file)
	for _, o := range report.Skipped() {
		slog.Debug("skipped line", "file", path, "line", o.Line, "reason", o.Skip, "detail", o.Detail)
	}
	if err != nil {
		return mesh, report, fmt.Errorf("%w: %s: %w", ErrUnreadable, path, err)
	}
	return mesh, report, nil
}

// LoadWithMaterial loads a geometry file and resolves its base color from
// the named block of a material file. An empty mtlPath falls back to the
// mtllib declared by the geometry file, relative to it.
func LoadWithMaterial(path, mtlPath, name string) (*Mesh, *Report, error) {
	mesh, report, err := Load(path)
	if err != nil {
		return mesh, report, err
	}

	if mtlPath == "" && mesh.MaterialLibrary != "" {
		mtlPath = filepath.Join(filepath.Dir(path), mesh.MaterialLibrary)
	}
	if name == "" {
		name = DefaultMaterialName
	}
	if mtlPath != "" {
		mesh.BaseColor = ResolveBaseColor(mtlPath, name)
	}
	return mesh, report, nil
}

// Parse reads geometry from r. Malformed lines are skipped and recorded in
// the report; only read errors are returned.
func Parse(r io.Reader) (*Mesh, *Report, error) {
	p := &parser{
		build:  NewBuilder(),
		report: &Report{},
	}
	mesh := p.build.mesh

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineLength)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p.vertex(lineNo, fields[1:])
		case "f":
			p.face(lineNo, fields[1:])
		case "o", "g":
			if mesh.Name == "" && len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		case "mtllib":
			if len(fields) > 1 {
				mesh.MaterialLibrary = strings.Join(fields[1:], " ")
			}
		case "usemtl":
			if mesh.Material == "" && len(fields) > 1 {
				mesh.Material = fields[1]
			}
		}
	}

	mesh = p.build.Mesh()

	if err := scanner.Err(); err != nil {
		return mesh, p.report, fmt.Errorf("error reading geometry: %w", err)
	}
	return mesh, p.report, nil
}

type parser struct {
	build  *Builder
	report *Report
}

// vertex records one position. A line with a missing, unparsable or
// non-finite coordinate is dropped entirely.
func (p *parser) vertex(line int, args []string) {
	if len(args) < 3 {
		p.report.add(line, LineVertex, SkipMalformedVertex, fmt.Sprintf("%d coordinates", len(args)))
		return
	}

	var xyz [3]float32
	for i := range xyz {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			p.report.add(line, LineVertex, SkipMalformedVertex, args[i])
			return
		}
		xyz[i] = float32(v)
	}

	p.build.AddVertex(xyz[0], xyz[1], xyz[2])
	p.report.add(line, LineVertex, SkipNone, "")
}

// face emits one triangle from the first three references and every
// cyclic edge of the polygon. A face with any bad reference contributes
// nothing.
func (p *parser) face(line int, args []string) {
	if len(args) < 2 {
		p.report.add(line, LineFace, SkipFaceTooFewRefs, fmt.Sprintf("%d references", len(args)))
		return
	}

	ids := make([]VertexID, len(args))
	for i, token := range args {
		id, reason := p.resolve(token)
		if reason != SkipNone {
			p.report.add(line, LineFace, reason, token)
			return
		}
		ids[i] = id
	}

	p.build.AddFace(ids...)
	p.report.add(line, LineFace, SkipNone, "")
}

// resolve converts a face reference ("7", "7/2", "7//3", "-1") into a
// vertex id. Only the part before the first slash is significant.
func (p *parser) resolve(token string) (VertexID, SkipReason) {
	head, _, _ := strings.Cut(token, "/")
	n, err := strconv.Atoi(head)
	if err != nil || n == 0 {
		return 0, SkipMalformedFaceRef
	}

	count := p.build.VertexCount()
	idx := n - 1
	if n < 0 {
		idx = count + n
	}
	if idx < 0 || idx >= count {
		return 0, SkipFaceOutOfRange
	}
	return VertexID(idx), SkipNone
}

package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/philipparndt/objwire/pkg/obj"
	"github.com/philipparndt/objwire/pkg/stl"
)

// LoadMesh loads an OBJ or STL file and resolves its base color. STL files
// carry no material library, so only an explicit material file applies.
func LoadMesh(path string, opts Options) (*obj.Mesh, *obj.Report, error) {
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		mesh, err := stl.Load(path)
		if err != nil {
			return mesh, &obj.Report{}, err
		}
		if opts.MaterialFile != "" {
			name := opts.MaterialName
			if name == "" {
				name = obj.DefaultMaterialName
			}
			mesh.BaseColor = obj.ResolveBaseColor(opts.MaterialFile, name)
		}
		return mesh, &obj.Report{}, nil
	}
	return obj.LoadWithMaterial(path, opts.MaterialFile, opts.MaterialName)
}

// loadMesh loads the geometry and its base color and logs a summary.
// An unreadable file aborts; skipped lines only warn.
func loadMesh(path string, opts Options) (*obj.Mesh, error) {
	mesh, report, err := LoadMesh(path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if skipped := report.Skipped(); len(skipped) > 0 {
		slog.Warn("skipped malformed lines", "file", path, "count", len(skipped))
	}
	if mesh.IsEmpty() {
		slog.Warn("mesh has nothing to draw", "file", path)
	}

	slog.Info("loaded mesh",
		"file", path,
		"vertices", mesh.VertexCount(),
		"triangles", len(mesh.Triangles),
		"edges", len(mesh.Edges),
		"color", fmt.Sprintf("%.3f %.3f %.3f", mesh.BaseColor.R, mesh.BaseColor.G, mesh.BaseColor.B))
	return mesh, nil
}

// materialPath returns the material file the base color was resolved from,
// or "" when none applies
func materialPath(path string, mesh *obj.Mesh, opts Options) string {
	if opts.MaterialFile != "" {
		return opts.MaterialFile
	}
	if mesh.MaterialLibrary != "" {
		return filepath.Join(filepath.Dir(path), mesh.MaterialLibrary)
	}
	return ""
}

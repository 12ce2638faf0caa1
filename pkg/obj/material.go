package obj

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ParseMaterials reads an MTL description and returns the diffuse color of
// every named block. Blocks without a Kd line are present with DefaultColor.
func ParseMaterials(r io.Reader) (map[string]Color, error) {
	materials := make(map[string]Color)
	scanner := bufio.NewScanner(r)

	current := ""
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "newmtl":
			if len(fields) < 2 {
				current = ""
				continue
			}
			current = strings.Join(fields[1:], " ")
			materials[current] = DefaultColor
		case "Kd":
			if current == "" {
				continue
			}
			if c, ok := parseColor(fields[1:]); ok {
				materials[current] = c
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return materials, fmt.Errorf("error reading materials: %w", err)
	}
	return materials, nil
}

// ResolveBaseColor returns the diffuse color of the named material in the
// file at path, or DefaultColor when the file or block is missing.
func ResolveBaseColor(path, name string) Color {
	file, err := os.Open(path)
	if err != nil {
		slog.Warn("material file unreadable, using default color", "file", path, "error", err)
		return DefaultColor
	}
	defer file.Close()

	materials, err := ParseMaterials(file)
	if err != nil {
		slog.Warn("material file truncated", "file", path, "error", err)
	}
	c, ok := materials[name]
	if !ok {
		slog.Debug("material not found, using default color", "file", path, "material", name)
		return DefaultColor
	}
	return c
}

func parseColor(args []string) (Color, bool) {
	if len(args) < 3 {
		return Color{}, false
	}
	var rgb [3]float32
	for i := range rgb {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return Color{}, false
		}
		rgb[i] = float32(v)
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Clamp(), true
}

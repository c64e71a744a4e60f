// Package mesh loads STL visual assets and matches them to robot links.
package mesh

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/hiwinstudio/urdfkit/spatialmath"
	"github.com/hiwinstudio/urdfkit/utils"
)

// Triangle is a single mesh facet.
type Triangle struct {
	Normal r3.Vector
	V1     r3.Vector
	V2     r3.Vector
	V3     r3.Vector
}

// Mesh is a triangle soup loaded from an STL file. Meshes are treated as
// immutable once loaded; Transformed returns copies.
type Mesh struct {
	Name      string
	Path      string
	Triangles []Triangle
}

// Transformed returns a copy of the mesh with every vertex run through the
// transform. Normals are transformed as direction vectors.
func (m *Mesh) Transformed(t spatialmath.Transform) *Mesh {
	out := &Mesh{
		Name:      m.Name,
		Path:      m.Path,
		Triangles: make([]Triangle, len(m.Triangles)),
	}
	for i, tri := range m.Triangles {
		out.Triangles[i] = Triangle{
			Normal: t.ApplyVector(tri.Normal),
			V1:     t.ApplyPoint(tri.V1),
			V2:     t.ApplyPoint(tri.V2),
			V3:     t.ApplyPoint(tri.V3),
		}
	}
	return out
}

// ParseSTLFile reads an STL mesh from disk, sniffing whether it is the ASCII
// or binary flavor.
func ParseSTLFile(path string) (*Mesh, error) {
	//nolint:gosec
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open STL file")
	}
	defer func() {
		utils.UncheckedError(file.Close())
	}()

	header := make([]byte, 80)
	if _, err := io.ReadFull(file, header); err != nil {
		return nil, errors.Wrap(err, "failed to read STL header")
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "failed to seek STL file")
	}

	// binary files may also begin with "solid"; a genuine ASCII header is text
	var mesh *Mesh
	if strings.HasPrefix(string(header), "solid") {
		mesh, err = parseASCII(file, filepath.Base(path))
	} else {
		mesh, err = parseBinary(file, filepath.Base(path))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse STL file %q", path)
	}
	mesh.Path = path
	return mesh, nil
}

func parseASCII(reader io.Reader, name string) (*Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := &Mesh{Name: name}

	var current Triangle
	var vertexCount int
	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				mesh.Name = strings.Join(fields[1:], " ")
			}
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				current.Normal = parseVertex(fields[2:])
			}
			vertexCount = 0
		case "vertex":
			if len(fields) >= 4 {
				v := parseVertex(fields[1:])
				switch vertexCount {
				case 0:
					current.V1 = v
				case 1:
					current.V2 = v
				case 2:
					current.V3 = v
				}
				vertexCount++
			}
		case "endfacet":
			mesh.Triangles = append(mesh.Triangles, current)
			current = Triangle{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error scanning ASCII STL")
	}
	return mesh, nil
}

func parseVertex(fields []string) r3.Vector {
	coords := utils.SpaceDelimitedStringToFloatSlice(strings.Join(fields[:3], " "))
	if len(coords) != 3 {
		return r3.Vector{}
	}
	return r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]}
}

// binaryVector is the wire layout of one float32 triple in a binary STL.
type binaryVector struct {
	X, Y, Z float32
}

func (v binaryVector) toR3() r3.Vector {
	return r3.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func parseBinary(reader io.Reader, name string) (*Mesh, error) {
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, errors.Wrap(err, "error reading binary STL header")
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, errors.Wrap(err, "error reading triangle count")
	}

	mesh := &Mesh{
		Name:      name,
		Triangles: make([]Triangle, triangleCount),
	}
	for i := uint32(0); i < triangleCount; i++ {
		var record struct {
			Normal, V1, V2, V3 binaryVector
			AttributeCount     uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &record); err != nil {
			return nil, errors.Wrapf(err, "error reading triangle %d", i)
		}
		mesh.Triangles[i] = Triangle{
			Normal: record.Normal.toR3(),
			V1:     record.V1.toR3(),
			V2:     record.V2.toR3(),
			V3:     record.V3.toR3(),
		}
	}
	return mesh, nil
}

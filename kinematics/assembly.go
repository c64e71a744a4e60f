package kinematics

import (
	"github.com/hiwinstudio/urdfkit/mesh"
	"github.com/hiwinstudio/urdfkit/spatialmath"
	"github.com/hiwinstudio/urdfkit/urdf"
)

// PlacedVisual is one visual geometry entry placed in world space. Multiple
// visuals on one link yield independent entries, never a merge.
type PlacedVisual struct {
	LinkName string
	Path     string
	Mesh     *mesh.Mesh
	// World is the composed placement: link world transform, then the
	// visual's local origin, then its per-axis scale, so scaling happens
	// about the visual's own origin first.
	World spatialmath.Transform
}

// Placed returns the mesh with the placement applied to its vertices.
func (pv *PlacedVisual) Placed() *mesh.Mesh {
	return pv.Mesh.Transformed(pv.World)
}

// NewMeshIndex builds the path-keyed lookup AssembleGeometry consumes from
// parallel path and mesh lists. Keys are normalized absolute paths.
func NewMeshIndex(paths []string, meshes []*mesh.Mesh) map[string]*mesh.Mesh {
	index := make(map[string]*mesh.Mesh, len(paths))
	for i, path := range paths {
		if i < len(meshes) && meshes[i] != nil {
			index[urdf.NormalizePath(path)] = meshes[i]
		}
	}
	return index
}

// AssembleGeometry matches each visual of each posed link to a loaded mesh by
// normalized absolute path and produces world-space placements. Visuals whose
// mesh was never resolved or never loaded are skipped; the call succeeds with
// fewer geometries rather than failing.
func AssembleGeometry(model *urdf.Model, frames *FrameSet, index map[string]*mesh.Mesh) []PlacedVisual {
	var placed []PlacedVisual
	for _, linkName := range frames.LinkNames {
		link, ok := model.Link(linkName)
		if !ok {
			continue
		}
		world, _ := frames.Transform(linkName)
		for i := range link.Visuals {
			visual := &link.Visuals[i]
			if visual.ResolvedPath == "" {
				continue
			}
			m, ok := index[urdf.NormalizePath(visual.ResolvedPath)]
			if !ok {
				continue
			}
			scale := spatialmath.NewScale(visual.Scale.X, visual.Scale.Y, visual.Scale.Z)
			placed = append(placed, PlacedVisual{
				LinkName: linkName,
				Path:     visual.ResolvedPath,
				Mesh:     m,
				World:    spatialmath.Compose(world, visual.Origin(), scale),
			})
		}
	}
	return placed
}

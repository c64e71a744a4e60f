// Package urdf parses Unified Robot Description Format files into an
// immutable in-memory robot model: links keyed by name, joints in declaration
// order, and visual geometry references with resolved mesh paths.
package urdf

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/hiwinstudio/urdfkit/spatialmath"
)

// Extension is the file extension associated with URDF files.
const Extension = "urdf"

// Supported joint types.
const (
	FixedJoint      = "fixed"
	RevoluteJoint   = "revolute"
	ContinuousJoint = "continuous"
	PrismaticJoint  = "prismatic"
)

// DefaultAxis is the motion axis assumed when a joint omits its axis
// element, per the URDF specification.
var DefaultAxis = r3.Vector{X: 1, Y: 0, Z: 0}

// Visual is one visual geometry entry of a link: a mesh asset reference plus
// a local origin and per-axis scale.
type Visual struct {
	// MeshFile is the filename attribute as written in the URDF.
	MeshFile string
	// ResolvedPath is the absolute on-disk location of the mesh, or empty
	// when the asset could not be found at parse time.
	ResolvedPath string
	XYZ          r3.Vector
	RPY          spatialmath.EulerAngles
	Scale        r3.Vector
}

// Origin returns the visual's local origin transform, translation applied
// after rotation (T * R).
func (v *Visual) Origin() spatialmath.Transform {
	return spatialmath.NewTranslation(v.XYZ).Mul(v.RPY.Transform())
}

// Link is a rigid body in the robot tree. Its world pose is derived during
// kinematics evaluation, never stored.
type Link struct {
	Name    string
	Visuals []Visual
}

// Limit is an optional joint motion limit. Rotational limits are in radians,
// prismatic limits in the model's length units.
type Limit struct {
	Lower float64
	Upper float64
}

// Joint connects a parent link to a child link.
type Joint struct {
	Name   string
	Type   string
	Parent string
	Child  string
	XYZ    r3.Vector
	RPY    spatialmath.EulerAngles
	Axis   r3.Vector
	Limit  *Limit
}

// Origin returns the joint's fixed origin transform, applied regardless of
// joint value: T(xyz) * R(rpy).
func (j *Joint) Origin() spatialmath.Transform {
	return spatialmath.NewTranslation(j.XYZ).Mul(j.RPY.Transform())
}

// Movable reports whether the joint contributes a degree of freedom.
func (j *Joint) Movable() bool {
	switch j.Type {
	case RevoluteJoint, ContinuousJoint, PrismaticJoint:
		return true
	default:
		return false
	}
}

// Model is a parsed robot description. It is immutable after parsing; joint
// values are supplied per evaluation and never stored on the model.
type Model struct {
	Name   string
	Links  []*Link
	Joints []*Joint

	// Diagnostics holds the non-fatal anomalies found while parsing, such
	// as visuals whose mesh files were not found.
	Diagnostics Diagnostics

	path      string
	linkIndex map[string]*Link
}

// NewModel assembles a model from already-built links and joints, for
// synthetic robots constructed in code rather than parsed from XML.
func NewModel(name string, links []*Link, joints []*Joint) *Model {
	model := &Model{
		Name:      name,
		Links:     links,
		Joints:    joints,
		linkIndex: make(map[string]*Link, len(links)),
	}
	for _, link := range links {
		model.linkIndex[link.Name] = link
	}
	return model
}

// Link looks a link up by name.
func (m *Model) Link(name string) (*Link, bool) {
	l, ok := m.linkIndex[name]
	return l, ok
}

// Path returns the file the model was parsed from, or empty when the model
// came from raw bytes.
func (m *Model) Path() string {
	return m.path
}

// Dir returns the directory containing the model's source file.
func (m *Model) Dir() string {
	if m.path == "" {
		return ""
	}
	return filepath.Dir(m.path)
}

// ParseOptions adjusts parsing behavior. The zero value is usable.
type ParseOptions struct {
	// Name overrides the robot name attribute.
	Name string
	// PackageRoot overrides the directory that package:// mesh URIs resolve
	// against. When empty it is computed as two directories above the URDF
	// file.
	PackageRoot string
}

// ParseFile reads and parses a URDF file.
func ParseFile(path string, opts ParseOptions) (*Model, error) {
	//nolint:gosec
	xmlData, err := os.ReadFile(path)
	if err != nil {
		return nil, newParseError(err, "failed to read URDF file")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return parse(xmlData, abs, opts)
}

// Parse parses raw URDF bytes. Relative mesh paths cannot be resolved without
// a source file, so only absolute mesh filenames resolve.
func Parse(xmlData []byte, opts ParseOptions) (*Model, error) {
	return parse(xmlData, "", opts)
}

func parse(xmlData []byte, sourcePath string, opts ParseOptions) (*Model, error) {
	if len(xmlData) == 0 {
		return nil, &ParseError{cause: errors.New("no model information in empty URDF data")}
	}

	var robot robotXML
	if err := xml.Unmarshal(xmlData, &robot); err != nil {
		return nil, newParseError(err, "failed to parse URDF XML")
	}

	name := opts.Name
	if name == "" {
		name = robot.Name
	}
	model := &Model{
		Name:      name,
		path:      sourcePath,
		linkIndex: map[string]*Link{},
	}

	urdfDir := ""
	packageRoot := opts.PackageRoot
	if sourcePath != "" {
		urdfDir = filepath.Dir(sourcePath)
		if packageRoot == "" {
			packageRoot = filepath.Dir(filepath.Dir(sourcePath))
		}
	}

	for _, linkElem := range robot.Links {
		if linkElem.Name == "" {
			return nil, NewMissingAttributeError("link", "name", "")
		}
		link := &Link{Name: linkElem.Name}
		for _, visualElem := range linkElem.Visuals {
			if visualElem.Geometry.Mesh == nil || visualElem.Geometry.Mesh.Filename == "" {
				continue
			}
			visual := Visual{
				MeshFile: visualElem.Geometry.Mesh.Filename,
				Scale:    r3.Vector{X: 1, Y: 1, Z: 1},
			}
			if visualElem.Origin != nil {
				visual.XYZ = vector3(visualElem.Origin.XYZ, r3.Vector{})
				rpy := vector3(visualElem.Origin.RPY, r3.Vector{})
				visual.RPY = spatialmath.EulerAngles{Roll: rpy.X, Pitch: rpy.Y, Yaw: rpy.Z}
			}
			if scale := visualElem.Geometry.Mesh.Scale; scale != "" {
				visual.Scale = vector3(scale, r3.Vector{X: 1, Y: 1, Z: 1})
			}
			visual.ResolvedPath = resolveMeshPath(visual.MeshFile, urdfDir, packageRoot)
			if visual.ResolvedPath == "" {
				model.Diagnostics.Add(DiagUnresolvedAsset, linkElem.Name,
					"mesh file %q not found on disk", visual.MeshFile)
			}
			link.Visuals = append(link.Visuals, visual)
		}
		model.Links = append(model.Links, link)
		model.linkIndex[link.Name] = link
	}

	for _, jointElem := range robot.Joints {
		if jointElem.Name == "" {
			return nil, NewMissingAttributeError("joint", "name", "")
		}
		if jointElem.Parent == nil || jointElem.Parent.Link == "" {
			return nil, NewMissingAttributeError("joint", "parent link", jointElem.Name)
		}
		if jointElem.Child == nil || jointElem.Child.Link == "" {
			return nil, NewMissingAttributeError("joint", "child link", jointElem.Name)
		}
		switch jointElem.Type {
		case FixedJoint, RevoluteJoint, ContinuousJoint, PrismaticJoint:
		default:
			return nil, NewUnsupportedJointTypeError(jointElem.Type)
		}

		joint := &Joint{
			Name:   jointElem.Name,
			Type:   jointElem.Type,
			Parent: jointElem.Parent.Link,
			Child:  jointElem.Child.Link,
			Axis:   DefaultAxis,
		}
		if jointElem.Origin != nil {
			joint.XYZ = vector3(jointElem.Origin.XYZ, r3.Vector{})
			rpy := vector3(jointElem.Origin.RPY, r3.Vector{})
			joint.RPY = spatialmath.EulerAngles{Roll: rpy.X, Pitch: rpy.Y, Yaw: rpy.Z}
		}
		if jointElem.Axis != nil {
			joint.Axis = vector3(jointElem.Axis.XYZ, DefaultAxis)
		}
		if jointElem.Limit != nil {
			joint.Limit = &Limit{Lower: jointElem.Limit.Lower, Upper: jointElem.Limit.Upper}
		}
		model.Joints = append(model.Joints, joint)
	}

	return model, nil
}

// resolveMeshPath locates a mesh asset on disk, trying in order: a package
// URI resolved against the package root, a path relative to the URDF's
// directory, and an absolute path. Returns empty when no candidate exists;
// missing assets are tolerated in a viewer context.
func resolveMeshPath(filename, urdfDir, packageRoot string) string {
	if rest, ok := strings.CutPrefix(filename, "package://"); ok {
		if packageRoot == "" {
			return ""
		}
		// strip the package token; the remainder is package-relative
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			rest = rest[i+1:]
		}
		candidate := filepath.Join(packageRoot, filepath.FromSlash(rest))
		if fileExists(candidate) {
			return candidate
		}
		return ""
	}
	if !filepath.IsAbs(filename) {
		if urdfDir == "" {
			return ""
		}
		candidate := filepath.Join(urdfDir, filepath.FromSlash(filename))
		if fileExists(candidate) {
			return candidate
		}
		return ""
	}
	if fileExists(filename) {
		return filename
	}
	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// NormalizePath canonicalizes a mesh path for equality comparison with
// externally loaded asset paths: absolute, forward slashes, lower case.
func NormalizePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return strings.ToLower(filepath.ToSlash(path))
}

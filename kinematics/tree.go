// Package kinematics resolves a parsed URDF model into a kinematic tree and
// computes world-space link transforms from joint values.
package kinematics

import (
	"github.com/hiwinstudio/urdfkit/urdf"
)

// Tree is the resolved traversal structure of a model: the root link, the
// child joints of every link, and the deterministic traversal orders. A Tree
// is immutable and may be reused across evaluations of the same model.
type Tree struct {
	// Root is the link never referenced as any joint's child. With zero or
	// several candidates a deterministic pick is made (first link in
	// declaration order) and a diagnostic recorded; viewers must keep
	// rendering a partial tree.
	Root string
	// LinkOrder is the breadth-first traversal order of reachable links.
	LinkOrder []string
	// JointOrder is the ordered list of movable joint names: breadth-first
	// from root, per-link joints in declaration order, fixed joints
	// traversed but not listed.
	JointOrder []string
	// Diagnostics holds non-fatal anomalies found while resolving.
	Diagnostics urdf.Diagnostics

	children map[string][]*urdf.Joint
}

// ResolveRoot determines the root link of the model: the unique link absent
// from the set of all joints' child references. Ties and the no-candidate
// case are resolved deterministically by link declaration order, surfaced as
// diagnostics, never as errors.
func ResolveRoot(model *urdf.Model) (string, urdf.Diagnostics) {
	var diags urdf.Diagnostics
	isChild := map[string]bool{}
	for _, joint := range model.Joints {
		isChild[joint.Child] = true
	}

	var candidates []string
	for _, link := range model.Links {
		if !isChild[link.Name] {
			candidates = append(candidates, link.Name)
		}
	}

	switch {
	case len(candidates) == 1:
		return candidates[0], diags
	case len(candidates) == 0:
		if len(model.Links) == 0 {
			diags.Add(urdf.DiagNoRoot, model.Name, "model has no links")
			return "", diags
		}
		diags.Add(urdf.DiagNoRoot, model.Name,
			"every link is some joint's child; falling back to first declared link %q", model.Links[0].Name)
		return model.Links[0].Name, diags
	default:
		diags.Add(urdf.DiagAmbiguousRoot, model.Name,
			"%d root candidates; picking first declared, %q", len(candidates), candidates[0])
		return candidates[0], diags
	}
}

// NewTree resolves the model into a Tree.
func NewTree(model *urdf.Model) *Tree {
	root, diags := ResolveRoot(model)
	tree := &Tree{
		Root:        root,
		Diagnostics: diags,
		children:    map[string][]*urdf.Joint{},
	}

	for _, joint := range model.Joints {
		if _, ok := model.Link(joint.Parent); !ok {
			tree.Diagnostics.Add(urdf.DiagDisconnectedSubtree, joint.Name,
				"parent link %q is not in the model; skipping joint", joint.Parent)
			continue
		}
		if _, ok := model.Link(joint.Child); !ok {
			tree.Diagnostics.Add(urdf.DiagDisconnectedSubtree, joint.Name,
				"child link %q is not in the model; skipping joint", joint.Child)
			continue
		}
		tree.children[joint.Parent] = append(tree.children[joint.Parent], joint)
	}

	if root == "" {
		return tree
	}

	// breadth-first; visited set guards malformed cyclic input
	visited := map[string]bool{root: true}
	queue := []string{root}
	for len(queue) > 0 {
		link := queue[0]
		queue = queue[1:]
		tree.LinkOrder = append(tree.LinkOrder, link)
		for _, joint := range tree.children[link] {
			if joint.Movable() {
				tree.JointOrder = append(tree.JointOrder, joint.Name)
			}
			if !visited[joint.Child] {
				visited[joint.Child] = true
				queue = append(queue, joint.Child)
			}
		}
	}
	return tree
}

// ChildJoints returns the joints whose parent is the given link, in
// declaration order.
func (t *Tree) ChildJoints(link string) []*urdf.Joint {
	return t.children[link]
}

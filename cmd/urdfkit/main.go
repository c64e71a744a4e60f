// urdfkit is a command line front end for the URDF forward-kinematics and
// trajectory packages: inspect a model, evaluate a pose, convert ROS joint
// trajectories to JSONL and pick frames out of them.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/edaniels/golog"

	"github.com/hiwinstudio/urdfkit/kinematics"
	"github.com/hiwinstudio/urdfkit/mesh"
	"github.com/hiwinstudio/urdfkit/rospose"
	"github.com/hiwinstudio/urdfkit/trajectory"
	"github.com/hiwinstudio/urdfkit/urdf"
)

type cli struct {
	Debug bool `help:"Enable debug logging."`

	Info    *infoCmd    `cmd:"" help:"Summarize a URDF model: links, joints, movable joint order."`
	FK      *fkCmd      `cmd:"" name:"fk" help:"Compute link poses for a joint configuration."`
	Convert *convertCmd `cmd:"" help:"Convert a ROS joint-state JSON file to a joint1..joint6 JSONL trajectory."`
	Play    *playCmd    `cmd:"" help:"Select one frame from a JSONL trajectory."`
}

type infoCmd struct {
	URDF string `arg:"" help:"Path to the .urdf file." type:"existingfile"`
}

func (c *infoCmd) Run(logger golog.Logger) error {
	model, err := urdf.ParseFile(c.URDF, urdf.ParseOptions{})
	if err != nil {
		return err
	}
	model.Diagnostics.Log(logger)
	tree := kinematics.NewTree(model)
	tree.Diagnostics.Log(logger)

	fmt.Printf("model: %s\n", model.Name)
	fmt.Printf("links: %d, joints: %d\n", len(model.Links), len(model.Joints))
	fmt.Printf("root: %s\n", tree.Root)
	fmt.Printf("joint order: %s\n", strings.Join(tree.JointOrder, ", "))
	return nil
}

type fkCmd struct {
	URDF    string    `arg:"" help:"Path to the .urdf file." type:"existingfile"`
	Joints  []float64 `help:"Up to six joint values, matching the movable joint order." placeholder:"J1,...,J6"`
	Degrees bool      `help:"Treat rotational joint values as degrees." default:"true" negatable:""`
	Meshes  string    `help:"Directory of STL assets to bind and place." type:"existingdir" optional:""`
}

func (c *fkCmd) Run(logger golog.Logger) error {
	model, err := urdf.ParseFile(c.URDF, urdf.ParseOptions{})
	if err != nil {
		return err
	}
	model.Diagnostics.Log(logger)

	tree := kinematics.NewTree(model)
	values := kinematics.SixJointValues(tree.JointOrder, c.Joints, c.Degrees)
	frames := kinematics.EvaluateTree(tree, values)
	frames.Diagnostics.Log(logger)

	for i, name := range frames.LinkNames {
		pose := frames.Transforms[i].Pose()
		fmt.Printf("%-20s origin(%8.3f %8.3f %8.3f)  x(%6.3f %6.3f %6.3f)  z(%6.3f %6.3f %6.3f)\n",
			name,
			pose.Origin.X, pose.Origin.Y, pose.Origin.Z,
			pose.AxisX.X, pose.AxisX.Y, pose.AxisX.Z,
			pose.AxisZ.X, pose.AxisZ.Y, pose.AxisZ.Z)
	}
	if eef, t, ok := frames.EndEffector(); ok {
		// model frames are in URDF units (meters); no rescale
		p := rospose.FromMetersTransform(t)
		fmt.Printf("eef: %s pose %v\n", eef, p.Values(false))
	}

	if c.Meshes != "" {
		index := mesh.NewIndex(logger)
		paths, meshes, err := index.LoadDir(c.Meshes)
		if err != nil {
			return err
		}
		placed := kinematics.AssembleGeometry(model, frames, kinematics.NewMeshIndex(paths, meshes))
		fmt.Printf("placed %d of %d discovered meshes\n", len(placed), len(paths))
	}
	return nil
}

type convertCmd struct {
	Input  string `arg:"" help:"ROS joint-state JSON file." type:"existingfile"`
	Output string `arg:"" optional:"" help:"Output JSONL path (default: input with .jsonl extension)."`
}

func (c *convertCmd) Run(logger golog.Logger) error {
	//nolint:gosec
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return err
	}
	records, err := trajectory.ParseFrames(data)
	if err != nil {
		return err
	}
	out := c.Output
	if out == "" {
		out = strings.TrimSuffix(c.Input, ".json") + ".jsonl"
	}
	if err := trajectory.WriteJSONLFile(out, records); err != nil {
		return err
	}
	logger.Infow("converted trajectory", "frames", len(records), "output", out)
	return nil
}

type playCmd struct {
	Path  string  `arg:"" help:"JSONL trajectory file." type:"existingfile"`
	Phase float64 `help:"Normalized position in [0,1] selecting the frame." default:"-1"`
	Index int     `help:"Frame index (used when --phase is not given)." default:"0"`
}

func (c *playCmd) Run(logger golog.Logger) error {
	records, err := trajectory.ReadJSONLFile(c.Path)
	if err != nil {
		return err
	}
	player := trajectory.NewPlayer(records)
	var record trajectory.Record
	var idx int
	if c.Phase >= 0 {
		record, idx = player.FrameAtPhase(c.Phase)
	} else {
		record, idx = player.Frame(c.Index)
	}
	fmt.Printf("frame %d of %d: %v\n", idx, player.Len(), record.Values())
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("urdfkit"),
		kong.Description("URDF forward kinematics and trajectory tools."),
		kong.UsageOnError(),
	)
	logger := golog.NewLogger("urdfkit")
	if c.Debug {
		logger = golog.NewDevelopmentLogger("urdfkit")
	}
	if err := ctx.Run(logger); err != nil {
		logger.Fatal(err)
	}
}

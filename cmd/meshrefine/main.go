// Command meshrefine is the driver surface: it loads a MeshLink
// constraints document, reads a VRML mesh, runs a refinement pass,
// and writes the refined mesh back out.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/unixpickle/meshrefine/geomkernel"
	"github.com/unixpickle/meshrefine/meshlink"
	"github.com/unixpickle/meshrefine/mesh"
	"github.com/unixpickle/meshrefine/queue"
	"github.com/unixpickle/meshrefine/refine"
	"github.com/unixpickle/meshrefine/vrml"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		meshLinkPath string
		threshold    float64
		passBudget   int
		byQuality    bool
	)

	cmd := &cobra.Command{
		Use:   "meshrefine <in.wrl> <out.wrl>",
		Short: "Refine a triangular surface mesh by neighbor-propagated edge splitting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := queue.OrderByLength
			if byQuality {
				policy = queue.OrderByQuality
			}
			return run(args[0], args[1], meshLinkPath, threshold, passBudget, policy)
		},
	}

	cmd.Flags().StringVar(&meshLinkPath, "meshlink", "", "path to a MeshLink constraints XML document (required)")
	cmd.Flags().Float64Var(&threshold, "threshold", 1.0, "minimum edge quality that triggers a split")
	cmd.Flags().IntVar(&passBudget, "passes", 1, "maximum number of refinement passes")
	cmd.Flags().BoolVar(&byQuality, "order-by-quality", false, "pop the highest-quality edge first instead of the shortest")
	cmd.MarkFlagRequired("meshlink")

	return cmd
}

func run(inPath, outPath, meshLinkPath string, threshold float64, passBudget int, policy queue.OrderPolicy) error {
	constraints, err := meshlink.LoadFile(meshLinkPath)
	if err != nil {
		return err
	}

	inFile, err := os.Open(inPath)
	if err != nil {
		return errors.Wrapf(err, "opening %s", inPath)
	}
	defer inFile.Close()

	vm, err := vrml.Read(inFile)
	if err != nil {
		return err
	}

	store := mesh.NewStore()
	store.Points = vm.Points
	store.Faces = make([]mesh.Face, len(vm.Faces))
	for i, nodes := range vm.Faces {
		face, err := meshFace(nodes)
		if err != nil {
			return errors.Wrapf(err, "face %d", i)
		}
		store.Faces[i] = face
	}
	store.MinAllowedEdgeLength = constraints.MinAllowedEdgeLength
	store.MaxAllowedTriAspectRatio = constraints.MaxAllowedTriAspectRatio
	store.SetMinIncludedAngle(constraints.MinAllowedTriIncludedAngle)

	driver := &refine.Driver{
		Store:     store,
		Threshold: threshold,
		Policy:    policy,
		// No associativity or geometry kernel is wired at the CLI
		// bootstrap level; a real driver program would construct
		// these from the MeshLink document's CAD references.
		Curvature:  geomkernel.EdgeCurvatureConfig{},
		PassBudget: passBudget,
	}
	res, err := driver.Run()
	if err != nil {
		return err
	}
	log.Printf("refine: %d passes, %d splits, %d faces, %d edges, %d curvature-constrained (avg span %.2f deg, max span %.2f deg)",
		res.Passes, res.Splits, res.Stats.NumFaces, res.Stats.NumEdges,
		res.Stats.NumConstrainedEdges, res.Stats.AvgCurveSpanDeg, res.Stats.MaxCurveSpanDeg)

	outFile, err := os.Create(outPath)
	if err != nil {
		return errors.Wrapf(err, "creating %s", outPath)
	}
	defer outFile.Close()

	out := &vrml.Mesh{Points: store.Points, Faces: make([][]int, len(store.Faces))}
	for i, f := range store.Faces {
		out.Faces[i] = append([]int(nil), f.Nodes[:f.NumNodes]...)
	}
	return vrml.Write(outFile, out)
}

func meshFace(nodes []int) (mesh.Face, error) {
	switch len(nodes) {
	case 3:
		return mesh.NewTriangle(nodes[0], nodes[1], nodes[2]), nil
	case 4:
		return mesh.NewQuad(nodes[0], nodes[1], nodes[2], nodes[3]), nil
	default:
		return mesh.Face{}, errors.Errorf("unsupported face node count %d", len(nodes))
	}
}

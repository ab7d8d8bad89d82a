package scene

import (
	"fmt"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
	"github.com/df07/go-tiled-pathtracer/pkg/geometry"
	"github.com/df07/go-tiled-pathtracer/pkg/loaders"
	"github.com/df07/go-tiled-pathtracer/pkg/material"
)

// meshHeight is the size the mesh is scaled to along its largest extent
const meshHeight = 250.0

// octahedron is used when no PLY file is configured
func octahedron() *loaders.PLYData {
	return &loaders.PLYData{
		Vertices: []core.Point{
			core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
			core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
			core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
		},
		Faces: []int{
			0, 4, 2, 0, 2, 5, 0, 5, 3, 0, 3, 4,
			1, 2, 4, 1, 5, 2, 1, 3, 5, 1, 4, 3,
		},
	}
}

// fitToFloor scales vertices uniformly so the largest extent is size and
// places the bottom center of their bounds at base
func fitToFloor(vertices []core.Point, size float64, base core.Point) []core.Point {
	if len(vertices) == 0 {
		return nil
	}
	lo, hi := vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo = core.NewVec3(min(lo.X, v.X), min(lo.Y, v.Y), min(lo.Z, v.Z))
		hi = core.NewVec3(max(hi.X, v.X), max(hi.Y, v.Y), max(hi.Z, v.Z))
	}

	extent := hi.Subtract(lo)
	largest := max(extent.X, extent.Y, extent.Z)
	scale := 1.0
	if largest > 0 {
		scale = size / largest
	}
	bottomCenter := core.NewVec3((lo.X+hi.X)/2, lo.Y, (lo.Z+hi.Z)/2)

	fitted := make([]core.Point, len(vertices))
	for i, v := range vertices {
		fitted[i] = v.Subtract(bottomCenter).Multiply(scale).Add(base)
	}
	return fitted
}

// NewMeshScene places a triangle mesh on the floor of the Cornell room.
// The mesh comes from opts.MeshPath when set.
func NewMeshScene(opts Options) (*Scene, error) {
	data := octahedron()
	if opts.MeshPath != "" {
		loaded, err := loaders.LoadPLY(opts.MeshPath)
		if err != nil {
			return nil, err
		}
		opts.logger().Printf("Loaded %s: %d vertices, %d triangles\n",
			opts.MeshPath, len(loaded.Vertices), loaded.TriangleCount())
		data = loaded
	}

	s := newScene("mesh", cornellCamera(opts))
	addCornellRoom(s.World)

	vertices := fitToFloor(data.Vertices, meshHeight, core.NewVec3(cornellBoxSize/2, 0, cornellBoxSize/2))
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)
	mesh, err := geometry.NewTriangleMesh(vertices, data.Faces, gold, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid mesh: %w", err)
	}
	s.World.Add(mesh)

	return s, nil
}

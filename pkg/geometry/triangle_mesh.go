package geometry

import (
	"fmt"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// TriangleMesh is a collection of triangles behind its own BVH
type TriangleMesh struct {
	triangles []core.Hittable
	bvh       *core.BVH
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation
type TriangleMeshOptions struct {
	Normals   []core.Point    // Optional per-triangle shading normals
	Materials []core.Material // Optional per-triangle materials
}

// NewTriangleMesh creates a mesh from vertices and face indices, where each
// group of 3 indices forms a triangle. options may be nil.
func NewTriangleMesh(vertices []core.Point, faces []int, material core.Material, options *TriangleMeshOptions) (*TriangleMesh, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face index count %d is not a multiple of 3", len(faces))
	}
	numTriangles := len(faces) / 3

	if options != nil {
		if options.Normals != nil && len(options.Normals) != numTriangles {
			return nil, fmt.Errorf("got %d normals for %d triangles", len(options.Normals), numTriangles)
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			return nil, fmt.Errorf("got %d materials for %d triangles", len(options.Materials), numTriangles)
		}
	}

	triangles := make([]core.Hittable, 0, numTriangles)
	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]
		for _, index := range []int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("triangle %d: vertex index %d out of range", i, index)
			}
		}

		triangleMaterial := material
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		if options != nil && options.Normals != nil {
			triangles = append(triangles, NewTriangleWithNormal(vertices[i0], vertices[i1], vertices[i2], options.Normals[i], triangleMaterial))
			continue
		}

		// Degenerate faces have no geometric normal
		if vertices[i1].Subtract(vertices[i0]).Cross(vertices[i2].Subtract(vertices[i0])).LengthSquared() == 0 {
			continue
		}
		triangles = append(triangles, NewTriangle(vertices[i0], vertices[i1], vertices[i2], triangleMaterial))
	}

	return &TriangleMesh{triangles: triangles, bvh: core.NewBVH(triangles)}, nil
}

// Hit tests if a ray intersects with any triangle in the mesh
func (tm *TriangleMesh) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	return tm.bvh.Hit(ray, rayT)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bvh.BoundingBox()
}

// TriangleCount returns the number of triangles in this mesh
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-tiled-pathtracer/pkg/core"
)

// PLYProperty describes one property of a PLY element
type PLYProperty struct {
	Name      string
	Type      string // Scalar type, or item type for lists
	IsList    bool
	CountType string // Type of the list length prefix
}

// PLYElement is a header element declaration such as "vertex" or "face"
type PLYElement struct {
	Name       string
	Count      int
	Properties []PLYProperty
}

// PLYHeader contains the parsed header of a PLY file
type PLYHeader struct {
	Format   string // "ascii", "binary_little_endian" or "binary_big_endian"
	Elements []PLYElement
}

// PLYData contains the triangle mesh loaded from a PLY file
type PLYData struct {
	Vertices []core.Point
	Normals  []core.Point // Per-vertex normals, empty when the file has none
	Faces    []int        // Triangle vertex indices, 3 per triangle
}

// TriangleCount returns the number of triangles in the mesh
func (d *PLYData) TriangleCount() int {
	return len(d.Faces) / 3
}

// LoadPLY loads a PLY mesh file
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PLY file: %w", err)
	}
	defer file.Close()

	data, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read PLY file %s: %w", filename, err)
	}
	return data, nil
}

// ReadPLY parses a PLY stream in ascii or binary encoding. Polygons with more
// than three vertices are split into triangle fans.
func ReadPLY(r io.Reader) (*PLYData, error) {
	reader := bufio.NewReader(r)

	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PLY header: %w", err)
	}

	var values plyValueReader
	switch header.Format {
	case "ascii":
		values = newASCIIValueReader(reader)
	case "binary_little_endian":
		values = &binaryValueReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryValueReader{r: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.Format)
	}

	data := &PLYData{}
	for _, element := range header.Elements {
		for i := 0; i < element.Count; i++ {
			if err := readPLYElement(values, element, data); err != nil {
				return nil, fmt.Errorf("%s %d: %w", element.Name, i, err)
			}
		}
	}

	for _, index := range data.Faces {
		if index < 0 || index >= len(data.Vertices) {
			return nil, fmt.Errorf("face references vertex %d of %d", index, len(data.Vertices))
		}
	}

	return data, nil
}

func parsePLYHeader(reader *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}

	line, err := reader.ReadString('\n')
	if err != nil || strings.TrimSpace(line) != "ply" {
		return nil, fmt.Errorf("missing ply magic")
	}

	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("error reading header: %w", err)
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "end_header":
			if header.Format == "" {
				return nil, fmt.Errorf("header has no format line")
			}
			return header, nil
		case "format":
			if len(parts) < 2 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.Format = parts[1]
		case "comment", "obj_info":
		case "element":
			if len(parts) != 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			header.Elements = append(header.Elements, PLYElement{Name: parts[1], Count: count})
		case "property":
			if len(header.Elements) == 0 {
				return nil, fmt.Errorf("property before any element")
			}
			property, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			last := &header.Elements[len(header.Elements)-1]
			last.Properties = append(last.Properties, property)
		default:
			return nil, fmt.Errorf("unknown header keyword %q", parts[0])
		}
	}
}

func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) >= 1 && parts[0] == "list" {
		if len(parts) != 4 {
			return PLYProperty{}, fmt.Errorf("invalid list property definition")
		}
		return PLYProperty{Name: parts[3], Type: parts[2], IsList: true, CountType: parts[1]}, nil
	}
	if len(parts) != 2 {
		return PLYProperty{}, fmt.Errorf("invalid property definition")
	}
	return PLYProperty{Name: parts[1], Type: parts[0]}, nil
}

func readPLYElement(values plyValueReader, element PLYElement, data *PLYData) error {
	var x, y, z, nx, ny, nz float64
	hasNormal := false

	for _, property := range element.Properties {
		if property.IsList {
			count, err := values.next(property.CountType)
			if err != nil {
				return err
			}
			indices := make([]int, int(count))
			for i := range indices {
				v, err := values.next(property.Type)
				if err != nil {
					return err
				}
				indices[i] = int(v)
			}
			if element.Name == "face" && (property.Name == "vertex_indices" || property.Name == "vertex_index") {
				// Triangle fan around the first vertex
				for i := 1; i+1 < len(indices); i++ {
					data.Faces = append(data.Faces, indices[0], indices[i], indices[i+1])
				}
			}
			continue
		}

		v, err := values.next(property.Type)
		if err != nil {
			return err
		}
		if element.Name != "vertex" {
			continue
		}
		switch property.Name {
		case "x":
			x = v
		case "y":
			y = v
		case "z":
			z = v
		case "nx":
			nx, hasNormal = v, true
		case "ny":
			ny = v
		case "nz":
			nz = v
		}
	}

	if element.Name == "vertex" {
		data.Vertices = append(data.Vertices, core.NewVec3(x, y, z))
		if hasNormal {
			data.Normals = append(data.Normals, core.NewVec3(nx, ny, nz))
		}
	}
	return nil
}

// plyValueReader reads one scalar of the given PLY type as float64
type plyValueReader interface {
	next(typ string) (float64, error)
}

type asciiValueReader struct {
	scanner *bufio.Scanner
}

func newASCIIValueReader(r io.Reader) *asciiValueReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &asciiValueReader{scanner: scanner}
}

func (a *asciiValueReader) next(typ string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	v, err := strconv.ParseFloat(a.scanner.Text(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", typ, a.scanner.Text(), err)
	}
	return v, nil
}

type binaryValueReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryValueReader) next(typ string) (float64, error) {
	size, err := plyTypeSize(typ)
	if err != nil {
		return 0, err
	}
	buf := b.buf[:size]
	if _, err := io.ReadFull(b.r, buf); err != nil {
		return 0, err
	}

	switch typ {
	case "char", "int8":
		return float64(int8(buf[0])), nil
	case "uchar", "uint8":
		return float64(buf[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(buf))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(buf)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(buf))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(buf)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(buf))), nil
	default: // double, float64
		return math.Float64frombits(b.order.Uint64(buf)), nil
	}
}

func plyTypeSize(typ string) (int, error) {
	switch typ {
	case "char", "int8", "uchar", "uint8":
		return 1, nil
	case "short", "int16", "ushort", "uint16":
		return 2, nil
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4, nil
	case "double", "float64":
		return 8, nil
	}
	return 0, fmt.Errorf("unknown PLY type %q", typ)
}

package engine

import "fmt"

// Shape identifies one of the seven piece shapes.
type Shape uint8

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of playable shapes.
const ShapeCount = 7

// RotationStates is the number of orientations: spawn, right, 180 and left.
const RotationStates = 4

var shapeNames = [...]string{"-", "I", "O", "T", "S", "Z", "J", "L"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// ShapeDef is the immutable definition of a shape in its spawn orientation.
type ShapeDef struct {
	Shape Shape
	Size  RotationSize
	Cells Cells
	// kicks is nil for shapes that never rotate.
	kicks *KickTable
}

// Kicks returns a copy of the shape's kick table. ok is false for shapes
// that never rotate.
func (d ShapeDef) Kicks() (table KickTable, ok bool) {
	if d.kicks == nil {
		return KickTable{}, false
	}
	return *d.kicks, true
}

var catalog = [ShapeCount]ShapeDef{
	// ....
	// ####
	{Shape: ShapeI, Size: Rotation4x4, Cells: 0b0000_0000_1111_0000, kicks: &kicksI},
	// ##
	// ##
	{Shape: ShapeO, Size: RotationNone, Cells: 0b0000_0000_0011_0011},
	// .#.
	// ###
	{Shape: ShapeT, Size: Rotation3x3, Cells: 0b0000_0000_0111_0010, kicks: &kicksJLSTZ},
	// .##
	// ##.
	{Shape: ShapeS, Size: Rotation3x3, Cells: 0b0000_0000_0011_0110, kicks: &kicksJLSTZ},
	// ##.
	// .##
	{Shape: ShapeZ, Size: Rotation3x3, Cells: 0b0000_0000_0110_0011, kicks: &kicksJLSTZ},
	// #..
	// ###
	{Shape: ShapeJ, Size: Rotation3x3, Cells: 0b0000_0000_0111_0001, kicks: &kicksJLSTZ},
	// ..#
	// ###
	{Shape: ShapeL, Size: Rotation3x3, Cells: 0b0000_0000_0111_0100, kicks: &kicksJLSTZ},
}

// Shapes lists every playable shape in catalog order.
func Shapes() [ShapeCount]Shape {
	var out [ShapeCount]Shape
	for i := range catalog {
		out[i] = catalog[i].Shape
	}
	return out
}

// Lookup returns the definition for shape. It panics on an unknown shape,
// which can only come from a programming error.
func Lookup(shape Shape) ShapeDef {
	if shape < ShapeI || shape > ShapeL {
		panic(fmt.Sprintf("engine: unknown shape %d", uint8(shape)))
	}
	return catalog[shape-ShapeI]
}

package linmath

import "fmt"

// EulerOrder selects one of the six Tait-Bryan axis sequences. The letters
// name the intrinsic application order: EulerZXY rotates about z, then the
// rotated x, then the rotated y. The i-th component of an Euler angle
// vector always belongs to the i-th letter of the order.
type EulerOrder int

const (
	EulerZYX EulerOrder = iota
	EulerZXY
	EulerYXZ
	EulerYZX
	EulerXYZ
	EulerXZY
)

const (
	axisX = 0
	axisY = 1
	axisZ = 2
)

// axes returns the axis indices of the sequence, first letter first.
// Panics for a value outside the enum.
func (o EulerOrder) axes() [3]int {
	switch o {
	case EulerZYX:
		return [3]int{axisZ, axisY, axisX}
	case EulerZXY:
		return [3]int{axisZ, axisX, axisY}
	case EulerYXZ:
		return [3]int{axisY, axisX, axisZ}
	case EulerYZX:
		return [3]int{axisY, axisZ, axisX}
	case EulerXYZ:
		return [3]int{axisX, axisY, axisZ}
	case EulerXZY:
		return [3]int{axisX, axisZ, axisY}
	}
	panic(fmt.Sprintf("linmath: unknown EulerOrder %d", int(o)))
}

func (o EulerOrder) String() string {
	switch o {
	case EulerZYX:
		return "ZYX"
	case EulerZXY:
		return "ZXY"
	case EulerYXZ:
		return "YXZ"
	case EulerYZX:
		return "YZX"
	case EulerXYZ:
		return "XYZ"
	case EulerXZY:
		return "XZY"
	}
	return fmt.Sprintf("EulerOrder(%d)", int(o))
}

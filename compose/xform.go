package compose

import (
	"strings"

	"github.com/achilleasa/usdindex/coord"
	"github.com/achilleasa/usdindex/types"
	"github.com/achilleasa/usdindex/usd"
)

// LocalTransform builds a prim's composed local transform in the target
// frame by walking xformOpOrder and converting each op's authored value
// with the coordinate converter before folding it into the product.
// Prims without an xformOpOrder (or an empty one) are identity.
func LocalTransform(prim *usd.Prim) types.Mat4 {
	order, ok := prim.Attributes["xformOpOrder"].TokenArray()
	if !ok || len(order) == 0 {
		return types.Ident4()
	}

	ops := make([]types.Mat4, 0, len(order))
	for _, opName := range order {
		m, ok := opMatrix(prim, opName)
		if !ok {
			continue
		}
		ops = append(ops, m)
	}
	return coord.ComposeOps(ops)
}

func opMatrix(prim *usd.Prim, opName string) (types.Mat4, bool) {
	val, ok := prim.Attr(opName)
	if !ok {
		return types.Mat4{}, false
	}

	switch {
	case opName == "xformOp:translate" || strings.HasPrefix(opName, "xformOp:translate:"):
		v, ok := val.Vec3()
		if !ok {
			return types.Mat4{}, false
		}
		return coord.TranslateOp(coord.Translation(v)), true

	case opName == "xformOp:scale" || strings.HasPrefix(opName, "xformOp:scale:"):
		v, ok := val.Vec3()
		if !ok {
			return types.Mat4{}, false
		}
		return coord.ScaleOp(coord.Scale(v)), true

	case opName == "xformOp:rotateXYZ" || strings.HasPrefix(opName, "xformOp:rotateXYZ:"):
		v, ok := val.Vec3()
		if !ok {
			return types.Mat4{}, false
		}
		// Build in the source frame then remap the resulting basis,
		// since the three Euler angles don't decompose into
		// independently-convertible axis rotations.
		src := types.RotateXYZ(v[0], v[1], v[2])
		return basisToMat4(coord.ConvertRotationBasis(upperLeft3(src))), true

	case opName == "xformOp:transform" || strings.HasPrefix(opName, "xformOp:transform:"):
		parsed, ok := val.Matrix()
		if !ok {
			return types.Mat4{}, false
		}
		// The literal is stored row by row as authored (row-vector
		// convention, translation in the last row); transpose it into
		// the column-vector form Decompose expects.
		var m types.Mat4
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				m[c*4+r] = parsed[r*4+c]
			}
		}
		translation, rotation, scale := coord.Decompose(m)
		convertedRotation := coord.ConvertRotationBasis(rotation)
		return coord.Recompose(coord.Translation(translation), convertedRotation, coord.Scale(scale)), true

	default:
		return types.Mat4{}, false
	}
}

func upperLeft3(m types.Mat4) types.Mat3 {
	return types.Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func basisToMat4(r types.Mat3) types.Mat4 {
	return types.Mat4{
		r[0], r[1], r[2], 0,
		r[3], r[4], r[5], 0,
		r[6], r[7], r[8], 0,
		0, 0, 0, 1,
	}
}

package usd

import "github.com/achilleasa/usdindex/types"

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindBool ValueKind = iota
	KindValueInt
	KindValueFloat
	KindValueDouble
	KindValueString
	KindValueToken
	KindValueAssetPath
	KindValueVec2
	KindValueVec3
	KindValueVec4
	KindValueMatrix
	KindBoolArray
	KindIntArray
	KindFloatArray
	KindDoubleArray
	KindStringArray
	KindTokenArray
	KindAssetPathArray
	KindVec2Array
	KindVec3Array
	KindVec4Array
	KindMatrixArray
)

// Value is a tagged variant over the scene language's scalar, vector,
// matrix and homogeneous-array types. Attribute lookup is always by name
// and expected ValueKind; a mismatch is treated as "attribute absent"
// rather than an error.
type Value struct {
	kind ValueKind

	boolVal   bool
	intVal    int32
	floatVal  float32
	doubleVal float64
	strVal    string
	vec2Val   types.Vec2
	vec3Val   types.Vec3
	vec4Val   types.Vec4
	matVal    types.Mat4

	boolArr   []bool
	intArr    []int32
	floatArr  []float32
	doubleArr []float64
	strArr    []string
	vec2Arr   []types.Vec2
	vec3Arr   []types.Vec3
	vec4Arr   []types.Vec4
	matArr    []types.Mat4
}

// Kind returns the tag of the stored variant.
func (v Value) Kind() ValueKind { return v.kind }

func BoolValue(b bool) Value        { return Value{kind: KindBool, boolVal: b} }
func IntValue(i int32) Value        { return Value{kind: KindValueInt, intVal: i} }
func FloatValue(f float32) Value    { return Value{kind: KindValueFloat, floatVal: f} }
func DoubleValue(f float64) Value   { return Value{kind: KindValueDouble, doubleVal: f} }
func StringValue(s string) Value    { return Value{kind: KindValueString, strVal: s} }
func TokenValue(s string) Value     { return Value{kind: KindValueToken, strVal: s} }
func AssetPathValue(s string) Value { return Value{kind: KindValueAssetPath, strVal: s} }
func Vec2Value(v types.Vec2) Value  { return Value{kind: KindValueVec2, vec2Val: v} }
func Vec3Value(v types.Vec3) Value  { return Value{kind: KindValueVec3, vec3Val: v} }
func Vec4Value(v types.Vec4) Value  { return Value{kind: KindValueVec4, vec4Val: v} }
func MatrixValue(m types.Mat4) Value {
	return Value{kind: KindValueMatrix, matVal: m}
}

func BoolArrayValue(v []bool) Value        { return Value{kind: KindBoolArray, boolArr: v} }
func IntArrayValue(v []int32) Value        { return Value{kind: KindIntArray, intArr: v} }
func FloatArrayValue(v []float32) Value    { return Value{kind: KindFloatArray, floatArr: v} }
func DoubleArrayValue(v []float64) Value   { return Value{kind: KindDoubleArray, doubleArr: v} }
func StringArrayValue(v []string) Value    { return Value{kind: KindStringArray, strArr: v} }
func TokenArrayValue(v []string) Value     { return Value{kind: KindTokenArray, strArr: v} }
func AssetPathArrayValue(v []string) Value { return Value{kind: KindAssetPathArray, strArr: v} }
func Vec2ArrayValue(v []types.Vec2) Value  { return Value{kind: KindVec2Array, vec2Arr: v} }
func Vec3ArrayValue(v []types.Vec3) Value  { return Value{kind: KindVec3Array, vec3Arr: v} }
func Vec4ArrayValue(v []types.Vec4) Value  { return Value{kind: KindVec4Array, vec4Arr: v} }
func MatrixArrayValue(v []types.Mat4) Value {
	return Value{kind: KindMatrixArray, matArr: v}
}

// Bool returns the stored bool and whether the value actually holds that kind.
func (v Value) Bool() (bool, bool) { return v.boolVal, v.kind == KindBool }

func (v Value) Int() (int32, bool) { return v.intVal, v.kind == KindValueInt }

func (v Value) Float() (float32, bool) { return v.floatVal, v.kind == KindValueFloat }

func (v Value) Double() (float64, bool) { return v.doubleVal, v.kind == KindValueDouble }

func (v Value) String() (string, bool) { return v.strVal, v.kind == KindValueString }

func (v Value) Token() (string, bool) { return v.strVal, v.kind == KindValueToken }

func (v Value) AssetPath() (string, bool) { return v.strVal, v.kind == KindValueAssetPath }

func (v Value) Vec2() (types.Vec2, bool) { return v.vec2Val, v.kind == KindValueVec2 }

func (v Value) Vec3() (types.Vec3, bool) { return v.vec3Val, v.kind == KindValueVec3 }

func (v Value) Vec4() (types.Vec4, bool) { return v.vec4Val, v.kind == KindValueVec4 }

func (v Value) Matrix() (types.Mat4, bool) { return v.matVal, v.kind == KindValueMatrix }

func (v Value) BoolArray() ([]bool, bool) { return v.boolArr, v.kind == KindBoolArray }

func (v Value) IntArray() ([]int32, bool) { return v.intArr, v.kind == KindIntArray }

func (v Value) FloatArray() ([]float32, bool) { return v.floatArr, v.kind == KindFloatArray }

func (v Value) DoubleArray() ([]float64, bool) { return v.doubleArr, v.kind == KindDoubleArray }

func (v Value) StringArray() ([]string, bool) { return v.strArr, v.kind == KindStringArray }

func (v Value) TokenArray() ([]string, bool) { return v.strArr, v.kind == KindTokenArray }

func (v Value) AssetPathArray() ([]string, bool) {
	return v.strArr, v.kind == KindAssetPathArray
}

func (v Value) Vec2Array() ([]types.Vec2, bool) { return v.vec2Arr, v.kind == KindVec2Array }

func (v Value) Vec3Array() ([]types.Vec3, bool) { return v.vec3Arr, v.kind == KindVec3Array }

func (v Value) Vec4Array() ([]types.Vec4, bool) { return v.vec4Arr, v.kind == KindVec4Array }

func (v Value) MatrixArray() ([]types.Mat4, bool) { return v.matArr, v.kind == KindMatrixArray }

// Len returns the element count of an array-kind value, or -1 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindBoolArray:
		return len(v.boolArr)
	case KindIntArray:
		return len(v.intArr)
	case KindFloatArray:
		return len(v.floatArr)
	case KindDoubleArray:
		return len(v.doubleArr)
	case KindStringArray, KindTokenArray, KindAssetPathArray:
		return len(v.strArr)
	case KindVec2Array:
		return len(v.vec2Arr)
	case KindVec3Array:
		return len(v.vec3Arr)
	case KindVec4Array:
		return len(v.vec4Arr)
	case KindMatrixArray:
		return len(v.matArr)
	default:
		return -1
	}
}

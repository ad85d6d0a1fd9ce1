package types

// Values closer together than this threshold are treated as equal by the
// vector/quaternion/matrix normalization helpers.
const floatCmpEpsilon = 1e-6

// Package linmath provides fixed-dimension linear-algebra primitives for
// real-time graphics code: Vec2/Vec3/Vec4, column-major Mat2/Mat3/Mat4,
// and a rotation Quat with Euler-sequence conversions.
//
// All types are plain value aggregates (stack-allocated, copied by value);
// operations return new values and never mutate their operands. Misuse that
// cannot produce a meaningful result (a singular matrix inverse, an
// out-of-range Row/Col index, a non-unit rotation axis, an unknown Euler
// order) panics immediately. Degenerate-but-recoverable inputs (zero-length
// vectors, near-identity axis extraction) take explicit fallback branches
// instead of propagating NaN; see NormalizeSafe, QuatFromScaledAxis and
// Quat.AxisAngle.
package linmath

// Package packaging decides whether a product fits exactly in the fixed
// packaging.
//
// A product height is validated once, when a Height is constructed. After
// that the value is guaranteed non-zero, so Fits divides by it without any
// further checks.
package packaging

package bisector

// Helpers for the external bisector_test package.
var (
	AssertEquidistant  = assertEquidistant
	AssertPointOnRight = assertPointOnRight
)

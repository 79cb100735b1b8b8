package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"fill":        fillCases,
	"precision":   precisionCases,
	"clip":        clipCases,
	"cull":        cullCases,
	"depth":       depthCases,
	"perspective": perspectiveCases,
	"wireframe":   wireframeCases,
	"large":       largeCases,
}

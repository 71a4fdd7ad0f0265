package deps

import "strings"

// constraintMarkers are the characters of a version comparison operator
// ("=", "<", ">", "<=", ">=").
const constraintMarkers = "=<>"

// ConstrainedDep is a dependency that was left out of the graph because it
// carries a version constraint.
type ConstrainedDep struct {
	Package string `json:"package"` // Package declaring the dependency
	Raw     string `json:"raw"`     // Dependency string as declared
}

// IsConstrained reports whether dep embeds a version constraint,
// as in "python>=3.10" or "glibc=2.38".
func IsConstrained(dep string) bool {
	return strings.ContainsAny(dep, constraintMarkers)
}

// splitDependencies separates the dependencies of p into plain names,
// deduplicated in declaration order, and constrained entries.
func splitDependencies(p *Package) (names, constrained []string) {
	seen := make(map[string]bool, len(p.Dependencies))
	for _, dep := range p.Dependencies {
		dep = strings.TrimSpace(dep)
		switch {
		case dep == "":
		case IsConstrained(dep):
			constrained = append(constrained, dep)
		case !seen[dep]:
			seen[dep] = true
			names = append(names, dep)
		}
	}
	return names, constrained
}

package dag

// FindCycle returns the nodes of one directed cycle in g, or nil if g is
// acyclic. The cycle is listed in edge order starting at the node where it
// was entered: for a -> b -> c -> a the result is [a b c].
//
// The search visits nodes in insertion order, so the reported cycle is
// stable for a given graph.
func FindCycle(g *DAG) []string {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, g.NodeCount())
	var stack, cycle []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		color[id] = gray
		stack = append(stack, id)
		for _, child := range g.Children(id) {
			switch color[child] {
			case white:
				if dfs(child) {
					return true
				}
			case gray:
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == child {
						cycle = append([]string(nil), stack[i:]...)
						break
					}
				}
				return true
			}
		}
		stack = stack[:len(stack)-1]
		color[id] = black
		return false
	}

	for _, id := range NodeIDs(g.order) {
		if color[id] == white && dfs(id) {
			return cycle
		}
	}
	return nil
}

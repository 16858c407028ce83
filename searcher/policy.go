package searcher

import "math"

// DefaultExplorationConstant is the UCB1 exploration constant used when no
// override is configured.
const DefaultExplorationConstant = math.Sqrt2

// ucb1 scores one child for selection:
//
//	UCB1 = v/n + c*sqrt(ln(N+1)/(n+1))
//
// where N is the parent's visit count. Unvisited children score +Inf so each
// child is tried at least once before exploitation begins.
func ucb1(value float64, visits int, c float64, parentVisits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	exploit := value / float64(visits)
	explore := c * math.Sqrt(math.Log(float64(parentVisits)+1)/float64(visits+1))
	return exploit + explore
}

// pickChild returns the child of n with the highest UCB1 score. Ties resolve
// to the first-inserted child, which keeps selection deterministic for a
// fixed tree and fixed scores.
func (s *Searcher) pickChild(n *node) NodeID {
	best := NoNode
	bestScore := math.Inf(-1)
	for _, id := range n.children {
		child := s.tree.get(id)
		score := ucb1(child.value, child.visits, s.exploration, n.visits)
		if score > bestScore {
			bestScore = score
			best = id
		}
	}
	return best
}

// selectTarget walks from the root toward the next expansion target,
// descending into the best-scoring child of each fully expanded node. The
// descent stops at a node that is terminal, has no children yet, or has
// fewer children than the expansion width.
func (s *Searcher) selectTarget(root NodeID) NodeID {
	id := root
	for {
		n := s.tree.get(id)
		if n.terminal || len(n.children) < s.width {
			return id
		}
		id = s.pickChild(n)
	}
}

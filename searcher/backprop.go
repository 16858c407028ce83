package searcher

// backpropagate credits one evaluation to the evaluated node and every
// ancestor up to the root: each gets exactly one visit increment and the
// score added to its cumulative value.
func (s *Searcher) backpropagate(id NodeID, score float64) error {
	chain, err := s.tree.ancestors(id)
	if err != nil {
		return err
	}
	for _, nid := range chain {
		n := s.tree.get(nid)
		n.visits++
		n.value += score
	}
	return nil
}

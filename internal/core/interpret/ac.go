package interpret

// termAutomaton is an Aho-Corasick matcher over the lowercased byte form of every
// field term. The winning field is the lowest declaration index among all terms
// present anywhere in the command, not the leftmost occurrence, so every match has
// to be seen; one pass reports them all instead of one substring search per term

type acNode struct {
	// next[b] = child state or -1
	next   [256]int
	fail   int
	output []int // term ids ending here
}

type termAutomaton struct {
	nodes []acNode
}

func newTermAutomaton() *termAutomaton {
	a := &termAutomaton{}
	a.nodes = append(a.nodes, newNode())
	return a
}

func newNode() acNode {
	var n acNode
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

// Add inserts term under id; empty terms are ignored
func (a *termAutomaton) Add(term string, id int) {
	if term == "" {
		return
	}
	state := 0
	for i := 0; i < len(term); i++ {
		b := term[i]
		nxt := a.nodes[state].next[b]
		if nxt == -1 {
			nxt = len(a.nodes)
			a.nodes[state].next[b] = nxt
			a.nodes = append(a.nodes, newNode())
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, id)
}

// Build computes failure links breadth first and merges outputs along them
func (a *termAutomaton) Build() {
	q := make([]int, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].next[b]; s != -1 {
			a.nodes[s].fail = 0
			q = append(q, s)
		}
	}

	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := a.nodes[r].next[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].next[b] == -1 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].next[b]; nxt != -1 {
				a.nodes[s].fail = nxt
			} else {
				a.nodes[s].fail = 0
			}
			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

// Scan calls fn with the id of every term occurrence in text.
// Returning false from fn stops the scan
func (a *termAutomaton) Scan(text string, fn func(id int) bool) {
	state := 0
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && a.nodes[state].next[b] == -1 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].next[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			if !fn(id) {
				return
			}
		}
	}
}

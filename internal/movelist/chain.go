package movelist

import (
	"strings"

	"github.com/FottenSC/FrameData/internal/wikitext"
)

// refEdgePrefix keys {{MoveInherit}} occurrences that name a parent but
// no child. They are kept for reference but never traversed.
const refEdgePrefix = "ref:"

// node is one parsed template fragment, keyed by its id parameter.
type node struct {
	id     string
	params map[string]string
	stub   bool
}

// chain is an ordered walk from a root node to its terminal node.
type chain struct {
	links []*node
}

func (c *chain) root() *node     { return c.links[0] }
func (c *chain) terminal() *node { return c.links[len(c.links)-1] }

// command concatenates the input fragments of every link. Links beyond
// the root are prefixed with a comma unless the fragment is empty or
// already starts with one; a leading comma on the result is stripped.
func (c *chain) command() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(c.root().params["input"]))
	for _, link := range c.links[1:] {
		frag := strings.TrimSpace(link.params["input"])
		if frag == "" {
			continue
		}
		if !strings.HasPrefix(frag, ",") {
			b.WriteByte(',')
		}
		b.WriteString(frag)
	}
	return strings.TrimSpace(strings.TrimPrefix(b.String(), ","))
}

// effective merges the chain's parameters root-first: a link overrides a
// field only when it gives a non-empty value, so frame data the terminal
// link leaves unspecified falls back through the chain. Notes and input
// are accumulated elsewhere and never read from this merge.
func (c *chain) effective() map[string]string {
	merged := make(map[string]string)
	for _, link := range c.links {
		for key, value := range link.params {
			if value != "" {
				merged[key] = value
			}
		}
	}
	return merged
}

// collect parses every move and query template into an id-keyed node map.
// The returned order preserves first-appearance document order; a later
// definition of the same id overwrites the earlier node but keeps its
// position, so resolution stays deterministic. Query references become
// stub nodes that concrete definitions replace.
func (p *Parser) collect(text string) (map[string]*node, []string) {
	nodes := make(map[string]*node)
	var order []string

	insert := func(n *node) {
		if existing, ok := nodes[n.id]; ok {
			if !existing.stub && !n.stub {
				p.log.Debug("duplicate move id, last definition wins", "id", n.id)
			}
			if n.stub {
				// A reference never shadows a concrete definition.
				return
			}
			nodes[n.id] = n
			return
		}
		nodes[n.id] = n
		order = append(order, n.id)
	}

	for _, raw := range wikitext.FindTemplates(text, p.cfg.QueryTemplate) {
		parts := wikitext.SplitParams(raw)
		if len(parts) == 0 || parts[0] == "" {
			continue
		}
		id := parts[0]
		input := ""
		if dash := strings.LastIndexByte(id, '-'); dash >= 0 {
			input = id[dash+1:]
		}
		insert(&node{
			id: id,
			params: map[string]string{
				"id":    id,
				"input": input,
				"name":  "Referenced Move " + id,
			},
			stub: true,
		})
	}

	for _, raw := range wikitext.FindTemplates(text, p.cfg.MoveTemplate) {
		params, id := wikitext.ParseParams(raw)
		if id == "" {
			p.log.Warn("move template without id, skipping", "params", len(params))
			continue
		}
		insert(&node{id: id, params: params})
	}

	return nodes, order
}

// link parses inheritance templates into a child-to-parent map. The first
// positional parameter names the parent; an id parameter names the child.
func (p *Parser) link(text string) map[string]string {
	edges := make(map[string]string)
	for _, raw := range wikitext.FindTemplates(text, p.cfg.InheritTemplate) {
		parent, child := "", ""
		for _, part := range wikitext.SplitParams(raw) {
			if eq := strings.IndexByte(part, '='); eq >= 0 {
				key := strings.ToLower(strings.TrimSpace(part[:eq]))
				if key == "id" {
					child = strings.TrimSpace(part[eq+1:])
				}
				continue
			}
			if parent == "" {
				parent = part
			}
		}
		if parent == "" {
			continue
		}
		if child == "" {
			edges[refEdgePrefix+parent] = parent
			continue
		}
		edges[child] = parent
	}
	return edges
}

// resolveChains builds the node and edge maps for a document and walks
// every root to its terminal. All per-document state is local; nothing
// survives the call.
func (p *Parser) resolveChains(text string) []*chain {
	nodes, order := p.collect(text)
	edges := p.link(text)

	// A node's parent comes from an inheritance edge, or from its own
	// parent parameter. Edges to identifiers that were never defined are
	// inert: the child stays a root.
	parentOf := func(n *node) string {
		parent, ok := edges[n.id]
		if !ok {
			parent = n.params["parent"]
		}
		if parent == "" || parent == n.id {
			return ""
		}
		if _, defined := nodes[parent]; !defined {
			p.log.Debug("inherit edge to undefined parent", "id", n.id, "parent", parent)
			return ""
		}
		return parent
	}

	// First child in document order wins; extra children of the same
	// parent are a known data-quality issue in the source.
	childOf := make(map[string]string)
	for _, id := range order {
		parent := parentOf(nodes[id])
		if parent == "" {
			continue
		}
		if first, ok := childOf[parent]; ok {
			p.log.Warn("move has multiple children, keeping first",
				"parent", parent, "kept", first, "dropped", id)
			continue
		}
		childOf[parent] = id
	}

	processed := make(map[string]bool)
	walk := func(id string) *chain {
		c := &chain{links: []*node{nodes[id]}}
		processed[id] = true
		inChain := map[string]bool{id: true}

		cur := id
		for {
			next, ok := childOf[cur]
			if !ok {
				break
			}
			if inChain[next] {
				p.log.Warn("cycle in move chain, truncating", "id", next)
				break
			}
			if processed[next] {
				break
			}
			c.links = append(c.links, nodes[next])
			processed[next] = true
			inChain[next] = true
			cur = next
		}
		return c
	}

	var chains []*chain
	for _, id := range order {
		if processed[id] {
			continue
		}
		if parentOf(nodes[id]) != "" {
			// A traced child; its root's walk consumes it.
			continue
		}
		chains = append(chains, walk(id))
	}

	// In a cycle every node has a parent, so the pass above sees no root.
	// Sweep the leftovers so no move is lost; the walk's in-chain guard
	// truncates at the wrap-around.
	for _, id := range order {
		if processed[id] {
			continue
		}
		chains = append(chains, walk(id))
	}
	return chains
}

package depsort

import (
	"container/heap"
	"fmt"

	"github.com/weaver-go/weaver/pkg/weaver/entity"
)

// graph is the index form of one input: deps[i] are the indices i depends
// on, dependents[i] the indices that depend on i, both in first-seen order.
type graph struct {
	entities   []entity.Entity
	index      map[string]int
	deps       [][]int
	dependents [][]int
}

func build(entities []entity.Entity) (*graph, error) {
	g := &graph{
		entities:   entities,
		index:      make(map[string]int, len(entities)),
		deps:       make([][]int, len(entities)),
		dependents: make([][]int, len(entities)),
	}
	for i, e := range entities {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("weaver/depsort: entity at index %d: %w", i, err)
		}
		if _, dup := g.index[e.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEntity, e.Name)
		}
		g.index[e.Name] = i
	}
	for i, e := range entities {
		for _, name := range e.Requires() {
			j, ok := g.index[name]
			if !ok {
				return nil, &MissingDependencyError{Dependent: e.Name, Missing: name}
			}
			g.deps[i] = append(g.deps[i], j)
			g.dependents[j] = append(g.dependents[j], i)
		}
	}
	return g, nil
}

// Sort returns entities in dependency order. The input slice is not
// modified.
func Sort(entities []entity.Entity) ([]entity.Entity, error) {
	g, err := build(entities)
	if err != nil {
		return nil, err
	}
	order, err := g.kahn()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Entity, len(order))
	for i, idx := range order {
		out[i] = entities[idx]
	}
	return out, nil
}

// Stages groups entity names by depth: stage 0 holds units without
// dependencies, stage n units whose deepest dependency is in stage n-1.
// Names inside a stage keep input order.
func Stages(entities []entity.Entity) ([][]string, error) {
	g, err := build(entities)
	if err != nil {
		return nil, err
	}
	order, err := g.kahn()
	if err != nil {
		return nil, err
	}
	depth := make([]int, len(entities))
	maxDepth := 0
	for _, i := range order {
		for _, d := range g.deps[i] {
			if depth[d]+1 > depth[i] {
				depth[i] = depth[d] + 1
			}
		}
		if depth[i] > maxDepth {
			maxDepth = depth[i]
		}
	}
	if len(entities) == 0 {
		return nil, nil
	}
	stages := make([][]string, maxDepth+1)
	for i, e := range entities {
		stages[depth[i]] = append(stages[depth[i]], e.Name)
	}
	return stages, nil
}

func (g *graph) kahn() ([]int, error) {
	n := len(g.entities)
	indegree := make([]int, n)
	ready := &minHeap{}
	for i := range g.entities {
		indegree[i] = len(g.deps[i])
		if indegree[i] == 0 {
			*ready = append(*ready, i)
		}
	}
	heap.Init(ready)

	order := make([]int, 0, n)
	for ready.Len() > 0 {
		u := heap.Pop(ready).(int)
		order = append(order, u)
		for _, v := range g.dependents[u] {
			indegree[v]--
			if indegree[v] == 0 {
				heap.Push(ready, v)
			}
		}
	}

	if len(order) != n {
		return nil, g.findCycle(indegree)
	}
	return order, nil
}

// findCycle walks dependency edges among the units Kahn could not place.
// Every such unit still has an unplaced dependency, so the walk must revisit
// a unit; the path from that unit's first visit is a cycle.
func (g *graph) findCycle(indegree []int) *CycleError {
	start := -1
	for i, d := range indegree {
		if d > 0 {
			start = i
			break
		}
	}
	pos := make(map[int]int)
	var path []int
	for u := start; ; {
		if p, seen := pos[u]; seen {
			cycle := make([]string, 0, len(path)-p+1)
			for _, idx := range path[p:] {
				cycle = append(cycle, g.entities[idx].Name)
			}
			cycle = append(cycle, g.entities[u].Name)
			return &CycleError{Cycle: cycle}
		}
		pos[u] = len(path)
		path = append(path, u)
		next := -1
		for _, d := range g.deps[u] {
			if indegree[d] > 0 {
				next = d
				break
			}
		}
		u = next
	}
}

type minHeap []int

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *minHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]
	return x
}

package game

import "sync"

// MaxContainmentDepth bounds bag-in-bag nesting.
const MaxContainmentDepth = 8

// Containment is one edge in the containment forest: container holds
// contained at the given nesting depth.
type Containment struct {
	ID          uint64 `json:"id"`
	ContainerID uint64 `json:"container_id"`
	ContainedID uint64 `json:"contained_id"`

	Depth     uint8 `json:"depth"`
	SlotIndex int   `json:"slot_index,omitempty"` // -1 when unslotted
}

func (c *Containment) RowID() uint64      { return c.ID }
func (c *Containment) SetRowID(id uint64) { c.ID = id }

// ContainmentForest maintains the containment edges with a parent index so
// that every re-parenting operation can run an explicit ancestor walk. The
// data model alone could express a cycle; the walk is what forbids it.
type ContainmentForest struct {
	mu     sync.RWMutex
	nextID uint64
	edges  map[uint64]*Containment // keyed by contained entity id
}

func NewContainmentForest() *ContainmentForest {
	return &ContainmentForest{
		nextID: 1,
		edges:  make(map[uint64]*Containment),
	}
}

// Place nests contained inside container. It rejects self-containment,
// direct or transitive cycles, nesting past MaxContainmentDepth, and
// re-parenting an entity that is already contained (remove it first).
func (f *ContainmentForest) Place(containerID, containedID uint64, slot int) (*Containment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.edges[containedID]; ok {
		return nil, ErrAlreadyContained
	}

	// Ancestor walk from the container outward. Hitting the contained
	// entity means we'd be creating a cycle.
	depth := uint8(1)
	for cur := containerID; ; {
		if cur == containedID {
			return nil, ErrContainmentCycle
		}
		edge, ok := f.edges[cur]
		if !ok {
			break
		}
		cur = edge.ContainerID
		depth++
	}

	// The contained entity may itself hold a nested chain. Its deepest
	// descendant lands at depth+height, and every descendant's recorded
	// depth shifts to hang off the new edge.
	if depth+f.height(containedID) > MaxContainmentDepth {
		return nil, ErrContainmentTooDeep
	}

	edge := &Containment{
		ID:          f.nextID,
		ContainerID: containerID,
		ContainedID: containedID,
		Depth:       depth,
		SlotIndex:   slot,
	}
	f.nextID++
	f.edges[containedID] = edge
	f.renumber(containedID, depth)
	return edge, nil
}

// height returns the edge count of the longest chain below id. Callers
// must hold the lock.
func (f *ContainmentForest) height(id uint64) uint8 {
	var max uint8
	for _, edge := range f.edges {
		if edge.ContainerID != id {
			continue
		}
		if h := f.height(edge.ContainedID) + 1; h > max {
			max = h
		}
	}
	return max
}

// renumber rewrites descendant depths after id moved to depth. Callers
// must hold the lock.
func (f *ContainmentForest) renumber(id uint64, depth uint8) {
	for _, edge := range f.edges {
		if edge.ContainerID != id {
			continue
		}
		edge.Depth = depth + 1
		f.renumber(edge.ContainedID, depth+1)
	}
}

// Remove detaches contained from its container. Returns the removed edge
// or nil if the entity was not contained.
func (f *ContainmentForest) Remove(containedID uint64) *Containment {
	f.mu.Lock()
	defer f.mu.Unlock()

	edge, ok := f.edges[containedID]
	if !ok {
		return nil
	}
	delete(f.edges, containedID)
	f.renumber(containedID, 0)
	return edge
}

// Container returns the direct container of an entity, or zero.
func (f *ContainmentForest) Container(containedID uint64) uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if edge, ok := f.edges[containedID]; ok {
		return edge.ContainerID
	}
	return 0
}

// Depth returns the nesting depth of an entity, zero when top-level.
func (f *ContainmentForest) Depth(containedID uint64) uint8 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if edge, ok := f.edges[containedID]; ok {
		return edge.Depth
	}
	return 0
}

// Contents returns the ids of the entities directly inside container.
func (f *ContainmentForest) Contents(containerID uint64) []uint64 {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []uint64
	for id, edge := range f.edges {
		if edge.ContainerID == containerID {
			out = append(out, id)
		}
	}
	return out
}

// Evict removes the container's direct contents and returns their ids so
// the caller can reparent them (deleting a container orphans its contents
// into the container's room rather than destroying them).
func (f *ContainmentForest) Evict(containerID uint64) []uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []uint64
	for id, edge := range f.edges {
		if edge.ContainerID == containerID {
			delete(f.edges, id)
			out = append(out, id)
		}
	}
	for _, id := range out {
		f.renumber(id, 0)
	}
	return out
}

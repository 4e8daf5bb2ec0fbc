package engine

import (
	"errors"
	"fmt"

	"github.com/dogmud/dogmud/internal/game"
)

var (
	ErrNotAContainer = errors.New("that is not a container")
	ErrContainerFull = errors.New("it won't fit")
	ErrNotContained  = errors.New("it isn't in there")
)

// PutInside places the item entity inside the container entity. Both must
// share a room, the container must have capacity, and the placement must
// not create a cycle or exceed the nesting depth.
func (e *Engine) PutInside(itemID, containerID uint64) error {
	item, ok := e.entities.Get(itemID)
	if !ok {
		return ErrTargetNotFound
	}
	container, ok := e.entities.Get(containerID)
	if !ok {
		return ErrTargetNotFound
	}
	if container.Type != game.EntityContainer {
		return ErrNotAContainer
	}
	if item.RoomID != container.RoomID {
		return ErrTargetNotFound
	}
	if e.containment.Container(itemID) != 0 {
		return game.ErrAlreadyContained
	}
	if container.MaxCapacity > 0 && e.containedVolume(containerID)+item.Volume > container.MaxCapacity {
		return ErrContainerFull
	}

	slot := len(e.containment.Contents(containerID))
	_, err := e.containment.Place(containerID, itemID, slot)
	return err
}

// RemoveFromContainer takes the item out, leaving it in the container's room.
func (e *Engine) RemoveFromContainer(itemID uint64) error {
	containerID := e.containment.Container(itemID)
	if containerID == 0 {
		return ErrNotContained
	}
	container, ok := e.entities.Get(containerID)
	if !ok {
		return ErrNotContained
	}

	e.containment.Remove(itemID)

	item, ok := e.entities.Get(itemID)
	if !ok {
		return nil
	}
	moved := *item
	moved.RoomID = container.RoomID
	return e.entities.Update(&moved)
}

// DeleteContainer removes a container entity, evicting its direct
// contents into the container's room.
func (e *Engine) DeleteContainer(containerID uint64) error {
	container, ok := e.entities.Get(containerID)
	if !ok {
		return ErrTargetNotFound
	}
	if container.Type != game.EntityContainer {
		return ErrNotAContainer
	}

	for _, id := range e.containment.Evict(containerID) {
		ent, ok := e.entities.Get(id)
		if !ok {
			continue
		}
		evicted := *ent
		evicted.RoomID = container.RoomID
		if err := e.entities.Update(&evicted); err != nil {
			return fmt.Errorf("evicting contents: %w", err)
		}
	}

	e.containment.Remove(containerID)
	if data, ok := e.items.Find(func(d *game.ItemData) bool { return d.EntityID == containerID }); ok {
		_ = e.items.Delete(data.ID)
	}
	_ = e.entities.Delete(containerID)
	return nil
}

// Contents returns the entities directly inside a container.
func (e *Engine) Contents(containerID uint64) []*game.Entity {
	var out []*game.Entity
	for _, id := range e.containment.Contents(containerID) {
		if ent, ok := e.entities.Get(id); ok {
			out = append(out, ent)
		}
	}
	return out
}

func (e *Engine) containedVolume(containerID uint64) float64 {
	var total float64
	for _, id := range e.containment.Contents(containerID) {
		if ent, ok := e.entities.Get(id); ok {
			total += ent.Volume
		}
	}
	return total
}

package builder

import (
	"fmt"
	"strings"

	"landing-builder-backend/internal/constants"
	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

// Direction of an adjacent swap.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down" in any case.
func ParseDirection(value string) (Direction, error) {
	switch Direction(strings.TrimSpace(strings.ToLower(value))) {
	case Up:
		return Up, nil
	case Down:
		return Down, nil
	default:
		return "", fmt.Errorf("invalid direction %q", value)
	}
}

// AddSection appends a section of the given type with catalog defaults and
// returns the new document and the section id. The hero is singular: adding
// it leaves the document unchanged and returns an empty id.
func AddSection(doc models.PageDocument, sectionType string, ids IDAllocator) (models.PageDocument, string) {
	updated := doc.Clone()
	if sections.KindOf(sectionType) == sections.KindHero {
		return updated, ""
	}

	section := sections.DefaultSection(strings.TrimSpace(sectionType))
	section.ID = newSectionID(updated.Content.Sections, ids)
	section.Order = nextOrder(updated.Content.Sections)
	section.IsVisible = true

	updated.Content.Sections = append(updated.Content.Sections, section)
	return updated, section.ID
}

// UpdateSection shallow-merges patch into the section with the given id.
// Unknown ids leave the document unchanged.
func UpdateSection(doc models.PageDocument, id string, patch models.SectionPatch) models.PageDocument {
	updated := doc.Clone()
	if i := indexOfSection(updated.Content.Sections, id); i >= 0 {
		updated.Content.Sections[i] = updated.Content.Sections[i].Update(patch)
	}
	return updated
}

// WithSection replaces the section with the given id by fn's result. Id,
// order and type of the original are kept whatever fn returns. It reports
// whether the section exists.
func WithSection(doc models.PageDocument, id string, fn func(models.Section) models.Section) (models.PageDocument, bool) {
	updated := doc.Clone()
	i := indexOfSection(updated.Content.Sections, id)
	if i < 0 {
		return updated, false
	}
	original := updated.Content.Sections[i]
	next := fn(original.Clone())
	next.ID = original.ID
	next.Order = original.Order
	next.Type = original.Type
	updated.Content.Sections[i] = next
	return updated, true
}

// DeleteSection removes the section with the given id and renumbers the rest
// in render order. Unknown ids leave the document unchanged.
func DeleteSection(doc models.PageDocument, id string) models.PageDocument {
	updated := doc.Clone()
	list := sections.SortedForRender(updated.Content.Sections)
	i := indexOfSection(list, id)
	if i < 0 {
		return updated
	}
	list = append(list[:i], list[i+1:]...)
	updated.Content.Sections = renumber(list)
	return updated
}

// MoveSection swaps the section with its neighbour in render order, then
// renumbers every section to its position. Boundary moves and unknown ids
// leave the document unchanged.
func MoveSection(doc models.PageDocument, id string, direction Direction) models.PageDocument {
	updated := doc.Clone()
	list := sections.SortedForRender(updated.Content.Sections)
	i := indexOfSection(list, id)
	j := neighbour(i, len(list), direction)
	if j < 0 {
		return updated
	}
	list[i], list[j] = list[j], list[i]
	updated.Content.Sections = renumber(list)
	return updated
}

// DuplicateSection appends a deep copy of the section under a new id with
// order n. A non-empty title gets the copy suffix. Nested items keep their ids.
func DuplicateSection(doc models.PageDocument, id string, ids IDAllocator) (models.PageDocument, string) {
	updated := doc.Clone()
	i := indexOfSection(updated.Content.Sections, id)
	if i < 0 {
		return updated, ""
	}

	duplicate := updated.Content.Sections[i].Clone()
	duplicate.ID = newSectionID(updated.Content.Sections, ids)
	duplicate.Order = nextOrder(updated.Content.Sections)
	if duplicate.Title != "" {
		duplicate.Title += constants.DuplicateTitleSuffix
	}

	updated.Content.Sections = append(updated.Content.Sections, duplicate)
	return updated, duplicate.ID
}

// ToggleVisibility flips isVisible of the section with the given id.
func ToggleVisibility(doc models.PageDocument, id string) models.PageDocument {
	updated := doc.Clone()
	if i := indexOfSection(updated.Content.Sections, id); i >= 0 {
		updated.Content.Sections[i].IsVisible = !updated.Content.Sections[i].IsVisible
	}
	return updated
}

// ReorderSections puts the listed sections first, in the given order, followed
// by the unlisted ones in their current render order, then renumbers. Unknown
// and repeated ids are ignored.
func ReorderSections(doc models.PageDocument, orderedIDs []string) models.PageDocument {
	updated := doc.Clone()
	current := sections.SortedForRender(updated.Content.Sections)

	placed := make(map[string]bool, len(orderedIDs))
	list := make([]models.Section, 0, len(current))
	for _, id := range orderedIDs {
		if placed[id] {
			continue
		}
		if i := indexOfSection(current, id); i >= 0 {
			list = append(list, current[i])
			placed[id] = true
		}
	}
	for _, section := range current {
		if !placed[section.ID] {
			list = append(list, section)
		}
	}

	updated.Content.Sections = renumber(list)
	return updated
}

// UpdateHero merges the display part of patch into content.hero.
func UpdateHero(doc models.PageDocument, patch models.SectionPatch) models.PageDocument {
	updated := doc.Clone()
	updated.Content.Hero = updated.Content.Hero.Update(patch)
	return updated
}

// SortedForRender returns the sections stably sorted by order.
func SortedForRender(list []models.Section) []models.Section {
	return sections.SortedForRender(list)
}

// FindSection returns a copy of the section with the given id.
func FindSection(doc models.PageDocument, id string) (models.Section, bool) {
	if i := indexOfSection(doc.Content.Sections, id); i >= 0 {
		return doc.Content.Sections[i].Clone(), true
	}
	return models.Section{}, false
}

func indexOfSection(list []models.Section, id string) int {
	if id == "" {
		return -1
	}
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// neighbour returns the index to swap i with, or -1 when the move is a no-op.
func neighbour(i, n int, direction Direction) int {
	if i < 0 || i >= n {
		return -1
	}
	switch direction {
	case Up:
		if i > 0 {
			return i - 1
		}
	case Down:
		if i < n-1 {
			return i + 1
		}
	}
	return -1
}

func renumber(list []models.Section) []models.Section {
	for i := range list {
		list[i].Order = i
	}
	return list
}

// nextOrder is the collection length, or one past the highest order when a
// loaded document carries gaps above it.
func nextOrder(list []models.Section) int {
	next := len(list)
	for _, section := range list {
		if section.Order >= next {
			next = section.Order + 1
		}
	}
	return next
}

func newSectionID(list []models.Section, ids IDAllocator) string {
	ids = allocatorOrDefault(ids)
	for {
		id := ids.NewID()
		if id != models.HeroID && indexOfSection(list, id) < 0 {
			return id
		}
	}
}

package builder

import (
	"strings"

	"landing-builder-backend/internal/models"
	"landing-builder-backend/internal/sections"
)

type identified interface {
	ItemID() string
}

type updatable[T any, P any] interface {
	identified
	Update(P) T
}

func indexOfItem[T identified](items []T, id string) int {
	if id == "" {
		return -1
	}
	for i := range items {
		if items[i].ItemID() == id {
			return i
		}
	}
	return -1
}

func newItemID[T identified](items []T, ids IDAllocator) string {
	ids = allocatorOrDefault(ids)
	for {
		id := ids.NewID()
		if indexOfItem(items, id) < 0 {
			return id
		}
	}
}

// updateAt merges patch into the item with the given id. The slice is
// modified in place; callers pass an owned copy.
func updateAt[T updatable[T, P], P any](items []T, id string, patch P) []T {
	if i := indexOfItem(items, id); i >= 0 {
		items[i] = items[i].Update(patch)
	}
	return items
}

func deleteAt[T identified](items []T, id string) []T {
	i := indexOfItem(items, id)
	if i < 0 {
		return items
	}
	return append(items[:i], items[i+1:]...)
}

func moveAt[T identified](items []T, id string, direction Direction) []T {
	i := indexOfItem(items, id)
	if j := neighbour(i, len(items), direction); j >= 0 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}

func supports(section models.Section, collection string) bool {
	return sections.RulesetFor(section.Type).HasCollection(collection)
}

// AddFeature appends a feature under a fresh id and returns the id. Sections
// whose ruleset has no features collection are returned unchanged.
func AddFeature(section models.Section, feature models.Feature, ids IDAllocator) (models.Section, string) {
	updated := section.Clone()
	if !supports(updated, models.AttrFeatures) {
		return updated, ""
	}
	feature = feature.Clone()
	feature.ID = newItemID(updated.Features, ids)
	updated.Features = append(updated.Features, feature)
	return updated, feature.ID
}

func UpdateFeature(section models.Section, id string, patch models.FeaturePatch) models.Section {
	updated := section.Clone()
	updated.Features = updateAt(updated.Features, id, patch)
	return updated
}

func DeleteFeature(section models.Section, id string) models.Section {
	updated := section.Clone()
	updated.Features = deleteAt(updated.Features, id)
	return updated
}

func MoveFeature(section models.Section, id string, direction Direction) models.Section {
	updated := section.Clone()
	updated.Features = moveAt(updated.Features, id, direction)
	return updated
}

// AddFAQItem appends a question/answer pair under a fresh id.
func AddFAQItem(section models.Section, item models.FAQItem, ids IDAllocator) (models.Section, string) {
	updated := section.Clone()
	if !supports(updated, models.AttrFAQItems) {
		return updated, ""
	}
	item = item.Clone()
	item.ID = newItemID(updated.FAQItems, ids)
	updated.FAQItems = append(updated.FAQItems, item)
	return updated, item.ID
}

func UpdateFAQItem(section models.Section, id string, patch models.FAQItemPatch) models.Section {
	updated := section.Clone()
	updated.FAQItems = updateAt(updated.FAQItems, id, patch)
	return updated
}

func DeleteFAQItem(section models.Section, id string) models.Section {
	updated := section.Clone()
	updated.FAQItems = deleteAt(updated.FAQItems, id)
	return updated
}

func MoveFAQItem(section models.Section, id string, direction Direction) models.Section {
	updated := section.Clone()
	updated.FAQItems = moveAt(updated.FAQItems, id, direction)
	return updated
}

// AddTestimonial appends a testimonial under a fresh id. The rating is stored
// as given.
func AddTestimonial(section models.Section, item models.Testimonial, ids IDAllocator) (models.Section, string) {
	updated := section.Clone()
	if !supports(updated, models.AttrTestimonials) {
		return updated, ""
	}
	item = item.Clone()
	item.ID = newItemID(updated.Testimonials, ids)
	updated.Testimonials = append(updated.Testimonials, item)
	return updated, item.ID
}

func UpdateTestimonial(section models.Section, id string, patch models.TestimonialPatch) models.Section {
	updated := section.Clone()
	updated.Testimonials = updateAt(updated.Testimonials, id, patch)
	return updated
}

func DeleteTestimonial(section models.Section, id string) models.Section {
	updated := section.Clone()
	updated.Testimonials = deleteAt(updated.Testimonials, id)
	return updated
}

func MoveTestimonial(section models.Section, id string, direction Direction) models.Section {
	updated := section.Clone()
	updated.Testimonials = moveAt(updated.Testimonials, id, direction)
	return updated
}

// SetRecordEntry sets one key of a flat record collection (projectDetails or
// contactInfo). Blank keys and collections outside the ruleset are ignored.
func SetRecordEntry(section models.Section, collection, key, value string) models.Section {
	updated := section.Clone()
	key = strings.TrimSpace(key)
	if key == "" || !supports(updated, collection) {
		return updated
	}
	record := recordOf(&updated, collection)
	if record == nil {
		return updated
	}
	if *record == nil {
		*record = models.KeyValues{}
	}
	(*record)[key] = value
	return updated
}

// DeleteRecordEntry removes one key of a flat record collection.
func DeleteRecordEntry(section models.Section, collection, key string) models.Section {
	updated := section.Clone()
	if record := recordOf(&updated, collection); record != nil && *record != nil {
		delete(*record, key)
	}
	return updated
}

func recordOf(section *models.Section, collection string) *models.KeyValues {
	switch collection {
	case models.AttrProjectDetails:
		return &section.ProjectDetails
	case models.AttrContactInfo:
		return &section.ContactInfo
	default:
		return nil
	}
}

// IsRecordCollection reports whether collection names a flat key/value record.
func IsRecordCollection(collection string) bool {
	return collection == models.AttrProjectDetails || collection == models.AttrContactInfo
}

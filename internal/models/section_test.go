package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionKeepsUnknownAttributes(t *testing.T) {
	input := `{
		"id": "s1",
		"type": "features",
		"order": 0,
		"title": "Why us",
		"animation": {"kind": "fade"},
		"layout": {"columns": 3, "gap": "2rem"},
		"features": [{"id": "f1", "title": "Fast", "badge": "new"}]
	}`

	var section Section
	require.NoError(t, json.Unmarshal([]byte(input), &section))

	assert.True(t, section.IsVisible, "absent isVisible defaults to true")
	assert.Equal(t, "Why us", section.Title)
	assert.JSONEq(t, `{"kind":"fade"}`, string(section.Extra["animation"]))
	assert.NotContains(t, section.Extra, "title")
	require.NotNil(t, section.Layout)
	assert.JSONEq(t, `"2rem"`, string(section.Layout.Extra["gap"]))
	require.Len(t, section.Features, 1)
	assert.JSONEq(t, `"new"`, string(section.Features[0].Extra["badge"]))

	out, err := json.Marshal(section)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, true, decoded["isVisible"])
	assert.Equal(t, map[string]interface{}{"kind": "fade"}, decoded["animation"])
	assert.Equal(t, "2rem", decoded["layout"].(map[string]interface{})["gap"])
	assert.Equal(t, "new", decoded["features"].([]interface{})[0].(map[string]interface{})["badge"])
}

func TestSectionExplicitHidden(t *testing.T) {
	var section Section
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s1","type":"text","isVisible":false}`), &section))
	assert.False(t, section.IsVisible)
}

func TestDeclaredKeysWinOverExtras(t *testing.T) {
	section := Section{ID: "s1", Type: "text", IsVisible: true, Extra: Attributes{"type": json.RawMessage(`"other"`)}}

	out, err := json.Marshal(section)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"type":"text"`)
	assert.NotContains(t, string(out), `"other"`)
}

func TestSectionCloneIsDeep(t *testing.T) {
	original := Section{
		ID:             "s1",
		Display:        Display{Layout: &Layout{Columns: 2}},
		Features:       []Feature{{ID: "f1", Title: "Fast"}},
		ProjectDetails: KeyValues{"area": "120m2"},
		Extra:          Attributes{"x": json.RawMessage(`1`)},
	}

	cloned := original.Clone()
	cloned.Layout.Columns = 4
	cloned.Features[0].Title = "Slow"
	cloned.ProjectDetails["area"] = "90m2"
	cloned.Extra["x"] = json.RawMessage(`2`)

	assert.Equal(t, 2, original.Layout.Columns)
	assert.Equal(t, "Fast", original.Features[0].Title)
	assert.Equal(t, "120m2", original.ProjectDetails["area"])
	assert.Equal(t, "1", string(original.Extra["x"]))
}

func TestPageDocumentColumnRoundTrip(t *testing.T) {
	doc := PageDocument{
		Title: "Launch",
		Slug:  "launch",
		Content: PageContent{
			Hero:     Hero{Display: Display{Title: "Hello"}},
			Sections: []Section{{ID: "s1", Type: "faq", IsVisible: true}},
		},
		Extra: Attributes{"owner": json.RawMessage(`"marketing"`)},
	}

	value, err := doc.Value()
	require.NoError(t, err)

	var scanned PageDocument
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, "Launch", scanned.Title)
	assert.Equal(t, "Hello", scanned.Content.Hero.Title)
	require.Len(t, scanned.Content.Sections, 1)
	assert.Equal(t, "faq", scanned.Content.Sections[0].Type)
	assert.JSONEq(t, `"marketing"`, string(scanned.Extra["owner"]))

	var fromString PageDocument
	require.NoError(t, fromString.Scan(`{"title":"Text column"}`))
	assert.Equal(t, "Text column", fromString.Title)

	assert.Error(t, fromString.Scan(42))
}

func TestEmptyContentEncodesEmptyArrays(t *testing.T) {
	out, err := json.Marshal(PageContent{})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"sections":[]`)
}

func TestDocumentRoundTripKeepsBlankKeys(t *testing.T) {
	input := `{
		"title": "Launch",
		"slug": "",
		"description": "",
		"template": "blank",
		"isPublished": false,
		"isActive": true,
		"owner": "marketing",
		"content": {
			"hero": {"title": "Hi", "subtitle": ""},
			"sections": [{
				"id": "s1",
				"type": "faq",
				"order": 0,
				"isVisible": true,
				"title": "FAQ",
				"subtitle": "",
				"faqItems": [],
				"layout": null
			}, {
				"id": "s2",
				"type": "form",
				"order": 1,
				"isVisible": false,
				"formConfig": {
					"fields": [{"id": "f1", "name": "", "type": "text", "label": "", "placeholder": "", "required": false, "options": [], "hint": null}],
					"submitText": "",
					"successMessage": null
				}
			}],
			"footer": {"companyName": "", "links": [], "email": null}
		},
		"styling": {"primaryColor": null, "secondaryColor": "", "fontFamily": "", "customCss": ""},
		"seo": {"metaTitle": "", "metaDescription": "", "keywords": ""}
	}`

	var doc PageDocument
	require.NoError(t, json.Unmarshal([]byte(input), &doc))

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))

	value, err := doc.Clone().Value()
	require.NoError(t, err)
	assert.JSONEq(t, input, string(value.([]byte)))
}

func TestBlankKeyGivesWayToEditedValue(t *testing.T) {
	var section Section
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s1","type":"text","order":0,"isVisible":true,"subtitle":"","layout":null}`), &section))

	subtitle := "Now set"
	updated := section.Update(SectionPatch{Subtitle: &subtitle, Layout: &Layout{Columns: 2}})

	out, err := json.Marshal(updated)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"s1","type":"text","order":0,"isVisible":true,"subtitle":"Now set","layout":{"columns":2}}`, string(out))
}

func TestEmptyCollectionsEncodeAsArrays(t *testing.T) {
	section := Section{ID: "s1", Type: "faq", IsVisible: true, FAQItems: []FAQItem{}}

	out, err := json.Marshal(section)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"faqItems":[]`)
	assert.NotContains(t, string(out), `"features"`)

	var decoded Section
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.NotNil(t, decoded.FAQItems)
	assert.Nil(t, decoded.Features)
}

func TestKeyCaseVariantFeedsDeclaredField(t *testing.T) {
	var section Section
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s1","type":"text","Title":"shadow","Badge":"new"}`), &section))

	assert.Equal(t, "shadow", section.Title)
	assert.NotContains(t, section.Extra, "Title")
	assert.Contains(t, section.Extra, "Badge")

	out, err := json.Marshal(section)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"title":"shadow"`)
	assert.NotContains(t, string(out), `"Title"`)
	assert.Contains(t, string(out), `"Badge":"new"`)
}

func TestPatchDropsIdentityKeysInAnyCase(t *testing.T) {
	var patch SectionPatch
	require.NoError(t, json.Unmarshal([]byte(`{"ID":"x","Order":3,"type":"faq","anchor":"top"}`), &patch))

	assert.Equal(t, Attributes{"anchor": json.RawMessage(`"top"`)}, patch.Extra)
}

func TestDiffPatchCarriesOnlyEditedAttributes(t *testing.T) {
	before := Section{
		ID:        "s1",
		Type:      "faq",
		IsVisible: true,
		Display:   Display{Title: "FAQ", Subtitle: "Old"},
		FAQItems:  []FAQItem{{ID: "q1", Question: "Why?"}},
		Extra:     Attributes{"anchor": json.RawMessage(`"faq"`)},
	}
	after := before.Clone()
	after.Title = "Questions"
	after.IsVisible = false
	after.Extra["anchor"] = json.RawMessage(`"questions"`)

	patch := DiffPatch(before, after)

	require.NotNil(t, patch.Title)
	assert.Equal(t, "Questions", *patch.Title)
	assert.Nil(t, patch.Subtitle)
	assert.Nil(t, patch.IsVisible)
	assert.Nil(t, patch.FAQItems)
	assert.Nil(t, patch.Layout)
	assert.Equal(t, Attributes{"anchor": json.RawMessage(`"questions"`)}, patch.Extra)

	assert.True(t, DiffPatch(before, before.Clone()).IsEmpty())
}

package list

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/structural"
)

func dynamicField(rec *recorder[DynamicRecord], value []DynamicRecord) model.ListField[DynamicRecord] {
	return model.ListField[DynamicRecord]{
		Name:         "rows",
		Value:        value,
		InitialValue: value,
		OnChange:     rec.onChange,
	}
}

func TestHandler_SetAndMapBuildTransforms(t *testing.T) {
	value := []DynamicRecord{dynamic("a", 1), dynamic("a", 2)}
	rec := &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema())
	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}

	handler := ctrl.HandlerFor(0, "a")
	handler.Change(model.Set(5))
	handler.Change(model.Map(func(prev int) int { return prev + 10 }))

	if len(rec.transforms) != 2 {
		t.Fatalf("expected one upstream call per change, got %d", len(rec.transforms))
	}

	set, err := rec.transforms[0](value)
	if err != nil {
		t.Fatalf("apply set: %v", err)
	}
	if diff := cmp.Diff([]map[string]any{{"a": 5}, {"a": 2}}, plain(set)); diff != "" {
		t.Fatalf("set result mismatch (-want +got):\n%s", diff)
	}

	mapped, err := rec.transforms[1](value)
	if err != nil {
		t.Fatalf("apply map: %v", err)
	}
	if diff := cmp.Diff([]map[string]any{{"a": 11}, {"a": 2}}, plain(mapped)); diff != "" {
		t.Fatalf("map result mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]map[string]any{{"a": 1}, {"a": 2}}, plain(value)); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestHandler_UntouchedElementsKeepIdentity(t *testing.T) {
	first := &contact{Name: "Ada"}
	second := &contact{Name: "Grace"}
	value := []*contact{first, second}
	rec := &recorder[*contact]{}

	ctrl := New(contactSchema)
	elements, err := ctrl.Derive(Props[*contact]{Field: model.ListField[*contact]{
		Name: "contacts", Value: value, InitialValue: value, OnChange: rec.onChange,
	}})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	name, ok := Lookup(elements[0].Fields, contactName)
	if !ok {
		t.Fatalf("expected typed name field")
	}
	name.Set("Augusta")

	next, err := rec.transforms[0](value)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if next[1] != second {
		t.Fatalf("expected untouched element to keep its pointer")
	}
	if next[0] == first || next[0].Name != "Augusta" {
		t.Fatalf("expected a new first element, got %+v", next[0])
	}
	if first.Name != "Ada" {
		t.Fatalf("original element mutated")
	}
}

func TestHandler_StableAcrossDerivations(t *testing.T) {
	value := []DynamicRecord{dynamic("a", 1), dynamic("a", 2)}
	rec := &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema())

	firstPass, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	nextValue := []DynamicRecord{dynamic("a", 9), dynamic("a", 2), dynamic("a", 3)}
	secondPass, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, nextValue)})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}

	for idx := range firstPass {
		before := firstPass[idx].Fields.Value("a").OnChange
		after := secondPass[idx].Fields.Value("a").OnChange
		if before != after {
			t.Fatalf("handler for index %d changed between passes", idx)
		}
	}
	if ctrl.HandlerFor(1, "a") != ctrl.HandlerFor(1, "a") {
		t.Fatalf("expected HandlerFor to memoize")
	}
	if secondPass[2].Fields.Value("a").OnChange == secondPass[1].Fields.Value("a").OnChange {
		t.Fatalf("expected distinct handlers per index")
	}
}

func TestHandler_IndexSlotIsSharedAcrossKeys(t *testing.T) {
	value := []DynamicRecord{dynamic("a", 1, "b", 2)}
	rec := &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema())

	elements, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	a := elements[0].Fields.Value("a").OnChange
	b := elements[0].Fields.Value("b").OnChange
	if a != b {
		t.Fatalf("expected one handler slot per index")
	}
	if got := ctrl.HandlerFor(0, "b").Key(); got != "a" {
		t.Fatalf("expected the slot to keep the first key, got %q", got)
	}

	b.Change(model.Set(7))
	next, err := rec.transforms[0](value)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff([]map[string]any{{"a": 7, "b": 2}}, plain(next)); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_KeyByIndexAndField(t *testing.T) {
	value := []DynamicRecord{dynamic("a", 1, "b", 2)}
	rec := &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema(), WithHandlerKeying(KeyByIndexAndField))

	elements, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	b := elements[0].Fields.Value("b")
	if b.OnChange == elements[0].Fields.Value("a").OnChange {
		t.Fatalf("expected separate handlers per key")
	}

	b.Change(model.Set(7))
	next, err := rec.transforms[0](value)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if diff := cmp.Diff([]map[string]any{{"a": 1, "b": 7}}, plain(next)); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestHandler_TransformsComposeAgainstLatestValue(t *testing.T) {
	value := []DynamicRecord{dynamic("n", 1)}
	rec := &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema())
	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}

	inc := ctrl.HandlerFor(0, "n")
	inc.Change(model.Map(func(prev int) int { return prev + 1 }))
	inc.Change(model.Map(func(prev int) int { return prev * 10 }))

	current := value
	for _, transform := range rec.transforms {
		next, err := transform(current)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		current = next
	}
	if got := current[0].Value("n"); got != 20 {
		t.Fatalf("expected dispatch-order composition to yield 20, got %v", got)
	}
}

func TestHandler_UsesLatestOnChange(t *testing.T) {
	value := []DynamicRecord{dynamic("a", 1)}
	oldRec, newRec := &recorder[DynamicRecord]{}, &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema())

	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(oldRec, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}
	handler := ctrl.HandlerFor(0, "a")
	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(newRec, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}
	handler.Change(model.Set(2))

	if len(oldRec.transforms) != 0 || len(newRec.transforms) != 1 {
		t.Fatalf("expected the latest OnChange to receive the transform, got old=%d new=%d",
			len(oldRec.transforms), len(newRec.transforms))
	}
}

func TestHandler_TransformErrors(t *testing.T) {
	value := []DynamicRecord{dynamic("a", 1), dynamic("a", 2)}
	rec := &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema())
	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}

	ctrl.HandlerFor(1, "a").Change(model.Set(3))
	if _, err := rec.transforms[0](value[:1]); !errors.Is(err, structural.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange on shrunk list, got %v", err)
	}

	ctrl.HandlerFor(0, "a").Change(model.Map(func(prev string) string { return prev }))
	if _, err := rec.transforms[1](value); !errors.Is(err, model.ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
}

func TestHandler_TypedKeyRejectsWrongType(t *testing.T) {
	value := []*contact{{Name: "Ada"}}
	rec := &recorder[*contact]{}
	ctrl := New(contactSchema, WithHandlerKeying(KeyByIndexAndField))
	if _, err := ctrl.Derive(Props[*contact]{Field: model.ListField[*contact]{
		Name: "contacts", Value: value, InitialValue: value, OnChange: rec.onChange,
	}}); err != nil {
		t.Fatalf("derive: %v", err)
	}

	ctrl.HandlerFor(0, "name").Change(model.Set(42))
	_, err := rec.transforms[0](value)
	var typeErr *model.TypeError
	if !errors.As(err, &typeErr) || typeErr.Field != "name" || typeErr.Want != "string" {
		t.Fatalf("expected typed mismatch error, got %v", err)
	}
}

func TestHandlerFor_UnknownTargets(t *testing.T) {
	ctrl := New(RecordSchema())
	if ctrl.HandlerFor(0, "a") != nil {
		t.Fatalf("expected nil handler before any derivation")
	}

	value := []DynamicRecord{dynamic("a", 1)}
	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(&recorder[DynamicRecord]{}, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}
	if ctrl.HandlerFor(3, "a") != nil {
		t.Fatalf("expected nil handler for index outside the list")
	}

	keyed := New(RecordSchema(), WithHandlerKeying(KeyByIndexAndField))
	if _, err := keyed.Derive(Props[DynamicRecord]{Field: dynamicField(&recorder[DynamicRecord]{}, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}
	if keyed.HandlerFor(0, "missing") != nil {
		t.Fatalf("expected nil handler for unknown key")
	}
}

func TestHandler_SurvivesShrink(t *testing.T) {
	value := []DynamicRecord{dynamic("a", 1), dynamic("a", 2)}
	rec := &recorder[DynamicRecord]{}
	ctrl := New(RecordSchema())
	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}
	stale := ctrl.HandlerFor(1, "a")

	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value[:1])}); err != nil {
		t.Fatalf("derive: %v", err)
	}
	if _, err := ctrl.Derive(Props[DynamicRecord]{Field: dynamicField(rec, value)}); err != nil {
		t.Fatalf("derive: %v", err)
	}
	if ctrl.HandlerFor(1, "a") != stale {
		t.Fatalf("expected registry entry to persist across shrink and regrow")
	}
}

package llm

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringListUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		body string
		want StringList
	}{
		{"comma string", `" a, b,,c "`, StringList{"a", "b", "c"}},
		{"blank string", `"  , "`, nil},
		{"null", `null`, nil},
		{"array", `["slow travel", " food "]`, StringList{"slow travel", " food "}},
		{"empty array", `[]`, StringList{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tc.body), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestStringListRejectsNonStrings(t *testing.T) {
	for _, body := range []string{`[1]`, `["a", null]`, `42`, `{"a":"b"}`} {
		var got StringList
		if err := json.Unmarshal([]byte(body), &got); err == nil {
			t.Fatalf("%s: expected an error, got %#v", body, got)
		}
	}
}

func TestPlanIntentDecodesCommaPreferences(t *testing.T) {
	var intent PlanIntent
	if err := json.Unmarshal([]byte(`{"destination":"Kyoto","travel_style":"relaxed, foodie","interests":["temples"]}`), &intent); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(intent.TravelStyle, StringList{"relaxed", "foodie"}) || !reflect.DeepEqual(intent.Interests, StringList{"temples"}) {
		t.Fatalf("unexpected preferences %#v %#v", intent.TravelStyle, intent.Interests)
	}
}

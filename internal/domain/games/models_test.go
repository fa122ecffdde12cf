package games

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestWeekWindowRange(t *testing.T) {
	w := WeekWindow{StartKey: "20230910", EndKey: "20230912"}
	if got := w.Range(); got != "20230910-20230912" {
		t.Fatalf("expected 20230910-20230912, got %s", got)
	}
}

func TestGameSummaryJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}

	summaryType := reflect.TypeOf(GameSummary{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"DateTime", "dateTime"},
		{"Name", "name"},
		{"ShortName", "shortName"},
		{"Week", "week"},
	}

	for _, fc := range fields {
		field, ok := summaryType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if jsonTag := field.Tag.Get("json"); jsonTag != fc.tag {
			t.Fatalf("field %s expected json tag %s, got %s", fc.name, fc.tag, jsonTag)
		}
	}
}

func TestScheduleEntryScoresSerializeAsNullBeforeKickoff(t *testing.T) {
	entry := ScheduleEntry{
		GameID:    "401",
		Name:      "Kansas City Chiefs at Los Angeles Chargers",
		ShortName: "KC @ LAC",
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	for _, key := range []string{"homeTeamScore", "awayTeamScore"} {
		value, ok := decoded[key]
		if !ok {
			t.Fatalf("expected %s to be present", key)
		}
		if value != nil {
			t.Fatalf("expected %s to be null, got %v", key, value)
		}
	}
}

func TestNewTodayResponse(t *testing.T) {
	games := []GameSummary{{ID: "401", Name: "KC at LAC"}}
	resp := NewTodayResponse("2023-09-10", games)
	if resp.Date != "2023-09-10" {
		t.Fatalf("unexpected date %s", resp.Date)
	}
	if len(resp.Games) != 1 || resp.Games[0].ID != "401" {
		t.Fatalf("unexpected games %+v", resp.Games)
	}
}

package teams

import (
	"reflect"
	"testing"
)

func TestNewTeamRefDerivesAliases(t *testing.T) {
	ref := NewTeamRef("24", "Los Angeles", "Chargers", "LAC")

	want := []string{"los angeles chargers", "chargers", "lac", "los angeles"}
	if !reflect.DeepEqual(ref.Aliases, want) {
		t.Fatalf("expected aliases %v, got %v", want, ref.Aliases)
	}
	if ref.DisplayName() != "Los Angeles Chargers" {
		t.Fatalf("unexpected display name %s", ref.DisplayName())
	}
}

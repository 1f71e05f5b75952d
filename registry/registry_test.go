package registry

import (
	"reflect"
	"testing"
)

func TestGetBotConfigIDMatchesKey(t *testing.T) {
	for _, id := range AllBotIDs() {
		if got := GetBotConfig(id).ID; got != id {
			t.Fatalf("GetBotConfig(%q).ID = %q, want %q", id, got, id)
		}
	}
}

func TestGetBotConfigFallsBackToDefault(t *testing.T) {
	want := GetBotConfig(DefaultBotID)
	for _, id := range []string{"nonexistent-id", "", "AO", "all "} {
		if got := GetBotConfig(id); got != want {
			t.Fatalf("GetBotConfig(%q) = %+v, want the %q record", id, got, DefaultBotID)
		}
	}
}

func TestGetBotConfigAggregate(t *testing.T) {
	got := GetBotConfig(AggregateBotID)
	if got.ID != AggregateBotID {
		t.Fatalf("aggregate lookup returned %q", got.ID)
	}
	if !got.IsActive {
		t.Fatal("aggregate record must be flagged active")
	}
}

func TestAllBotIDsOrder(t *testing.T) {
	want := []string{"all", "ao", "hsb", "rya", "rvn", "fox", "zeii", "aoalgo", "zia"}
	got := AllBotIDs()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AllBotIDs() = %v, want %v", got, want)
	}
}

func TestActiveBotIDs(t *testing.T) {
	want := []string{"ao", "zia"}
	got := ActiveBotIDs()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ActiveBotIDs() = %v, want %v", got, want)
	}
	for _, id := range got {
		if id == AggregateBotID {
			t.Fatal("aggregate entry leaked into active IDs")
		}
		if !GetBotConfig(id).IsActive {
			t.Fatalf("active ID %q resolves to an inactive record", id)
		}
	}
}

func TestActiveIDsAreRegistered(t *testing.T) {
	all := make(map[string]bool)
	for _, id := range AllBotIDs() {
		all[id] = true
	}
	for _, id := range ActiveBotIDs() {
		if !all[id] {
			t.Fatalf("active ID %q missing from AllBotIDs()", id)
		}
	}
}

func TestAccessorsAreIdempotent(t *testing.T) {
	if !reflect.DeepEqual(AllBotIDs(), AllBotIDs()) {
		t.Fatal("AllBotIDs() changed between calls")
	}
	if !reflect.DeepEqual(ActiveBotIDs(), ActiveBotIDs()) {
		t.Fatal("ActiveBotIDs() changed between calls")
	}
	for _, id := range []string{"ao", "rvn", "no-such-bot"} {
		if GetBotConfig(id) != GetBotConfig(id) {
			t.Fatalf("GetBotConfig(%q) changed between calls", id)
		}
	}
}

func TestCallersCannotMutateOrdering(t *testing.T) {
	ids := AllBotIDs()
	ids[0] = "clobbered"
	if got := AllBotIDs()[0]; got != AggregateBotID {
		t.Fatalf("registry order mutated through returned slice: first ID now %q", got)
	}
}

func TestOutOfRangeLevelsArePreserved(t *testing.T) {
	// These values exceed the documented ranges; live consumers depend
	// on the literal numbers.
	if got := GetBotConfig("rvn").TPCount; got != 6 {
		t.Fatalf("rvn TPCount = %d, want 6", got)
	}
	for _, id := range []string{"all", "ao", "zia"} {
		if got := GetBotConfig(id).DCACount; got != 3 {
			t.Fatalf("%s DCACount = %d, want 3", id, got)
		}
	}
}

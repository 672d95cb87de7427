package converter

import (
	"herbal/internal/entity/db"
	"testing"
)

func TestParseCommonNames(t *testing.T) {
	names := ParseCommonNames([]string{"Holy Basil, hi:Tulsi", "  ", "es:Albahaca sagrada", "Note: sacred"})

	want := []db.PlantCommonName{
		{Position: 0, Language: "", Name: "Holy Basil"},
		{Position: 1, Language: "hi", Name: "Tulsi"},
		{Position: 2, Language: "es", Name: "Albahaca sagrada"},
		{Position: 3, Language: "", Name: "Note: sacred"},
	}
	if len(names) != len(want) {
		t.Fatalf("got %d names, want %d: %+v", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("name %d = %+v, want %+v", i, names[i], want[i])
		}
	}
}

func TestCommonNamesToDTOOrdersByPosition(t *testing.T) {
	out := CommonNamesToDTO([]db.PlantCommonName{
		{Position: 2, Name: "c"},
		{Position: 0, Name: "a"},
		{Position: 1, Name: "b"},
	})
	got := out[0].Name + out[1].Name + out[2].Name
	if got != "abc" {
		t.Errorf("order = %q, want abc", got)
	}
}

func TestPlantToSummaryImageURL(t *testing.T) {
	urlFor := func(key string) string { return "/files/" + key }

	withImage := PlantToSummary(&db.Plant{ID: 1, Name: "Tulsi", ImageKey: "plants/a.png"}, urlFor)
	if withImage.ImageURL != "/files/plants/a.png" {
		t.Errorf("ImageURL = %q", withImage.ImageURL)
	}

	without := PlantToSummary(&db.Plant{ID: 2, Name: "Neem"}, urlFor)
	if without.ImageURL != "" {
		t.Errorf("expected empty ImageURL, got %q", without.ImageURL)
	}
}

func TestPlantToDetailHidesAuthorEmail(t *testing.T) {
	detail := PlantToDetail(&db.Plant{
		ID:     3,
		Name:   "Ashwagandha",
		Author: &db.User{ID: 7, Username: "ravi", Email: "ravi@example.com"},
	}, nil)
	if detail.Author == nil || detail.Author.Username != "ravi" {
		t.Fatalf("unexpected author: %+v", detail.Author)
	}
	if detail.Author.Email != "" {
		t.Errorf("author email leaked: %q", detail.Author.Email)
	}
}

package controllers

import (
	"testing"

	"resortly/models"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  Khách Sạn  ", "khach san"},
		{"Biệt Thự", "biet thu"},
		{"resort", "resort"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeInput(tt.input); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if sim := calculateSimilarity("resort", "resort"); sim != 1.0 {
		t.Errorf("expected similarity 1.0 for identical strings, got %v", sim)
	}

	if sim := calculateSimilarity("", ""); sim != 1.0 {
		t.Errorf("expected similarity 1.0 for empty strings, got %v", sim)
	}

	if sim := calculateSimilarity("resort", "villa"); sim > 0.5 {
		t.Errorf("expected low similarity for different strings, got %v", sim)
	}
}

func TestExtractStarFromQuery(t *testing.T) {
	if star := extractStarFromQuery("khach san 5 sao da nang"); star != 5 {
		t.Errorf("expected star 5, got %d", star)
	}
	if star := extractStarFromQuery("resort gan bien"); star != -1 {
		t.Errorf("expected -1 when no star in query, got %d", star)
	}
}

func TestParseResortType(t *testing.T) {
	resortType, star := parseResortType("khách sạn 4 sao Đà Nẵng")
	if resortType != 1 {
		t.Errorf("expected hotel type 1, got %d", resortType)
	}
	if star != 4 {
		t.Errorf("expected star 4, got %d", star)
	}

	resortType, _ = parseResortType("villa gần biển")
	if resortType != 2 {
		t.Errorf("expected villa type 2, got %d", resortType)
	}
}

func TestGetLowestPriceFromRooms(t *testing.T) {
	rooms := []models.Room{
		{Price: 3000},
		{Price: 1500},
		{Price: 2200},
	}
	if lowest := getLowestPriceFromRooms(rooms); lowest != 1500 {
		t.Errorf("expected lowest price 1500, got %d", lowest)
	}

	if lowest := getLowestPriceFromRooms(nil); lowest != 0 {
		t.Errorf("expected 0 for no rooms, got %d", lowest)
	}
}

func TestParseIDList(t *testing.T) {
	ids := parseIDList("[1, 2,3]")
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("unexpected ids: %v", ids)
	}

	if ids := parseIDList("abc"); len(ids) != 0 {
		t.Errorf("expected no ids for invalid input, got %v", ids)
	}
}

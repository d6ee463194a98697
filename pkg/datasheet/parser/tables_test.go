package parser

import (
	"testing"

	"github.com/ukaji3/datasheet-go/pkg/datasheet/models"
)

func TestDataBounds(t *testing.T) {
	rows := [][]models.Cell{
		{models.Null(), models.Null(), models.Null()},
		{models.Null(), models.NewInt(1), models.Null()},
		{models.Null(), models.Null(), models.NewString("x"), models.Null()},
	}

	area, ok := DataBounds(rows)
	if !ok {
		t.Fatal("Expected bounds to be found")
	}
	expected := models.CellRange{R1: 2, C1: 2, R2: 3, C2: 3}
	if area != expected {
		t.Errorf("DataBounds() = %+v, expected %+v", area, expected)
	}

	ref, err := FormatRange(area)
	if err != nil {
		t.Fatalf("FormatRange failed: %v", err)
	}
	if ref != "B2:C3" {
		t.Errorf("FormatRange() = %q, expected %q", ref, "B2:C3")
	}

	if density := Density(rows); density != 0.5 {
		t.Errorf("Density() = %v, expected 0.5", density)
	}
}

func TestDataBoundsAllNull(t *testing.T) {
	rows := [][]models.Cell{{models.Null()}, {}}
	if _, ok := DataBounds(rows); ok {
		t.Error("Expected no bounds for an all-null grid")
	}
	if density := Density(rows); density != 0 {
		t.Errorf("Density() = %v, expected 0", density)
	}
}

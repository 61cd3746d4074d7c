package chess

import (
	"encoding/json"
	"testing"
)

// TestMoveResultJSONSerializationAlwaysIncludesRequiredFields ensures that
// MoveResult structs always serialize to JSON with the expected field names
func TestMoveResultJSONSerializationAlwaysIncludesRequiredFields(t *testing.T) {
	moveResult := &MoveResult{
		From:      "e2",
		To:        "e4",
		Piece:     "pawn",
		Check:     false,
		Checkmate: false,
		GameOver:  false,
		Status:    StatusActive,
	}

	jsonData, err := json.Marshal(moveResult)
	if err != nil {
		t.Fatalf("Failed to marshal MoveResult: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonData, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	expectedFields := []string{"from", "to", "piece", "promoted", "check", "checkmate", "gameOver", "status"}
	for _, field := range expectedFields {
		if _, exists := parsed[field]; !exists {
			t.Errorf("Missing field in JSON: %s", field)
		}
	}

	// captured is only present when something was taken
	if _, exists := parsed["captured"]; exists {
		t.Error("Expected captured to be omitted")
	}

	if parsed["from"] != "e2" {
		t.Errorf("Expected from=e2, got %v", parsed["from"])
	}
	if parsed["status"] != string(StatusActive) {
		t.Errorf("Expected status=%s, got %v", StatusActive, parsed["status"])
	}
}

// TestSnapshotJSONSerializationAlwaysIncludesRequiredFields ensures that
// presentation layers always receive the same board shape
func TestSnapshotJSONSerializationAlwaysIncludesRequiredFields(t *testing.T) {
	engine := NewGame(nil)

	jsonData, err := json.Marshal(engine.Snapshot())
	if err != nil {
		t.Fatalf("Failed to marshal Snapshot: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(jsonData, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	expectedFields := []string{"turn", "status", "gameOver", "inCheck", "pieces", "material", "undoDepth"}
	for _, field := range expectedFields {
		if _, exists := parsed[field]; !exists {
			t.Errorf("Missing field in JSON: %s", field)
		}
	}

	pieces, ok := parsed["pieces"].([]interface{})
	if !ok {
		t.Fatalf("Expected pieces to be a list, got %T", parsed["pieces"])
	}
	if len(pieces) != 32 {
		t.Errorf("Expected 32 pieces, got %d", len(pieces))
	}

	first, _ := pieces[0].(map[string]interface{})
	if first["square"] != "e1" || first["kind"] != "king" || first["letter"] != "K" {
		t.Errorf("Expected the white king first, got %v", first)
	}
}

// TestSnapshotEmptyBoardEncodesPiecesAsList ensures pieces never encode as null
func TestSnapshotEmptyBoardEncodesPiecesAsList(t *testing.T) {
	b := NewBoard()
	if _, err := b.Place(King, White, At(4, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.Place(King, Black, At(4, 7)); err != nil {
		t.Fatal(err)
	}
	engine, err := NewGameFromBoard(b, Black, nil)
	if err != nil {
		t.Fatal(err)
	}

	snap := engine.Snapshot()
	if snap.Turn != "black" {
		t.Errorf("Expected black to move, got %s", snap.Turn)
	}
	if len(snap.Pieces) != 2 {
		t.Errorf("Expected 2 pieces, got %d", len(snap.Pieces))
	}
	if snap.Material != (MaterialCount{}) {
		t.Errorf("Expected no material, got %+v", snap.Material)
	}
}

package domain

import (
	"encoding/json"
	"testing"
)

func TestFlexID_UnmarshalString(t *testing.T) {
	var id FlexID
	if err := json.Unmarshal([]byte(`"abc-123"`), &id); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != "abc-123" {
		t.Errorf("expected 'abc-123', got %q", id)
	}
}

func TestFlexID_UnmarshalNumber(t *testing.T) {
	var id FlexID
	if err := json.Unmarshal([]byte(`42`), &id); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.String() != "42" {
		t.Errorf("expected '42', got %q", id)
	}
}

func TestAgent_JSONRoundTrip(t *testing.T) {
	a := sampleAgent()
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Agent
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != a.ID || got.AgentID != a.AgentID || got.CreatorWallet != a.CreatorWallet {
		t.Errorf("round trip mismatch: %+v vs %+v", got, a)
	}
	if !got.CreatedAt.Equal(a.CreatedAt) {
		t.Errorf("createdAt mismatch: %v vs %v", got.CreatedAt, a.CreatedAt)
	}
}

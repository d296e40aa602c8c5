package model

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	d := Draft{
		Name:         "Sam",
		SelectedPath: "rocket",
		LoveAnswer:   "maybe",
		Relationship: "enemy",
		Wish:         "money",
		EssayNonce:   -3,
	}
	d.Normalize()

	if d.LoveAnswer != LoveUnset {
		t.Errorf("expected love unset, got %q", d.LoveAnswer)
	}
	if d.Wish != WishUnset {
		t.Errorf("expected wish unset, got %q", d.Wish)
	}
	if d.Relationship != RelationshipFriend {
		t.Errorf("expected friend, got %q", d.Relationship)
	}
	if d.SelectedPath != PathUnset {
		t.Errorf("expected empty path, got %q", d.SelectedPath)
	}
	if d.EssayNonce != 0 {
		t.Errorf("expected nonce 0, got %d", d.EssayNonce)
	}
	if d.Name != "Sam" {
		t.Errorf("name should be untouched, got %q", d.Name)
	}
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	d := Draft{SelectedPath: PathSecret, LoveAnswer: LoveCantSay, Relationship: RelationshipSecretLover, Wish: WishPeace, EssayNonce: 4}
	want := d
	d.Normalize()
	if d != want {
		t.Errorf("expected %+v, got %+v", want, d)
	}
}

func TestRelationshipFor(t *testing.T) {
	tests := map[LoveAnswer]Relationship{
		LoveUnset:       RelationshipFriend,
		LoveJustFriends: RelationshipFriend,
		LoveLikeYou:     RelationshipCrush,
		LoveLoveYou:     RelationshipCrush,
		LoveCantSay:     RelationshipSecretLover,
	}
	for in, want := range tests {
		if got := RelationshipFor(in); got != want {
			t.Errorf("RelationshipFor(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUnmarshalFloorsNonce(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`{"essayNonce":1.5}`, 1},
		{`{"essayNonce":3}`, 3},
		{`{"essayNonce":-2.5}`, 0},
		{`{"essayNonce":1e12}`, math.MaxInt32},
	}
	for _, tt := range tests {
		var d Draft
		if err := json.Unmarshal([]byte(tt.in), &d); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if d.EssayNonce != tt.want {
			t.Errorf("%s: expected nonce %d, got %d", tt.in, tt.want, d.EssayNonce)
		}
	}
}

func TestUnmarshalMergesOverExisting(t *testing.T) {
	d := DefaultDraft()
	d.Name = "Sam"
	d.EssayNonce = 4
	if err := json.Unmarshal([]byte(`{"wish":"peace"}`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.Name != "Sam" || d.EssayNonce != 4 {
		t.Errorf("expected untouched fields kept, got %+v", d)
	}
	if d.Wish != WishPeace {
		t.Errorf("expected wish peace, got %q", d.Wish)
	}
	if _, err := json.Marshal(d); err != nil {
		t.Errorf("marshal: %v", err)
	}
}

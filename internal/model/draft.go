// Package model defines the card's core data types.
package model

import (
	"encoding/json"
	"math"
	"time"
)

// Relationship is the category that picks the essay's sentence pools.
type Relationship string

const (
	RelationshipFriend      Relationship = "friend"
	RelationshipCrush       Relationship = "crush"
	RelationshipSecretLover Relationship = "secret_lover"
)

// Path is the narrative path chosen on the landing scene. Empty means unset.
type Path string

const (
	PathUnset  Path = ""
	PathFriend Path = "friend"
	PathLove   Path = "love"
	PathSecret Path = "secret"
)

// LoveAnswer is the answer to the "how do you feel" question.
type LoveAnswer string

const (
	LoveUnset       LoveAnswer = "unset"
	LoveJustFriends LoveAnswer = "just_friends"
	LoveLikeYou     LoveAnswer = "like_you"
	LoveLoveYou     LoveAnswer = "love_you"
	LoveCantSay     LoveAnswer = "cant_say"
)

// Wish is the answer to the "what do you wish them" question.
type Wish string

const (
	WishUnset    Wish = "unset"
	WishRelation Wish = "relation"
	WishBreakup  Wish = "breakup"
	WishPeace    Wish = "peace"
	WishAll      Wish = "all"
)

// Draft holds a visitor's in-progress answers and the last generated essay.
type Draft struct {
	Name         string       `json:"name"`
	SelectedPath Path         `json:"selectedPath"`
	LoveAnswer   LoveAnswer   `json:"loveAnswer"`
	Relationship Relationship `json:"relationship"`
	Wish         Wish         `json:"wish"`
	EssayNonce   int          `json:"essayNonce"`
	Essay        string       `json:"essay"`
}

// UnmarshalJSON decodes d, flooring a fractional essayNonce. Fields absent
// from data keep their current values.
func (d *Draft) UnmarshalJSON(data []byte) error {
	type plain Draft
	aux := struct {
		*plain
		EssayNonce *float64 `json:"essayNonce"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.EssayNonce != nil {
		n := math.Floor(*aux.EssayNonce)
		switch {
		case n < 0:
			d.EssayNonce = 0
		case n > math.MaxInt32:
			d.EssayNonce = math.MaxInt32
		default:
			d.EssayNonce = int(n)
		}
	}
	return nil
}

// DefaultDraft returns the draft a new session starts with.
func DefaultDraft() Draft {
	return Draft{
		LoveAnswer:   LoveUnset,
		Relationship: RelationshipFriend,
		Wish:         WishUnset,
	}
}

// Normalize resets values that are not part of their closed sets.
func (d *Draft) Normalize() {
	if !ValidLoveAnswers[d.LoveAnswer] {
		d.LoveAnswer = LoveUnset
	}
	if !ValidWishes[d.Wish] {
		d.Wish = WishUnset
	}
	if !ValidRelationships[d.Relationship] {
		d.Relationship = RelationshipFriend
	}
	if !ValidPaths[d.SelectedPath] {
		d.SelectedPath = PathUnset
	}
	if d.EssayNonce < 0 {
		d.EssayNonce = 0
	}
}

// RelationshipFor derives the pool category from a love answer.
func RelationshipFor(a LoveAnswer) Relationship {
	switch a {
	case LoveJustFriends, LoveUnset:
		return RelationshipFriend
	case LoveCantSay:
		return RelationshipSecretLover
	default:
		return RelationshipCrush
	}
}

// Response is a logged questionnaire submission.
type Response struct {
	ID           string       `json:"id"`
	CreatedAt    time.Time    `json:"createdAt"`
	Name         string       `json:"name"`
	LoveAnswer   LoveAnswer   `json:"loveAnswer"`
	Wish         Wish         `json:"wish"`
	Relationship Relationship `json:"relationship"`
}

// ValidLoveAnswers are the allowed love answers.
var ValidLoveAnswers = map[LoveAnswer]bool{
	LoveUnset:       true,
	LoveJustFriends: true,
	LoveLikeYou:     true,
	LoveLoveYou:     true,
	LoveCantSay:     true,
}

// ValidWishes are the allowed wish answers.
var ValidWishes = map[Wish]bool{
	WishUnset:    true,
	WishRelation: true,
	WishBreakup:  true,
	WishPeace:    true,
	WishAll:      true,
}

// ValidPaths are the allowed narrative paths, including unset.
var ValidPaths = map[Path]bool{
	PathUnset:  true,
	PathFriend: true,
	PathLove:   true,
	PathSecret: true,
}

// ValidRelationships are the allowed pool categories.
var ValidRelationships = map[Relationship]bool{
	RelationshipFriend:      true,
	RelationshipCrush:       true,
	RelationshipSecretLover: true,
}

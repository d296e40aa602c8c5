package essay

import "github.com/rcliao/year-card/internal/model"

// poolSet holds the candidate sentences for one relationship category.
type poolSet struct {
	opener  []string
	body    []string
	bridge  []string
	closing []string
}

var pools = map[model.Relationship]poolSet{
	model.RelationshipFriend: {
		opener: []string{
			"I like how easy it is to be around you.",
			"I’ve been thinking about how steady your presence feels.",
			"Some people make life softer just by existing, and you’re one of them.",
		},
		body: []string{
			"With you, I don’t feel like I have to perform. I can show up as myself—messy, quiet, excited, unsure—and it still feels okay.",
			"I notice the small things: the way you listen without rushing, the way you make space, the way you remember details that matter.",
			"If this year asks a lot from us, I hope we meet it with patience. I hope we keep choosing the gentle version of the truth.",
			"I’m grateful for the ordinary moments with you. They don’t look dramatic, but they hold so much comfort.",
		},
		bridge: []string{
			"Whatever the label is, I want you to know you’re important to me—consistently, quietly, sincerely.",
			"I don’t need a big scene for this. I just wanted to say it clearly, so it can live in the open.",
		},
		closing: []string{
			"Happy New Year. I’m glad you’re here.",
			"Happy New Year. May the year be kind to you, and may you feel supported.",
		},
	},
	model.RelationshipCrush: {
		opener: []string{
			"I’ve been trying to act normal, but you keep showing up in my thoughts.",
			"There’s a soft kind of excitement I can’t quite hide.",
			"I don’t know what this is yet, but I like the feeling of it.",
		},
		body: []string{
			"It’s not just that I like you—it’s the way my day brightens when I imagine you laughing at something silly, or when I remember a tiny moment we shared.",
			"I keep catching myself wanting to tell you things first. Good news, bad news, nothing news. You’re becoming my favorite place to send my thoughts.",
			"I’m not asking for anything heavy. I just want to be honest about the warmth that keeps growing, quietly, on its own.",
			"If we stay here for a while—somewhere between friendship and something more—I’m okay with that. I’d rather be real than rushed.",
		},
		bridge: []string{
			"Maybe this is just a crush. Maybe it’s the beginning of something. Either way, it feels sincere.",
			"I wanted you to know, gently: I like you. I like you in a way that feels hopeful.",
		},
		closing: []string{
			"Happy New Year. If you want to, let’s make more small memories.",
			"Happy New Year. I’m rooting for you, and maybe for us too.",
		},
	},
	model.RelationshipSecretLover: {
		opener: []string{
			"There’s something I’ve been carrying quietly.",
			"If I’m honest, my feelings don’t fit into casual words.",
			"I’ve wanted to say this without making it heavy.",
		},
		body: []string{
			"I care about you in a way that’s steady and deep, the kind that shows up when it’s inconvenient, the kind that doesn’t disappear when life gets complicated.",
			"Sometimes I keep my feelings behind my teeth, not because they’re fragile, but because I want to handle them with respect—yours and mine.",
			"When I imagine the year ahead, I don’t only hope for big wins. I hope for softness. I hope for safety. I hope you feel loved in ways you can actually receive.",
			"I don’t want to turn this into a confession that demands an answer. I’m simply placing the truth down gently, like a small gift.",
		},
		bridge: []string{
			"If you can’t hold this right now, that’s okay. I still want you to have a calm year and a heart that feels protected.",
			"And if you can hold it—if even a small part of you feels the same—then I’m here. Quietly. Honestly.",
		},
		closing: []string{
			"Happy New Year. May this year be kind to you.",
			"Happy New Year. I’m here, in the soft ways that matter.",
		},
	},
}

var pathLines = map[model.Path]string{
	model.PathFriend: "Snow feels like friendship: warm, steady, and easy to come back to.",
	model.PathLove:   "Hearts feel like romance: brave, hopeful, and a little bit glowing.",
	model.PathSecret: "Flowers feel like unspoken affection: gentle, quiet, and still real.",
}

var loveLines = map[model.LoveAnswer]string{
	model.LoveUnset:       "I’m writing this gently, and I’m still learning the right words.",
	model.LoveJustFriends: "If you ever wonder where you stand with me: you’re safe with me.",
	model.LoveLikeYou:     "I like you. The simple kind of like that keeps returning, even when I try to be practical.",
	model.LoveLoveYou:     "I love you. Not as a pressure—just as a truth I keep discovering in small ways.",
	model.LoveCantSay:     "I can’t say it cleanly yet, but my feelings are real. I’m still learning the right words.",
}

var wishLines = map[model.Wish]string{
	model.WishUnset:    "For the year ahead, I hope you get exactly what you need—more than you expect, and less than you fear.",
	model.WishRelation: "For the year ahead, I’m wishing you a relationship that feels safe—mutual, gentle, and real.",
	model.WishBreakup:  "For the year ahead, I’m wishing you clean closure—strength to let go, and peace after the storm.",
	model.WishPeace:    "For the year ahead, I’m wishing you peace that actually reaches your body—quiet mornings, steady breaths, soft nights.",
	model.WishAll:      "For the year ahead, I’m wishing you everything—peace, love, growth, and small miracles you don’t have to beg for.",
}

// Fallbacks for lookups that come up empty.
const (
	defaultOpener   = "I’m thinking of you as the year begins."
	defaultBodyA    = "I hope this year meets you gently."
	defaultBodyB    = "You matter to me more than I can neatly explain."
	defaultBridge   = "I just wanted you to have these words."
	defaultClosing  = "Happy New Year."
	defaultSigner   = "Someone who cares"
	salutation      = "To you,"
	signaturePrefix = "— "
)

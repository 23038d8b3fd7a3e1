package domain

import "slices"

// Placements a campaign may be delivered on.
var Placements = []string{
	"facebook",
	"instagram",
	"facebook_stories",
	"instagram_stories",
	"messenger",
	"audience_network",
}

// CallsToAction accepted by the platform.
var CallsToAction = []string{
	"LEARN_MORE",
	"SHOP_NOW",
	"SIGN_UP",
	"DOWNLOAD",
	"GET_QUOTE",
	"CONTACT_US",
	"BOOK_TRAVEL",
	"WATCH_MORE",
}

// Creative is the ad content attached to a campaign.
type Creative struct {
	AdName         string `json:"adName" validate:"required,max=255"`
	Headline       string `json:"headline" validate:"required,max=40"`
	AdText         string `json:"adText" validate:"required,max=2000"`
	Description    string `json:"description,omitempty" validate:"max=255"`
	CallToAction   string `json:"callToAction" validate:"required,call_to_action"`
	DestinationURL string `json:"destinationUrl" validate:"required,url"`
	ImageURL       string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// KnownPlacement reports whether p is a supported placement.
func KnownPlacement(p string) bool {
	return slices.Contains(Placements, p)
}

// KnownCallToAction reports whether cta is a supported call to action.
func KnownCallToAction(cta string) bool {
	return slices.Contains(CallsToAction, cta)
}

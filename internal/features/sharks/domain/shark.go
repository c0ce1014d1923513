package domain

// Shark is the static profile of a tagged shark as published by OCEARCH.
// Profiles are replaced wholesale on every successful fetch.
type Shark struct {
	// ID is the unique shark identifier (e.g., "mary_lee").
	ID string `json:"id" validate:"required"`
	// Name is the display name.
	Name string `json:"name" validate:"required"`
	// Species is the common species name.
	Species string `json:"species"`
	// Gender is "Male" or "Female" as reported upstream.
	Gender string `json:"gender"`
	// Stage is the life stage (e.g., Adult, Sub-Adult).
	Stage string `json:"stage"`
	// Length is free text with unit (e.g., "16 ft").
	Length string `json:"length"`
	// Weight is free text with unit (e.g., "3,456 lbs").
	Weight string `json:"weight"`
	// TagLocation is where the shark was tagged.
	TagLocation string `json:"tagLocation"`
	// TagDate is the tagging date (yyyy-MM-dd).
	TagDate string `json:"tagDate"`
	// Description is free text.
	Description string `json:"description"`
	// ProfilePhoto is the photo URL.
	ProfilePhoto string `json:"profilePhoto"`
	// Tracker reports whether the shark carries an active tracker.
	Tracker bool `json:"tracker"`
}

// SharkResponse is the wire wrapper of the sharks resource.
type SharkResponse struct {
	Sharks []Shark `json:"sharks" validate:"dive"`
}

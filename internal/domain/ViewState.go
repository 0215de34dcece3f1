package domain

import "strings"

// FulfillmentChannel is the fulfillment filter shown on the report page
type FulfillmentChannel string

const (
	ChannelBoth   FulfillmentChannel = "both"
	ChannelAmazon FulfillmentChannel = "amazon"
	ChannelSeller FulfillmentChannel = "seller"
)

// ViewMode switches between the table and the graph view
type ViewMode string

const (
	ViewModeTable ViewMode = "table"
	ViewModeGraph ViewMode = "graph"
)

// ViewState is the report page selection. It is a plain value: handlers build
// a new one per request and nothing mutates it afterwards.
type ViewState struct {
	SelectedPreset     DatePreset         `json:"selected_preset"`
	AppliedPreset      DatePreset         `json:"applied_preset"`
	FulfillmentChannel FulfillmentChannel `json:"fulfillment_channel"`
	ViewMode           ViewMode           `json:"view_mode"`
}

// NewViewState builds a view state from raw query values, falling back to the
// page defaults for anything unrecognized. The applied preset equals the
// selected one, as after pressing "Apply".
func NewViewState(preset, channel, view string) ViewState {
	p, _ := ParseDatePreset(preset)

	return ViewState{
		SelectedPreset:     p,
		AppliedPreset:      p,
		FulfillmentChannel: ParseFulfillmentChannel(channel),
		ViewMode:           ParseViewMode(view),
	}
}

// Select returns a copy with a new selected preset; the applied preset is kept.
func (v ViewState) Select(preset DatePreset) ViewState {
	v.SelectedPreset = preset
	return v
}

// Apply returns a copy where the selected preset becomes the applied one.
func (v ViewState) Apply() ViewState {
	v.AppliedPreset = v.SelectedPreset
	return v
}

func ParseFulfillmentChannel(value string) FulfillmentChannel {
	switch FulfillmentChannel(strings.ToLower(strings.TrimSpace(value))) {
	case ChannelAmazon:
		return ChannelAmazon
	case ChannelSeller:
		return ChannelSeller
	default:
		return ChannelBoth
	}
}

func ParseViewMode(value string) ViewMode {
	if ViewMode(strings.ToLower(strings.TrimSpace(value))) == ViewModeGraph {
		return ViewModeGraph
	}
	return ViewModeTable
}

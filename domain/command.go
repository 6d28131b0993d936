package domain

const (
	CustomNameCommand      = "custom_dynamic_channel_name"
	CustomNameOption       = "custom_name"
	CustomNameTargetOption = "target"
)

// CommandInvocation carries the options of a custom_dynamic_channel_name call.
// A nil CustomName and an empty one both clear the preference.
type CommandInvocation struct {
	Name         string
	CustomName   *string
	TargetUserID string
	TargetName   string
}

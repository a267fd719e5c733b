package domain

// IntentType identifies the classifier's decision for a message.
type IntentType string

const (
	IntentChat                  IntentType = "CHAT"
	IntentPossibleProfileUpdate IntentType = "POSSIBLE_PROFILE_UPDATE"
	IntentIncompleteAction      IntentType = "INCOMPLETE_ACTION"
	IntentUpdateProfile         IntentType = "UPDATE_PROFILE"
)

// Intent categories as persisted in interaction records.
const (
	CategoryChat   = "chat"
	CategoryAction = "action"
)

// IntentResult is the classifier's verdict for one message. It is a tagged
// union: Reason is set only for PossibleProfileUpdate and IncompleteAction,
// FieldKey and RawValue only for UpdateProfile.
type IntentResult struct {
	Type     IntentType
	Reason   string
	FieldKey string
	RawValue string
}

// Category maps the intent type to its persisted category.
func (r IntentResult) Category() string {
	switch r.Type {
	case IntentUpdateProfile, IntentIncompleteAction, IntentPossibleProfileUpdate:
		return CategoryAction
	default:
		return CategoryChat
	}
}

// Chat builds the conversational (no-op) intent.
func Chat() IntentResult {
	return IntentResult{Type: IntentChat}
}

// PossibleProfileUpdate builds the "looks like a profile update but is not
// actionable" intent.
func PossibleProfileUpdate(reason string) IntentResult {
	return IntentResult{Type: IntentPossibleProfileUpdate, Reason: reason}
}

// IncompleteAction builds the "action verb present but malformed" intent.
func IncompleteAction(reason string) IntentResult {
	return IntentResult{Type: IntentIncompleteAction, Reason: reason}
}

// UpdateProfile builds the structured profile-update intent.
func UpdateProfile(fieldKey, rawValue string) IntentResult {
	return IntentResult{Type: IntentUpdateProfile, FieldKey: fieldKey, RawValue: rawValue}
}

package types

// ActionType is the enumerated kind of environmental action a citizen can
// log. "other" is a form-level escape hatch: at submission it is resolved to
// the user's custom text and never persisted verbatim.
type ActionType string

const (
	ActionTreePlanting        ActionType = "tree_planting"
	ActionConservationFarming ActionType = "conservation_farming"
	ActionRecycling           ActionType = "recycling"
	ActionWaterConservation   ActionType = "water_conservation"
	ActionCommunityCleanup    ActionType = "community_cleanup"
	ActionOther               ActionType = "other"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionTreePlanting, ActionConservationFarming, ActionRecycling,
		ActionWaterConservation, ActionCommunityCleanup, ActionOther:
		return true
	}
	return false
}

// PrivacySetting controls who can see a logged action on community surfaces.
type PrivacySetting string

const (
	PrivacyPrivate   PrivacySetting = "private"   // only the owner
	PrivacyAnonymous PrivacySetting = "anonymous" // community, no name
	PrivacyPublic    PrivacySetting = "public"    // community + name
)

func (p PrivacySetting) Valid() bool {
	switch p {
	case PrivacyPrivate, PrivacyAnonymous, PrivacyPublic:
		return true
	}
	return false
}

const (
	ACTION_LOGGED_POINTS = 2

	CUSTOM_ACTION_MAX_LEN = 50
	DESCRIPTION_MAX_LEN   = 200
)

type PointsConfig struct {
	ActionLoggedPoints int
}

func GetPointsConfig() PointsConfig {
	return PointsConfig{
		ActionLoggedPoints: ACTION_LOGGED_POINTS,
	}
}

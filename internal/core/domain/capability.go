package domain

import "sort"

// Android permission and feature identifiers emitted for the well-known
// cross-platform permission keys.
const (
	PermInternet           = "android.permission.INTERNET"
	PermAccessNetworkState = "android.permission.ACCESS_NETWORK_STATE"
	PermCamera             = "android.permission.CAMERA"
	PermRecordAudio        = "android.permission.RECORD_AUDIO"
	PermFineLocation       = "android.permission.ACCESS_FINE_LOCATION"
	PermCoarseLocation     = "android.permission.ACCESS_COARSE_LOCATION"
	PermBackgroundLocation = "android.permission.ACCESS_BACKGROUND_LOCATION"
	PermReadMediaVisual    = "android.permission.READ_MEDIA_VISUAL_USER_SELECTED"

	FeatureCamera          = "android.hardware.camera"
	FeatureLocationGPS     = "android.hardware.location.gps"
	FeatureLocationNetwork = "android.hardware.location.network"
)

// crossPlatformKeys are the permission keys understood on every platform.
// They are consumed from the descriptor's generic permission map; anything
// else in that map is passed through verbatim.
var crossPlatformKeys = []string{
	"camera",
	"microphone",
	"coarse_location",
	"fine_location",
	"background_location",
	"photo_library",
}

// CapabilityDeclaration is the resolved Android manifest data for one build:
// permission identifier -> granted, feature identifier -> required.
// Derived data, recomputed per build, never persisted.
type CapabilityDeclaration struct {
	Permissions map[string]bool
	Features    map[string]bool
}

// Granted returns the granted permission identifiers in sorted order, which
// keeps the p4a argument vector deterministic.
func (c CapabilityDeclaration) Granted() []string {
	granted := make([]string, 0, len(c.Permissions))
	for id, enabled := range c.Permissions {
		if enabled {
			granted = append(granted, id)
		}
	}
	sort.Strings(granted)
	return granted
}

// ExtractCrossPlatform removes the well-known cross-platform keys from the
// descriptor's permission map and returns them. After this call the map only
// contains passthrough keys. The extraction happens exactly once per
// descriptor: repeat calls return the memoized first result, so mapping is
// idempotent even though the permission map is mutated.
func ExtractCrossPlatform(app *AppDescriptor) map[string]bool {
	if app.xPermissions != nil {
		return app.xPermissions
	}
	extracted := make(map[string]bool, len(crossPlatformKeys))
	for _, key := range crossPlatformKeys {
		extracted[key] = app.Permissions[key]
		delete(app.Permissions, key)
	}
	app.xPermissions = extracted
	return extracted
}

// MapCapabilities converts an app's declarative permission and feature maps
// into a platform CapabilityDeclaration.
//
// Resolution order: fixed network defaults, then entries derived from the
// well-known keys, then the descriptor's remaining passthrough permission and
// feature entries, which overwrite on conflict.
func MapCapabilities(app *AppDescriptor) CapabilityDeclaration {
	x := ExtractCrossPlatform(app)

	permissions := map[string]bool{
		PermInternet:           true,
		PermAccessNetworkState: true,
	}
	features := map[string]bool{}

	if x["camera"] {
		permissions[PermCamera] = true
		features[FeatureCamera] = false
	}
	if x["microphone"] {
		permissions[PermRecordAudio] = true
	}
	if x["fine_location"] {
		permissions[PermFineLocation] = true
		features[FeatureLocationGPS] = false
	}
	if x["coarse_location"] {
		permissions[PermCoarseLocation] = true
		features[FeatureLocationNetwork] = false
	}
	if x["background_location"] {
		permissions[PermBackgroundLocation] = true
	}
	if x["photo_library"] {
		permissions[PermReadMediaVisual] = true
	}

	// Passthrough entries always win over derived defaults.
	for id, enabled := range app.Permissions {
		permissions[id] = enabled
	}
	for id, required := range app.Features {
		features[id] = required
	}

	return CapabilityDeclaration{
		Permissions: permissions,
		Features:    features,
	}
}

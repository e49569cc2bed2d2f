package service

import "github.com/MKhiriev/go-exercism-backup/models"

// DecideOverwrite decides what happens to the content directory of a
// solution.
//
//	exists  stale  policy            action
//	false   -      -                 CreateFresh
//	true    false  Always            PurgeAndRecreate
//	true    false  IfNewer, Never    Skip
//	true    true   Never             Skip
//	true    true   IfNewer, Always   PurgeAndRecreate
//
// Skip only suppresses the content download; iterations are synchronized
// according to their own policy.
func DecideOverwrite(exists, stale bool, policy models.OverwritePolicy) models.OverwriteAction {
	switch {
	case !exists:
		return models.ActionCreateFresh
	case policy == models.OverwriteAlways:
		return models.ActionPurgeAndRecreate
	case stale && policy != models.OverwriteNever:
		return models.ActionPurgeAndRecreate
	default:
		return models.ActionSkip
	}
}

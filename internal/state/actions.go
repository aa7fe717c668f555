// Package state holds the pure reducer at the heart of the CMS: a state
// machine over immutable snapshots. Actions form a closed sum type,
// mirroring the page-block variants, so reducer handling stays exhaustive.
//
// The reducer performs no validation, identifier generation, timestamping,
// or side effects. All business rules live one layer up, in the services.
package state

import "github.com/ecatuogno1/glassvision/internal/domain"

// Action is the sealed set of state transitions the reducer understands.
type Action interface {
	sealedAction()
}

// SetState replaces the entire snapshot; used only for hydration from
// persistence. Analytics are recomputed immediately after replacement.
type SetState struct {
	State domain.State
}

// UpsertGlassRecord replaces the record with a matching identifier in place,
// or appends when absent.
type UpsertGlassRecord struct {
	Record domain.GlassRecord
}

// DeleteGlassRecord removes a record by identifier; missing ids are no-ops.
type DeleteGlassRecord struct {
	ID string
}

// UpsertContentEntry upserts within a single content-type bucket.
type UpsertContentEntry struct {
	Entity domain.ContentEntity
	Entry  domain.ContentEntry
}

// DeleteContentEntry deletes within a single content-type bucket.
type DeleteContentEntry struct {
	Entity domain.ContentEntity
	ID     string
}

// UpsertMediaAsset upserts a media library asset.
type UpsertMediaAsset struct {
	Asset domain.MediaAsset
}

// DeleteMediaAsset removes a media asset by identifier.
type DeleteMediaAsset struct {
	ID string
}

// UpsertFormDefinition upserts a form definition.
type UpsertFormDefinition struct {
	Form domain.FormDefinition
}

// AppendFormSubmission prepends a submission to its parent form and carries
// the form's updated timestamp forward from the submission time.
type AppendFormSubmission struct {
	FormID     string
	Submission domain.FormSubmission
}

// UpdateSubmissionStatus is a targeted field mutation reachable only by the
// (form id, submission id) pair; a no-op when either does not resolve.
type UpdateSubmissionStatus struct {
	FormID       string
	SubmissionID string
	Status       domain.SubmissionStatus
}

// UpsertPageDefinition upserts a page.
type UpsertPageDefinition struct {
	Page domain.PageDefinition
}

// DeletePageDefinition removes a page by identifier.
type DeletePageDefinition struct {
	ID string
}

// PushActivity prepends an entry to the bounded activity log.
type PushActivity struct {
	Entry domain.ActivityEntry
}

// RefreshAnalytics recomputes the derived analytics snapshot wholesale.
type RefreshAnalytics struct{}

func (SetState) sealedAction()               {}
func (UpsertGlassRecord) sealedAction()      {}
func (DeleteGlassRecord) sealedAction()      {}
func (UpsertContentEntry) sealedAction()     {}
func (DeleteContentEntry) sealedAction()     {}
func (UpsertMediaAsset) sealedAction()       {}
func (DeleteMediaAsset) sealedAction()       {}
func (UpsertFormDefinition) sealedAction()   {}
func (AppendFormSubmission) sealedAction()   {}
func (UpdateSubmissionStatus) sealedAction() {}
func (UpsertPageDefinition) sealedAction()   {}
func (DeletePageDefinition) sealedAction()   {}
func (PushActivity) sealedAction()           {}
func (RefreshAnalytics) sealedAction()       {}

package state

import (
	"github.com/ecatuogno1/glassvision/internal/analytics"
	"github.com/ecatuogno1/glassvision/internal/domain"
)

// activityLimit bounds the append-only activity log; the oldest entries are
// evicted first.
const activityLimit = 150

// Reduce applies one action and returns the next snapshot. It is pure:
// given the same prior state and action it always yields a structurally
// equal result, and the prior state is never modified.
func Reduce(prior domain.State, action Action) domain.State {
	switch a := action.(type) {
	case SetState:
		next := a.State
		next.Analytics = analytics.Compute(next)
		return next

	case UpsertGlassRecord:
		next := prior
		next.GlassRecords = upsertByID(prior.GlassRecords, a.Record, func(r domain.GlassRecord) string { return r.ID })
		return next

	case DeleteGlassRecord:
		next := prior
		next.GlassRecords = deleteByID(prior.GlassRecords, a.ID, func(r domain.GlassRecord) string { return r.ID })
		return next

	case UpsertContentEntry:
		next := prior
		next.Content = cloneBuckets(prior.Content)
		next.Content[a.Entity] = upsertByID(prior.Content[a.Entity], a.Entry, func(e domain.ContentEntry) string { return e.ID })
		return next

	case DeleteContentEntry:
		next := prior
		next.Content = cloneBuckets(prior.Content)
		next.Content[a.Entity] = deleteByID(prior.Content[a.Entity], a.ID, func(e domain.ContentEntry) string { return e.ID })
		return next

	case UpsertMediaAsset:
		next := prior
		next.MediaLibrary = upsertByID(prior.MediaLibrary, a.Asset, func(m domain.MediaAsset) string { return m.ID })
		return next

	case DeleteMediaAsset:
		next := prior
		next.MediaLibrary = deleteByID(prior.MediaLibrary, a.ID, func(m domain.MediaAsset) string { return m.ID })
		return next

	case UpsertFormDefinition:
		next := prior
		next.Forms = upsertByID(prior.Forms, a.Form, func(f domain.FormDefinition) string { return f.ID })
		return next

	case AppendFormSubmission:
		next := prior
		next.Forms = mapForms(prior.Forms, a.FormID, func(form domain.FormDefinition) domain.FormDefinition {
			submissions := make([]domain.FormSubmission, 0, len(form.Submissions)+1)
			submissions = append(submissions, a.Submission)
			submissions = append(submissions, form.Submissions...)
			form.Submissions = submissions
			form.UpdatedAt = a.Submission.SubmittedAt
			return form
		})
		return next

	case UpdateSubmissionStatus:
		next := prior
		next.Forms = mapForms(prior.Forms, a.FormID, func(form domain.FormDefinition) domain.FormDefinition {
			submissions := make([]domain.FormSubmission, len(form.Submissions))
			for i, submission := range form.Submissions {
				if submission.ID == a.SubmissionID {
					submission.Status = a.Status
				}
				submissions[i] = submission
			}
			form.Submissions = submissions
			return form
		})
		return next

	case UpsertPageDefinition:
		next := prior
		next.Pages = upsertByID(prior.Pages, a.Page, func(p domain.PageDefinition) string { return p.ID })
		return next

	case DeletePageDefinition:
		next := prior
		next.Pages = deleteByID(prior.Pages, a.ID, func(p domain.PageDefinition) string { return p.ID })
		return next

	case PushActivity:
		next := prior
		log := make([]domain.ActivityEntry, 0, len(prior.Activity)+1)
		log = append(log, a.Entry)
		log = append(log, prior.Activity...)
		if len(log) > activityLimit {
			log = log[:activityLimit]
		}
		next.Activity = log
		return next

	case RefreshAnalytics:
		next := prior
		next.Analytics = analytics.Compute(prior)
		return next

	default:
		// The action set is sealed; an unknown action is a caller bug.
		panic("state: unhandled action type")
	}
}

// upsertByID replaces an element in place when its identifier matches,
// preserving collection order, or appends when absent.
func upsertByID[T any](items []T, value T, id func(T) string) []T {
	out := make([]T, len(items))
	copy(out, items)
	target := id(value)
	for i, item := range out {
		if id(item) == target {
			out[i] = value
			return out
		}
	}
	return append(out, value)
}

// deleteByID removes the element with a matching identifier; deleting an
// absent identifier returns an equal collection.
func deleteByID[T any](items []T, target string, id func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if id(item) == target {
			continue
		}
		out = append(out, item)
	}
	return out
}

// mapForms rewrites the single form with a matching identifier, leaving all
// others shared with the prior slice.
func mapForms(forms []domain.FormDefinition, formID string, fn func(domain.FormDefinition) domain.FormDefinition) []domain.FormDefinition {
	out := make([]domain.FormDefinition, len(forms))
	copy(out, forms)
	for i, form := range out {
		if form.ID == formID {
			out[i] = fn(form)
		}
	}
	return out
}

// cloneBuckets shallow-copies the bucket map so bucket replacement never
// mutates the prior snapshot's map.
func cloneBuckets(buckets map[domain.ContentEntity][]domain.ContentEntry) map[domain.ContentEntity][]domain.ContentEntry {
	out := make(map[domain.ContentEntity][]domain.ContentEntry, len(buckets))
	for entity, entries := range buckets {
		out[entity] = entries
	}
	return out
}

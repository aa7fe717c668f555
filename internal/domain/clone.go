package domain

import "time"

// Clone helpers follow the memory-repository discipline: every value handed
// across the store boundary is a deep copy, so callers can never mutate the
// canonical snapshot through a shared slice or map.

func cloneStrings(src []string) []string {
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func cloneTimePtr(src *time.Time) *time.Time {
	if src == nil {
		return nil
	}
	cloned := *src
	return &cloned
}

func cloneValues(src map[string]any) map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// Clone deep-copies a glass record.
func (r GlassRecord) Clone() GlassRecord {
	r.Applications = cloneStrings(r.Applications)
	r.Tags = cloneStrings(r.Tags)
	r.Collections = cloneStrings(r.Collections)
	return r
}

// Clone deep-copies a content entry.
func (e ContentEntry) Clone() ContentEntry {
	e.Tags = cloneStrings(e.Tags)
	e.RoleVisibility = append([]Role(nil), e.RoleVisibility...)
	e.SEO.Keywords = cloneStrings(e.SEO.Keywords)
	e.PublishedAt = cloneTimePtr(e.PublishedAt)
	e.ScheduledAt = cloneTimePtr(e.ScheduledAt)
	return e
}

// Clone deep-copies a media asset.
func (a MediaAsset) Clone() MediaAsset {
	a.Tags = cloneStrings(a.Tags)
	return a
}

// Clone deep-copies a submission.
func (s FormSubmission) Clone() FormSubmission {
	s.Values = cloneValues(s.Values)
	return s
}

// Clone deep-copies a form definition with its fields and submissions.
func (f FormDefinition) Clone() FormDefinition {
	fields := make([]FormFieldDefinition, len(f.Fields))
	for i, field := range f.Fields {
		field.Options = cloneStrings(field.Options)
		fields[i] = field
	}
	f.Fields = fields

	submissions := make([]FormSubmission, len(f.Submissions))
	for i, submission := range f.Submissions {
		submissions[i] = submission.Clone()
	}
	f.Submissions = submissions
	return f
}

// Clone deep-copies a page definition and its block list.
func (p PageDefinition) Clone() PageDefinition {
	p.Blocks = p.Blocks.Clone()
	return p
}

// Clone deep-copies the analytics snapshot.
func (a AnalyticsSnapshot) Clone() AnalyticsSnapshot {
	if a.DailyActiveUsers != nil {
		dau := make([]int, len(a.DailyActiveUsers))
		copy(dau, a.DailyActiveUsers)
		a.DailyActiveUsers = dau
	}
	if a.ContentPerformance != nil {
		perf := make([]ContentPerformance, len(a.ContentPerformance))
		copy(perf, a.ContentPerformance)
		a.ContentPerformance = perf
	}
	return a
}

// Clone deep-copies the full snapshot.
func (s State) Clone() State {
	out := s

	out.GlassRecords = make([]GlassRecord, len(s.GlassRecords))
	for i, record := range s.GlassRecords {
		out.GlassRecords[i] = record.Clone()
	}

	out.Content = make(map[ContentEntity][]ContentEntry, len(s.Content))
	for entity, entries := range s.Content {
		cloned := make([]ContentEntry, len(entries))
		for i, entry := range entries {
			cloned[i] = entry.Clone()
		}
		out.Content[entity] = cloned
	}

	out.MediaLibrary = make([]MediaAsset, len(s.MediaLibrary))
	for i, asset := range s.MediaLibrary {
		out.MediaLibrary[i] = asset.Clone()
	}

	out.Forms = make([]FormDefinition, len(s.Forms))
	for i, form := range s.Forms {
		out.Forms[i] = form.Clone()
	}

	out.Pages = make([]PageDefinition, len(s.Pages))
	for i, page := range s.Pages {
		out.Pages[i] = page.Clone()
	}

	out.Activity = make([]ActivityEntry, len(s.Activity))
	copy(out.Activity, s.Activity)

	out.Analytics = s.Analytics.Clone()
	return out
}

package seed

import (
	"time"

	"github.com/ecatuogno1/glassvision/internal/analytics"
	"github.com/ecatuogno1/glassvision/internal/domain"
)

var seedMoment = time.Date(2024, time.March, 22, 9, 0, 0, 0, time.UTC)

func allRoles() []domain.Role {
	return []domain.Role{domain.RoleAdmin, domain.RoleEditor, domain.RoleAuthor, domain.RoleViewer}
}

// MediaLibrary returns the starter assets referenced by the seeded content
// and pages.
func MediaLibrary() []domain.MediaAsset {
	return []domain.MediaAsset{
		{
			ID:          "media-hero-showroom",
			Name:        "Showroom Hero",
			Kind:        domain.MediaImage,
			URL:         "https://images.glassvision.dev/showroom-hero.jpg",
			Thumbnail:   "https://images.glassvision.dev/showroom-hero-thumb.jpg",
			Size:        524288,
			UploadedAt:  seedMoment.AddDate(0, 0, -12),
			UploadedBy:  "Design Ops",
			Tags:        []string{"hero", "showroom"},
			Folder:      "Campaigns",
			Description: "Wide shot of the flagship showroom installation.",
			Width:       2400,
			Height:      1350,
		},
		{
			ID:         "media-brand-film",
			Name:       "Brand Film",
			Kind:       domain.MediaVideo,
			URL:        "https://media.glassvision.dev/brand-film.mp4",
			Thumbnail:  "https://media.glassvision.dev/brand-film-poster.jpg",
			Size:       83886080,
			UploadedAt: seedMoment.AddDate(0, 0, -30),
			UploadedBy: "Materials Lab",
			Tags:       []string{"film", "brand"},
			Folder:     "Video",
		},
		{
			ID:          "media-spec-sheet",
			Name:        "Spectral Spec Sheet",
			Kind:        domain.MediaDocument,
			URL:         "https://docs.glassvision.dev/spectral-spec.pdf",
			Size:        262144,
			UploadedAt:  seedMoment.AddDate(0, 0, -5),
			UploadedBy:  "Materials Lab",
			Tags:        []string{"documentation", "spectral"},
			Folder:      "Documents",
			Description: "Reference transmission data across the palette.",
		},
	}
}

// Content returns a starter entry per bucket so analytics and listings have
// material to work with on first launch.
func Content() map[domain.ContentEntity][]domain.ContentEntry {
	published := seedMoment.AddDate(0, 0, -7)
	entry := func(entity domain.ContentEntity, id, title, summary, category string, metrics domain.ContentMetrics) domain.ContentEntry {
		pub := published
		return domain.ContentEntry{
			ID:             id,
			Title:          title,
			Slug:           id,
			Summary:        summary,
			Body:           "## " + title + "\n\n" + summary,
			Status:         domain.StatusPublished,
			Tags:           []string{string(entity)},
			Category:       category,
			CreatedAt:      seedMoment.AddDate(0, 0, -21),
			UpdatedAt:      published,
			PublishedAt:    &pub,
			Owner:          "Design Ops",
			RoleVisibility: allRoles(),
			SEO: domain.SEOFields{
				Title:       title,
				Description: summary,
				Keywords:    []string{string(entity), "glass"},
			},
			Metrics: metrics,
		}
	}
	return map[domain.ContentEntity][]domain.ContentEntry{
		domain.EntityProjects: {
			entry(domain.EntityProjects, "harborview-atrium", "Harborview Atrium",
				"Triple-height atrium glazing with Pacific Horizon panels.", "Case Study",
				domain.ContentMetrics{Views: 640, Engagements: 180, Conversions: 32}),
		},
		domain.EntityServices: {
			entry(domain.EntityServices, "spectral-consulting", "Spectral Consulting",
				"Transmission analysis and palette planning for architects.", "Service",
				domain.ContentMetrics{Views: 410, Engagements: 64, Conversions: 21}),
		},
		domain.EntityBlog: {
			entry(domain.EntityBlog, "light-and-color", "Light and Color in Modern Facades",
				"How transmission grades shape the feel of a building envelope.", "Insights",
				domain.ContentMetrics{Views: 880, Engagements: 240, Conversions: 18}),
		},
		domain.EntityPortfolio: {
			entry(domain.EntityPortfolio, "museum-uv-retrofit", "Museum UV Retrofit",
				"Ultraviolet Shield installation protecting a textile archive.", "Installation",
				domain.ContentMetrics{Views: 530, Engagements: 95, Conversions: 27}),
		},
		domain.EntityStaff: {
			entry(domain.EntityStaff, "lena-okafor", "Lena Okafor",
				"Lead materials scientist overseeing spectral verification.", "Team",
				domain.ContentMetrics{Views: 150, Engagements: 40, Conversions: 3}),
		},
		domain.EntityClients: {
			entry(domain.EntityClients, "meridian-museums", "Meridian Museums",
				"Multi-site conservation glazing partner since 2019.", "Partner",
				domain.ContentMetrics{Views: 200, Engagements: 22, Conversions: 9}),
		},
	}
}

// Forms returns the starter form definitions, including one reviewed
// submission so the conversion metrics have history.
func Forms() []domain.FormDefinition {
	submitted := seedMoment.AddDate(0, 0, -2)
	return []domain.FormDefinition{
		{
			ID:          "form-lead-intake",
			Name:        "Lead Intake",
			Description: "Qualify inbound project inquiries.",
			Fields: []domain.FormFieldDefinition{
				{ID: "field-name", Label: "Full name", Type: domain.FieldText, Required: true},
				{ID: "field-email", Label: "Work email", Type: domain.FieldEmail, Required: true},
				{
					ID: "field-project-type", Label: "Project type", Type: domain.FieldSelect,
					Options: []string{"Architectural", "Art", "Laboratory", "Automotive", "Decorative"},
				},
				{ID: "field-details", Label: "Project details", Type: domain.FieldTextarea, HelperText: "Timelines, square footage, and budget range help us respond faster."},
				{ID: "field-newsletter", Label: "Subscribe to the materials digest", Type: domain.FieldCheckbox},
			},
			Submissions: []domain.FormSubmission{
				{
					ID:          "submission-lead-1",
					FormID:      "form-lead-intake",
					SubmittedAt: submitted,
					SubmittedBy: "rivera@meridianmuseums.org",
					Status:      domain.SubmissionReviewed,
					Values: map[string]any{
						"field-name":         "Alex Rivera",
						"field-email":        "rivera@meridianmuseums.org",
						"field-project-type": "Laboratory",
						"field-details":      "Seeking UV-filtering glazing for a new archive wing.",
						"field-newsletter":   true,
					},
				},
			},
			UpdatedAt: submitted,
			Owner:     "Design Ops",
		},
		{
			ID:          "form-press-kit",
			Name:        "Press Kit Request",
			Description: "Deliver brand assets to media contacts.",
			Fields: []domain.FormFieldDefinition{
				{ID: "field-outlet", Label: "Outlet", Type: domain.FieldText, Required: true},
				{ID: "field-contact-email", Label: "Contact email", Type: domain.FieldEmail, Required: true},
			},
			Submissions: []domain.FormSubmission{},
			UpdatedAt:   seedMoment.AddDate(0, 0, -14),
			Owner:       "Materials Lab",
		},
	}
}

// Pages returns the starter block-composed pages.
func Pages() []domain.PageDefinition {
	return []domain.PageDefinition{
		{
			ID:        "page-experience-showcase",
			Title:     "Experience Showcase",
			Slug:      "experience-showcase",
			Status:    domain.StatusPublished,
			Owner:     "Design Ops",
			UpdatedAt: seedMoment.AddDate(0, 0, -3),
			Blocks: domain.BlockList{
				domain.HeroBlock{
					BlockMeta:         domain.BlockMeta{ID: "hero-showcase", Title: "Showcase Hero"},
					Headline:          "Glass that shapes light",
					Subheading:        "Explore installations across the spectral palette.",
					BackgroundMediaID: "media-hero-showroom",
					Alignment:         domain.AlignCenter,
				},
				domain.TextBlock{
					BlockMeta: domain.BlockMeta{ID: "intro-text", Title: "Introduction"},
					Content:   "From solar-control laminates to ceremonial ruby panels, every formulation is verified in our materials lab before it reaches a facade.",
				},
				domain.CTABlock{
					BlockMeta: domain.BlockMeta{ID: "cta-connect", Title: "Connect"},
					CTALabel:  "Start a project",
					CTAHref:   "/contact",
					Emphasis:  domain.EmphasisPrimary,
				},
			},
		},
	}
}

// Activity returns the starter audit entries, newest first.
func Activity() []domain.ActivityEntry {
	return []domain.ActivityEntry{
		{
			ID:         "activity-seed-3",
			Timestamp:  seedMoment.Add(-2 * time.Hour),
			Actor:      "Design Ops",
			Action:     "Published page Experience Showcase",
			Target:     "page-experience-showcase",
			TargetType: domain.TargetPages,
		},
		{
			ID:         "activity-seed-2",
			Timestamp:  seedMoment.Add(-26 * time.Hour),
			Actor:      "Materials Lab",
			Action:     "Uploaded media Spectral Spec Sheet",
			Target:     "media-spec-sheet",
			TargetType: domain.TargetMedia,
		},
		{
			ID:         "activity-seed-1",
			Timestamp:  seedMoment.Add(-50 * time.Hour),
			Actor:      "Design Ops",
			Action:     "Updated glass record Aqua Frost",
			Target:     "aqua-frost",
			TargetType: domain.TargetGlass,
		},
	}
}

// State assembles the full initial snapshot with analytics derived from the
// seeded collections.
func State() domain.State {
	state := domain.State{
		GlassRecords: GlassRecords(),
		Content:      Content(),
		MediaLibrary: MediaLibrary(),
		Forms:        Forms(),
		Pages:        Pages(),
		Activity:     Activity(),
		Analytics: domain.AnalyticsSnapshot{
			DailyActiveUsers: analytics.Baseline(),
		},
	}
	state.Analytics = analytics.Compute(state)
	return state
}

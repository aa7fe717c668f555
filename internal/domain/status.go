package domain

import "strings"

// GlassStatus represents lifecycle states for catalog records.
type GlassStatus string

const (
	// GlassDraft indicates a palette entry still under preparation.
	GlassDraft GlassStatus = "draft"
	// GlassPublished identifies a palette entry visible to consumers.
	GlassPublished GlassStatus = "published"
	// GlassArchived marks a palette entry retained for history only.
	GlassArchived GlassStatus = "archived"
)

// ContentStatus represents lifecycle states for content entries and pages.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusReview    ContentStatus = "review"
	StatusScheduled ContentStatus = "scheduled"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// Role classifies actors for permission checks.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleAuthor Role = "author"
	RoleViewer Role = "viewer"
)

// AllRoles lists every role, the default visibility of new content.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleEditor, RoleAuthor, RoleViewer}
}

// ContentEntity identifies a content-type bucket inside the content map.
type ContentEntity string

const (
	EntityProjects  ContentEntity = "projects"
	EntityServices  ContentEntity = "services"
	EntityBlog      ContentEntity = "blog"
	EntityPortfolio ContentEntity = "portfolio"
	EntityStaff     ContentEntity = "staff"
	EntityClients   ContentEntity = "clients"
)

// ContentEntities lists every bucket in canonical order. Iterating the
// content map through this slice keeps derived computations deterministic.
var ContentEntities = []ContentEntity{
	EntityProjects,
	EntityServices,
	EntityBlog,
	EntityPortfolio,
	EntityStaff,
	EntityClients,
}

// MediaKind classifies media library assets.
type MediaKind string

const (
	MediaImage    MediaKind = "image"
	MediaVideo    MediaKind = "video"
	MediaDocument MediaKind = "document"
	MediaAudio    MediaKind = "audio"
)

// MediaKindFromContentType infers an asset kind from a declared media type.
// Image, video, and audio prefixes map directly; anything else is a document.
func MediaKindFromContentType(contentType string) MediaKind {
	normalized := strings.ToLower(strings.TrimSpace(contentType))
	switch {
	case strings.HasPrefix(normalized, "image/"):
		return MediaImage
	case strings.HasPrefix(normalized, "video/"):
		return MediaVideo
	case strings.HasPrefix(normalized, "audio/"):
		return MediaAudio
	default:
		return MediaDocument
	}
}

// SubmissionStatus tracks the review workflow of a form submission.
type SubmissionStatus string

const (
	SubmissionNew      SubmissionStatus = "new"
	SubmissionReviewed SubmissionStatus = "reviewed"
	SubmissionResolved SubmissionStatus = "resolved"
)

// FormFieldType enumerates the supported form field widgets.
type FormFieldType string

const (
	FieldText     FormFieldType = "text"
	FieldEmail    FormFieldType = "email"
	FieldSelect   FormFieldType = "select"
	FieldTextarea FormFieldType = "textarea"
	FieldCheckbox FormFieldType = "checkbox"
)

// ToastStatus is the severity of a transient notification.
type ToastStatus string

const (
	ToastSuccess ToastStatus = "success"
	ToastInfo    ToastStatus = "info"
	ToastWarning ToastStatus = "warning"
	ToastError   ToastStatus = "error"
)

// TargetType tags activity entries with the kind of entity they describe.
// Content entries use their bucket name as the tag.
type TargetType string

const (
	TargetGlass TargetType = "glass"
	TargetMedia TargetType = "media"
	TargetForms TargetType = "forms"
	TargetPages TargetType = "pages"
)

// Trend classifies content performance direction.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// LightTransmission grades how much light a glass formulation passes.
type LightTransmission string

const (
	TransmissionLow    LightTransmission = "low"
	TransmissionMedium LightTransmission = "medium"
	TransmissionHigh   LightTransmission = "high"
)

// GlassCategory groups palette entries by application domain.
type GlassCategory string

const (
	CategoryArchitectural GlassCategory = "Architectural"
	CategoryArt           GlassCategory = "Art"
	CategoryLaboratory    GlassCategory = "Laboratory"
	CategoryAutomotive    GlassCategory = "Automotive"
	CategoryDecorative    GlassCategory = "Decorative"
)

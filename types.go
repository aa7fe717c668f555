package glassvision

import (
	"github.com/ecatuogno1/glassvision/internal/assist"
	"github.com/ecatuogno1/glassvision/internal/content"
	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/forms"
	"github.com/ecatuogno1/glassvision/internal/media"
	"github.com/ecatuogno1/glassvision/internal/pages"
	"github.com/ecatuogno1/glassvision/internal/permissions"
	"github.com/ecatuogno1/glassvision/internal/runtimeconfig"
)

// Core entities.
type (
	State          = domain.State
	GlassRecord    = domain.GlassRecord
	ContentEntry   = domain.ContentEntry
	ContentMetrics = domain.ContentMetrics
	SEOFields      = domain.SEOFields
	MediaAsset     = domain.MediaAsset
	FormDefinition = domain.FormDefinition
	FormField      = domain.FormFieldDefinition
	FormSubmission = domain.FormSubmission
	PageDefinition = domain.PageDefinition
	ActivityEntry  = domain.ActivityEntry
	Analytics      = domain.AnalyticsSnapshot
	ToastMessage   = domain.ToastMessage
)

// Page block variants.
type (
	Block        = domain.Block
	BlockList    = domain.BlockList
	BlockMeta    = domain.BlockMeta
	HeroBlock    = domain.HeroBlock
	TextBlock    = domain.TextBlock
	GalleryBlock = domain.GalleryBlock
	MediaBlock   = domain.MediaBlock
	CTABlock     = domain.CTABlock
)

// Enumerations.
type (
	GlassStatus      = domain.GlassStatus
	ContentStatus    = domain.ContentStatus
	ContentEntity    = domain.ContentEntity
	Role             = domain.Role
	MediaKind        = domain.MediaKind
	SubmissionStatus = domain.SubmissionStatus
	FormFieldType    = domain.FormFieldType
	ToastStatus      = domain.ToastStatus
	TargetType       = domain.TargetType
	Trend            = domain.Trend
)

// Service inputs.
type (
	EntryDraft  = content.EntryDraft
	FormDraft   = forms.FormDraft
	PageDraft   = pages.PageDraft
	UploadDraft = media.UploadDraft
	AssetPatch  = media.AssetPatch
)

// Permissions.
type (
	PermissionAction   = permissions.Action
	PermissionResource = permissions.Resource
	PermissionTable    = permissions.Table
)

// Configuration.
type (
	Config             = runtimeconfig.Config
	LoggingConfig      = runtimeconfig.LoggingConfig
	PersistenceConfig  = runtimeconfig.PersistenceConfig
	AssistantConfig    = runtimeconfig.AssistantConfig
	NotificationConfig = runtimeconfig.NotificationConfig
)

// Lifecycle statuses re-exported for ergonomic call sites.
const (
	GlassDraft     = domain.GlassDraft
	GlassPublished = domain.GlassPublished
	GlassArchived  = domain.GlassArchived

	StatusDraft     = domain.StatusDraft
	StatusReview    = domain.StatusReview
	StatusScheduled = domain.StatusScheduled
	StatusPublished = domain.StatusPublished
	StatusArchived  = domain.StatusArchived
)

// Content buckets.
const (
	EntityProjects  = domain.EntityProjects
	EntityServices  = domain.EntityServices
	EntityBlog      = domain.EntityBlog
	EntityPortfolio = domain.EntityPortfolio
	EntityStaff     = domain.EntityStaff
	EntityClients   = domain.EntityClients
)

// Roles.
const (
	RoleAdmin  = domain.RoleAdmin
	RoleEditor = domain.RoleEditor
	RoleAuthor = domain.RoleAuthor
	RoleViewer = domain.RoleViewer
)

// Submission workflow.
const (
	SubmissionNew      = domain.SubmissionNew
	SubmissionReviewed = domain.SubmissionReviewed
	SubmissionResolved = domain.SubmissionResolved
)

// Permission actions.
const (
	ActionCreate  = permissions.ActionCreate
	ActionUpdate  = permissions.ActionUpdate
	ActionDelete  = permissions.ActionDelete
	ActionPublish = permissions.ActionPublish
)

// Permission resources.
const (
	ResourceProjects  = permissions.ResourceProjects
	ResourceServices  = permissions.ResourceServices
	ResourceBlog      = permissions.ResourceBlog
	ResourcePortfolio = permissions.ResourcePortfolio
	ResourceStaff     = permissions.ResourceStaff
	ResourceClients   = permissions.ResourceClients
	ResourceMedia     = permissions.ResourceMedia
	ResourceForms     = permissions.ResourceForms
	ResourcePages     = permissions.ResourcePages
)

// Assistant sentinel errors.
var (
	ErrAssistantNotConfigured = assist.ErrNotConfigured
	ErrAssistantBusy          = assist.ErrBusy
)

// DefaultConfig returns the settings a host gets without any tuning.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

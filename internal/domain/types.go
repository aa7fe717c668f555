package domain

import "time"

// GlassRecord is a curated glass palette entry, the primary catalog entity.
type GlassRecord struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	HueGroup          string            `json:"hueGroup"`
	Hex               string            `json:"hex"`
	LightTransmission LightTransmission `json:"lightTransmission"`
	Reflectance       int               `json:"reflectance"`
	DominantElement   string            `json:"dominantElement"`
	Category          GlassCategory     `json:"category"`
	Description       string            `json:"description"`
	Applications      []string          `json:"applications"`
	Tags              []string          `json:"tags"`
	Status            GlassStatus       `json:"status"`
	Featured          bool              `json:"featured"`
	Collections       []string          `json:"collections"`
	UpdatedAt         time.Time         `json:"updatedAt"`
	Owner             string            `json:"owner"`
	Notes             string            `json:"notes"`
}

// SEOFields carries the nested metadata block of a content entry.
type SEOFields struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// ContentMetrics accumulates engagement counters for a content entry.
type ContentMetrics struct {
	Views       int `json:"views"`
	Engagements int `json:"engagements"`
	Conversions int `json:"conversions"`
}

// ContentEntry is a managed entry inside one content-type bucket.
// Identifiers are unique within a bucket only.
type ContentEntry struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Slug           string         `json:"slug"`
	Summary        string         `json:"summary"`
	Body           string         `json:"body"`
	Status         ContentStatus  `json:"status"`
	Tags           []string       `json:"tags"`
	Category       string         `json:"category"`
	HeroMediaID    string         `json:"heroMediaId,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	PublishedAt    *time.Time     `json:"publishedAt,omitempty"`
	ScheduledAt    *time.Time     `json:"scheduledAt,omitempty"`
	Owner          string         `json:"owner"`
	RoleVisibility []Role         `json:"roleVisibility"`
	SEO            SEOFields      `json:"seo"`
	Metrics        ContentMetrics `json:"metrics"`
}

// MediaAsset is an entry in the shared media library.
type MediaAsset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Kind        MediaKind `json:"kind"`
	URL         string    `json:"url"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
	UploadedBy  string    `json:"uploadedBy"`
	Tags        []string  `json:"tags"`
	Folder      string    `json:"folder"`
	Description string    `json:"description,omitempty"`
	Width       int       `json:"width,omitempty"`
	Height      int       `json:"height,omitempty"`
}

// FormFieldDefinition describes one input of a form.
type FormFieldDefinition struct {
	ID         string        `json:"id"`
	Label      string        `json:"label"`
	Type       FormFieldType `json:"type"`
	Options    []string      `json:"options,omitempty"`
	Required   bool          `json:"required,omitempty"`
	HelperText string        `json:"helperText,omitempty"`
}

// FormSubmission captures a single response to a form. Values are keyed by
// field id and hold strings or booleans.
type FormSubmission struct {
	ID          string           `json:"id"`
	FormID      string           `json:"formId"`
	SubmittedAt time.Time        `json:"submittedAt"`
	SubmittedBy string           `json:"submittedBy"`
	Status      SubmissionStatus `json:"status"`
	Values      map[string]any   `json:"values"`
}

// FormDefinition describes a managed form and its submissions,
// most recent submission first.
type FormDefinition struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Fields      []FormFieldDefinition `json:"fields"`
	Submissions []FormSubmission      `json:"submissions"`
	UpdatedAt   time.Time             `json:"updatedAt"`
	Owner       string                `json:"owner"`
}

// PageDefinition is a block-composed page. Block order is user-arranged and
// preserved exactly.
type PageDefinition struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Slug      string        `json:"slug"`
	Status    ContentStatus `json:"status"`
	Owner     string        `json:"owner"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Blocks    BlockList     `json:"blocks"`
}

// ActivityEntry records one audited action. The log is append-only and
// bounded to the most recent entries.
type ActivityEntry struct {
	ID         string     `json:"id"`
	Timestamp  time.Time  `json:"timestamp"`
	Actor      string     `json:"actor"`
	Action     string     `json:"action"`
	Target     string     `json:"target"`
	TargetType TargetType `json:"targetType"`
}

// ContentPerformance is one row of the derived top-content ranking.
type ContentPerformance struct {
	ID    string        `json:"id"`
	Title string        `json:"title"`
	Type  ContentEntity `json:"type"`
	Views int           `json:"views"`
	Trend Trend         `json:"trend"`
}

// AnalyticsSnapshot is derived wholesale from state and never mutated
// field by field.
type AnalyticsSnapshot struct {
	DailyActiveUsers   []int                `json:"dailyActiveUsers"`
	ContentPerformance []ContentPerformance `json:"contentPerformance"`
	FormConversionRate int                  `json:"formConversionRate"`
}

// ToastMessage is a transient user-facing notification. Toasts are not part
// of the persisted snapshot.
type ToastMessage struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      ToastStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// State is the complete immutable snapshot of all CMS collections. Every
// mutation produces a fresh State; readers never observe partial updates.
type State struct {
	GlassRecords []GlassRecord                  `json:"glassRecords"`
	Content      map[ContentEntity][]ContentEntry `json:"content"`
	MediaLibrary []MediaAsset                   `json:"mediaLibrary"`
	Forms        []FormDefinition               `json:"forms"`
	Pages        []PageDefinition               `json:"pages"`
	Activity     []ActivityEntry                `json:"activity"`
	Analytics    AnalyticsSnapshot              `json:"analytics"`
}

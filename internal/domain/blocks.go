package domain

import (
	"encoding/json"
	"fmt"
)

// BlockKind discriminates the page block variants.
type BlockKind string

const (
	BlockHero    BlockKind = "hero"
	BlockText    BlockKind = "text"
	BlockGallery BlockKind = "gallery"
	BlockMedia   BlockKind = "media"
	BlockCTA     BlockKind = "cta"
)

// Alignment positions hero content.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// GalleryLayout selects how gallery media is arranged.
type GalleryLayout string

const (
	LayoutGrid     GalleryLayout = "grid"
	LayoutCarousel GalleryLayout = "carousel"
)

// CTAEmphasis styles a call-to-action block.
type CTAEmphasis string

const (
	EmphasisPrimary   CTAEmphasis = "primary"
	EmphasisSecondary CTAEmphasis = "secondary"
)

// BlockMeta carries the fields shared by every block variant.
type BlockMeta struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Block is the closed sum type of page block variants. The sealed marker
// method keeps the set of implementations confined to this package so every
// switch over Kind() can be exhaustive.
type Block interface {
	Kind() BlockKind
	Meta() BlockMeta
	sealedBlock()
}

// HeroBlock renders a full-width banner.
type HeroBlock struct {
	BlockMeta
	Headline          string    `json:"headline"`
	Subheading        string    `json:"subheading"`
	BackgroundMediaID string    `json:"backgroundMediaId,omitempty"`
	Alignment         Alignment `json:"alignment"`
}

// TextBlock renders body copy.
type TextBlock struct {
	BlockMeta
	Content string `json:"content"`
}

// GalleryBlock renders an ordered set of media references.
type GalleryBlock struct {
	BlockMeta
	MediaIDs []string      `json:"mediaIds"`
	Layout   GalleryLayout `json:"layout"`
}

// MediaBlock renders a single media reference with an optional caption.
type MediaBlock struct {
	BlockMeta
	MediaID string `json:"mediaId"`
	Caption string `json:"caption,omitempty"`
}

// CTABlock renders a call-to-action link.
type CTABlock struct {
	BlockMeta
	CTALabel string      `json:"ctaLabel"`
	CTAHref  string      `json:"ctaHref"`
	Emphasis CTAEmphasis `json:"emphasis"`
}

func (HeroBlock) Kind() BlockKind    { return BlockHero }
func (TextBlock) Kind() BlockKind    { return BlockText }
func (GalleryBlock) Kind() BlockKind { return BlockGallery }
func (MediaBlock) Kind() BlockKind   { return BlockMedia }
func (CTABlock) Kind() BlockKind     { return BlockCTA }

func (b HeroBlock) Meta() BlockMeta    { return b.BlockMeta }
func (b TextBlock) Meta() BlockMeta    { return b.BlockMeta }
func (b GalleryBlock) Meta() BlockMeta { return b.BlockMeta }
func (b MediaBlock) Meta() BlockMeta   { return b.BlockMeta }
func (b CTABlock) Meta() BlockMeta     { return b.BlockMeta }

func (HeroBlock) sealedBlock()    {}
func (TextBlock) sealedBlock()    {}
func (GalleryBlock) sealedBlock() {}
func (MediaBlock) sealedBlock()   {}
func (CTABlock) sealedBlock()     {}

// BlockList serializes blocks as a tagged union: each element gains a "type"
// discriminator alongside its variant fields.
type BlockList []Block

// blockEnvelope is the flattened wire form of every variant.
type blockEnvelope struct {
	ID                string        `json:"id"`
	Type              BlockKind     `json:"type"`
	Title             string        `json:"title"`
	Headline          string        `json:"headline,omitempty"`
	Subheading        string        `json:"subheading,omitempty"`
	BackgroundMediaID string        `json:"backgroundMediaId,omitempty"`
	Alignment         Alignment     `json:"alignment,omitempty"`
	Content           string        `json:"content,omitempty"`
	MediaIDs          []string      `json:"mediaIds,omitempty"`
	Layout            GalleryLayout `json:"layout,omitempty"`
	MediaID           string        `json:"mediaId,omitempty"`
	Caption           string        `json:"caption,omitempty"`
	CTALabel          string        `json:"ctaLabel,omitempty"`
	CTAHref           string        `json:"ctaHref,omitempty"`
	Emphasis          CTAEmphasis   `json:"emphasis,omitempty"`
}

// MarshalJSON implements the tagged-union encoding.
func (l BlockList) MarshalJSON() ([]byte, error) {
	envelopes := make([]blockEnvelope, 0, len(l))
	for _, block := range l {
		env := blockEnvelope{
			ID:    block.Meta().ID,
			Type:  block.Kind(),
			Title: block.Meta().Title,
		}
		switch b := block.(type) {
		case HeroBlock:
			env.Headline = b.Headline
			env.Subheading = b.Subheading
			env.BackgroundMediaID = b.BackgroundMediaID
			env.Alignment = b.Alignment
		case TextBlock:
			env.Content = b.Content
		case GalleryBlock:
			env.MediaIDs = b.MediaIDs
			env.Layout = b.Layout
		case MediaBlock:
			env.MediaID = b.MediaID
			env.Caption = b.Caption
		case CTABlock:
			env.CTALabel = b.CTALabel
			env.CTAHref = b.CTAHref
			env.Emphasis = b.Emphasis
		default:
			return nil, fmt.Errorf("domain: unknown block kind %q", block.Kind())
		}
		envelopes = append(envelopes, env)
	}
	return json.Marshal(envelopes)
}

// UnmarshalJSON implements the tagged-union decoding. Unknown discriminators
// are rejected so schema drift surfaces at the persistence boundary.
func (l *BlockList) UnmarshalJSON(data []byte) error {
	var envelopes []blockEnvelope
	if err := json.Unmarshal(data, &envelopes); err != nil {
		return err
	}
	blocks := make(BlockList, 0, len(envelopes))
	for _, env := range envelopes {
		meta := BlockMeta{ID: env.ID, Title: env.Title}
		switch env.Type {
		case BlockHero:
			blocks = append(blocks, HeroBlock{
				BlockMeta:         meta,
				Headline:          env.Headline,
				Subheading:        env.Subheading,
				BackgroundMediaID: env.BackgroundMediaID,
				Alignment:         env.Alignment,
			})
		case BlockText:
			blocks = append(blocks, TextBlock{BlockMeta: meta, Content: env.Content})
		case BlockGallery:
			blocks = append(blocks, GalleryBlock{BlockMeta: meta, MediaIDs: env.MediaIDs, Layout: env.Layout})
		case BlockMedia:
			blocks = append(blocks, MediaBlock{BlockMeta: meta, MediaID: env.MediaID, Caption: env.Caption})
		case BlockCTA:
			blocks = append(blocks, CTABlock{BlockMeta: meta, CTALabel: env.CTALabel, CTAHref: env.CTAHref, Emphasis: env.Emphasis})
		default:
			return fmt.Errorf("domain: unknown block kind %q", env.Type)
		}
	}
	*l = blocks
	return nil
}

// Clone deep-copies the list, including per-variant slices.
func (l BlockList) Clone() BlockList {
	if l == nil {
		return nil
	}
	out := make(BlockList, len(l))
	for i, block := range l {
		switch b := block.(type) {
		case HeroBlock:
			out[i] = b
		case TextBlock:
			out[i] = b
		case GalleryBlock:
			b.MediaIDs = cloneStrings(b.MediaIDs)
			out[i] = b
		case MediaBlock:
			out[i] = b
		case CTABlock:
			out[i] = b
		}
	}
	return out
}

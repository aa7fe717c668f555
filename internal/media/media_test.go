package media_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecatuogno1/glassvision/internal/domain"
	"github.com/ecatuogno1/glassvision/internal/media"
	"github.com/ecatuogno1/glassvision/internal/notify"
	"github.com/ecatuogno1/glassvision/internal/store"
	"github.com/ecatuogno1/glassvision/pkg/interfaces"
)

var fixedMoment = time.Date(2024, 3, 22, 10, 0, 0, 0, time.UTC)

func newService(initial domain.State, opts ...media.Option) (*media.Service, *store.Store, *notify.Queue) {
	st := store.New(initial)
	toasts := notify.NewQueue()
	base := []media.Option{
		media.WithClock(func() time.Time { return fixedMoment }),
		media.WithIDGenerator(func(prefix string) string { return prefix + "-fixed" }),
	}
	svc := media.NewService(st, toasts, append(base, opts...)...)
	return svc, st, toasts
}

func TestUploadRequiresName(t *testing.T) {
	svc, st, toasts := newService(domain.State{})

	_, err := svc.Upload(context.Background(), "editor", media.UploadDraft{Name: "  "})
	if !errors.Is(err, media.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if got := len(st.State().MediaLibrary); got != 0 {
		t.Fatalf("state must stay untouched, found %d assets", got)
	}
	list := toasts.List()
	if len(list) != 1 || list[0].Status != domain.ToastError {
		t.Fatalf("expected error toast, got %+v", list)
	}
}

func TestUploadDefaultsWithoutFile(t *testing.T) {
	svc, st, _ := newService(domain.State{})

	asset, err := svc.Upload(context.Background(), "editor", media.UploadDraft{
		Name: "Brand PDF",
		URL:  "https://cdn.example.com/brand.pdf",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.ID != "media-fixed" {
		t.Fatalf("expected generated id, got %q", asset.ID)
	}
	if asset.Kind != domain.MediaDocument {
		t.Fatalf("expected document default, got %q", asset.Kind)
	}
	if asset.URL != "https://cdn.example.com/brand.pdf" {
		t.Fatalf("expected draft URL kept, got %q", asset.URL)
	}
	if asset.Folder != "Uploads" {
		t.Fatalf("expected Uploads default, got %q", asset.Folder)
	}
	if asset.UploadedBy != "editor" {
		t.Fatalf("expected actor as uploader, got %q", asset.UploadedBy)
	}
	if got := len(st.State().MediaLibrary); got != 1 {
		t.Fatalf("expected 1 asset, got %d", got)
	}
}

func TestUploadHonorsExplicitDraftValues(t *testing.T) {
	svc, st, _ := newService(domain.State{})

	asset, err := svc.Upload(context.Background(), "editor", media.UploadDraft{
		ID:        "media-imported",
		Name:      "Showroom Reel",
		URL:       "https://cdn.example.com/reel.mp4",
		Kind:      domain.MediaVideo,
		Thumbnail: "https://cdn.example.com/reel.jpg",
		Size:      4096,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.ID != "media-imported" {
		t.Fatalf("expected supplied id kept, got %q", asset.ID)
	}
	if asset.Kind != domain.MediaVideo {
		t.Fatalf("expected supplied kind kept, got %q", asset.Kind)
	}
	if asset.Thumbnail != "https://cdn.example.com/reel.jpg" {
		t.Fatalf("expected supplied thumbnail kept, got %q", asset.Thumbnail)
	}
	if asset.Size != 4096 {
		t.Fatalf("expected supplied size kept, got %d", asset.Size)
	}
	if st.State().MediaLibrary[0].ID != "media-imported" {
		t.Fatal("explicit upload not committed")
	}
}

func TestUploadExplicitValuesWinOverFileInference(t *testing.T) {
	resolver := interfaces.ObjectURLFunc(func(upload interfaces.Upload) (string, error) {
		return "blob://" + upload.Name, nil
	})
	svc, _, _ := newService(domain.State{}, media.WithObjectURLProvider(resolver))

	asset, err := svc.Upload(context.Background(), "editor", media.UploadDraft{
		Name:      "Catalog Scan",
		File:      &interfaces.Upload{Name: "scan.jpg", Size: 2048, ContentType: "image/jpeg"},
		Kind:      domain.MediaDocument,
		Thumbnail: "https://cdn.example.com/scan-preview.jpg",
		Size:      512,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Kind != domain.MediaDocument {
		t.Fatalf("supplied kind must beat content-type inference, got %q", asset.Kind)
	}
	if asset.Thumbnail != "https://cdn.example.com/scan-preview.jpg" {
		t.Fatalf("supplied thumbnail must beat the resolved URL, got %q", asset.Thumbnail)
	}
	if asset.Size != 512 {
		t.Fatalf("supplied size must beat the file size, got %d", asset.Size)
	}
	if asset.URL != "blob://scan.jpg" {
		t.Fatalf("expected resolved URL, got %q", asset.URL)
	}
}

func TestUploadResolvesObjectURL(t *testing.T) {
	resolver := interfaces.ObjectURLFunc(func(upload interfaces.Upload) (string, error) {
		return "blob://" + upload.Name, nil
	})
	svc, _, _ := newService(domain.State{}, media.WithObjectURLProvider(resolver))

	asset, err := svc.Upload(context.Background(), "editor", media.UploadDraft{
		Name: "Showroom Hero",
		File: &interfaces.Upload{Name: "hero.jpg", Size: 2048, ContentType: "image/jpeg"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Kind != domain.MediaImage {
		t.Fatalf("expected image kind from content type, got %q", asset.Kind)
	}
	if asset.URL != "blob://hero.jpg" || asset.Thumbnail != "blob://hero.jpg" {
		t.Fatalf("expected resolved URL as thumbnail too, got %q / %q", asset.URL, asset.Thumbnail)
	}
	if asset.Size != 2048 {
		t.Fatalf("expected file size recorded, got %d", asset.Size)
	}
}

func TestUploadObjectURLFailure(t *testing.T) {
	boom := errors.New("staging unavailable")
	resolver := interfaces.ObjectURLFunc(func(interfaces.Upload) (string, error) {
		return "", boom
	})
	svc, st, _ := newService(domain.State{}, media.WithObjectURLProvider(resolver))

	_, err := svc.Upload(context.Background(), "editor", media.UploadDraft{
		Name: "Broken",
		File: &interfaces.Upload{Name: "clip.mp4", ContentType: "video/mp4"},
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected resolver error, got %v", err)
	}
	if got := len(st.State().MediaLibrary); got != 0 {
		t.Fatalf("failed uploads must not register assets, found %d", got)
	}
}

func TestUpdateAppliesPartialPatch(t *testing.T) {
	existing := domain.MediaAsset{
		ID:          "media-1",
		Name:        "Original",
		Kind:        domain.MediaImage,
		Folder:      "Launch",
		Description: "Original description",
		Tags:        []string{"hero"},
	}
	svc, st, _ := newService(domain.State{MediaLibrary: []domain.MediaAsset{existing}})

	updated, err := svc.Update(context.Background(), "editor", "media-1", media.AssetPatch{
		Name: "Renamed",
		Tags: []string{" launch ", "hero"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("expected patched name, got %q", updated.Name)
	}
	if updated.Folder != "Launch" || updated.Description != "Original description" {
		t.Fatalf("omitted fields must stay unchanged, got %+v", updated)
	}
	if len(updated.Tags) != 2 || updated.Tags[0] != "launch" {
		t.Fatalf("expected sanitized patched tags, got %v", updated.Tags)
	}
	if st.State().MediaLibrary[0].Name != "Renamed" {
		t.Fatal("patch not committed")
	}
}

func TestUpdateUnknownAsset(t *testing.T) {
	svc, _, toasts := newService(domain.State{})

	_, err := svc.Update(context.Background(), "editor", "missing", media.AssetPatch{Name: "x"})
	if !errors.Is(err, media.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	list := toasts.List()
	if len(list) != 1 || list[0].Status != domain.ToastError {
		t.Fatalf("expected error toast, got %+v", list)
	}
}

func TestDeleteRemovesAsset(t *testing.T) {
	existing := domain.MediaAsset{ID: "media-1", Name: "Original"}
	svc, st, _ := newService(domain.State{MediaLibrary: []domain.MediaAsset{existing}})

	svc.Delete(context.Background(), "editor", "media-1")
	if got := len(st.State().MediaLibrary); got != 0 {
		t.Fatalf("expected 0 assets, got %d", got)
	}
}

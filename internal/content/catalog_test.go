package content

import "testing"

func TestServiceBySlug(t *testing.T) {
	tests := []struct {
		name     string
		slug     string
		wantSlug string
	}{
		{name: "known slug", slug: "ui-ux-design", wantSlug: "ui-ux-design"},
		{name: "unknown slug returns default", slug: "does-not-exist", wantSlug: services[0].Slug},
		{name: "empty slug returns default", slug: "", wantSlug: services[0].Slug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ServiceBySlug(tt.slug)
			if got.Slug != tt.wantSlug {
				t.Errorf("ServiceBySlug(%q).Slug = %q, want %q", tt.slug, got.Slug, tt.wantSlug)
			}
			if got.Title == "" || got.Description == "" {
				t.Errorf("ServiceBySlug(%q) returned incomplete record", tt.slug)
			}
		})
	}
}

func TestProjectBySlug(t *testing.T) {
	got := ProjectBySlug("bloom-and-branch")
	if got.Slug != "bloom-and-branch" {
		t.Errorf("ProjectBySlug returned %q, want %q", got.Slug, "bloom-and-branch")
	}

	fallback := ProjectBySlug("nope")
	if fallback.Slug != projects[0].Slug {
		t.Errorf("unknown slug returned %q, want default %q", fallback.Slug, projects[0].Slug)
	}
}

func TestCatalogsNonEmpty(t *testing.T) {
	if len(Services()) == 0 {
		t.Error("services catalog is empty")
	}
	if len(FAQs()) == 0 {
		t.Error("FAQ catalog is empty")
	}
	if len(Projects()) == 0 {
		t.Error("project catalog is empty")
	}
}

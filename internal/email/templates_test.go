package email

import (
	"strings"
	"testing"

	"github.com/pixelsmith/contactrelay/internal/model"
)

func sampleSubmission() model.Submission {
	return model.Submission{
		FullName:      "Jane Doe",
		Email:         "jane@example.com",
		CompanyName:   "Acme",
		ContactNumber: "555-1234",
		Message:       "Need a quote",
	}
}

func TestOwnerNotificationBodies(t *testing.T) {
	sub := sampleSubmission()
	html := OwnerNotificationHTML(sub, "Pixelsmith")
	text := OwnerNotificationText(sub, "Pixelsmith")

	for _, want := range []string{"Jane Doe", "jane@example.com", "Acme", "555-1234", "Need a quote"} {
		if !strings.Contains(html, want) {
			t.Errorf("HTML body missing %q", want)
		}
		if !strings.Contains(text, want) {
			t.Errorf("text body missing %q", want)
		}
	}
}

func TestOwnerNotificationEscapesHTML(t *testing.T) {
	sub := sampleSubmission()
	sub.Message = `<script>alert("x")</script>`

	html := OwnerNotificationHTML(sub, "Pixelsmith")
	if strings.Contains(html, "<script>") {
		t.Error("submitted markup must be escaped in the HTML body")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("expected escaped markup in the HTML body")
	}
}

func TestAutoReplyBodies(t *testing.T) {
	sub := sampleSubmission()
	html := AutoReplyHTML(sub, "Pixelsmith")
	text := AutoReplyText(sub, "Pixelsmith")

	for _, body := range []string{html, text} {
		if !strings.Contains(body, "Jane Doe") {
			t.Error("auto-reply must address the submitter by name")
		}
		if !strings.Contains(body, "Need a quote") {
			t.Error("auto-reply must echo the submitted message")
		}
		if !strings.Contains(body, "Pixelsmith") {
			t.Error("auto-reply must carry the agency name")
		}
	}
}

func TestOwnerNotificationPlaceholdersForOptionalFields(t *testing.T) {
	sub := sampleSubmission()
	sub.CompanyName = ""
	sub.ContactNumber = ""

	html := OwnerNotificationHTML(sub, "Pixelsmith")
	// Optional fields render as a placeholder, not an empty cell pair
	if strings.Count(html, "(not provided)") != 2 {
		t.Error("expected placeholders for missing company and phone")
	}
}

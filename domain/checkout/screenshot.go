package checkout

import "strings"

// Screenshot Metadata for an uploaded payment proof. The bytes themselves
// are handed to a store; the wizard only tracks what was accepted.
type Screenshot struct {
	Filename    string
	ContentType string
	Size        int64
	StoredPath  string
}

// ScreenshotPolicy What the store accepts as payment proof.
type ScreenshotPolicy struct {
	MaxSize      int64
	AllowedTypes []string
}

// DefaultScreenshotPolicy Images only, 5MB cap.
func DefaultScreenshotPolicy() ScreenshotPolicy {
	return ScreenshotPolicy{
		MaxSize: 5 * 1024 * 1024,
		AllowedTypes: []string{
			"image/jpeg", "image/jpg", "image/png", "image/gif",
		},
	}
}

// Check returns an empty string for an acceptable file, otherwise the
// field error to show the customer.
func (p ScreenshotPolicy) Check(s Screenshot) string {
	ok := false
	ct := strings.ToLower(s.ContentType)
	for _, t := range p.AllowedTypes {
		if ct == t {
			ok = true
			break
		}
	}
	if !ok {
		return "Please upload a valid image file (JPG, PNG, GIF)"
	}
	if s.Size > p.MaxSize {
		return "File size must be less than 5MB"
	}
	return ""
}

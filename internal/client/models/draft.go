package models

import "github.com/google/uuid"

// Categories is the fixed set of sections a listing can belong to.
var Categories = []string{
	"electronics",
	"furniture",
	"vehicles",
	"apparel",
	"home-garden",
	"sporting",
	"collectibles",
}

// Conditions is the fixed set of item conditions. A draft holds exactly
// one of these, or "" while nothing is selected.
var Conditions = []string{"New", "Like New", "Good", "Used"}

// MaxDraftImages caps the number of attachments per draft.
const MaxDraftImages = 4

// Attachment is one selected image file, held in memory until submission.
type Attachment struct {
	Name string
	Data []byte
}

// Draft is the in-progress, unsubmitted listing form state. It is created
// when the sell flow opens, mutated by field edits and file selection, and
// reset on successful submission.
type Draft struct {
	ID          string
	Title       string
	Category    string
	Condition   string
	Price       string
	Description string
	Brand       string
	Location    string
	Images      []Attachment
}

// NewDraft returns an empty draft with a fresh client-side identifier.
func NewDraft() *Draft {
	return &Draft{ID: uuid.NewString()}
}

// Attach appends an image attachment. Returns false without mutating the
// draft when the attachment cap is already reached.
func (d *Draft) Attach(a Attachment) bool {
	if len(d.Images) >= MaxDraftImages {
		return false
	}
	d.Images = append(d.Images, a)
	return true
}

// Reset clears every field and the file selection, assigning a new ID.
// The draft is reusable afterwards.
func (d *Draft) Reset() {
	*d = Draft{ID: uuid.NewString()}
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// ValidCondition reports whether c is one of the fixed conditions.
func ValidCondition(c string) bool {
	for _, v := range Conditions {
		if v == c {
			return true
		}
	}
	return false
}

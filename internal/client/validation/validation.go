// Package validation checks a draft listing for submit-eligibility.
// All rules are evaluated independently so the result marks every
// offending field, not just the first one found.
package validation

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/onkmade/secondhand/internal/client/models"
)

// MaxImageSize is the per-file size limit for attachments.
const MaxImageSize = 5 << 20 // 5 MiB

// allowedExts are the accepted attachment extensions, lowercase.
var allowedExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// Result is the outcome of checking a draft. Fields maps each checked
// field name to its validity; Message aggregates the failures into one
// human-readable line and is empty when Valid.
type Result struct {
	Valid   bool
	Fields  map[string]bool
	Message string
}

// Error adapts a failed Result to the error interface so the submission
// coordinator can return it without reaching the network.
type Error struct {
	Result Result
}

func (e *Error) Error() string {
	return e.Result.Message
}

// CheckDraft validates every field of the draft and returns the combined
// result. Category and condition must be members of their fixed sets, not
// just non-empty. It never panics and never returns an error; an invalid
// draft yields Valid=false with the per-field flags filled in.
func CheckDraft(d *models.Draft) Result {
	fields := map[string]bool{
		"title":       strings.TrimSpace(d.Title) != "",
		"category":    models.ValidCategory(strings.TrimSpace(d.Category)),
		"condition":   models.ValidCondition(strings.TrimSpace(d.Condition)),
		"description": strings.TrimSpace(d.Description) != "",
		"location":    strings.TrimSpace(d.Location) != "",
		"price":       validPrice(d.Price),
		"images":      validImages(d.Images),
	}

	valid := true
	for _, ok := range fields {
		valid = valid && ok
	}

	res := Result{Valid: valid, Fields: fields}
	if !valid {
		res.Message = aggregateMessage(fields)
	}
	return res
}

// CheckAttachment validates a single attachment against the extension and
// size rules. Used at file-selection time so problems surface before the
// submit attempt.
func CheckAttachment(a models.Attachment) error {
	ext := strings.ToLower(filepath.Ext(a.Name))
	if _, ok := allowedExts[ext]; !ok {
		return fmt.Errorf("%s: only jpg, jpeg and png files are allowed", a.Name)
	}
	if len(a.Data) > MaxImageSize {
		return fmt.Errorf("%s: file exceeds the 5 MiB limit", a.Name)
	}
	return nil
}

func validPrice(s string) bool {
	p, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return !math.IsInf(p, 0) && !math.IsNaN(p) && p > 0
}

func validImages(images []models.Attachment) bool {
	if len(images) == 0 || len(images) > models.MaxDraftImages {
		return false
	}
	for _, img := range images {
		if CheckAttachment(img) != nil {
			return false
		}
	}
	return true
}

func aggregateMessage(fields map[string]bool) string {
	bad := make([]string, 0, len(fields))
	for name, ok := range fields {
		if !ok {
			bad = append(bad, name)
		}
	}
	sort.Strings(bad)
	return "please fix the following fields: " + strings.Join(bad, ", ")
}

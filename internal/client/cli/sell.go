package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/onkmade/secondhand/internal/client/imaging"
	"github.com/onkmade/secondhand/internal/client/models"
	"github.com/onkmade/secondhand/internal/client/services"
	"github.com/onkmade/secondhand/internal/client/validation"
	"github.com/onkmade/secondhand/internal/filex"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

// Sell walks the user through the draft listing and submits it. No
// session is required; the backend attributes sessionless listings to its
// anonymous seller.
//
// The draft survives failed attempts: a validation failure or a server
// rejection leaves every entered field and attached file in place, so the
// next "sell" resumes where the user left off. Prompts show the current
// value and an empty input keeps it. Only a successful submission resets
// the draft.
func (a *App) Sell(ctx context.Context) error {
	d := a.draft

	if err := a.promptDraftFields(ctx, d); err != nil {
		return err
	}
	if err := a.promptDraftImages(ctx, d); err != nil {
		return err
	}

	receipt, err := a.products.Submit(ctx, d)
	if err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			fmt.Fprintf(a.out, "Draft not submitted: %s\n", verr.Result.Message)
		case errors.Is(err, services.ErrBusy):
			fmt.Fprintln(a.out, "A submission is already in progress")
		default:
			fmt.Fprintf(a.out, "Submission failed: %s\n", err.Error())
		}
		return err
	}

	return a.showReceipt(ctx, receipt)
}

// promptDraftFields collects the text fields. An empty answer keeps the
// current draft value.
func (a *App) promptDraftFields(ctx context.Context, d *models.Draft) error {
	ask := func(prompt, current string) (string, error) {
		p := prompt
		if current != "" {
			p = fmt.Sprintf("%s [%s]", prompt, current)
		}
		v, err := getSimpleText(a.reader, p, a.out)
		if err != nil {
			return "", err
		}
		if v == "" {
			return current, nil
		}
		return v, nil
	}

	var err error
	if d.Title, err = ask("Enter title", d.Title); err != nil {
		return err
	}
	if d.Category, err = ask(fmt.Sprintf("Enter category %v", models.Categories), d.Category); err != nil {
		return err
	}
	if d.Condition, err = ask(fmt.Sprintf("Enter condition %v", models.Conditions), d.Condition); err != nil {
		return err
	}
	if d.Price, err = ask("Enter price", d.Price); err != nil {
		return err
	}
	if d.Location, err = ask("Enter location", d.Location); err != nil {
		return err
	}
	if d.Brand, err = ask("Enter brand (optional)", d.Brand); err != nil {
		return err
	}

	if d.Description == "" {
		desc, err := GetMultiline(a.reader, "Enter description:", a.out)
		if err != nil {
			return err
		}
		d.Description = desc
	}
	return nil
}

// promptDraftImages collects image paths until the cap is reached or the
// user enters an empty line. Each file is sniffed, downscaled when
// oversized, and checked against the per-file rules before it is attached.
func (a *App) promptDraftImages(ctx context.Context, d *models.Draft) error {
	if len(d.Images) > 0 {
		fmt.Fprintf(a.out, "%d image(s) already attached\n", len(d.Images))
	}

	for len(d.Images) < models.MaxDraftImages {
		path, err := getSimpleText(a.reader, "Enter image path (empty to finish)", a.out)
		if err != nil {
			return err
		}
		if path == "" {
			break
		}

		data, err := readFile(path)
		if err != nil {
			fmt.Fprintf(a.out, "Could not read %s: %s\n", path, err.Error())
			continue
		}

		prepared, err := imaging.Prepare(data)
		if err != nil {
			fmt.Fprintf(a.out, "Skipping %s: %s\n", path, err.Error())
			continue
		}

		att := models.Attachment{Name: filepath.Base(path), Data: prepared}
		if err := validation.CheckAttachment(att); err != nil {
			fmt.Fprintf(a.out, "Skipping %s\n", err.Error())
			continue
		}

		d.Attach(att)
		fmt.Fprintf(a.out, "Attached %s (%d/%d)\n", att.Name, len(d.Images), models.MaxDraftImages)
	}
	return nil
}

// showReceipt presents the post-submission QR view: the decoded QR code is
// written to disk and the user either activates the listing or closes the
// view. Activation is never inferred from the submission itself.
func (a *App) showReceipt(ctx context.Context, receipt models.ListingReceipt) error {
	a.router.Begin(SectionItemListed)

	fmt.Fprintf(a.out, "Listing created: %s (status %s)\n", receipt.ProductID, receipt.Status)
	fmt.Fprintf(a.out, "Nano tag: %s\n", receipt.NanoTag.TagID)

	if qrPath, err := a.saveQRCode(receipt); err != nil {
		fmt.Fprintf(a.out, "Could not save the QR code: %s\n", err.Error())
	} else {
		fmt.Fprintf(a.out, "QR code saved to: %s\n", qrPath)
		fmt.Fprintln(a.out, "Print it and attach it to the item.")
	}

	for {
		answer, err := getSimpleText(a.reader, "Type 'activate' once the tag is attached, or 'close'", a.out)
		if err != nil {
			return err
		}

		switch answer {
		case "activate":
			blockID, err := a.products.Activate(ctx, receipt.ProductID)
			if err != nil {
				if errors.Is(err, services.ErrBusy) {
					fmt.Fprintln(a.out, "Activation already in progress")
					continue
				}
				fmt.Fprintf(a.out, "Activation failed: %s\n", err.Error())
				continue
			}
			fmt.Fprintf(a.out, "Listing is live. Block: %s\n", blockID)
			return a.Feed(ctx)

		case "close":
			a.router.Begin(SectionFeed)
			return nil

		default:
			fmt.Fprintln(a.out, "Please type 'activate' or 'close'")
		}
	}
}

// saveQRCode decodes the base64 QR PNG and writes it under ./qr.
func (a *App) saveQRCode(receipt models.ListingReceipt) (string, error) {
	png, err := base64.StdEncoding.DecodeString(receipt.NanoTag.QRCode)
	if err != nil {
		return "", fmt.Errorf("decoding qr code: %w", err)
	}

	dir, err := filex.EnsureSubDir("qr")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, receipt.ProductID+".png")
	if err := os.WriteFile(path, png, 0o660); err != nil {
		return "", err
	}
	return path, nil
}

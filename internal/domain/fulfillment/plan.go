package fulfillment

import (
	"fmt"
	"path/filepath"
	"strings"
)

// File names emitted into planned folders.
const (
	AddressFileName         = "address.txt"
	QuantityFileName        = "quantity.txt"
	PersonalizationFileName = "personalisation.txt"
)

// PlannedFile is a text file to be written into a planned folder.
type PlannedFile struct {
	Name    string
	Content string
}

// PlannedFolder is a directory to create, with the files it receives.
// Folders with an empty file set are still created (per-item sub-folders).
type PlannedFolder struct {
	Path  string
	Files []PlannedFile
}

// FolderPlan is the full set of filesystem operations for one order. It is
// computed without touching the filesystem and executed by an Emitter.
type FolderPlan struct {
	Folders []PlannedFolder
}

// PlanOrder decides the folder topology for one normalized order under
// baseDir and returns the plan.
//
// Single-category orders group under one folder per order: a lone item gets
// "{customer} {code} {size}" holding the address files directly; multiple
// items get a "{customer} {code}" parent holding the address files plus one
// empty "{name} {size}" sub-folder per item.
//
// Multi-category orders get one "{customer} {code} {size}" folder per item
// under its category, each with an address note pointing at the order's
// other categories so the workshops ship together.
func PlanOrder(octx *OrderContext, baseDir string) FolderPlan {
	used := octx.UsedCategories()

	if len(used) == 1 {
		return planSingleCategory(octx, baseDir, used[0])
	}
	return planMultiCategory(octx, baseDir, used)
}

func planSingleCategory(octx *OrderContext, baseDir string, category ProductionCategory) FolderPlan {
	items := octx.Items[category]
	first := items[0]

	if len(items) == 1 {
		folderName := Sanitize(fmt.Sprintf("%s %s %s", octx.CustomerName, first.VariantCode, first.Size))
		return FolderPlan{Folders: []PlannedFolder{{
			Path:  filepath.Join(baseDir, category.String(), folderName),
			Files: addressFiles(octx, ""),
		}}}
	}

	// Multiple items in one category: the address lives in the parent
	// folder, each item gets an empty sub-folder.
	parentName := Sanitize(fmt.Sprintf("%s %s", octx.CustomerName, first.VariantCode))
	parentPath := filepath.Join(baseDir, category.String(), parentName)

	folders := []PlannedFolder{{
		Path:  parentPath,
		Files: addressFiles(octx, ""),
	}}
	for _, item := range items {
		folders = append(folders, PlannedFolder{
			Path: filepath.Join(parentPath, Sanitize(fmt.Sprintf("%s %s", item.DisplayName, item.Size))),
		})
	}
	return FolderPlan{Folders: folders}
}

func planMultiCategory(octx *OrderContext, baseDir string, used []ProductionCategory) FolderPlan {
	var folders []PlannedFolder
	for _, category := range used {
		note := "ship with orders from " + joinOtherCategories(used, category)
		for _, item := range octx.Items[category] {
			folderName := Sanitize(fmt.Sprintf("%s %s %s", octx.CustomerName, item.VariantCode, item.Size))
			folders = append(folders, PlannedFolder{
				Path:  filepath.Join(baseDir, category.String(), folderName),
				Files: addressFiles(octx, note),
			})
		}
	}
	return FolderPlan{Folders: folders}
}

func joinOtherCategories(used []ProductionCategory, current ProductionCategory) string {
	others := make([]string, 0, len(used)-1)
	for _, category := range used {
		if category != current {
			others = append(others, category.String())
		}
	}
	return strings.Join(others, ", ")
}

// addressFiles builds the file set written alongside every address: the
// address file itself, plus quantity and personalization files when the
// order calls for them.
func addressFiles(octx *OrderContext, note string) []PlannedFile {
	files := []PlannedFile{{
		Name:    AddressFileName,
		Content: addressText(octx, note),
	}}

	if octx.MaxQuantity > 1 {
		files = append(files, PlannedFile{
			Name:    QuantityFileName,
			Content: fmt.Sprintf("Quantity: %d", octx.MaxQuantity),
		})
	}

	if octx.Personalization != "" {
		files = append(files, PlannedFile{
			Name:    PersonalizationFileName,
			Content: octx.Personalization + "\n",
		})
	}

	return files
}

func addressText(octx *OrderContext, note string) string {
	addr := octx.Address

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n%s, %s\n%s\n\n%s\n%s",
		addr.Name, addr.Address1, addr.City, addr.Zip, addr.Country, addr.Phone, octx.Email)

	if octx.ShippingMethod != "" && octx.ShippingMethod != FreeShipping {
		b.WriteString("\n\n" + octx.ShippingMethod)
	}
	if note != "" {
		b.WriteString("\n\nNote: " + note)
	}
	return b.String()
}

package importer

import (
	"fmt"
	"strings"

	"github.com/gucio321/iconport/pkg/placement"
	"github.com/gucio321/iconport/pkg/svgdoc"
)

// Group is an import group found in an already migrated document.
type Group struct {
	BaseplateID string
	Transform   placement.Affine
	Children    int
}

// Groups lists the import groups of a migrated document in document order.
func Groups(doc *svgdoc.Document) ([]Group, error) {
	var result []Group
	for _, e := range doc.Root().ChildElements() {
		id := svgdoc.ID(e)
		if svgdoc.LocalName(e) != "g" || !strings.HasPrefix(id, GroupPrefix) {
			continue
		}

		a, err := placement.ParseTransform(e.SelectAttrValue("transform", ""))
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", id, err)
		}

		result = append(result, Group{
			BaseplateID: strings.TrimPrefix(id, GroupPrefix),
			Transform:   a,
			Children:    len(e.ChildElements()),
		})
	}

	return result, nil
}

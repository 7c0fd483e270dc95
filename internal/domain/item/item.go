// Package item defines a single catalog entry: an indexed interior-design
// photograph and the description its embedding was derived from.
package item

import (
	"fmt"
	"path"
	"strings"
)

// Item is one immutable catalog entry. The id is the item's position in the
// embedding matrix; item i and matrix row i must always correspond.
type Item struct {
	id          int
	style       string
	fileName    string
	title       string
	description string
	assetPath   string
}

// New validates and creates a catalog item. The asset path is derived from
// the lowercased style and the file name; description may be empty (such
// items carry no embedding and are dropped during catalog recovery).
func New(id int, style, fileName, title, description string) (Item, error) {
	if id < 0 {
		return Item{}, fmt.Errorf("item id must be non-negative, got %d", id)
	}
	if style == "" {
		return Item{}, fmt.Errorf("item %d: style is required", id)
	}
	if fileName == "" {
		return Item{}, fmt.Errorf("item %d: file name is required", id)
	}
	return Item{
		id:          id,
		style:       style,
		fileName:    fileName,
		title:       title,
		description: description,
		assetPath:   path.Join("/static", strings.ToLower(style), fileName),
	}, nil
}

// WithID returns a copy of the item reindexed at the given position.
// Used when catalog recovery drops rows and the remainder is renumbered.
func (i Item) WithID(id int) Item {
	i.id = id
	return i
}

// ID returns the item's position in the embedding matrix.
func (i Item) ID() int { return i.id }

// Style returns the category label.
func (i Item) Style() string { return i.style }

// FileName returns the base name of the image asset.
func (i Item) FileName() string { return i.fileName }

// Title returns the generated caption.
func (i Item) Title() string { return i.title }

// Description returns the index-time text the embedding was produced from.
func (i Item) Description() string { return i.description }

// AssetPath returns the URL path of the image asset.
func (i Item) AssetPath() string { return i.assetPath }

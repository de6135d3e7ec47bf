package state

// Item is one selectable entry. Index is its position in the unfiltered list,
// so a choice made while filtering can be mapped back.
type Item struct {
	Index int
	Label string
}

// NewItems wraps labels in order.
func NewItems(labels []string) []Item {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{Index: i, Label: label}
	}
	return items
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}

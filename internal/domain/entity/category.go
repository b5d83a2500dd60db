// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Category is a node of the product taxonomy. The flat table stores only the
// parent reference; Children is derived by BuildForest and never persisted.
type Category struct {
	ID          int64       // Unique identifier of the category.
	Name        string      // Display name, the only required field.
	ParentID    *int64      // Reference to the parent category; nil means top-level.
	Description string      // Optional free-form description.
	CreatedAt   time.Time   // Set at creation, immutable afterwards.
	Children    []*Category // Derived child list, populated by BuildForest.
}

// BuildForest converts a flat category list into an ordered forest.
//
// Each input record is cloned with an empty child list, then assigned either
// to its parent's Children or to the root list. A node becomes a root when its
// ParentID is nil or refers to an id absent from the input; dangling parent
// references are not an error. Relative input order is preserved within every
// sibling group. The input slice is never mutated.
func BuildForest(flat []*Category) []*Category {
	nodes := make(map[int64]*Category, len(flat))
	for _, cat := range flat {
		clone := *cat
		clone.Children = []*Category{}
		nodes[cat.ID] = &clone
	}

	roots := make([]*Category, 0, len(flat))
	for _, cat := range flat {
		node := nodes[cat.ID]
		if cat.ParentID != nil {
			if parent, ok := nodes[*cat.ParentID]; ok {
				parent.Children = append(parent.Children, node)

				continue
			}
		}
		roots = append(roots, node)
	}

	return roots
}

// FlattenForest walks a forest in pre-order and returns the visited nodes.
// It is the inverse view of BuildForest and is mainly useful for display
// and for verifying that derivation lost no records.
func FlattenForest(forest []*Category) []*Category {
	var out []*Category
	var walk func(nodes []*Category)
	walk = func(nodes []*Category) {
		for _, node := range nodes {
			out = append(out, node)
			walk(node.Children)
		}
	}
	walk(forest)

	return out
}

package shopify

import (
	"context"

	"github.com/shopcanvas/builder-backend/internal/domain"
)

type collectionsQueryData struct {
	Collections struct {
		Nodes []struct {
			ID    string `json:"id"`
			Title string `json:"title"`
			Image *struct {
				URL string `json:"url"`
			} `json:"image"`
			Products struct {
				Nodes []struct {
					ID string `json:"id"`
				} `json:"nodes"`
			} `json:"products"`
		} `json:"nodes"`
	} `json:"collections"`
}

// FetchCollections reads the storefront-visible collections. One page is
// enough here: the builder's pickers show at most a few dozen
// collections and the mobile category grid far fewer.
func (c *Client) FetchCollections(ctx context.Context) ([]domain.CollectionRecord, error) {
	query := `
query collections($first: Int!) {
	collections(first: $first) {
		nodes {
			id
			title
			image { url }
			products(first: 50) {
				nodes { id }
			}
		}
	}
}`

	var data collectionsQueryData
	if err := c.storefrontRequest(ctx, query, map[string]any{"first": 50}, &data); err != nil {
		return nil, err
	}

	out := make([]domain.CollectionRecord, 0, len(data.Collections.Nodes))
	for _, node := range data.Collections.Nodes {
		rec := domain.CollectionRecord{
			ID:           node.ID,
			Title:        node.Title,
			ProductCount: len(node.Products.Nodes),
		}
		if node.Image != nil {
			rec.ImageURL = node.Image.URL
		}
		out = append(out, rec)
	}
	return out, nil
}

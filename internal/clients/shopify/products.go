package shopify

import (
	"context"

	"github.com/shopcanvas/builder-backend/internal/domain"
)

type productsQueryData struct {
	Products struct {
		Nodes []struct {
			ID            string `json:"id"`
			Title         string `json:"title"`
			Description   string `json:"description"`
			FeaturedImage *struct {
				URL string `json:"url"`
			} `json:"featuredImage"`
			PriceRangeV2 struct {
				MinVariantPrice struct {
					Amount       string `json:"amount"`
					CurrencyCode string `json:"currencyCode"`
				} `json:"minVariantPrice"`
			} `json:"priceRangeV2"`
			CompareAtPriceRange *struct {
				MaxVariantCompareAtPrice struct {
					Amount string `json:"amount"`
				} `json:"maxVariantCompareAtPrice"`
			} `json:"compareAtPriceRange"`
			Variants struct {
				Nodes []struct {
					ID               string `json:"id"`
					Title            string `json:"title"`
					Price            string `json:"price"`
					AvailableForSale bool   `json:"availableForSale"`
				} `json:"nodes"`
			} `json:"variants"`
		} `json:"nodes"`
		PageInfo struct {
			HasNextPage bool   `json:"hasNextPage"`
			EndCursor   string `json:"endCursor"`
		} `json:"pageInfo"`
	} `json:"products"`
}

// FetchProducts pages through the store's published products via the
// Admin API.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	const pageSize = 100

	query := `
query products($first: Int!, $after: String) {
	products(first: $first, after: $after, query: "status:active") {
		nodes {
			id
			title
			description
			featuredImage { url }
			priceRangeV2 { minVariantPrice { amount currencyCode } }
			compareAtPriceRange { maxVariantCompareAtPrice { amount } }
			variants(first: 10) {
				nodes { id title price availableForSale }
			}
		}
		pageInfo { hasNextPage endCursor }
	}
}`

	var (
		products []domain.ProductRecord
		cursor   *string
	)
	for {
		variables := map[string]any{"first": pageSize}
		if cursor != nil && *cursor != "" {
			variables["after"] = *cursor
		}

		var data productsQueryData
		if err := c.adminRequest(ctx, query, variables, &data); err != nil {
			return nil, err
		}

		for _, node := range data.Products.Nodes {
			rec := domain.ProductRecord{
				ID:          node.ID,
				Title:       node.Title,
				Description: node.Description,
				Price:       node.PriceRangeV2.MinVariantPrice.Amount,
				Currency:    node.PriceRangeV2.MinVariantPrice.CurrencyCode,
			}
			if node.FeaturedImage != nil {
				rec.ImageURL = node.FeaturedImage.URL
			}
			if node.CompareAtPriceRange != nil {
				rec.CompareAtPrice = node.CompareAtPriceRange.MaxVariantCompareAtPrice.Amount
			}
			for _, v := range node.Variants.Nodes {
				rec.Variants = append(rec.Variants, domain.ProductVariant{
					ID:        v.ID,
					Title:     v.Title,
					Price:     v.Price,
					Available: v.AvailableForSale,
				})
			}
			products = append(products, rec)
		}

		if !data.Products.PageInfo.HasNextPage || data.Products.PageInfo.EndCursor == "" {
			break
		}
		next := data.Products.PageInfo.EndCursor
		cursor = &next
	}

	return products, nil
}
